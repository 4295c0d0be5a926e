// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

// Package llm talks to an OpenAI-compatible chat completion API.
//
// Client is the seam the interpreter and composer depend on. OpenAIClient
// is the production implementation built on go-openai; BreakerClient wraps
// any Client with a sony/gobreaker circuit breaker so a failing upstream is
// short-circuited instead of timing out on every request.
//
// Example:
//
//	base := llm.NewOpenAIClient(llm.Options{APIKey: key, BaseURL: url, Model: model, Timeout: 20 * time.Second})
//	client := llm.NewBreakerClient(base)
//	text, err := client.Complete(ctx, llm.Request{System: sys, User: prompt, JSONMode: true})
package llm
