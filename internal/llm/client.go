// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package llm

import (
	"context"
	"errors"
	"strings"
	"unicode"
)

// ErrEmptyResponse is returned when the API answers without any choices or content.
var ErrEmptyResponse = errors.New("llm: empty response")

// ErrNotConfigured is returned by a client that has no API key.
var ErrNotConfigured = errors.New("llm: api key not configured")

// Request is a single system+user chat completion.
type Request struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
	// JSONMode asks the API for a JSON object response.
	JSONMode bool
	// Operation labels metrics and logs ("interpret", "compose").
	Operation string
}

// Client completes chat requests and returns the assistant message content.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ClientFunc adapts a function to Client.
type ClientFunc func(ctx context.Context, req Request) (string, error)

// Complete calls f.
func (f ClientFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// StripCodeFences removes a surrounding markdown code fence, with or without
// a language tag, and trims whitespace. Text without a fence is returned trimmed.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSpace(dropFenceTag(s))
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// dropFenceTag removes a language tag such as "json" from the start of s. The
// tag may end the opening line or share it with the fenced body.
func dropFenceTag(s string) string {
	end := strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '+' && r != '_'
	})
	if end <= 0 {
		return s
	}
	rest := strings.TrimLeft(s[end:], " \t\r")
	if rest == "" || strings.ContainsRune("\n{[", rune(rest[0])) {
		return rest
	}
	return s
}
