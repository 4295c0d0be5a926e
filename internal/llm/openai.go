// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/sourabhsharmaaa/first-class-genai/internal/logging"
	"github.com/sourabhsharmaaa/first-class-genai/internal/metrics"
)

// DefaultTimeout bounds one completion when Options.Timeout is unset.
const DefaultTimeout = 20 * time.Second

// Options configures an OpenAIClient.
type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	// HTTPClient overrides the transport. Nil uses a client without its own timeout.
	HTTPClient *http.Client
}

// OpenAIClient calls the chat completions endpoint of any OpenAI-compatible API.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	hasKey  bool
}

// NewOpenAIClient builds a client. An empty APIKey yields a client whose
// Complete always fails with ErrNotConfigured.
func NewOpenAIClient(opts Options) *OpenAIClient {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OpenAIClient{
		client:  openai.NewClientWithConfig(cfg),
		model:   opts.Model,
		timeout: timeout,
		hasKey:  opts.APIKey != "",
	}
}

// Complete sends req and returns the first choice's content.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	op := req.Operation
	if op == "" {
		op = "complete"
	}
	if !c.hasKey {
		metrics.RecordLLMCall(op, "not_configured", 0)
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, c.buildRequest(req))
	duration := time.Since(start)

	if err != nil {
		metrics.RecordLLMCall(op, callStatus(err), duration)
		logging.Ctx(ctx).Debug().Err(err).Str("operation", op).Dur("duration", duration).Msg("LLM call failed")
		return "", fmt.Errorf("llm %s: %w", op, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		metrics.RecordLLMCall(op, "empty", duration)
		return "", ErrEmptyResponse
	}

	metrics.RecordLLMCall(op, "success", duration)
	logging.Ctx(ctx).Debug().
		Str("operation", op).
		Str("model", resp.Model).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Dur("duration", duration).
		Msg("LLM call completed")
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) buildRequest(req Request) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.User})

	temperature := req.Temperature
	if temperature == 0 {
		// A zero value is omitted from the payload and the API falls back
		// to its own default of 1.
		temperature = math.SmallestNonzeroFloat32
	}

	out := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode {
		out.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
	}
	return out
}

func callStatus(err error) string {
	var apiErr *openai.APIError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.As(err, &apiErr):
		return fmt.Sprintf("http_%d", apiErr.HTTPStatusCode)
	default:
		return "error"
	}
}
