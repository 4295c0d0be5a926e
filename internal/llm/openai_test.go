// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package llm

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

type captured struct {
	Model          string  `json:"model"`
	Temperature    float64 `json:"temperature"`
	MaxTokens      int     `json:"max_tokens"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// fakeCompletions serves /chat/completions with the given content and
// stores the decoded request body.
func fakeCompletions(t *testing.T, status int, content string, got *captured) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q", auth)
		}
		body, _ := io.ReadAll(r.Body)
		if got != nil {
			if err := json.Unmarshal(body, got); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = io.WriteString(w, `{"error":{"message":"boom","type":"server_error"}}`)
			return
		}
		resp := map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
			"usage": map[string]int{"prompt_tokens": 3, "completion_tokens": 5, "total_tokens": 8},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIClientComplete(t *testing.T) {
	t.Parallel()

	var got captured
	srv := fakeCompletions(t, http.StatusOK, `{"location":"BTM"}`, &got)
	client := NewOpenAIClient(Options{APIKey: "test-key", BaseURL: srv.URL + "/", Model: "test-model", Timeout: time.Second})

	text, err := client.Complete(context.Background(), Request{
		System:    "sys",
		User:      "hello",
		MaxTokens: 64,
		JSONMode:  true,
		Operation: "interpret",
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if text != `{"location":"BTM"}` {
		t.Errorf("text = %q", text)
	}
	if got.Model != "test-model" || got.MaxTokens != 64 {
		t.Errorf("model/max_tokens = %q/%d", got.Model, got.MaxTokens)
	}
	if got.Temperature <= 0 || got.Temperature > 1e-6 {
		t.Errorf("temperature = %v, want a tiny positive value", got.Temperature)
	}
	if got.ResponseFormat == nil || got.ResponseFormat.Type != "json_object" {
		t.Errorf("response_format = %+v", got.ResponseFormat)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Content != "hello" {
		t.Errorf("messages = %+v", got.Messages)
	}
}

func TestOpenAIClientOmitsJSONModeAndSystem(t *testing.T) {
	t.Parallel()

	var got captured
	srv := fakeCompletions(t, http.StatusOK, "hi", &got)
	client := NewOpenAIClient(Options{APIKey: "test-key", BaseURL: srv.URL, Model: "m"})

	if _, err := client.Complete(context.Background(), Request{User: "u", Temperature: 0.7}); err != nil {
		t.Fatal(err)
	}
	if got.ResponseFormat != nil {
		t.Errorf("response_format = %+v, want none", got.ResponseFormat)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" {
		t.Errorf("messages = %+v", got.Messages)
	}
	if got.Temperature < 0.69 || got.Temperature > 0.71 {
		t.Errorf("temperature = %v", got.Temperature)
	}
}

func TestOpenAIClientErrors(t *testing.T) {
	t.Parallel()

	t.Run("http error", func(t *testing.T) {
		t.Parallel()
		srv := fakeCompletions(t, http.StatusInternalServerError, "", nil)
		client := NewOpenAIClient(Options{APIKey: "test-key", BaseURL: srv.URL, Model: "m"})
		_, err := client.Complete(context.Background(), Request{User: "u", Operation: "compose"})
		if err == nil || !strings.Contains(err.Error(), "llm compose") {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		srv := fakeCompletions(t, http.StatusOK, "   ", nil)
		client := NewOpenAIClient(Options{APIKey: "test-key", BaseURL: srv.URL, Model: "m"})
		if _, err := client.Complete(context.Background(), Request{User: "u"}); !errors.Is(err, ErrEmptyResponse) {
			t.Errorf("err = %v, want ErrEmptyResponse", err)
		}
	})

	t.Run("no api key", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { calls.Add(1) }))
		defer srv.Close()
		client := NewOpenAIClient(Options{BaseURL: srv.URL, Model: "m"})
		if _, err := client.Complete(context.Background(), Request{User: "u"}); !errors.Is(err, ErrNotConfigured) {
			t.Errorf("err = %v, want ErrNotConfigured", err)
		}
		if calls.Load() != 0 {
			t.Errorf("server called %d times", calls.Load())
		}
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()
		client := NewOpenAIClient(Options{APIKey: "test-key", BaseURL: srv.URL, Model: "m", Timeout: 50 * time.Millisecond})
		_, err := client.Complete(context.Background(), Request{User: "u"})
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("err = %v, want deadline exceeded", err)
		}
	})
}
