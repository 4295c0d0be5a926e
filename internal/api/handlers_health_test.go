// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/sourabhsharmaaa/first-class-genai/internal/dataset"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		store  dataset.Store
		status int
		body   string
	}{
		{"snapshot loaded", nil, http.StatusOK, `{"status":"ok","dataset_loaded":true}`},
		{"snapshot missing", dataset.NewProvider(&dataset.StaticLoader{}), http.StatusServiceUnavailable, `{"status":"degraded","dataset_loaded":false}`},
		{"live connected", &fakeStore{status: dataset.Status{Mode: "live", Ready: true}}, http.StatusOK, `{"status":"ok","db_connected":true}`},
		{"live down", &fakeStore{status: dataset.Status{Mode: "live"}}, http.StatusServiceUnavailable, `{"status":"degraded","db_connected":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := tt.store
			if store == nil {
				store = loadedProvider(t)
			}
			rec := doRequest(t, newTestRouter(store, nil, &echoLLM{}), http.MethodGet, "/health", "")
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if got := rec.Body.String(); got != tt.body {
				t.Errorf("body = %s, want %s", got, tt.body)
			}
		})
	}
}

func TestHealthLive(t *testing.T) {
	t.Parallel()

	router := newTestRouter(dataset.NewProvider(&dataset.StaticLoader{}), nil, &echoLLM{})
	rec := doRequest(t, router, http.MethodGet, "/api/health/live", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp := decodeBody[LivenessResponse](t, rec); resp.Status != StatusOK {
		t.Errorf("status = %q", resp.Status)
	}
}

func TestRouter_Extras(t *testing.T) {
	t.Parallel()

	router := newTestRouter(loadedProvider(t), nil, &echoLLM{})

	t.Run("not found envelope", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/nope", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d", rec.Code)
		}
		if resp := decodeBody[APIResponse](t, rec); resp.Error == nil || resp.Error.Code != ErrCodeNotFound {
			t.Errorf("envelope = %+v", resp.Error)
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/recommend", "")
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/metrics", "")
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "go_goroutines") {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("request id header", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/health", "")
		if rec.Header().Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID")
		}
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := doRequestWithHeaders(t, router, http.MethodOptions, "/recommend", map[string]string{
			"Origin":                        "https://example.com",
			"Access-Control-Request-Method": http.MethodPost,
		})
		if got := req.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Access-Control-Allow-Origin = %q", got)
		}
	})
}
