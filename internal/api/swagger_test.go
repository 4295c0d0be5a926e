// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	_ "github.com/sourabhsharmaaa/first-class-genai/docs"
)

func TestSwaggerDocCoversRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(loadedProvider(t), nil, &echoLLM{})
	rec := doRequest(t, router, http.MethodGet, "/swagger/doc.json", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	doc := decodeBody[struct {
		Paths map[string]map[string]any `json:"paths"`
	}](t, rec)

	// Every service route must be documented; the /api mirror shares the entries.
	mux, ok := router.(chi.Routes)
	if !ok {
		t.Fatalf("router %T does not expose its routes", router)
	}
	walk := func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if strings.HasPrefix(route, "/api/") || strings.HasPrefix(route, "/swagger") || route == "/metrics" || route == "/metrics/*" {
			return nil
		}
		if _, found := doc.Paths[route][strings.ToLower(method)]; !found {
			t.Errorf("%s %s missing from OpenAPI document", method, route)
		}
		return nil
	}
	if err := chi.Walk(mux, walk); err != nil {
		t.Fatalf("walk routes: %v", err)
	}
}

func TestSwaggerUI(t *testing.T) {
	t.Parallel()

	router := newTestRouter(loadedProvider(t), nil, &echoLLM{})
	rec := doRequest(t, router, http.MethodGet, "/swagger/index.html", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "swagger-ui") {
		t.Error("index.html should mount the swagger-ui element")
	}
}
