// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"

	"github.com/sourabhsharmaaa/first-class-genai/internal/composer"
	"github.com/sourabhsharmaaa/first-class-genai/internal/dataset"
	"github.com/sourabhsharmaaa/first-class-genai/internal/filter"
	"github.com/sourabhsharmaaa/first-class-genai/internal/llm"
)

func testRows() []dataset.RawRow {
	return []dataset.RawRow{
		{Name: "A", Address: "1 Main Rd", Location: "BTM", Cuisines: "North Indian", Rate: "4.5/5", Cost: "500"},
		{Name: "B", Address: "2 Main Rd", Location: "BTM", Cuisines: "Chinese", Rate: "4.0/5", Cost: "1,500"},
		{Name: "Truffles", Address: "St Marks Rd", Location: "Koramangala 5th Block", Cuisines: "Cafe, Burger", Rate: "4.7/5", Cost: "900"},
		{Name: "Tiny", Address: "x", Location: "MG", Cuisines: "Cafe", Rate: "3.1/5", Cost: "100"},
	}
}

func loadedProvider(t *testing.T) *dataset.Provider {
	t.Helper()
	p := dataset.NewProvider(&dataset.StaticLoader{Rows: testRows()})
	if err := p.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return p
}

// echoLLM answers compose calls with one entry per "- Name: X," line of the
// prompt and counts calls.
type echoLLM struct {
	calls atomic.Int32
	err   error
}

func (e *echoLLM) Complete(ctx context.Context, req llm.Request) (string, error) {
	e.calls.Add(1)
	if e.err != nil {
		return "", e.err
	}
	type entry struct {
		Name     string `json:"name"`
		AIReason string `json:"aiReason"`
	}
	var entries []entry
	for _, line := range strings.Split(req.User, "\n") {
		if rest, ok := strings.CutPrefix(line, "- Name: "); ok {
			name, _, _ := strings.Cut(rest, ",")
			entries = append(entries, entry{Name: name, AIReason: "Because."})
		}
	}
	b, _ := json.Marshal(map[string]any{"summary": "Enjoy.", "restaurants": entries})
	return string(b), nil
}

type fakeInterpreter struct {
	prefs filter.Preferences
	err   error
	calls atomic.Int32
}

func (f *fakeInterpreter) Parse(ctx context.Context, query string) (filter.Preferences, error) {
	f.calls.Add(1)
	return f.prefs, f.err
}

type fakeStore struct {
	status dataset.Status
	err    error
}

func (s *fakeStore) Candidates(context.Context, dataset.Query) ([]dataset.Restaurant, error) {
	return nil, s.err
}
func (s *fakeStore) Locations(context.Context) ([]string, error) { return nil, s.err }
func (s *fakeStore) Cuisines(context.Context) ([]string, error)  { return nil, s.err }
func (s *fakeStore) Status(context.Context) dataset.Status       { return s.status }

func newTestRouter(store dataset.Store, interp QueryInterpreter, client llm.Client) http.Handler {
	h := NewHandler(Dependencies{
		Store:       store,
		Interpreter: interp,
		Composer:    composer.New(client, composer.Options{}),
	})
	return NewRouter(h, nil).SetupChi()
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func doRequestWithHeaders(t *testing.T, h http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
