// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package composer

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"

	"github.com/sourabhsharmaaa/first-class-genai/internal/dataset"
	"github.com/sourabhsharmaaa/first-class-genai/internal/filter"
	"github.com/sourabhsharmaaa/first-class-genai/internal/llm"
)

func fp(v float64) *float64 { return &v }

func sampleRecords() []dataset.Restaurant {
	return []dataset.Restaurant{
		{Name: "Onesta", Address: "2nd Stage, BTM", Location: "BTM", Cuisines: "Pizza, Cafe", Rate: fp(4.6), CostForTwo: fp(600)},
		{Name: "Meghana Foods", Address: "Koramangala 5th Block", Location: "Koramangala", Cuisines: "Biryani", Rate: fp(4.4), CostForTwo: nil},
	}
}

type recorder struct {
	calls atomic.Int32
	reply string
	err   error
	req   llm.Request
}

func (r *recorder) Complete(ctx context.Context, req llm.Request) (string, error) {
	r.calls.Add(1)
	r.req = req
	return r.reply, r.err
}

func TestComposeEmptyRecordsNeverCallsLLM(t *testing.T) {
	t.Parallel()

	rec := &recorder{reply: `{"restaurants":[]}`}
	c := New(rec, Options{})

	for _, records := range [][]dataset.Restaurant{nil, {}} {
		res := c.Compose(context.Background(), records, filter.Preferences{Location: "Nowhere"})
		if res.Text != NoMatchText {
			t.Errorf("Text = %s", res.Text)
		}
		if res.Degraded != "" {
			t.Errorf("Degraded = %q", res.Degraded)
		}
	}
	if rec.calls.Load() != 0 {
		t.Errorf("LLM called %d times", rec.calls.Load())
	}
}

func TestNoMatchEncodesToCannedText(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(NoMatch().Recommendation)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != NoMatchText {
		t.Errorf("got %s\nwant %s", b, NoMatchText)
	}
	b, _ = json.Marshal(Fallback("x").Recommendation)
	if string(b) != FallbackText {
		t.Errorf("fallback got %s", b)
	}
}

func TestComposeBuildsGroundedPrompt(t *testing.T) {
	t.Parallel()

	rec := &recorder{reply: `{"summary":"s","restaurants":[]}`}
	c := New(rec, Options{})
	prefs := filter.Preferences{Location: "BTM", MaxPrice: fp(1000)}

	_ = c.Compose(context.Background(), sampleRecords(), prefs)

	req := rec.req
	if req.System != systemPrompt || !req.JSONMode || req.MaxTokens != DefaultMaxTokens {
		t.Errorf("request = %+v", req)
	}
	if req.Temperature < 0.69 || req.Temperature > 0.71 {
		t.Errorf("Temperature = %v", req.Temperature)
	}
	for _, want := range []string{
		`User preferences: {"location":"BTM","max_price":1000}.`,
		"- Name: Onesta, Rating: 4.6, Cost: 600, Loc: BTM, Address: 2nd Stage, BTM, Cuisine: Pizza, Cafe\n",
		"- Name: Meghana Foods, Rating: 4.4, Cost: Unknown Price, Loc: Koramangala",
		"for ALL the restaurants provided above",
		"Keep the output strictly as JSON.",
	} {
		if !strings.Contains(req.User, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestComposeValidatesAnswer(t *testing.T) {
	t.Parallel()

	answer := "```json\n" + `{
  "summary": "Try Onesta and Meghana Foods.",
  "restaurants": [
    {"id": 7, "name": "onesta", "rating": "4.6/5", "costForTwo": 600, "aiReason": "Great pizza."},
    {"id": 8, "name": "Imaginary Bistro", "rating": 5, "aiReason": "Made up."},
    {"id": 9, "name": "Meghana  Foods", "address": "", "aiReason": "Biryani."},
    {"id": 10, "name": "Onesta", "aiReason": "Duplicate."}
  ]
}` + "\n```"
	c := New(&recorder{reply: answer}, Options{})

	res := c.Compose(context.Background(), sampleRecords(), filter.Preferences{})
	if res.Degraded != "" {
		t.Fatalf("Degraded = %q", res.Degraded)
	}

	got := res.Recommendation
	if got.Summary != "Try Onesta and Meghana Foods." {
		t.Errorf("Summary = %q", got.Summary)
	}
	if len(got.Restaurants) != 2 {
		t.Fatalf("restaurants = %+v", got.Restaurants)
	}

	first := got.Restaurants[0]
	if first.ID != 1 || first.Name != "Onesta" || first.Rating != 4.6 || first.CostForTwo != "600" {
		t.Errorf("first = %+v", first)
	}
	if first.Address != "2nd Stage, BTM" || first.Cuisines != "Pizza, Cafe" {
		t.Errorf("first not filled from record: %+v", first)
	}

	second := got.Restaurants[1]
	if second.ID != 2 || second.Name != "Meghana Foods" || second.Rating != 4.4 || second.CostForTwo != "N/A" {
		t.Errorf("second = %+v", second)
	}
	if second.Address != "Koramangala 5th Block" {
		t.Errorf("second address = %q", second.Address)
	}

	var decoded Recommendation
	if err := json.Unmarshal([]byte(res.Text), &decoded); err != nil {
		t.Fatalf("Text is not JSON: %v", err)
	}
	if strings.Contains(res.Text, "Imaginary") {
		t.Error("hallucinated restaurant kept")
	}
}

func TestComposeFallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reply string
		err   error
		text  string
	}{
		{"llm error", "", errors.New("connection refused"), FallbackText},
		{"not json", "Here are some places you'll love!", nil, FallbackText},
		{"all hallucinated", `{"summary":"x","restaurants":[{"name":"Nope"}]}`, nil, `{"summary":"x","restaurants":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := New(&recorder{reply: tt.reply, err: tt.err}, Options{})
			res := c.Compose(context.Background(), sampleRecords(), filter.Preferences{})
			if res.Text != tt.text {
				t.Errorf("Text = %s, want %s", res.Text, tt.text)
			}
			if res.Degraded == "" {
				t.Error("expected a degradation reason")
			}
			if res.Recommendation.Restaurants == nil {
				t.Error("Restaurants must be non-nil")
			}
		})
	}
}

func TestNewAppliesOptions(t *testing.T) {
	t.Parallel()

	rec := &recorder{reply: `{}`}
	temperature := 0.2
	c := New(rec, Options{Temperature: &temperature, MaxTokens: 256})
	_ = c.Compose(context.Background(), sampleRecords(), filter.Preferences{})
	if rec.req.MaxTokens != 256 || rec.req.Temperature < 0.19 || rec.req.Temperature > 0.21 {
		t.Errorf("request = %+v", rec.req)
	}
}

func TestNewKeepsZeroTemperature(t *testing.T) {
	t.Parallel()

	rec := &recorder{reply: `{}`}
	zero := 0.0
	c := New(rec, Options{Temperature: &zero})
	_ = c.Compose(context.Background(), sampleRecords(), filter.Preferences{})
	if rec.req.Temperature != 0 {
		t.Errorf("Temperature = %v, want 0", rec.req.Temperature)
	}
}

func TestDescribePreferences(t *testing.T) {
	t.Parallel()

	if got := describePreferences(filter.Preferences{}); got != "{}" {
		t.Errorf("empty = %s", got)
	}
	got := describePreferences(filter.Preferences{Cuisine: "Cafe", MinRating: fp(4), MaxRating: fp(4.5)})
	if got != `{"cuisine":"Cafe","max_rating":4.5,"min_rating":4}` {
		t.Errorf("got %s", got)
	}
}
