// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package composer

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/sourabhsharmaaa/first-class-genai/internal/dataset"
	"github.com/sourabhsharmaaa/first-class-genai/internal/filter"
	"github.com/sourabhsharmaaa/first-class-genai/internal/llm"
	"github.com/sourabhsharmaaa/first-class-genai/internal/logging"
)

// Defaults for Options.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1024
)

// NoMatchText is returned verbatim when there is nothing to recommend.
const NoMatchText = `{"restaurants":[{"id":1,"name":"Broaden your search","rating":0,"costForTwo":"N/A","aiReason":"No exact matches found. Try changing your filters."}]}`

// FallbackText is returned when the LLM fails or its answer is unusable.
const FallbackText = `{"restaurants":[]}`

// Options tunes the LLM call.
type Options struct {
	// Temperature is used as given, including zero. Nil selects DefaultTemperature.
	Temperature *float64
	MaxTokens   int
}

// Composer writes recommendations. It is safe for concurrent use.
type Composer struct {
	client      llm.Client
	temperature float32
	maxTokens   int
}

// New creates a Composer. Unset options fall back to the defaults.
func New(client llm.Client, opts Options) *Composer {
	temperature := DefaultTemperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	return &Composer{
		client:      client,
		temperature: float32(temperature),
		maxTokens:   opts.MaxTokens,
	}
}

// NoMatch returns the canned answer for an empty record set.
func NoMatch() Result {
	return Result{
		Text: NoMatchText,
		Recommendation: Recommendation{Restaurants: []Entry{{
			ID:         1,
			Name:       "Broaden your search",
			CostForTwo: "N/A",
			AIReason:   "No exact matches found. Try changing your filters.",
		}}},
	}
}

// Fallback returns the empty answer with reason attached.
func Fallback(reason string) Result {
	return Result{
		Text:           FallbackText,
		Recommendation: Recommendation{Restaurants: []Entry{}},
		Degraded:       reason,
	}
}

// Compose asks the LLM to recommend records under prefs. It never returns
// an error; see Result.Degraded.
func (c *Composer) Compose(ctx context.Context, records []dataset.Restaurant, prefs filter.Preferences) Result {
	if len(records) == 0 {
		return NoMatch()
	}

	text, err := c.client.Complete(ctx, llm.Request{
		System:      systemPrompt,
		User:        buildPrompt(records, prefs),
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		JSONMode:    true,
		Operation:   "compose",
	})
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Int("records", len(records)).Msg("Recommendation composition failed")
		return Fallback(fmt.Sprintf("recommendation unavailable: %v", err))
	}

	rec, dropped, err := validate(text, records)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Recommendation answer could not be parsed")
		return Fallback(fmt.Sprintf("recommendation unavailable: %v", err))
	}
	if dropped > 0 {
		logging.Ctx(ctx).Debug().Int("dropped", dropped).Msg("Dropped recommendations for unknown restaurants")
	}

	out, err := json.Marshal(rec)
	if err != nil {
		return Fallback(fmt.Sprintf("recommendation unavailable: %v", err))
	}

	result := Result{Text: string(out), Recommendation: rec}
	if len(rec.Restaurants) == 0 {
		result.Degraded = "recommendation named none of the matched restaurants"
	}
	return result
}

// validate parses the answer and keeps only entries grounded in records.
// Entries are renumbered from 1 in answer order and deduplicated by name.
func validate(text string, records []dataset.Restaurant) (Recommendation, int, error) {
	var raw rawAnswer
	if err := json.Unmarshal([]byte(llm.StripCodeFences(text)), &raw); err != nil {
		return Recommendation{}, 0, fmt.Errorf("invalid JSON: %w", err)
	}

	byName := make(map[string]*dataset.Restaurant, len(records))
	for i := range records {
		key := nameKey(records[i].Name)
		if _, ok := byName[key]; !ok {
			byName[key] = &records[i]
		}
	}

	rec := Recommendation{Summary: raw.Summary.Value, Restaurants: make([]Entry, 0, len(raw.Restaurants))}
	used := make(map[string]struct{}, len(raw.Restaurants))
	dropped := 0
	for _, e := range raw.Restaurants {
		key := nameKey(e.Name.Value)
		r, ok := byName[key]
		if !ok {
			dropped++
			continue
		}
		if _, dup := used[key]; dup {
			dropped++
			continue
		}
		used[key] = struct{}{}
		rec.Restaurants = append(rec.Restaurants, fill(len(rec.Restaurants)+1, e, r))
	}
	return rec, dropped, nil
}

// fill builds an Entry, taking any field the answer left out from r.
func fill(id int, e rawEntry, r *dataset.Restaurant) Entry {
	out := Entry{
		ID:         id,
		Name:       r.Name,
		Rating:     e.Rating.Value,
		CostForTwo: e.CostForTwo.Value,
		Address:    e.Address.Value,
		Cuisines:   e.Cuisines.Value,
		AIReason:   e.AIReason.Value,
	}
	if !e.Rating.Set && r.Rate != nil {
		out.Rating = *r.Rate
	}
	if !e.CostForTwo.Set {
		out.CostForTwo = formatCost(r.CostForTwo, "N/A")
	}
	if !e.Address.Set {
		out.Address = r.Address
	}
	if !e.Cuisines.Set {
		out.Cuisines = r.Cuisines
	}
	return out
}

func nameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
