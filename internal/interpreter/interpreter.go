// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package interpreter

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/sourabhsharmaaa/first-class-genai/internal/cache"
	"github.com/sourabhsharmaaa/first-class-genai/internal/filter"
	"github.com/sourabhsharmaaa/first-class-genai/internal/llm"
	"github.com/sourabhsharmaaa/first-class-genai/internal/logging"
	"github.com/sourabhsharmaaa/first-class-genai/internal/metrics"
)

// CacheType labels interpreter cache metrics.
const CacheType = "interpreter"

// ErrMalformedResponse is returned when the LLM answer is not a JSON object.
var ErrMalformedResponse = errors.New("interpreter: malformed response")

// Interpreter extracts Preferences from free text. It is safe for concurrent use.
type Interpreter struct {
	client llm.Client
	cache  *cache.LRUCache[filter.Preferences]
	group  singleflight.Group
	log    zerolog.Logger
}

// New creates an Interpreter caching up to cacheSize queries. A ttl of zero
// keeps entries until evicted.
func New(client llm.Client, cacheSize int, ttl time.Duration) *Interpreter {
	return &Interpreter{
		client: client,
		cache:  cache.NewLRUCache[filter.Preferences](cacheSize, ttl),
		log:    logging.WithComponent(CacheType),
	}
}

// Parse extracts preferences from query. TopN is never set.
//
// A blank query returns empty preferences without calling the LLM. On any
// failure Parse returns empty preferences and the error; nothing is cached
// and nothing is retried.
func (i *Interpreter) Parse(ctx context.Context, query string) (filter.Preferences, error) {
	if strings.TrimSpace(query) == "" {
		return filter.Preferences{}, nil
	}

	if prefs, ok := i.cache.Get(query); ok {
		metrics.RecordCacheLookup(CacheType, true)
		return prefs, nil
	}
	metrics.RecordCacheLookup(CacheType, false)

	// The shared call outlives any single waiter; the LLM client bounds it.
	ch := i.group.DoChan(query, func() (any, error) {
		if prefs, ok := i.cache.Get(query); ok {
			return prefs, nil
		}
		prefs, err := i.interpret(context.WithoutCancel(ctx), query)
		if err != nil {
			return filter.Preferences{}, err
		}
		i.cache.Add(query, prefs)
		stats := i.cache.Stats()
		metrics.CacheSize.WithLabelValues(CacheType).Set(float64(stats.Size))
		i.log.Debug().
			Int("size", stats.Size).
			Int("capacity", stats.Capacity).
			Int64("evictions", stats.Evictions).
			Msg("Cached query interpretation")
		return prefs, nil
	})

	select {
	case <-ctx.Done():
		return filter.Preferences{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			logging.Ctx(ctx).Warn().Err(res.Err).Str("query", query).Msg("Query interpretation failed")
			return filter.Preferences{}, res.Err
		}
		prefs, _ := res.Val.(filter.Preferences)
		return prefs, nil
	}
}

// CacheStats returns the query cache counters.
func (i *Interpreter) CacheStats() cache.Stats {
	return i.cache.Stats()
}

func (i *Interpreter) interpret(ctx context.Context, query string) (filter.Preferences, error) {
	text, err := i.client.Complete(ctx, llm.Request{
		System:      systemPrompt,
		User:        buildPrompt(query),
		Temperature: 0,
		JSONMode:    true,
		Operation:   "interpret",
	})
	if err != nil {
		return filter.Preferences{}, err
	}
	prefs, err := decode(text)
	if err != nil {
		return filter.Preferences{}, err
	}
	logging.Ctx(ctx).Debug().Str("query", query).Interface("filters", Filters(prefs)).Msg("Query interpreted")
	return prefs, nil
}

// decode reads the LLM answer leniently. Unknown keys are ignored, numbers
// may arrive as strings, and a field that cannot be read is dropped on its own.
func decode(text string) (filter.Preferences, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(llm.StripCodeFences(text)), &raw); err != nil {
		return filter.Preferences{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if raw == nil {
		return filter.Preferences{}, fmt.Errorf("%w: null object", ErrMalformedResponse)
	}

	return filter.Preferences{
		Location:  stringField(raw["location"]),
		Cuisine:   stringField(raw["cuisine"]),
		MaxPrice:  numberField(raw["max_price"]),
		MinRating: numberField(raw["min_rating"]),
		MaxRating: numberField(raw["max_rating"]),
	}, nil
}

func stringField(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "null", "none", "n/a":
		return ""
	}
	return s
}

func numberField(v any) *float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
