// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package filter

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/sourabhsharmaaa/first-class-genai/internal/dataset"
)

// DefaultTopN is used when a request does not say how many results it wants.
const DefaultTopN = 5

// ErrInvalidPreferences is returned for numeric bounds that are NaN or infinite.
var ErrInvalidPreferences = errors.New("invalid preferences")

// Preferences constrain the result set. Nil or empty fields do not constrain.
type Preferences struct {
	Location  string
	Cuisine   string
	MaxPrice  *float64
	MinRating *float64
	MaxRating *float64
	TopN      int
}

// IsZero reports whether no constraint is set. TopN is ignored.
func (p Preferences) IsZero() bool {
	return p.Location == "" && p.Cuisine == "" && p.MaxPrice == nil && p.MinRating == nil && p.MaxRating == nil
}

// Query returns the subset of p a store can pre-filter on.
func (p Preferences) Query() dataset.Query {
	return dataset.Query{Location: p.Location, Cuisine: p.Cuisine}
}

// Validate rejects non-finite numeric bounds.
func (p Preferences) Validate() error {
	bounds := []struct {
		name  string
		value *float64
	}{
		{"max_price", p.MaxPrice},
		{"min_rating", p.MinRating},
		{"max_rating", p.MaxRating},
	}
	for _, b := range bounds {
		if b.value != nil && (math.IsNaN(*b.value) || math.IsInf(*b.value, 0)) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidPreferences, b.name)
		}
	}
	return nil
}

// Apply filters, ranks and truncates records. Steps run in this order:
//
//  1. location substring (case-insensitive)
//  2. cuisine substring (case-insensitive)
//  3. cost <= max price; unknown cost excluded
//  4. rate >= min rating; unknown rate excluded
//  5. rate < max rating (strict); unknown rate excluded
//  6. stable sort by rate descending, unknown last
//  7. drop repeated names, keeping the first
//  8. truncate to TopN
//
// records is never modified. An empty result is not an error.
func Apply(records []dataset.Restaurant, prefs Preferences) ([]dataset.Restaurant, error) {
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	if prefs.TopN <= 0 || len(records) == 0 {
		return []dataset.Restaurant{}, nil
	}

	location := strings.ToLower(strings.TrimSpace(prefs.Location))
	cuisine := strings.ToLower(strings.TrimSpace(prefs.Cuisine))

	matched := make([]dataset.Restaurant, 0, min(len(records), 64))
	for i := range records {
		r := &records[i]
		if location != "" && (r.Location == "" || !strings.Contains(strings.ToLower(r.Location), location)) {
			continue
		}
		if cuisine != "" && !strings.Contains(strings.ToLower(r.Cuisines), cuisine) {
			continue
		}
		if prefs.MaxPrice != nil && (r.CostForTwo == nil || *r.CostForTwo > *prefs.MaxPrice) {
			continue
		}
		if prefs.MinRating != nil && (r.Rate == nil || *r.Rate < *prefs.MinRating) {
			continue
		}
		if prefs.MaxRating != nil && (r.Rate == nil || *r.Rate >= *prefs.MaxRating) {
			continue
		}
		matched = append(matched, *r)
	}

	slices.SortStableFunc(matched, compareByRateDesc)

	seen := make(map[string]struct{}, len(matched))
	out := make([]dataset.Restaurant, 0, min(len(matched), prefs.TopN))
	for i := range matched {
		if _, dup := seen[matched[i].Name]; dup {
			continue
		}
		seen[matched[i].Name] = struct{}{}
		out = append(out, matched[i])
		if len(out) == prefs.TopN {
			break
		}
	}
	return out, nil
}

// compareByRateDesc orders known ratings high to low with unknown last.
func compareByRateDesc(a, b dataset.Restaurant) int {
	switch {
	case a.Rate == nil && b.Rate == nil:
		return 0
	case a.Rate == nil:
		return 1
	case b.Rate == nil:
		return -1
	default:
		return cmp.Compare(*b.Rate, *a.Rate)
	}
}
