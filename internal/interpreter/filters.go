// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package interpreter

import "github.com/sourabhsharmaaa/first-class-genai/internal/filter"

// ParsedFilters is the wire form of extracted preferences. Unset fields
// encode as null.
type ParsedFilters struct {
	Location  *string  `json:"location"`
	Cuisine   *string  `json:"cuisine"`
	MaxPrice  *float64 `json:"max_price"`
	MinRating *float64 `json:"min_rating"`
	MaxRating *float64 `json:"max_rating"`
}

// Filters converts preferences to ParsedFilters.
func Filters(p filter.Preferences) ParsedFilters {
	out := ParsedFilters{
		MaxPrice:  p.MaxPrice,
		MinRating: p.MinRating,
		MaxRating: p.MaxRating,
	}
	if p.Location != "" {
		out.Location = &p.Location
	}
	if p.Cuisine != "" {
		out.Cuisine = &p.Cuisine
	}
	return out
}
