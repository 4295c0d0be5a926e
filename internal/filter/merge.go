// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package filter

import "strings"

// Merge combines preferences given explicitly in a request with those
// extracted from its free-text query.
//
// Location and cuisine take the extracted value when present, else the
// explicit one. Numeric bounds take the tighter of the two: the lower
// max price, the higher min rating and the lower max rating. TopN always
// comes from explicit. The result is at least as restrictive as either input.
func Merge(explicit, extracted Preferences) Preferences {
	return Preferences{
		Location:  firstNonEmpty(extracted.Location, explicit.Location),
		Cuisine:   firstNonEmpty(extracted.Cuisine, explicit.Cuisine),
		MaxPrice:  lower(explicit.MaxPrice, extracted.MaxPrice),
		MinRating: higher(explicit.MinRating, extracted.MinRating),
		MaxRating: lower(explicit.MaxRating, extracted.MaxRating),
		TopN:      explicit.TopN,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func lower(a, b *float64) *float64 {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case *b < *a:
		return b
	default:
		return a
	}
}

func higher(a, b *float64) *float64 {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case *b > *a:
		return b
	default:
		return a
	}
}
