// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package composer

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Recommendation is the validated composer answer.
type Recommendation struct {
	Summary     string  `json:"summary,omitempty"`
	Restaurants []Entry `json:"restaurants"`
}

// Entry is one recommended restaurant.
type Entry struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	CostForTwo string  `json:"costForTwo"`
	Address    string  `json:"address,omitempty"`
	Cuisines   string  `json:"cuisines,omitempty"`
	AIReason   string  `json:"aiReason"`
}

// Result is what Compose returns.
type Result struct {
	// Text is Recommendation encoded as JSON.
	Text           string
	Recommendation Recommendation
	// Degraded explains why a fallback was used. Empty on success.
	Degraded string
}

// rawAnswer mirrors the LLM answer with lenient field types.
type rawAnswer struct {
	Summary     flexString `json:"summary"`
	Restaurants []rawEntry `json:"restaurants"`
}

type rawEntry struct {
	Name       flexString `json:"name"`
	Rating     flexFloat  `json:"rating"`
	CostForTwo flexString `json:"costForTwo"`
	Address    flexString `json:"address"`
	Cuisines   flexString `json:"cuisines"`
	AIReason   flexString `json:"aiReason"`
}

// flexString accepts a JSON string, number or bool. Anything else is unset.
type flexString struct {
	Value string
	Set   bool
}

func (s *flexString) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	switch t := v.(type) {
	case string:
		s.Value = strings.TrimSpace(t)
	case float64:
		s.Value = strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		s.Value = strconv.FormatBool(t)
	default:
		return nil
	}
	s.Set = s.Value != ""
	return nil
}

// flexFloat accepts a JSON number or a numeric string such as "4.1/5".
type flexFloat struct {
	Value float64
	Set   bool
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	switch t := v.(type) {
	case float64:
		f.Value, f.Set = t, true
	case string:
		s := strings.TrimSpace(t)
		if i := strings.IndexByte(s, '/'); i >= 0 {
			s = s[:i]
		}
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			f.Value, f.Set = parsed, true
		}
	}
	return nil
}
