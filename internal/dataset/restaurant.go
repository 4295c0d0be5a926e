// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Restaurant is one normalized row of the dataset.
//
// Empty strings mean the field was missing. Rate and CostForTwo are nil when
// the source value could not be parsed (e.g. "NEW" or "-").
type Restaurant struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Location   string   `json:"location"`
	Cuisines   string   `json:"cuisines"`
	Rate       *float64 `json:"rate"`
	CostForTwo *float64 `json:"approx_cost_for_two"`
}

// RawRow is a row as read from a CSV file or the restaurants table, before
// normalization. All values are text.
type RawRow struct {
	Name     string
	Address  string
	Location string
	Cuisines string
	Rate     string
	Cost     string
}

// ParseRate turns "4.1/5" into 4.1. Values that are not numbers, or fall
// outside 0..5, yield nil.
func ParseRate(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	v, ok := parseFinite(s)
	if !ok || v < 0 || v > 5 {
		return nil
	}
	return &v
}

// ParseCost turns "1,500" into 1500. Negative or unparseable values yield nil.
func ParseCost(raw string) *float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	v, ok := parseFinite(s)
	if !ok || v < 0 {
		return nil
	}
	return &v
}

func parseFinite(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// NormalizeCuisines trims each comma-separated token and rejoins with ", ".
// A literal "nan" (any case) becomes empty.
func NormalizeCuisines(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") {
		return ""
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

// SplitCuisines returns the non-empty tokens of a cuisines field.
func SplitCuisines(cuisines string) []string {
	if cuisines == "" {
		return nil
	}
	parts := strings.Split(cuisines, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Normalize converts one raw row.
func Normalize(row RawRow) Restaurant {
	return Restaurant{
		Name:       strings.TrimSpace(row.Name),
		Address:    strings.TrimSpace(row.Address),
		Location:   strings.TrimSpace(row.Location),
		Cuisines:   NormalizeCuisines(row.Cuisines),
		Rate:       ParseRate(row.Rate),
		CostForTwo: ParseCost(row.Cost),
	}
}

type nameAddress struct {
	name    string
	address string
}

// NormalizeAll converts rows and drops later duplicates of the same
// (name, address) pair. Order of first occurrences is preserved.
func NormalizeAll(rows []RawRow) []Restaurant {
	seen := make(map[nameAddress]struct{}, len(rows))
	out := make([]Restaurant, 0, len(rows))
	for _, row := range rows {
		r := Normalize(row)
		key := nameAddress{r.Name, r.Address}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
