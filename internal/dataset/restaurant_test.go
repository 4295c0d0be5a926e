// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package dataset

import (
	"math"
	"testing"
)

func TestParseRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want *float64
	}{
		{"4.1/5", ptr(4.1)},
		{" 3.9 /5", ptr(3.9)},
		{"4.5", ptr(4.5)},
		{"0", ptr(0)},
		{"NEW", nil},
		{"-", nil},
		{"", nil},
		{"nan", nil},
		{"6.2/5", nil},
		{"-1", nil},
	}

	for _, tt := range tests {
		got := ParseRate(tt.in)
		if !floatPtrEqual(got, tt.want) {
			t.Errorf("ParseRate(%q) = %v, want %v", tt.in, deref(got), deref(tt.want))
		}
	}
}

func TestParseCost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want *float64
	}{
		{"1,500", ptr(1500)},
		{"800", ptr(800)},
		{" 1,200 ", ptr(1200)},
		{"300.0", ptr(300)},
		{"", nil},
		{"free", nil},
		{"-50", nil},
		{"Inf", nil},
	}

	for _, tt := range tests {
		got := ParseCost(tt.in)
		if !floatPtrEqual(got, tt.want) {
			t.Errorf("ParseCost(%q) = %v, want %v", tt.in, deref(got), deref(tt.want))
		}
	}
}

func TestNormalizeCuisines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"North Indian,Chinese", "North Indian, Chinese"},
		{" Cafe ,  Italian ,Continental", "Cafe, Italian, Continental"},
		{"Biryani", "Biryani"},
		{"nan", ""},
		{"NaN", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeCuisines(tt.in); got != tt.want {
			t.Errorf("NormalizeCuisines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	r := Normalize(RawRow{
		Name:     "  Truffles ",
		Address:  " 93/1, St. Marks Road ",
		Location: " St. Marks Road",
		Cuisines: "Cafe,American,Burger",
		Rate:     "4.7/5",
		Cost:     "900",
	})

	if r.Name != "Truffles" || r.Address != "93/1, St. Marks Road" || r.Location != "St. Marks Road" {
		t.Errorf("text fields not trimmed: %+v", r)
	}
	if r.Cuisines != "Cafe, American, Burger" {
		t.Errorf("Cuisines = %q", r.Cuisines)
	}
	if deref(r.Rate) != 4.7 || deref(r.CostForTwo) != 900.0 {
		t.Errorf("numeric fields = %v, %v", deref(r.Rate), deref(r.CostForTwo))
	}
}

func TestNormalizeAllDedupesByNameAndAddress(t *testing.T) {
	t.Parallel()

	rows := []RawRow{
		{Name: "Onesta", Address: "BTM", Rate: "4.6/5"},
		{Name: "Onesta", Address: "BTM ", Rate: "4.1/5"},
		{Name: "Onesta", Address: "HSR", Rate: "4.3/5"},
		{Name: "Meghana Foods", Address: "BTM", Rate: "4.4/5"},
	}

	got := NormalizeAll(rows)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if deref(got[0].Rate) != 4.6 {
		t.Errorf("first occurrence should win, got rate %v", deref(got[0].Rate))
	}
	if got[1].Address != "HSR" || got[2].Name != "Meghana Foods" {
		t.Errorf("order not preserved: %+v", got)
	}
}

func TestSplitCuisines(t *testing.T) {
	t.Parallel()

	got := SplitCuisines("Chinese, , Thai")
	if len(got) != 2 || got[0] != "Chinese" || got[1] != "Thai" {
		t.Errorf("SplitCuisines = %v", got)
	}
	if SplitCuisines("") != nil {
		t.Error("empty cuisines should give nil")
	}
}

func ptr(v float64) *float64 { return &v }

// deref returns NaN for a nil pointer so a missing value never compares equal.
func deref(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
