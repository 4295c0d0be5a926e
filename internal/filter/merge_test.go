// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package filter

import (
	"testing"

	"github.com/sourabhsharmaaa/first-class-genai/internal/dataset"
)

func TestMergeStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		explicit  Preferences
		extracted Preferences
		wantLoc   string
		wantCuis  string
	}{
		{"extracted wins", Preferences{Location: "BTM", Cuisine: "Cafe"}, Preferences{Location: "HSR", Cuisine: "Pizza"}, "HSR", "Pizza"},
		{"explicit when nothing extracted", Preferences{Location: "BTM", Cuisine: "Cafe"}, Preferences{}, "BTM", "Cafe"},
		{"blank extracted ignored", Preferences{Location: "BTM"}, Preferences{Location: "  "}, "BTM", ""},
		{"only extracted", Preferences{}, Preferences{Cuisine: "Thai"}, "", "Thai"},
	}

	for _, tt := range tests {
		got := Merge(tt.explicit, tt.extracted)
		if got.Location != tt.wantLoc || got.Cuisine != tt.wantCuis {
			t.Errorf("%s: got %q/%q, want %q/%q", tt.name, got.Location, got.Cuisine, tt.wantLoc, tt.wantCuis)
		}
	}
}

func TestMergeNumericTakesTighterBound(t *testing.T) {
	t.Parallel()

	explicit := Preferences{MaxPrice: f(1500), MinRating: f(3.5), MaxRating: f(4.8), TopN: 7}
	extracted := Preferences{MaxPrice: f(800), MinRating: f(4.0), MaxRating: f(5), TopN: 99}

	got := Merge(explicit, extracted)
	if *got.MaxPrice != 800 {
		t.Errorf("MaxPrice = %v, want 800", *got.MaxPrice)
	}
	if *got.MinRating != 4.0 {
		t.Errorf("MinRating = %v, want 4.0", *got.MinRating)
	}
	if *got.MaxRating != 4.8 {
		t.Errorf("MaxRating = %v, want 4.8", *got.MaxRating)
	}
	if got.TopN != 7 {
		t.Errorf("TopN = %d, want explicit 7", got.TopN)
	}
}

func TestMergeNilBounds(t *testing.T) {
	t.Parallel()

	got := Merge(Preferences{MaxPrice: f(500)}, Preferences{MinRating: f(4)})
	if got.MaxPrice == nil || *got.MaxPrice != 500 {
		t.Errorf("MaxPrice = %v", got.MaxPrice)
	}
	if got.MinRating == nil || *got.MinRating != 4 {
		t.Errorf("MinRating = %v", got.MinRating)
	}
	if got.MaxRating != nil {
		t.Errorf("MaxRating = %v, want nil", got.MaxRating)
	}
}

// The merged set never admits a record that either input would reject.
func TestMergeIsAtLeastAsRestrictive(t *testing.T) {
	t.Parallel()

	table := []dataset.Restaurant{
		rec("a", "BTM", "Cafe", f(4.6), f(600)),
		rec("b", "BTM", "Cafe", f(4.0), f(1500)),
		rec("c", "BTM", "Pizza", f(3.2), f(300)),
		rec("d", "HSR", "Cafe", nil, f(200)),
		rec("e", "HSR", "Cafe", f(4.4), nil),
	}
	explicit := Preferences{Location: "BTM", MaxPrice: f(1000), MinRating: f(3.0), TopN: 10}
	extracted := Preferences{Cuisine: "Cafe", MaxPrice: f(2000), MinRating: f(4.0), MaxRating: f(4.5), TopN: 10}
	merged := Merge(explicit, extracted)

	admits := func(p Preferences, r dataset.Restaurant) bool {
		got, _ := Apply([]dataset.Restaurant{r}, p)
		return len(got) == 1
	}
	numericOnly := func(p Preferences) Preferences {
		p.Location, p.Cuisine = "", ""
		return p
	}

	for _, r := range table {
		if !admits(merged, r) {
			continue
		}
		if !admits(numericOnly(explicit), r) || !admits(numericOnly(extracted), r) {
			t.Errorf("merged admits %s which an input's numeric bounds reject", r.Name)
		}
	}
}
