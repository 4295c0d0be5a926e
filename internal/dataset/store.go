// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package dataset

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	// ErrNotLoaded is returned by a snapshot store before its first successful load.
	ErrNotLoaded = errors.New("dataset not loaded")

	// ErrUnavailable wraps failures of the live backing store.
	ErrUnavailable = errors.New("dataset unavailable")
)

// Query narrows the candidate set before in-process filtering. Empty fields
// do not constrain. Stores may return a superset; the filter engine applies
// the exact predicates.
type Query struct {
	Location string
	Cuisine  string
}

// Status reports store health for /health.
type Status struct {
	// Mode is "snapshot" or "live".
	Mode     string
	Ready    bool
	Records  int
	LoadedAt time.Time
	Err      error
}

// Store supplies restaurant records to the request pipeline.
type Store interface {
	// Candidates returns records possibly matching q.
	Candidates(ctx context.Context, q Query) ([]Restaurant, error)

	// Locations returns distinct locations for /locations.
	Locations(ctx context.Context) ([]string, error)

	// Cuisines returns distinct cuisine tokens for /cuisines.
	Cuisines(ctx context.Context) ([]string, error)

	// Status reports whether the store can serve requests.
	Status(ctx context.Context) Status
}

// Loader produces raw rows for a snapshot.
type Loader interface {
	Load(ctx context.Context) ([]RawRow, error)
	Name() string
}

// StaticLoader serves fixed rows. Used by tests and local fixtures.
type StaticLoader struct {
	Rows []RawRow
	Err  error
}

// Load implements Loader.
func (l *StaticLoader) Load(_ context.Context) ([]RawRow, error) {
	if l.Err != nil {
		return nil, l.Err
	}
	return slices.Clone(l.Rows), nil
}

// Name implements Loader.
func (l *StaticLoader) Name() string { return "static" }

// minLocationLength drops noise values such as "-" or "NA" from /locations.
const minLocationLength = 4

// DistinctLocations returns sorted, trimmed, distinct locations longer than
// three characters.
func DistinctLocations(records []Restaurant) []string {
	seen := make(map[string]struct{})
	for i := range records {
		loc := strings.TrimSpace(records[i].Location)
		if utf8.RuneCountInString(loc) < minLocationLength {
			continue
		}
		seen[loc] = struct{}{}
	}
	return sortedKeys(seen)
}

// DistinctCuisines returns the sorted union of cuisine tokens.
func DistinctCuisines(records []Restaurant) []string {
	seen := make(map[string]struct{})
	for i := range records {
		for _, c := range SplitCuisines(records[i].Cuisines) {
			seen[c] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// closeQuietly closes a resource and explicitly ignores any error.
// Use this in error paths where Close() errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
