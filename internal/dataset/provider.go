// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package dataset

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sourabhsharmaaa/first-class-genai/internal/logging"
	"github.com/sourabhsharmaaa/first-class-genai/internal/metrics"
)

// Snapshot is an immutable, normalized copy of the dataset.
type Snapshot struct {
	Records   []Restaurant
	Locations []string
	Cuisines  []string
	LoadedAt  time.Time
	Source    string
}

func newSnapshot(records []Restaurant, source string) *Snapshot {
	return &Snapshot{
		Records:   records,
		Locations: DistinctLocations(records),
		Cuisines:  DistinctCuisines(records),
		LoadedAt:  time.Now(),
		Source:    source,
	}
}

// Provider is a Store backed by an in-memory snapshot.
//
// Readers never block: the current snapshot is published through an
// atomic pointer and replaced whole by Load. A failed Load keeps the
// previous snapshot.
type Provider struct {
	loader  Loader
	current atomic.Pointer[Snapshot]

	// loadMu serializes loads; reads do not take it.
	loadMu  sync.Mutex
	lastErr atomic.Pointer[loadError]
}

type loadError struct{ err error }

// NewProvider creates an empty provider. Call Load before serving.
func NewProvider(loader Loader) *Provider {
	return &Provider{loader: loader}
}

// Load reads, normalizes and publishes a new snapshot.
func (p *Provider) Load(ctx context.Context) error {
	p.loadMu.Lock()
	defer p.loadMu.Unlock()

	start := time.Now()
	source := p.loader.Name()

	rows, err := p.loader.Load(ctx)
	if err != nil {
		metrics.RecordDatasetLoad(source, 0, time.Since(start), err)
		p.lastErr.Store(&loadError{err})
		return fmt.Errorf("load %s dataset: %w", source, err)
	}

	snap := newSnapshot(NormalizeAll(rows), source)
	p.current.Store(snap)
	p.lastErr.Store(nil)

	metrics.RecordDatasetLoad(source, len(snap.Records), time.Since(start), nil)
	logging.Ctx(ctx).Info().
		Str("source", source).
		Int("rows", len(rows)).
		Int("records", len(snap.Records)).
		Int("locations", len(snap.Locations)).
		Int("cuisines", len(snap.Cuisines)).
		Dur("duration", time.Since(start)).
		Msg("Dataset loaded")
	return nil
}

// Snapshot returns the current snapshot, or nil before the first load.
func (p *Provider) Snapshot() *Snapshot {
	return p.current.Load()
}

// Candidates returns the whole snapshot; the filter engine narrows it.
func (p *Provider) Candidates(_ context.Context, _ Query) ([]Restaurant, error) {
	snap := p.current.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap.Records, nil
}

// Locations implements Store.
func (p *Provider) Locations(_ context.Context) ([]string, error) {
	snap := p.current.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap.Locations, nil
}

// Cuisines implements Store.
func (p *Provider) Cuisines(_ context.Context) ([]string, error) {
	snap := p.current.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap.Cuisines, nil
}

// Status implements Store.
func (p *Provider) Status(_ context.Context) Status {
	st := Status{Mode: "snapshot"}
	if le := p.lastErr.Load(); le != nil {
		st.Err = le.err
	}
	snap := p.current.Load()
	if snap == nil {
		return st
	}
	st.Ready = true
	st.Records = len(snap.Records)
	st.LoadedAt = snap.LoadedAt
	return st
}
