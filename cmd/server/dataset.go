// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sourabhsharmaaa/first-class-genai/internal/config"
	"github.com/sourabhsharmaaa/first-class-genai/internal/dataset"
	"github.com/sourabhsharmaaa/first-class-genai/internal/logging"
)

// datasetComponents is what initDataset hands back to main.
type datasetComponents struct {
	Store dataset.Store

	// Provider is set in snapshot modes and drives refresh.
	Provider *dataset.Provider

	closers []io.Closer
}

// Close releases database handles opened for the dataset.
func (d *datasetComponents) Close() {
	for _, c := range d.closers {
		if err := c.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing dataset source")
		}
	}
}

// initDataset builds the Store selected by DATASET_SOURCE and, in snapshot
// modes, performs the initial load.
func initDataset(ctx context.Context, cfg *config.Config) (*datasetComponents, error) {
	d := &datasetComponents{}

	var pg *dataset.PostgresStore
	if cfg.UsesPostgres() {
		var err error
		pg, err = dataset.OpenPostgres(ctx, dataset.PostgresConfig{
			URL:            cfg.Postgres.URL,
			MaxOpenConns:   cfg.Postgres.MaxOpenConns,
			CandidateLimit: cfg.Postgres.CandidateLimit,
		})
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, pg)
	}

	switch cfg.Dataset.Source {
	case config.SourceLive:
		d.Store = pg
		logging.Info().Msg("Serving restaurants live from Postgres")
		return d, nil
	case config.SourcePostgres:
		d.Provider = dataset.NewProvider(pg)
	case config.SourceCSV:
		d.Provider = dataset.NewProvider(dataset.NewCSVLoader(cfg.Dataset.Path))
	default:
		d.Close()
		return nil, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}

	if err := d.Provider.Load(ctx); err != nil {
		d.Close()
		return nil, err
	}
	d.Store = d.Provider
	return d, nil
}
