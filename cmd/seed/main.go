// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

// Command seed copies the restaurant CSV into the Postgres restaurants
// table used by DATASET_SOURCE=postgres and DATASET_SOURCE=live.
//
//	seed --csv data/zomato.csv --database-url postgres://...
//
// Flags default to DATASET_PATH and DATABASE_URL. The table is created when
// missing and truncated before the copy.
package main

import (
	"os"

	"github.com/sourabhsharmaaa/first-class-genai/internal/config"
	"github.com/sourabhsharmaaa/first-class-genai/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	if err := newRootCommand(cfg, seedPostgres).Execute(); err != nil {
		logging.Error().Err(err).Msg("Seed failed")
		os.Exit(1)
	}
}
