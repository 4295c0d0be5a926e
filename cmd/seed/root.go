// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sourabhsharmaaa/first-class-genai/internal/config"
	"github.com/sourabhsharmaaa/first-class-genai/internal/dataset"
	"github.com/sourabhsharmaaa/first-class-genai/internal/logging"
)

// seedOptions are the resolved command-line settings.
type seedOptions struct {
	CSVPath     string
	DatabaseURL string
	Timeout     time.Duration
}

// seedFunc performs the copy. Tests replace it.
type seedFunc func(ctx context.Context, opts seedOptions) (int, error)

var errNoDatabaseURL = errors.New("database url not set: pass --database-url or set DATABASE_URL")

func newRootCommand(cfg *config.Config, run seedFunc) *cobra.Command {
	opts := seedOptions{
		CSVPath:     cfg.Dataset.Path,
		DatabaseURL: cfg.Postgres.URL,
		Timeout:     5 * time.Minute,
	}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Copy the restaurant CSV into Postgres",
		Long: `Load the restaurant CSV through DuckDB, normalize its column names and
bulk-copy every row into the Postgres restaurants table. Existing rows are
replaced.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.DatabaseURL == "" {
				return errNoDatabaseURL
			}
			if opts.CSVPath == "" {
				return errors.New("csv path not set: pass --csv or set DATASET_PATH")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
			defer cancel()

			start := time.Now()
			n, err := run(ctx, opts)
			if err != nil {
				return err
			}
			logging.Info().Int("rows", n).Str("csv", opts.CSVPath).Dur("duration", time.Since(start)).Msg("Seed complete")
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d rows into %s\n", n, dataset.TableName)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.CSVPath, "csv", opts.CSVPath, "restaurant CSV file")
	flags.StringVar(&opts.DatabaseURL, "database-url", opts.DatabaseURL, "Postgres connection string")
	flags.DurationVar(&opts.Timeout, "timeout", opts.Timeout, "overall deadline for load and copy")
	return cmd
}

// seedPostgres reads the CSV and replaces the table contents.
func seedPostgres(ctx context.Context, opts seedOptions) (int, error) {
	rows, err := dataset.NewCSVLoader(opts.CSVPath).Load(ctx)
	if err != nil {
		return 0, err
	}
	logging.Info().Int("rows", len(rows)).Msg("CSV loaded")

	store, err := dataset.OpenPostgres(ctx, dataset.PostgresConfig{URL: opts.DatabaseURL, MaxOpenConns: 2})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	return store.Seed(ctx, rows)
}
