// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

// Package testinfra starts real backing services for integration tests.
//
// Everything here is behind the integration build tag and needs Docker:
//
//	go test -tags integration ./internal/dataset/...
//
// NewPostgresContainer gives the dataset package a real Postgres to seed
// with COPY and query with ILIKE, which sqlmock-style fakes cannot check:
//
//	func TestPostgresRoundTrip(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    pg, err := testinfra.NewPostgresContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    testinfra.CleanupContainer(t, pg)
//	    store, err := dataset.OpenPostgres(ctx, dataset.PostgresConfig{URL: pg.URL})
//	    // ...
//	}
//
// Tests skip when Docker is unavailable. The first run pulls the image.
package testinfra
