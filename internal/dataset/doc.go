// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

/*
Package dataset supplies normalized restaurant records to the request pipeline.

# Sources

Three modes are selected by configuration:

  - csv: CSVLoader reads a local file through an in-memory DuckDB
    (read_csv_auto) and a Provider holds the result as a snapshot.
  - postgres: PostgresStore.Load bulk-reads the restaurants table once
    and a Provider holds the snapshot.
  - live: PostgresStore serves every request with an ILIKE pre-filter
    on location and cuisine, capped at a candidate limit.

# Normalization

Every row goes through Normalize regardless of source:

  - text fields are trimmed
  - rate "4.1/5" becomes 4.1; "NEW", "-" and out-of-range values are nil
  - cost "1,500" becomes 1500; unparseable values are nil
  - cuisines are split on commas, trimmed and rejoined with ", "; "nan" is empty

NormalizeAll also drops later duplicates of the same (name, address).

# Concurrency

Provider publishes snapshots through an atomic pointer. Readers never
block and see either the old or the new snapshot in full. Loads are
serialized; a failed load keeps the previous snapshot.

# Seeding

PostgresStore.Seed replaces the table contents using COPY (pq.CopyIn).
cmd/seed wires CSVLoader to Seed.
*/
package dataset
