// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	// Register the DuckDB driver
	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/sourabhsharmaaa/first-class-genai/internal/metrics"
)

// Column keys after normalizeColumn. The cost header appears either as
// "approx_cost(for two people)" (Zomato export) or "approx_costfor_two_people"
// (uploaded table); both normalize to the same key.
const (
	colName     = "name"
	colAddress  = "address"
	colLocation = "location"
	colCuisines = "cuisines"
	colRate     = "rate"
	colCost     = "approxcostfortwopeople"
)

// normalizeColumn lowercases and keeps only ASCII letters and digits.
func normalizeColumn(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CSVLoader reads the restaurant CSV through an in-process DuckDB.
//
// DuckDB's read_csv_auto handles quoted multi-line fields and header sniffing.
// Every column is read as text so normalization stays in Go.
type CSVLoader struct {
	Path string
}

// NewCSVLoader creates a loader for path.
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{Path: path}
}

// Name implements Loader.
func (l *CSVLoader) Name() string { return "csv" }

// Load implements Loader.
func (l *CSVLoader) Load(ctx context.Context) ([]RawRow, error) {
	if _, err := os.Stat(l.Path); err != nil {
		return nil, fmt.Errorf("dataset file: %w", err)
	}

	conn, err := sql.Open("duckdb", ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer closeQuietly(conn)

	query := fmt.Sprintf(
		"SELECT * FROM read_csv_auto('%s', header=true, all_varchar=true)",
		strings.ReplaceAll(l.Path, "'", "''"),
	)

	start := time.Now()
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		metrics.RecordDBQuery("read_csv", "csv", time.Since(start), err)
		return nil, fmt.Errorf("failed to read %s: %w", l.Path, err)
	}
	defer closeQuietly(rows)

	out, err := scanRawRows(rows)
	metrics.RecordDBQuery("read_csv", "csv", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", l.Path, err)
	}
	return out, nil
}

// scanRawRows maps result columns by normalized name. Unknown columns are
// skipped; a missing name column is an error.
func scanRawRows(rows *sql.Rows) ([]RawRow, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(cols))
	for i, c := range cols {
		key := normalizeColumn(c)
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}
	if _, ok := index[colName]; !ok {
		return nil, fmt.Errorf("missing required column %q (have %v)", colName, cols)
	}

	values := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}

	field := func(key string) string {
		if i, ok := index[key]; ok && values[i].Valid {
			return values[i].String
		}
		return ""
	}

	var out []RawRow
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		out = append(out, RawRow{
			Name:     field(colName),
			Address:  field(colAddress),
			Location: field(colLocation),
			Cuisines: field(colCuisines),
			Rate:     field(colRate),
			Cost:     field(colCost),
		})
	}
	return out, rows.Err()
}
