// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/sourabhsharmaaa/first-class-genai/internal/logging"
	"github.com/sourabhsharmaaa/first-class-genai/internal/metrics"
)

// TableName is the Postgres table holding uploaded restaurants.
const TableName = "restaurants"

// tableColumns are the upload-form column names, in RawRow order.
var tableColumns = []string{"name", "address", "location", "cuisines", "rate", "approx_costfor_two_people"}

const createTableSQL = `CREATE TABLE IF NOT EXISTS restaurants (
	name TEXT,
	address TEXT,
	location TEXT,
	cuisines TEXT,
	rate TEXT,
	approx_costfor_two_people TEXT
)`

// selectColumns casts everything to text so numeric columns created by other
// uploaders scan the same way.
const selectColumns = `COALESCE(name::text, ''), COALESCE(address::text, ''), COALESCE(location::text, ''),
	COALESCE(cuisines::text, ''), COALESCE(rate::text, ''), COALESCE(approx_costfor_two_people::text, '')`

// PostgresConfig configures a PostgresStore.
type PostgresConfig struct {
	URL          string
	MaxOpenConns int

	// CandidateLimit caps rows fetched per live query.
	CandidateLimit int
}

// PostgresStore reads restaurants from Postgres. It serves live queries as
// a Store and bulk reads as a Loader for snapshot mode.
type PostgresStore struct {
	db    *sql.DB
	limit int
}

// OpenPostgres connects and pings the database.
func OpenPostgres(ctx context.Context, cfg PostgresConfig) (*PostgresStore, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("postgres url not set")
	}

	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 10
	}
	// Hosted Postgres (Supabase, Neon) suspends idle compute; keep no idle conns.
	db.SetMaxIdleConns(0)
	db.SetMaxOpenConns(maxOpen)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	limit := cfg.CandidateLimit
	if limit <= 0 {
		limit = 500
	}

	logging.Info().Int("max_open_conns", maxOpen).Int("candidate_limit", limit).Msg("Connected to Postgres")
	return &PostgresStore{db: db, limit: limit}, nil
}

// NewPostgresStoreFromDB wraps an existing handle.
func NewPostgresStoreFromDB(db *sql.DB, candidateLimit int) *PostgresStore {
	if candidateLimit <= 0 {
		candidateLimit = 500
	}
	return &PostgresStore{db: db, limit: candidateLimit}
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// buildCandidateQuery returns the pre-filter SQL and its arguments.
func buildCandidateQuery(q Query, limit int) (string, []any) {
	var (
		b    strings.Builder
		args []any
	)
	b.WriteString("SELECT ")
	b.WriteString(selectColumns)
	b.WriteString(" FROM restaurants WHERE 1=1")

	if loc := strings.TrimSpace(q.Location); loc != "" {
		args = append(args, "%"+escapeLike(loc)+"%")
		fmt.Fprintf(&b, " AND location ILIKE $%d", len(args))
	}
	if c := strings.TrimSpace(q.Cuisine); c != "" {
		args = append(args, "%"+escapeLike(c)+"%")
		fmt.Fprintf(&b, " AND cuisines ILIKE $%d", len(args))
	}

	args = append(args, limit)
	fmt.Fprintf(&b, " LIMIT $%d", len(args))
	return b.String(), args
}

// Candidates runs the ILIKE pre-filter. Numeric filters, ranking and
// deduplication happen in the filter engine.
func (s *PostgresStore) Candidates(ctx context.Context, q Query) ([]Restaurant, error) {
	query, args := buildCandidateQuery(q, s.limit)

	start := time.Now()
	rows, err := s.queryRows(ctx, query, args...)
	metrics.RecordDBQuery("candidates", TableName, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return NormalizeAll(rows), nil
}

// Locations implements Store.
func (s *PostgresStore) Locations(ctx context.Context) ([]string, error) {
	values, err := s.distinct(ctx, "locations", "location")
	if err != nil {
		return nil, err
	}
	records := make([]Restaurant, len(values))
	for i, v := range values {
		records[i].Location = v
	}
	return DistinctLocations(records), nil
}

// Cuisines implements Store.
func (s *PostgresStore) Cuisines(ctx context.Context) ([]string, error) {
	values, err := s.distinct(ctx, "cuisines", "cuisines")
	if err != nil {
		return nil, err
	}
	records := make([]Restaurant, len(values))
	for i, v := range values {
		records[i].Cuisines = NormalizeCuisines(v)
	}
	return DistinctCuisines(records), nil
}

func (s *PostgresStore) distinct(ctx context.Context, op, column string) ([]string, error) {
	// column is one of two constants above, never user input.
	query := fmt.Sprintf("SELECT DISTINCT %s::text FROM restaurants WHERE %s IS NOT NULL", column, column)

	start := time.Now()
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		metrics.RecordDBQuery(op, TableName, time.Since(start), err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer closeQuietly(rows)

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			metrics.RecordDBQuery(op, TableName, time.Since(start), err)
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		out = append(out, v)
	}
	err = rows.Err()
	metrics.RecordDBQuery(op, TableName, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return out, nil
}

// Status pings the database.
func (s *PostgresStore) Status(ctx context.Context) Status {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	st := Status{Mode: "live"}
	if err := s.db.PingContext(pingCtx); err != nil {
		st.Err = err
		return st
	}
	st.Ready = true
	return st
}

// Name implements Loader.
func (s *PostgresStore) Name() string { return "postgres" }

// Load reads the whole table for snapshot mode.
func (s *PostgresStore) Load(ctx context.Context) ([]RawRow, error) {
	start := time.Now()
	rows, err := s.queryRows(ctx, "SELECT "+selectColumns+" FROM restaurants")
	metrics.RecordDBQuery("load_all", TableName, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return rows, nil
}

func (s *PostgresStore) queryRows(ctx context.Context, query string, args ...any) ([]RawRow, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(rows)

	var out []RawRow
	for rows.Next() {
		var r RawRow
		if err := rows.Scan(&r.Name, &r.Address, &r.Location, &r.Cuisines, &r.Rate, &r.Cost); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Seed replaces the contents of the restaurants table with rows using COPY.
// The table is created when missing. It returns the number of rows copied.
func (s *PostgresStore) Seed(ctx context.Context, rows []RawRow) (n int, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("seed", TableName, time.Since(start), err) }()

	if _, err = s.db.ExecContext(ctx, createTableSQL); err != nil {
		return 0, fmt.Errorf("failed to create table: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "TRUNCATE restaurants"); err != nil {
		return 0, fmt.Errorf("failed to truncate table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(TableName, tableColumns...))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare copy: %w", err)
	}

	for i := range rows {
		r := &rows[i]
		if _, err = stmt.ExecContext(ctx, r.Name, r.Address, r.Location, r.Cuisines, r.Rate, r.Cost); err != nil {
			closeQuietly(stmt)
			return 0, fmt.Errorf("failed to copy row %d: %w", i, err)
		}
	}
	// Flush buffered rows.
	if _, err = stmt.ExecContext(ctx); err != nil {
		closeQuietly(stmt)
		return 0, fmt.Errorf("failed to flush copy: %w", err)
	}
	if err = stmt.Close(); err != nil {
		return 0, fmt.Errorf("failed to close copy: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return len(rows), nil
}
