// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package config

import (
	"fmt"
	"time"
)

// Dataset source modes.
const (
	// SourceCSV loads a local CSV file into an in-memory snapshot.
	SourceCSV = "csv"

	// SourcePostgres bulk-loads the restaurants table into an in-memory snapshot.
	SourcePostgres = "postgres"

	// SourceLive queries Postgres on every request.
	SourceLive = "live"
)

// Config holds all application configuration.
//
// Loading order (koanf v2):
//  1. Defaults from defaultConfig
//  2. Optional YAML file (CONFIG_PATH or ./config.yaml)
//  3. .env file, if present, merged into the process environment
//  4. Environment variables
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//	addr := cfg.Server.Addr()
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Dataset     DatasetConfig     `koanf:"dataset"`
	Postgres    PostgresConfig    `koanf:"postgres"`
	LLM         LLMConfig         `koanf:"llm"`
	Interpreter InterpreterConfig `koanf:"interpreter"`
	Composer    ComposerConfig    `koanf:"composer"`
	Security    SecurityConfig    `koanf:"security"`
	Logging     LoggingConfig     `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port int    `koanf:"port"`
	Host string `koanf:"host"`

	// Timeout bounds read and write on the http.Server.
	Timeout time.Duration `koanf:"timeout"`

	// RequestTimeout bounds a single /recommend call including both LLM calls.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatasetConfig selects where restaurant records come from.
type DatasetConfig struct {
	// Source is one of csv, postgres or live.
	Source string `koanf:"source"`

	// Path is the CSV file used in csv mode and by cmd/seed.
	Path string `koanf:"path"`

	// RefreshInterval reloads the snapshot periodically. Zero disables refresh.
	// Ignored in live mode.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

// PostgresConfig configures the hosted SQL store.
type PostgresConfig struct {
	URL          string `koanf:"url"`
	MaxOpenConns int    `koanf:"max_open_conns"`

	// CandidateLimit caps rows returned by a live pre-filter query.
	CandidateLimit int `koanf:"candidate_limit"`
}

// LLMConfig configures the OpenAI-compatible chat completion endpoint.
type LLMConfig struct {
	APIKey  string        `koanf:"api_key"`
	BaseURL string        `koanf:"base_url"`
	Model   string        `koanf:"model"`
	Timeout time.Duration `koanf:"timeout"`
}

// InterpreterConfig configures natural-language query parsing.
type InterpreterConfig struct {
	CacheSize int `koanf:"cache_size"`

	// CacheTTL expires memoized interpretations. Zero keeps them until evicted.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// ComposerConfig configures recommendation generation.
type ComposerConfig struct {
	Temperature float64 `koanf:"temperature"`
	MaxTokens   int     `koanf:"max_tokens"`
}

// SecurityConfig holds browser-facing settings.
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from all layers and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsSnapshot reports whether records are held in memory.
func (c *Config) IsSnapshot() bool {
	return c.Dataset.Source != SourceLive
}

// UsesPostgres reports whether a database connection is needed.
func (c *Config) UsesPostgres() bool {
	return c.Dataset.Source == SourcePostgres || c.Dataset.Source == SourceLive
}
