// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

var validSources = map[string]bool{
	SourceCSV:      true,
	SourcePostgres: true,
	SourceLive:     true,
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDataset(); err != nil {
		return err
	}
	if err := c.validatePostgres(); err != nil {
		return err
	}
	if err := c.validateLLM(); err != nil {
		return err
	}
	if err := c.validateComposer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateDataset() error {
	c.Dataset.Source = strings.ToLower(strings.TrimSpace(c.Dataset.Source))
	if !validSources[c.Dataset.Source] {
		return fmt.Errorf("DATASET_SOURCE must be one of: csv, postgres, live, got %q", c.Dataset.Source)
	}
	if c.Dataset.Source == SourceCSV && c.Dataset.Path == "" {
		return fmt.Errorf("DATASET_PATH is required when DATASET_SOURCE=csv")
	}
	if c.Dataset.RefreshInterval < 0 {
		return fmt.Errorf("DATASET_REFRESH_INTERVAL must not be negative")
	}
	return nil
}

func (c *Config) validatePostgres() error {
	if !c.UsesPostgres() {
		return nil
	}
	if c.Postgres.URL == "" {
		return fmt.Errorf("DATABASE_URL is required when DATASET_SOURCE=%s", c.Dataset.Source)
	}
	if err := validateDatabaseURL(c.Postgres.URL); err != nil {
		return fmt.Errorf("DATABASE_URL is invalid: %w", err)
	}
	if c.Postgres.CandidateLimit <= 0 {
		return fmt.Errorf("DATABASE_CANDIDATE_LIMIT must be positive")
	}
	return nil
}

// validateLLM does not require an API key. A missing key degrades every
// request instead of preventing startup.
func (c *Config) validateLLM() error {
	if c.LLM.BaseURL != "" {
		if err := validateHTTPURL(c.LLM.BaseURL, "LLM_BASE_URL"); err != nil {
			return err
		}
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("LLM_MODEL must not be empty")
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateComposer() error {
	if c.Composer.Temperature < 0 || c.Composer.Temperature > 2 {
		return fmt.Errorf("COMPOSER_TEMPERATURE must be between 0 and 2")
	}
	if c.Composer.MaxTokens <= 0 {
		return fmt.Errorf("COMPOSER_MAX_TOKENS must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// HasLLMKey reports whether an API key is configured.
func (c *Config) HasLLMKey() bool {
	return strings.TrimSpace(c.LLM.APIKey) != ""
}

// ShouldWarnAboutCORS reports a wildcard origin.
func (c *Config) ShouldWarnAboutCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
