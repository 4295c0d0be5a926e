// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

// Package logging provides the zerolog-based structured logger used across the service.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("source", "csv").Int("records", n).Msg("Dataset loaded")
//	logging.Ctx(ctx).Warn().Err(err).Msg("LLM call failed, degrading")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Request Context
//
// The HTTP middleware stores a request ID and a short correlation ID in the
// request context. Ctx(ctx) returns a logger that carries both, so every line
// logged while serving a request can be joined back to it.
//
// # slog Bridge
//
// NewSlogLogger returns an *slog.Logger whose records are written by zerolog.
// The supervisor tree uses it for sutureslog event hooks.
//
// Always terminate event chains with Msg or Send; an unterminated chain is
// never written.
package logging
