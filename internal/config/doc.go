// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

/*
Package config loads and validates service configuration.

# Configuration Sources

Layers are applied in order, later layers overriding earlier ones:

  - Built-in defaults
  - YAML file: CONFIG_PATH, else ./config.yaml, ./config.yml
  - .env file in the working directory (never overrides real env vars)
  - Environment variables

# Environment Variables

	HTTP_PORT                 listen port (default: 8000)
	HTTP_HOST                 listen host (default: 0.0.0.0)
	REQUEST_TIMEOUT           per /recommend deadline (default: 45s)
	SHUTDOWN_TIMEOUT          graceful shutdown budget (default: 10s)
	DATASET_SOURCE            csv, postgres or live (default: csv)
	DATASET_PATH              CSV path (default: data/zomato.csv)
	DATASET_REFRESH_INTERVAL  snapshot reload period, 0 disables (default: 0)
	DATABASE_URL              Postgres DSN, required for postgres and live
	GROQ_API_KEY              LLM API key; empty degrades every LLM call
	LLM_BASE_URL              OpenAI-compatible base URL (default: Groq)
	LLM_MODEL                 model name (default: llama-3.1-8b-instant)
	LLM_TIMEOUT               per-call timeout (default: 20s)
	INTERPRETER_CACHE_SIZE    memoized interpretations (default: 100)
	CORS_ORIGINS              comma-separated origins (default: *)
	LOG_LEVEL                 trace, debug, info, warn, error (default: info)
	LOG_FORMAT                json or console (default: json)

# YAML Example

	server:
	  port: 8000
	dataset:
	  source: postgres
	  refresh_interval: 1h
	postgres:
	  url: postgres://user:pass@db:5432/restaurants?sslmode=disable
	llm:
	  model: llama-3.1-8b-instant
*/
package config
