// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

/*
Package main runs the restaurant recommendation HTTP service.

The server answers /recommend by interpreting free-text queries with an
LLM, filtering restaurant records, and asking the LLM to write a ranked
recommendation grounded in those records. /locations and /cuisines feed the
UI dropdowns; /health reports dataset readiness.

# Supervision

	first-class-genai
	├── data-layer
	│   └── dataset-refresh (if DATASET_REFRESH_INTERVAL > 0, snapshot modes)
	└── api-layer
	    └── http-server

# Startup

 1. Configuration: koanf over defaults, config.yaml, .env and environment
 2. Logging: zerolog, json or console
 3. Dataset: csv or postgres snapshot, or live Postgres
 4. LLM client: OpenAI-compatible chat completions behind a circuit breaker
 5. Interpreter and composer
 6. Chi router and supervisor tree

A snapshot that fails to load on startup is fatal. In live mode the
database is only pinged; a later outage surfaces as 503 per request.

# Example

	export GROQ_API_KEY=gsk_...
	export DATASET_SOURCE=csv
	export DATASET_PATH=data/zomato.csv
	./server

The server stops on SIGINT or SIGTERM, giving in-flight requests
SHUTDOWN_TIMEOUT to finish.
*/
package main
