// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

/*
Package metrics defines the Prometheus collectors exported on /metrics.

All collectors are registered on the default registry through promauto at
package init, so importing the package is enough to expose them.

# Metric Families

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

Recommendation pipeline:
  - recommendations_total{outcome}
  - recommendation_candidates

LLM and breaker:
  - llm_requests_total{operation,status}
  - llm_request_duration_seconds{operation}
  - circuit_breaker_state{name}
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

Cache:
  - cache_hits_total{cache_type}, cache_misses_total{cache_type}, cache_entries{cache_type}

Dataset and SQL:
  - dataset_records, dataset_load_duration_seconds, dataset_load_errors_total{source}
  - dataset_last_load_timestamp_seconds
  - db_query_duration_seconds{operation,table}, db_query_errors_total{operation,table}

# Example Queries

	# p95 recommendation latency
	histogram_quantile(0.95, rate(api_request_duration_seconds_bucket{endpoint="/recommend"}[5m]))

	# share of degraded recommendations
	rate(recommendations_total{outcome="degraded"}[5m]) / rate(recommendations_total[5m])

	# interpreter cache hit ratio
	rate(cache_hits_total{cache_type="interpreter"}[5m])
	  / (rate(cache_hits_total{cache_type="interpreter"}[5m]) + rate(cache_misses_total{cache_type="interpreter"}[5m]))
*/
package metrics
