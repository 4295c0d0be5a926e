// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

// Package api is the HTTP surface of the recommendation service.
//
// Routes (also mounted under /api):
//
//	POST /recommend     filter, rank and compose recommendations
//	GET  /locations     distinct locations
//	GET  /cuisines      distinct cuisine tokens
//	GET  /health        readiness of the dataset or database
//	GET  /health/live   process liveness
//	GET  /metrics       Prometheus metrics
//	GET  /swagger/*     OpenAPI document and UI, generated by swag from the
//	                    handler annotations (go generate ./cmd/server)
//
// Successful responses are plain JSON objects. Failures use the APIResponse
// envelope with a machine-readable code:
//
//	400 BAD_REQUEST          body is not a JSON object
//	400 VALIDATION_FAILED    a field breaks a validation rule
//	503 DATASET_UNAVAILABLE  no snapshot loaded or the database query failed
//	500 FILTER_ERROR         the filter stage rejected the merged preferences
//	500 INTERNAL_ERROR       anything else
//
// LLM failures never fail a request: /recommend answers 200 with a fallback
// recommendation and a note in the error field.
package api
