// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

// Package middleware provides HTTP middleware shared by every route.
//
//   - RequestID: propagates or generates X-Request-ID and seeds the logging context
//   - PrometheusMetrics: request counts, latency and in-flight gauge labelled by route pattern
//   - AccessLog: one structured log line per request
//
// All middleware use the http.HandlerFunc wrapper form; the api package
// adapts them for chi.
package middleware
