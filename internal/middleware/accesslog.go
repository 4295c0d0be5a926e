// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/sourabhsharmaaa/first-class-genai/internal/logging"
)

// AccessLog writes one log line per request. Server errors log at warn,
// health and metrics probes at debug, everything else at info.
func AccessLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next(rec, r)

		logger := logging.Ctx(r.Context())
		var event *zerolog.Event
		switch {
		case rec.statusCode >= http.StatusInternalServerError:
			event = logger.Warn()
		case isProbe(r.URL.Path):
			event = logger.Debug()
		default:
			event = logger.Info()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.statusCode).
			Int("bytes", rec.bytes).
			Str("remote_addr", r.RemoteAddr).
			Dur("duration", time.Since(start)).
			Msg("HTTP request")
	}
}

func isProbe(path string) bool {
	switch path {
	case "/health", "/health/live", "/metrics", "/api/health", "/api/health/live":
		return true
	}
	return false
}
