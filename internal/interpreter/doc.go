// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

// Package interpreter turns a free-text restaurant search into filter
// preferences by asking the LLM for a JSON object.
//
// Results are memoized by exact query string in a bounded LRU cache and
// concurrent misses for the same query share one upstream call. Failures
// are never cached: the caller gets empty preferences plus the error, and
// is expected to carry on with the explicit request fields alone.
package interpreter
