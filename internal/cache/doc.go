// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

// Package cache provides the bounded in-memory LRU used to memoize query
// interpretations.
//
// The cache is process-local and never persisted. Keys are normalized query
// strings; values are whatever the caller stores (the interpreter stores
// extracted preferences).
//
//	c := cache.NewLRUCache[filter.Preferences](100, 0)
//	c.Add("cheap italian", prefs)
//	if p, ok := c.Get("cheap italian"); ok { ... }
package cache
