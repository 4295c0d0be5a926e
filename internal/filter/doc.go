// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

// Package filter narrows restaurant records to a ranked, bounded result.
//
// Apply is pure: it takes a record slice and Preferences and returns at most
// TopN records sorted by rating, unique by name. Merge combines explicit
// request fields with fields extracted from a free-text query.
//
// The rating bounds are asymmetric: min_rating is inclusive, max_rating is
// exclusive. A request for min_rating=4 and max_rating=4.5 therefore returns
// 4.0 but not 4.5.
package filter
