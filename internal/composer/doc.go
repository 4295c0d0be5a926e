// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

// Package composer asks the LLM to write recommendations for a filtered set
// of restaurants and validates what comes back.
//
// Compose never fails. An empty record set yields a canned "broaden your
// search" answer without calling the LLM. An LLM error or an answer that
// cannot be parsed yields the empty fallback {"restaurants":[]} and a
// degradation reason. Entries that name restaurants outside the grounding
// set are dropped, and missing fields are filled from the matching record.
package composer
