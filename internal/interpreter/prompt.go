// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package interpreter

import "fmt"

const systemPrompt = "You are a specialized query parser. You only output JSON."

const userPromptTemplate = `Parse the following user search query for restaurant recommendations into a structured JSON object.
Query: "%s"

Extract:
1. location (string, e.g., "Indiranagar")
2. cuisine (string, e.g., "Burger")
3. max_price (number, e.g., 2000)
4. min_rating (number, e.g., 4.0) - Use this if user says "above 4 stars" or "4 stars and up"
5. max_rating (number, e.g., 4.0) - Use this if user says "under 4 stars" or "less than 4 stars"

Rules:
- If a field is not mentioned, return null for that field.
- Return ONLY valid JSON.
`

func buildPrompt(query string) string {
	return fmt.Sprintf(userPromptTemplate, query)
}
