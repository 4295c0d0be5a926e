// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

// @title First Class GenAI API
// @version 1.0
// @description Restaurant recommendations over the Zomato Bangalore dataset.
// @description
// @description A free-text search_query is interpreted by an LLM into filters, merged with
// @description the explicit fields (explicit wins), applied to the restaurant records, and
// @description the top matches are handed back to the LLM to write the recommendation.
// @description
// @description ## Error Responses
// @description
// @description Failures use this envelope:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {"code": "VALIDATION_FAILED", "message": "...", "request_id": "..."},
// @description   "meta": {"timestamp": "2026-01-01T00:00:00Z", "duration_ms": 0}
// @description }
// @description ```
// @description LLM failures never fail /recommend; the answer degrades and the error field explains why.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/sourabhsharmaaa/first-class-genai/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Recommend
// @tag.description LLM-backed restaurant recommendations
//
// @tag.name Catalog
// @tag.description Distinct locations and cuisines for filter dropdowns
//
// @tag.name Core
// @tag.description Health checks

//go:generate swag init --dir ../../ --generalInfo cmd/server/docs.go --output ../../docs --parseInternal

package main
