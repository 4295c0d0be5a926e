// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sourabhsharmaaa/first-class-genai/internal/composer"
	"github.com/sourabhsharmaaa/first-class-genai/internal/dataset"
	"github.com/sourabhsharmaaa/first-class-genai/internal/filter"
	"github.com/sourabhsharmaaa/first-class-genai/internal/interpreter"
	"github.com/sourabhsharmaaa/first-class-genai/internal/logging"
	"github.com/sourabhsharmaaa/first-class-genai/internal/metrics"
	"github.com/sourabhsharmaaa/first-class-genai/internal/validation"
)

// RecommendResponse is the POST /recommend body.
type RecommendResponse struct {
	// Query echoes the request with defaults applied.
	Query              RecommendRequest           `json:"query"`
	RestaurantCount    int                        `json:"restaurant_count"`
	RecommendationText string                     `json:"recommendation_text"`
	Recommendation     composer.Recommendation    `json:"recommendation"`
	ParsedFilters      *interpreter.ParsedFilters `json:"parsed_filters,omitempty"`

	// Error notes a degraded answer. The status stays 200.
	Error string `json:"error,omitempty"`
}

// Recommend handles POST /recommend.
//
// The explicit fields are merged with those extracted from search_query,
// candidates are fetched from the store, filtered and ranked, then handed
// to the composer. Interpreter and composer failures degrade the answer
// but never fail the request.
//
// @Summary Recommend restaurants
// @Description Merges explicit filters with those extracted from search_query, filters and ranks the dataset, and asks the LLM to explain the top matches. LLM failures return 200 with a fallback and a note in error.
// @Tags Recommend
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Search query and explicit filters; every field is optional"
// @Success 200 {object} RecommendResponse "Recommendation, possibly degraded"
// @Failure 400 {object} APIResponse "Body is not a JSON object or a field fails validation"
// @Failure 500 {object} APIResponse "Filter stage failed"
// @Failure 503 {object} APIResponse "Dataset not loaded or database unavailable"
// @Router /recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RecommendRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationFailed(apiErr.Message, apiErr.Details)
		return
	}
	req = req.withDefaults()

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	var notes []string
	prefs := req.Preferences()
	var parsed *interpreter.ParsedFilters

	if q := req.query(); strings.TrimSpace(q) != "" && h.interpreter != nil {
		extracted, err := h.interpreter.Parse(ctx, q)
		if err != nil {
			notes = append(notes, "query interpretation unavailable: "+err.Error())
		}
		filters := interpreter.Filters(extracted)
		parsed = &filters
		prefs = filter.Merge(prefs, extracted)
	}

	candidates, err := h.store.Candidates(ctx, prefs.Query())
	if err != nil {
		h.respondStoreError(ctx, rw, err)
		metrics.RecordRecommendation("error", 0)
		return
	}

	results, err := filter.Apply(candidates, prefs)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Filter stage failed")
		rw.Error(http.StatusInternalServerError, ErrCodeFilterError, "Error in data retrieval: "+err.Error())
		metrics.RecordRecommendation("error", len(candidates))
		return
	}

	result := h.composer.Compose(ctx, results, prefs)
	if result.Degraded != "" {
		notes = append(notes, result.Degraded)
	}

	outcome := "ok"
	switch {
	case len(results) == 0:
		outcome = "no_match"
	case len(notes) > 0:
		outcome = "degraded"
	}
	metrics.RecordRecommendation(outcome, len(candidates))

	logging.Ctx(ctx).Info().
		Int("candidates", len(candidates)).
		Int("results", len(results)).
		Str("outcome", outcome).
		Msg("Recommendation served")

	rw.OK(RecommendResponse{
		Query:              req,
		RestaurantCount:    len(results),
		RecommendationText: result.Text,
		Recommendation:     result.Recommendation,
		ParsedFilters:      parsed,
		Error:              strings.Join(notes, "; "),
	})
}

func (h *Handler) respondStoreError(ctx context.Context, rw *ResponseWriter, err error) {
	switch {
	case errors.Is(err, dataset.ErrNotLoaded), errors.Is(err, dataset.ErrUnavailable):
		logging.Ctx(ctx).Warn().Err(err).Msg("Dataset unavailable")
		rw.DatasetUnavailable("Dataset unavailable: " + err.Error())
	default:
		logging.Ctx(ctx).Error().Err(err).Msg("Dataset query failed")
		rw.InternalError("Dataset query failed")
	}
}
