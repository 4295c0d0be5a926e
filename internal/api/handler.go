// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package api

import (
	"context"
	"time"

	"github.com/sourabhsharmaaa/first-class-genai/internal/composer"
	"github.com/sourabhsharmaaa/first-class-genai/internal/dataset"
	"github.com/sourabhsharmaaa/first-class-genai/internal/filter"
)

// DefaultRequestTimeout bounds one /recommend request when none is configured.
const DefaultRequestTimeout = 45 * time.Second

// QueryInterpreter extracts preferences from a free-text query.
type QueryInterpreter interface {
	Parse(ctx context.Context, query string) (filter.Preferences, error)
}

// RecommendationComposer writes the recommendation for filtered records.
type RecommendationComposer interface {
	Compose(ctx context.Context, records []dataset.Restaurant, prefs filter.Preferences) composer.Result
}

// Dependencies are the collaborators of a Handler. Interpreter may be nil,
// in which case search_query is ignored.
type Dependencies struct {
	Store          dataset.Store
	Interpreter    QueryInterpreter
	Composer       RecommendationComposer
	RequestTimeout time.Duration
}

// Handler serves the HTTP endpoints.
type Handler struct {
	store          dataset.Store
	interpreter    QueryInterpreter
	composer       RecommendationComposer
	requestTimeout time.Duration
	startTime      time.Time
}

// NewHandler creates a Handler.
func NewHandler(deps Dependencies) *Handler {
	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Handler{
		store:          deps.Store,
		interpreter:    deps.Interpreter,
		composer:       deps.Composer,
		requestTimeout: timeout,
		startTime:      time.Now(),
	}
}
