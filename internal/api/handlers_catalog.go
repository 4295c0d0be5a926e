// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package api

import "net/http"

// LocationsResponse is the GET /locations body.
type LocationsResponse struct {
	Locations []string `json:"locations"`
}

// CuisinesResponse is the GET /cuisines body.
type CuisinesResponse struct {
	Cuisines []string `json:"cuisines"`
}

// Locations handles GET /locations.
//
// @Summary List locations
// @Description Distinct restaurant locations, sorted.
// @Tags Catalog
// @Produce json
// @Success 200 {object} LocationsResponse
// @Failure 503 {object} APIResponse "Dataset not loaded or database unavailable"
// @Router /locations [get]
func (h *Handler) Locations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	locations, err := h.store.Locations(r.Context())
	if err != nil {
		h.respondStoreError(r.Context(), rw, err)
		return
	}
	if locations == nil {
		locations = []string{}
	}
	rw.OK(LocationsResponse{Locations: locations})
}

// Cuisines handles GET /cuisines.
//
// @Summary List cuisines
// @Description Distinct cuisine tokens split from every record, sorted.
// @Tags Catalog
// @Produce json
// @Success 200 {object} CuisinesResponse
// @Failure 503 {object} APIResponse "Dataset not loaded or database unavailable"
// @Router /cuisines [get]
func (h *Handler) Cuisines(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	cuisines, err := h.store.Cuisines(r.Context())
	if err != nil {
		h.respondStoreError(r.Context(), rw, err)
		return
	}
	if cuisines == nil {
		cuisines = []string{}
	}
	rw.OK(CuisinesResponse{Cuisines: cuisines})
}
