// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package api

import (
	"net/http"
	"time"
)

// Health status values.
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

// HealthResponse is the GET /health body. DatasetLoaded is set in snapshot
// mode, DBConnected in live mode.
type HealthResponse struct {
	Status        string `json:"status"`
	DatasetLoaded *bool  `json:"dataset_loaded,omitempty"`
	DBConnected   *bool  `json:"db_connected,omitempty"`
}

// LivenessResponse is the GET /health/live body.
type LivenessResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime_seconds"`
}

// Health handles GET /health. It answers 503 when the store cannot serve.
//
// @Summary Readiness
// @Description Reports dataset_loaded in snapshot mode and db_connected in live mode.
// @Tags Core
// @Produce json
// @Success 200 {object} HealthResponse "Ready"
// @Failure 503 {object} HealthResponse "Degraded"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	st := h.store.Status(r.Context())

	resp := HealthResponse{Status: StatusOK}
	ready := st.Ready
	if st.Mode == "live" {
		resp.DBConnected = &ready
	} else {
		resp.DatasetLoaded = &ready
	}

	code := http.StatusOK
	if !ready {
		resp.Status = StatusDegraded
		code = http.StatusServiceUnavailable
	}
	NewResponseWriter(w, r).JSON(code, resp)
}

// HealthLive handles GET /health/live. It only reports that the process is up.
//
// @Summary Liveness
// @Tags Core
// @Produce json
// @Success 200 {object} LivenessResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).OK(LivenessResponse{
		Status: StatusOK,
		Uptime: time.Since(h.startTime).Seconds(),
	})
}
