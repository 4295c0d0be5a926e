// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/sourabhsharmaaa/first-class-genai/internal/filter"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 64 << 10

// RecommendRequest is the POST /recommend body. Every field is optional.
type RecommendRequest struct {
	SearchQuery *string  `json:"search_query" validate:"omitempty,max=500"`
	Location    *string  `json:"location" validate:"omitempty,max=200"`
	Cuisine     *string  `json:"cuisine" validate:"omitempty,max=200"`
	MaxPrice    *float64 `json:"max_price" validate:"omitempty,finite"`
	MinRating   *float64 `json:"min_rating" validate:"omitempty,finite"`
	MaxRating   *float64 `json:"max_rating" validate:"omitempty,finite"`
	TopN        *int     `json:"top_n" validate:"omitempty,lte=100"`
}

// withDefaults fills top_n when absent.
func (req RecommendRequest) withDefaults() RecommendRequest {
	if req.TopN == nil {
		n := filter.DefaultTopN
		req.TopN = &n
	}
	return req
}

// query returns the free-text search, or "" when absent.
func (req RecommendRequest) query() string {
	if req.SearchQuery == nil {
		return ""
	}
	return *req.SearchQuery
}

// Preferences returns the explicit constraints of the request.
func (req RecommendRequest) Preferences() filter.Preferences {
	req = req.withDefaults()
	p := filter.Preferences{
		MaxPrice:  req.MaxPrice,
		MinRating: req.MinRating,
		MaxRating: req.MaxRating,
		TopN:      *req.TopN,
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Cuisine != nil {
		p.Cuisine = *req.Cuisine
	}
	return p
}

var errEmptyBody = errors.New("request body must be a JSON object")

// decodeJSONBody reads a single JSON object from r into dst.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		}
		return fmt.Errorf("read request body: %w", err)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return errEmptyBody
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
