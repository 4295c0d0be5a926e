// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package services

import (
	"context"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/sourabhsharmaaa/first-class-genai/internal/logging"
)

// Reloader is satisfied by *dataset.Provider.
type Reloader interface {
	Load(ctx context.Context) error
}

// DatasetRefreshService reloads the restaurant snapshot on a fixed interval.
//
// A failed reload is logged and the previous snapshot keeps serving; the
// loop does not return so the supervisor never restarts it for a transient
// source error.
type DatasetRefreshService struct {
	reloader Reloader
	interval time.Duration
	name     string
}

// NewDatasetRefreshService creates the service. interval must be positive
// or Serve exits with suture.ErrDoNotRestart.
func NewDatasetRefreshService(reloader Reloader, interval time.Duration) *DatasetRefreshService {
	return &DatasetRefreshService{
		reloader: reloader,
		interval: interval,
		name:     "dataset-refresh",
	}
}

// Serve implements suture.Service.
func (s *DatasetRefreshService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		return suture.ErrDoNotRestart
	}

	// Reload logs, including the provider's, carry the service name.
	ctx = logging.ContextWithLogger(ctx, logging.WithComponent(s.name))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *DatasetRefreshService) refresh(ctx context.Context) {
	loadCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	if err := s.reloader.Load(loadCtx); err != nil {
		if ctx.Err() != nil {
			return
		}
		logging.Ctx(ctx).Warn().Err(err).Msg("Dataset refresh failed; keeping previous snapshot")
	}
}

// String names the service in supervisor logs.
func (s *DatasetRefreshService) String() string {
	return s.name
}
