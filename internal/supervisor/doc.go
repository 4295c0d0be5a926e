// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

/*
Package supervisor runs the service's long-lived goroutines under suture v4.

The tree has two layers:

	first-class-genai
	├── data-layer
	│   └── DatasetRefreshService (if DATASET_REFRESH_INTERVAL > 0)
	└── api-layer
	    └── HTTPServerService

Supervisor events (restarts, backoff, stop timeouts) are logged through
sutureslog, which writes to the slog bridge over zerolog:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	errCh := tree.ServeBackground(ctx)

Service wrappers live in the services subpackage.
*/
package supervisor
