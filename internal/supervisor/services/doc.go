// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

/*
Package services adapts long-running components to suture.Service.

HTTPServerService turns http.Server's blocking ListenAndServe into a
context-aware Serve with graceful Shutdown. DatasetRefreshService reloads
the in-memory restaurant snapshot on a ticker.

Each wrapper implements fmt.Stringer so supervisor events name it.
*/
package services
