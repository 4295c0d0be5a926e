// First Class GenAI - Restaurant Recommendation Service
// Copyright 2026 Sourabh Sharma (sourabhsharmaaa)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sourabhsharmaaa/first-class-genai

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/sourabhsharmaaa/first-class-genai/docs" // registers the generated OpenAPI document
	"github.com/sourabhsharmaaa/first-class-genai/internal/api"
	"github.com/sourabhsharmaaa/first-class-genai/internal/composer"
	"github.com/sourabhsharmaaa/first-class-genai/internal/config"
	"github.com/sourabhsharmaaa/first-class-genai/internal/interpreter"
	"github.com/sourabhsharmaaa/first-class-genai/internal/llm"
	"github.com/sourabhsharmaaa/first-class-genai/internal/logging"
	"github.com/sourabhsharmaaa/first-class-genai/internal/supervisor"
	"github.com/sourabhsharmaaa/first-class-genai/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("dataset_source", cfg.Dataset.Source).
		Str("llm_model", cfg.LLM.Model).
		Bool("llm_key_set", cfg.HasLLMKey()).
		Msg("Configuration loaded")

	if !cfg.HasLLMKey() {
		logging.Warn().Msg("No LLM API key set; queries will not be interpreted and recommendations fall back to a fixed message")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin; set CORS_ORIGINS for production")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	data, err := initDataset(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize dataset")
	}
	defer data.Close()

	client := llm.NewBreakerClient(llm.NewOpenAIClient(llm.Options{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}))

	interp := interpreter.New(client, cfg.Interpreter.CacheSize, cfg.Interpreter.CacheTTL)
	comp := composer.New(client, composer.Options{
		Temperature: &cfg.Composer.Temperature,
		MaxTokens:   cfg.Composer.MaxTokens,
	})

	handler := api.NewHandler(api.Dependencies{
		Store:          data.Store,
		Interpreter:    interp,
		Composer:       comp,
		RequestTimeout: cfg.Server.RequestTimeout,
	})
	router := api.NewRouter(handler, api.NewChiMiddlewareFromOrigins(cfg.Security.CORSOrigins))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if data.Provider != nil && cfg.Dataset.RefreshInterval > 0 {
		tree.AddDataService(services.NewDatasetRefreshService(data.Provider, cfg.Dataset.RefreshInterval))
		logging.Info().Dur("interval", cfg.Dataset.RefreshInterval).Msg("Dataset refresh service added")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Server stopped")
}
