// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

// Package main is the entry point for the Collegium server.
//
// Collegium serves college and course comparison analytics: rankings,
// placements, fees, demographics, reviews and facilities, aligned into
// positional slots and served through a cache-aside layer, plus discovery
// of the comparison pairs users request most often.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: environment variables and config.yaml (Koanf v2)
//  2. Database: DuckDB with the comparison schema
//  3. Cache store: in-memory TTL map or BadgerDB
//  4. Upstream clients: insight summarizer and amenity search index
//  5. Comparison service and discovery engine
//  6. HTTP server: chi REST API with prometheus metrics
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting connections, waits for in-flight requests up to the
// configured shutdown timeout, then closes the cache store and database.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/collegium/collegium/internal/api"
	"github.com/collegium/collegium/internal/cache"
	"github.com/collegium/collegium/internal/compare"
	"github.com/collegium/collegium/internal/config"
	"github.com/collegium/collegium/internal/database"
	"github.com/collegium/collegium/internal/insight"
	"github.com/collegium/collegium/internal/logging"
	"github.com/collegium/collegium/internal/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	logging.Info().
		Int("port", cfg.Server.Port).
		Str("cache_backend", cfg.Cache.Backend).
		Int("current_year", cfg.Compare.CurrentYear).
		Msg("Starting Collegium")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close database")
		}
	}()

	store, err := cache.NewStore(&cfg.Cache)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize cache store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close cache store")
		}
	}()

	var summarizer insight.Summarizer
	if cfg.Insight.Enabled {
		summarizer = insight.NewClient(&cfg.Insight)
		logging.Info().Str("url", cfg.Insight.URL).Msg("Insight client enabled")
	}

	var counter search.Counter
	if cfg.Search.Enabled {
		counter = search.NewClient(&cfg.Search)
		logging.Info().Str("url", cfg.Search.URL).Msg("Search index client enabled")
	}

	service := compare.NewService(db, store, summarizer, counter, &cfg.Compare, cfg.Cache.DefaultTTL)
	handler := api.NewHandler(service, db)
	router := api.NewRouter(handler, api.RouterConfig{
		CORSAllowedOrigins: cfg.Server.CORSOrigins,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case err := <-errCh:
		logging.Error().Err(err).Msg("HTTP server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown incomplete, forcing close")
		_ = server.Close()
	}

	logging.Info().Msg("Collegium stopped")
}
