// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig holds the router's middleware settings.
type RouterConfig struct {
	CORSAllowedOrigins []string
}

// NewRouter wires the chi router: request ids, real IP, panic recovery,
// CORS, rate limits and per-endpoint prometheus instrumentation.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(CORS(cfg.CORSAllowedOrigins))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(RateLimit(RateLimitHealth))
			r.Get("/health/live", h.HealthLive)
			r.Get("/health/ready", h.HealthReady)
		})

		r.Group(func(r chi.Router) {
			r.Use(RateLimit(RateLimitCompare))
			r.With(Instrument("/compare/rankings")).Get("/compare/rankings", h.CompareRankings)
			r.With(Instrument("/compare/placements")).Get("/compare/placements", h.ComparePlacements)
			r.With(Instrument("/compare/fees")).Get("/compare/fees", h.CompareFees)
			r.With(Instrument("/compare/demographics")).Get("/compare/demographics", h.CompareDemographics)
			r.With(Instrument("/compare/reviews")).Get("/compare/reviews", h.CompareReviews)
			r.With(Instrument("/compare/facilities")).Get("/compare/facilities", h.CompareFacilities)
			r.With(Instrument("/discovery/comparisons")).Get("/discovery/comparisons", h.DiscoverComparisons)
		})
	})

	return r
}
