// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/collegium/collegium/internal/compare"
	"github.com/collegium/collegium/internal/logging"
	"github.com/collegium/collegium/internal/models"
)

// Pinger reports database liveness for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds the dependencies for all HTTP handlers.
type Handler struct {
	service *compare.Service
	db      Pinger
}

// NewHandler creates the handler set.
func NewHandler(service *compare.Service, db Pinger) *Handler {
	return &Handler{service: service, db: db}
}

// respondError maps engine errors to the envelope: validation failures are
// 400, empty cohorts 404, everything else a logged 500.
func respondError(rw *ResponseWriter, r *http.Request, err error) {
	var verr *compare.ValidationError
	switch {
	case errors.As(err, &verr):
		rw.ValidationError(verr.Message, map[string]string{"field": verr.Field})
	case errors.Is(err, compare.ErrNoDataAvailable):
		rw.NoDataAvailable()
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).
			Msg("comparison request failed")
		rw.InternalError("comparison failed")
	}
}

// CompareRankings handles GET /api/v1/compare/rankings.
func (h *Handler) CompareRankings(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, err := parseComparisonRequest(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	result, err := h.service.CompareRankings(r.Context(), req)
	if err != nil {
		respondError(rw, r, err)
		return
	}
	rw.Success(result)
}

// ComparePlacements handles GET /api/v1/compare/placements.
func (h *Handler) ComparePlacements(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, err := parseComparisonRequest(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	result, err := h.service.ComparePlacements(r.Context(), req)
	if err != nil {
		respondError(rw, r, err)
		return
	}
	rw.Success(result)
}

// CompareFees handles GET /api/v1/compare/fees.
func (h *Handler) CompareFees(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, err := parseComparisonRequest(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	result, err := h.service.CompareFees(r.Context(), req)
	if err != nil {
		respondError(rw, r, err)
		return
	}
	rw.Success(result)
}

// CompareDemographics handles GET /api/v1/compare/demographics.
func (h *Handler) CompareDemographics(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, err := parseComparisonRequest(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	result, err := h.service.CompareDemographics(r.Context(), req)
	if err != nil {
		respondError(rw, r, err)
		return
	}
	rw.Success(result)
}

// CompareReviews handles GET /api/v1/compare/reviews.
func (h *Handler) CompareReviews(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, err := parseComparisonRequest(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	result, err := h.service.CompareReviews(r.Context(), req)
	if err != nil {
		respondError(rw, r, err)
		return
	}
	rw.Success(result)
}

// CompareFacilities handles GET /api/v1/compare/facilities.
func (h *Handler) CompareFacilities(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, err := parseComparisonRequest(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	result, err := h.service.CompareFacilities(r.Context(), req)
	if err != nil {
		respondError(rw, r, err)
		return
	}
	rw.Success(result)
}

// DiscoverComparisons handles GET /api/v1/discovery/comparisons.
// type=all fans out every discovery type concurrently.
func (h *Handler) DiscoverComparisons(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	typ, dctx, burst, err := parseDiscoveryRequest(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	if typ == models.CompareAll {
		results, err := h.service.DiscoverAllComparisons(r.Context(), dctx, burst)
		if err != nil {
			respondError(rw, r, err)
			return
		}
		rw.Success(results)
		return
	}

	pairs, err := h.service.DiscoverComparisons(r.Context(), typ, dctx, burst)
	if err != nil {
		respondError(rw, r, err)
		return
	}
	rw.Success(pairs)
}
