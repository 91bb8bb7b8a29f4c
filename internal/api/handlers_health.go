// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package api

import (
	"context"
	"net/http"
	"time"
)

// HealthLive handles GET /api/v1/health/live. The process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "alive"})
}

// HealthReady handles GET /api/v1/health/ready. Ready means the database
// answers a ping within a short deadline.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		rw.Error(http.StatusServiceUnavailable, ErrCodeInternalError, "database not ready")
		return
	}
	rw.Success(map[string]string{"status": "ready"})
}
