// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package api

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/collegium/collegium/internal/logging"
	"github.com/collegium/collegium/internal/metrics"
)

// RateLimitConfig defines rate limit parameters for an endpoint group.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Comparison endpoints are read-heavy and cached, so the limit is
// permissive; health gets its own bucket so monitors never starve users.
var (
	RateLimitCompare = RateLimitConfig{Requests: 600, Window: time.Minute}
	RateLimitHealth  = RateLimitConfig{Requests: 1000, Window: time.Minute}
)

// RateLimit returns an IP-keyed limiter for the given config.
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	return httprate.LimitByIP(cfg.Requests, cfg.Window)
}

// CORS returns the CORS middleware. Origins default to empty so wildcard
// access always requires explicit configuration.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         86400,
	})
}

// RequestIDWithLogging attaches a request id to the context so every log
// line and response envelope for the request can be correlated.
func RequestIDWithLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		chiRequestID := chimiddleware.RequestID(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = logging.GenerateRequestID()
				r.Header.Set("X-Request-ID", requestID)
			}
			ctx := logging.ContextWithRequestID(r.Context(), requestID)
			chiRequestID.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Instrument records request counts and latency per route pattern.
func Instrument(endpoint string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)
			metrics.RecordAPIRequest(r.Method, endpoint, ww.statusCode, start)
		})
	}
}

// statusResponseWriter wraps http.ResponseWriter to capture the status code.
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
