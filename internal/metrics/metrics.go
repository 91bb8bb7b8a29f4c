// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Comparison cache efficiency (hits, misses, bursts)
// - DuckDB facet query performance
// - Discovery enrichment worker pool
// - Insight/search upstream calls
// - API endpoint latency and throughput

var (
	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comparison_cache_hits_total",
			Help: "Total number of comparison cache hits",
		},
		[]string{"backend"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comparison_cache_misses_total",
			Help: "Total number of comparison cache misses",
		},
		[]string{"backend"},
	)

	CacheBursts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "comparison_cache_bursts_total",
			Help: "Total number of explicit cache burst refreshes",
		},
	)

	CacheStoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comparison_cache_store_errors_total",
			Help: "Cache store failures that fell back to direct compute",
		},
		[]string{"backend", "op"},
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// Discovery Metrics
	DiscoveryPairsFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_pairs_fetched_total",
			Help: "Raw comparison pairs fetched before dedup, by comparison type",
		},
		[]string{"comparison_type"},
	)

	DiscoveryEnrichmentFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "discovery_enrichment_failures_total",
			Help: "Pair enrichment attempts that degraded to defaults",
		},
	)

	EnrichmentPoolSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "discovery_enrichment_pool_size",
			Help: "Worker pool size used for the most recent enrichment run",
		},
	)

	// Upstream Metrics
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of upstream HTTP calls (insight, search index)",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"service"},
	)

	UpstreamRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_request_errors_total",
			Help: "Upstream HTTP call failures, by service and reason",
		},
		[]string{"service", "reason"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)
)

// RecordDBQuery observes a database query duration.
func RecordDBQuery(operation, table string, start time.Time) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// RecordDBError increments the query error counter.
func RecordDBError(operation, table string) {
	DBQueryErrors.WithLabelValues(operation, table).Inc()
}

// RecordAPIRequest records an API request with its status code and duration.
func RecordAPIRequest(method, endpoint string, statusCode int, start time.Time) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
}

// RecordUpstream observes an upstream call; reason is empty on success.
func RecordUpstream(service string, start time.Time, reason string) {
	UpstreamRequestDuration.WithLabelValues(service).Observe(time.Since(start).Seconds())
	if reason != "" {
		UpstreamRequestErrors.WithLabelValues(service, reason).Inc()
	}
}
