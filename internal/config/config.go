// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

// Package config loads application configuration via Koanf v2 with layered
// sources (highest priority wins): environment variables, config.yaml,
// built-in defaults.
package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Cache    CacheConfig    `koanf:"cache"`
	Insight  InsightConfig  `koanf:"insight"`
	Search   SearchConfig   `koanf:"search"`
	Compare  CompareConfig  `koanf:"compare"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	// RateLimit is requests per minute per client for comparison endpoints.
	// Cached analytics reads are cheap, so the default is permissive.
	RateLimit int `koanf:"rate_limit"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	Path         string        `koanf:"path"`
	Threads      int           `koanf:"threads"`
	MaxMemory    string        `koanf:"max_memory"`
	QueryTimeout time.Duration `koanf:"query_timeout"`
}

// CacheConfig holds cache store settings.
type CacheConfig struct {
	// Backend selects the store implementation: memory or badger.
	Backend string `koanf:"backend"`
	// Path is the on-disk location for the badger backend.
	Path string `koanf:"path"`
	// DefaultTTL bounds staleness for cached comparison payloads.
	DefaultTTL time.Duration `koanf:"default_ttl"`
}

// InsightConfig holds settings for the external NLG insight service.
type InsightConfig struct {
	Enabled       bool          `koanf:"enabled"`
	URL           string        `koanf:"url"`
	Timeout       time.Duration `koanf:"timeout"`
	RetryAttempts int           `koanf:"retry_attempts"`
	RetryDelay    time.Duration `koanf:"retry_delay"`
	// RateLimitRPS caps outbound calls to the insight service.
	RateLimitRPS float64 `koanf:"rate_limit_rps"`
}

// SearchConfig holds settings for the amenity document-search index.
type SearchConfig struct {
	Enabled bool          `koanf:"enabled"`
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

// CompareConfig holds comparison engine settings.
type CompareConfig struct {
	// CurrentYear anchors relative year math. Zero means "resolve from the
	// wall clock at load time"; tests pin it for determinism.
	CurrentYear int `koanf:"current_year"`
	// SeriesYears is the fixed span of the multi-year placement view.
	SeriesYears int `koanf:"series_years"`
	// DiscoveryFetchLimit is how many raw pairs to fetch before dedup.
	DiscoveryFetchLimit int `koanf:"discovery_fetch_limit"`
	// DiscoveryResultLimit is the post-enrichment truncation size.
	DiscoveryResultLimit int `koanf:"discovery_result_limit"`
	// EnrichmentMaxWorkers bounds the pair enrichment pool.
	EnrichmentMaxWorkers int `koanf:"enrichment_max_workers"`
	// Amenities is the fixed list of amenity terms counted per college.
	Amenities []string `koanf:"amenities"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// defaultConfig returns a Config with all defaults applied. Defaults load
// first and are overridden by the config file, then environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8460,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimit:       1000,
		},
		Database: DatabaseConfig{
			Path:         "data/collegium.db",
			Threads:      0, // 0 = runtime.NumCPU()
			MaxMemory:    "1GB",
			QueryTimeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			Backend:    "memory",
			Path:       "data/cache",
			DefaultTTL: 6 * time.Hour,
		},
		Insight: InsightConfig{
			Enabled:       false,
			URL:           "",
			Timeout:       5 * time.Second,
			RetryAttempts: 3,
			RetryDelay:    500 * time.Millisecond,
			RateLimitRPS:  5,
		},
		Search: SearchConfig{
			Enabled: false,
			URL:     "",
			Timeout: 3 * time.Second,
		},
		Compare: CompareConfig{
			CurrentYear:          0,
			SeriesYears:          5,
			DiscoveryFetchLimit:  20,
			DiscoveryResultLimit: 10,
			EnrichmentMaxWorkers: 32,
			Amenities: []string{
				"library", "hostel", "sports_complex", "cafeteria",
				"laboratory", "auditorium", "medical_center", "wifi",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
