// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := defaultConfig()
	cfg.Compare.CurrentYear = 2026
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Server.Port != 8460 {
		t.Errorf("expected default port 8460, got %d", cfg.Server.Port)
	}
	if cfg.Cache.Backend != "memory" {
		t.Errorf("expected default memory cache backend, got %q", cfg.Cache.Backend)
	}
	if cfg.Compare.CurrentYear == 0 {
		t.Error("expected CurrentYear to resolve from wall clock when unset")
	}
	if cfg.Compare.SeriesYears != 5 {
		t.Errorf("expected 5-year series default, got %d", cfg.Compare.SeriesYears)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("COMPARE_CURRENT_YEAR", "2024")
	t.Setenv("CACHE_DEFAULT_TTL", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("expected env override port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Compare.CurrentYear != 2024 {
		t.Errorf("expected pinned year 2024, got %d", cfg.Compare.CurrentYear)
	}
	if cfg.Cache.DefaultTTL != time.Hour {
		t.Errorf("expected TTL 1h, got %s", cfg.Cache.DefaultTTL)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: 9200\ncompare:\n  current_year: 2023\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Server.Port != 9200 {
		t.Errorf("expected file override port 9200, got %d", cfg.Server.Port)
	}
	if cfg.Compare.CurrentYear != 2023 {
		t.Errorf("expected file-pinned year 2023, got %d", cfg.Compare.CurrentYear)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"empty db path", func(c *Config) { c.Database.Path = "" }},
		{"unknown cache backend", func(c *Config) { c.Cache.Backend = "redis" }},
		{"badger without path", func(c *Config) { c.Cache.Backend = "badger"; c.Cache.Path = "" }},
		{"zero ttl", func(c *Config) { c.Cache.DefaultTTL = 0 }},
		{"insight enabled without url", func(c *Config) { c.Insight.Enabled = true }},
		{"insight bad scheme", func(c *Config) { c.Insight.Enabled = true; c.Insight.URL = "ftp://x" }},
		{"implausible year", func(c *Config) { c.Compare.CurrentYear = 1600 }},
		{"result limit above fetch limit", func(c *Config) { c.Compare.DiscoveryResultLimit = 50 }},
		{"zero workers", func(c *Config) { c.Compare.EnrichmentMaxWorkers = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Compare.CurrentYear = 2026
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
