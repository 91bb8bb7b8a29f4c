// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where config files are searched, in priority order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/collegium/config.yaml",
	"/etc/collegium/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load builds the configuration from layered sources:
// defaults -> config file (optional) -> environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if cfg.Compare.CurrentYear == 0 {
		cfg.Compare.CurrentYear = time.Now().Year()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envAliases maps flat environment variable names to koanf config paths.
// Only listed variables are honored; everything else in the environment
// is ignored.
var envAliases = map[string]string{
	"HTTP_HOST":            "server.host",
	"HTTP_PORT":            "server.port",
	"HTTP_RATE_LIMIT":      "server.rate_limit",
	"DUCKDB_PATH":          "database.path",
	"DUCKDB_THREADS":       "database.threads",
	"DUCKDB_MAX_MEMORY":    "database.max_memory",
	"CACHE_BACKEND":        "cache.backend",
	"CACHE_PATH":           "cache.path",
	"CACHE_DEFAULT_TTL":    "cache.default_ttl",
	"INSIGHT_ENABLED":      "insight.enabled",
	"INSIGHT_URL":          "insight.url",
	"INSIGHT_TIMEOUT":      "insight.timeout",
	"SEARCH_ENABLED":       "search.enabled",
	"SEARCH_URL":           "search.url",
	"SEARCH_TIMEOUT":       "search.timeout",
	"COMPARE_CURRENT_YEAR": "compare.current_year",
	"LOG_LEVEL":            "logging.level",
	"LOG_FORMAT":           "logging.format",
}

// envTransformFunc maps environment variable names to config paths.
// Unknown variables return "" and are dropped by the env provider.
func envTransformFunc(key string) string {
	if path, ok := envAliases[strings.ToUpper(key)]; ok {
		return path
	}
	return ""
}
