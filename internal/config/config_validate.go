// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package config

import (
	"fmt"
	"net/url"
)

// Validate checks the configuration for invalid combinations. It runs once
// after loading, so every component can trust its settings.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}

	switch c.Cache.Backend {
	case "memory", "badger":
	default:
		return fmt.Errorf("cache.backend must be memory or badger, got %q", c.Cache.Backend)
	}
	if c.Cache.Backend == "badger" && c.Cache.Path == "" {
		return fmt.Errorf("cache.path must be set for the badger backend")
	}
	if c.Cache.DefaultTTL <= 0 {
		return fmt.Errorf("cache.default_ttl must be positive, got %s", c.Cache.DefaultTTL)
	}

	if c.Insight.Enabled {
		if err := validateURL("insight.url", c.Insight.URL); err != nil {
			return err
		}
	}
	if c.Search.Enabled {
		if err := validateURL("search.url", c.Search.URL); err != nil {
			return err
		}
	}

	if c.Compare.CurrentYear < 1900 || c.Compare.CurrentYear > 2100 {
		return fmt.Errorf("compare.current_year must be a plausible year, got %d", c.Compare.CurrentYear)
	}
	if c.Compare.SeriesYears < 1 {
		return fmt.Errorf("compare.series_years must be at least 1, got %d", c.Compare.SeriesYears)
	}
	if c.Compare.DiscoveryResultLimit > c.Compare.DiscoveryFetchLimit {
		return fmt.Errorf("compare.discovery_result_limit (%d) cannot exceed discovery_fetch_limit (%d)",
			c.Compare.DiscoveryResultLimit, c.Compare.DiscoveryFetchLimit)
	}
	if c.Compare.EnrichmentMaxWorkers < 1 {
		return fmt.Errorf("compare.enrichment_max_workers must be at least 1, got %d", c.Compare.EnrichmentMaxWorkers)
	}

	return nil
}

// validateURL checks that value is an absolute http(s) URL.
func validateURL(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s must be set when the service is enabled", field)
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", field, value)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", field, u.Scheme)
	}
	return nil
}
