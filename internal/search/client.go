// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package search

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/collegium/collegium/internal/config"
	"github.com/collegium/collegium/internal/metrics"
)

// Client is the HTTP Counter implementation over the document index.
type Client struct {
	cfg  *config.SearchConfig
	http *http.Client
}

// NewClient builds the search client from config.
func NewClient(cfg *config.SearchConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

type countRequest struct {
	CollegeID int64    `json:"college_id"`
	Terms     []string `json:"terms"`
}

type countResponse struct {
	Counts map[string]int64 `json:"counts"`
}

// AmenityCounts runs an exact-match term count against the college's
// indexed documents. Every requested amenity is present in the result;
// terms the index does not report come back as 0.
func (c *Client) AmenityCounts(ctx context.Context, collegeID int64, amenities []string) (counts map[string]int64, err error) {
	start := time.Now()
	defer func() {
		reason := ""
		if err != nil {
			reason = "request_failed"
		}
		metrics.RecordUpstream("search", start, reason)
	}()

	body, err := json.Marshal(countRequest{CollegeID: collegeID, Terms: amenities})
	if err != nil {
		return nil, fmt.Errorf("marshal count request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL+"/v1/amenities/count", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build count request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("amenity count request failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search index returned status %d", resp.StatusCode)
	}

	var result countResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode count response: %w", err)
	}

	counts = make(map[string]int64, len(amenities))
	for _, a := range amenities {
		counts[a] = result.Counts[a]
	}
	return counts, nil
}
