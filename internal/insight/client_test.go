// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package insight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/collegium/collegium/internal/config"
)

func testConfig(url string) *config.InsightConfig {
	return &config.InsightConfig{
		Enabled:       true,
		URL:           url,
		Timeout:       2 * time.Second,
		RetryAttempts: 3,
		RetryDelay:    5 * time.Millisecond,
		RateLimitRPS:  100,
	}
}

func TestSummarizeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/summarize" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"most_discussed_attributes":["labs","hostel"],"short_summary":"Well regarded for labs."}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	ins, err := c.Summarize(context.Background(), "review text", "Alpha Institute")
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if len(ins.MostDiscussedAttributes) != 2 || ins.ShortSummary == "" {
		t.Errorf("unexpected insight: %+v", ins)
	}
}

func TestSummarizeRetriesRetryableStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"short_summary":"ok"}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	ins, err := c.Summarize(context.Background(), "text", "name")
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 attempts, got %d", calls.Load())
	}
	if ins.MostDiscussedAttributes == nil {
		t.Error("expected non-nil attributes slice")
	}
}

func TestSummarizeDoesNotRetryClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	if _, err := c.Summarize(context.Background(), "text", "name"); err == nil {
		t.Fatal("expected error for 400 response")
	}
	if calls.Load() != 1 {
		t.Errorf("400 must not be retried, got %d attempts", calls.Load())
	}
}

func TestSummarizeBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.RetryAttempts = 1
	c := NewClient(cfg)

	for i := 0; i < 5; i++ {
		if _, err := c.Summarize(context.Background(), "text", "name"); err == nil {
			t.Fatal("expected failure")
		}
	}
	// Breaker is open now; the call fails without reaching the server.
	start := time.Now()
	if _, err := c.Summarize(context.Background(), "text", "name"); err == nil {
		t.Fatal("expected open-breaker failure")
	}
	if time.Since(start) > 100*time.Millisecond {
		t.Error("open breaker should fail fast")
	}
}
