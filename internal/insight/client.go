// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package insight

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/collegium/collegium/internal/config"
	"github.com/collegium/collegium/internal/logging"
	"github.com/collegium/collegium/internal/metrics"
)

// Client is the HTTP Summarizer implementation.
type Client struct {
	cfg     *config.InsightConfig
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*Insight]
	limiter *rate.Limiter
}

// NewClient builds the insight client from config. The breaker trips
// after consecutive failures so a down summarizer fails fast instead of
// holding request goroutines for the full timeout.
func NewClient(cfg *config.InsightConfig) *Client {
	settings := gobreaker.Settings{
		Name:        "insight",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("insight circuit breaker state change")
		},
	}

	rps := cfg.RateLimitRPS
	if rps <= 0 {
		rps = 10
	}

	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker[*Insight](settings),
		limiter: rate.NewLimiter(rate.Limit(rps), int(rps)),
	}
}

type summarizeRequest struct {
	Text       string `json:"text"`
	EntityName string `json:"entity_name"`
}

// Summarize posts the review text to the summarization endpoint. Calls go
// through the rate limiter and circuit breaker; retryable statuses (429,
// 502, 503, 504) are retried with exponential backoff.
func (c *Client) Summarize(ctx context.Context, text, entityName string) (*Insight, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("insight rate limit wait: %w", err)
	}
	return c.breaker.Execute(func() (*Insight, error) {
		return c.summarizeWithRetry(ctx, text, entityName)
	})
}

func (c *Client) summarizeWithRetry(ctx context.Context, text, entityName string) (*Insight, error) {
	attempts := c.cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}
	delay := c.cfg.RetryDelay
	if delay <= 0 {
		delay = 250 * time.Millisecond
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		ins, retryable, err := c.doSummarize(ctx, text, entityName)
		if err == nil {
			return ins, nil
		}
		lastErr = err
		if !retryable {
			break
		}
		logging.Ctx(ctx).Debug().Err(err).Int("attempt", attempt+1).
			Msg("retrying insight request")
	}
	return nil, lastErr
}

func (c *Client) doSummarize(ctx context.Context, text, entityName string) (ins *Insight, retryable bool, err error) {
	start := time.Now()
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues("insight").Observe(time.Since(start).Seconds())
		if err != nil {
			reason := "transport"
			if retryable {
				reason = "retryable_status"
			}
			metrics.UpstreamRequestErrors.WithLabelValues("insight", reason).Inc()
		}
	}()

	body, err := json.Marshal(summarizeRequest{Text: text, EntityName: entityName})
	if err != nil {
		return nil, false, fmt.Errorf("marshal insight request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL+"/v1/summarize", bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("build insight request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("insight request failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return nil, true, fmt.Errorf("insight returned status %d", resp.StatusCode)
	default:
		return nil, false, fmt.Errorf("insight returned status %d", resp.StatusCode)
	}

	var result Insight
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, false, fmt.Errorf("decode insight response: %w", err)
	}
	if result.MostDiscussedAttributes == nil {
		result.MostDiscussedAttributes = []string{}
	}
	return &result, false, nil
}
