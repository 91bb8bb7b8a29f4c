// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

// Package insight calls the review summarization service. The client is
// resilient: a circuit breaker, bounded retries and a rate limiter sit
// between the comparison engine and the upstream, and every failure mode
// lets the caller degrade to default review fields.
package insight

import "context"

// Insight is the summarization result for one college's review text.
type Insight struct {
	MostDiscussedAttributes []string `json:"most_discussed_attributes"`
	ShortSummary            string   `json:"short_summary"`
}

// Summarizer produces an Insight from raw review text.
type Summarizer interface {
	Summarize(ctx context.Context, text, entityName string) (*Insight, error)
}
