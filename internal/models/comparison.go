// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package models

import "fmt"

// EntityRef identifies one entity in a comparison request. SubSelectionID
// optionally narrows the entity to a domain or course; sub-selections are
// keyed by entity id even though the response is positional.
type EntityRef struct {
	EntityID       int64 `json:"entity_id"                  validate:"required,gt=0"`
	SubSelectionID int64 `json:"sub_selection_id,omitempty" validate:"omitempty,gt=0"`
}

// ComparisonRequest is the transient input to every comparison operation.
// The entity list must be non-empty; order determines slot order.
type ComparisonRequest struct {
	Entities   []EntityRef `json:"entities"              validate:"required,min=1,dive"`
	StartYear  int         `json:"start_year,omitempty"  validate:"omitempty,yearrange"`
	EndYear    int         `json:"end_year,omitempty"    validate:"omitempty,yearrange"`
	CacheBurst bool        `json:"cache_burst,omitempty"`
}

// EntityIDs returns the ordered entity ids of the request.
func (r *ComparisonRequest) EntityIDs() []int64 {
	ids := make([]int64, len(r.Entities))
	for i, e := range r.Entities {
		ids[i] = e.EntityID
	}
	return ids
}

// SubSelections returns the sub-selection map keyed by entity id.
// Entities without a sub-selection are omitted.
func (r *ComparisonRequest) SubSelections() map[int64]int64 {
	subs := make(map[int64]int64)
	for _, e := range r.Entities {
		if e.SubSelectionID != 0 {
			subs[e.EntityID] = e.SubSelectionID
		}
	}
	return subs
}

// SlotKey returns the positional slot name for 1-based position i,
// e.g. SlotKey("college", 1) == "college_1".
func SlotKey(prefix string, i int) string {
	return fmt.Sprintf("%s_%d", prefix, i)
}

// Visualization modes for time series responses.
const (
	VizLine    = "line"
	VizTabular = "tabular"
)

// EntitySeries is one entity's year-indexed data within a series.
// Every year in the requested range is present; missing values are NA.
type EntitySeries struct {
	EntityID int64          `json:"entity_id"`
	Data     map[int]string `json:"data"`
}

// SeriesSet is a complete series across all requested slots, together
// with the years covered and the visualization decision for this series.
type SeriesSet struct {
	Series map[string]EntitySeries `json:"series"`
	Years  []int                   `json:"years"`
	Mode   string                  `json:"type"`
}
