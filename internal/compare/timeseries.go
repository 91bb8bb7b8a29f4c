// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package compare

import (
	"fmt"

	"github.com/collegium/collegium/internal/models"
)

// SeriesInput is one entity's contribution to a year series. Values maps
// year to an already rendered value; years missing from the map are
// filled with NA. SubSelectionID is zero for the overall series.
type SeriesInput struct {
	EntityID       int64
	SubSelectionID int64
	Values         map[int]string
}

// BuildSeries assembles a positional year series over the inclusive
// [startYear, endYear] range. Every slot covers every year; gaps are NA.
//
// The visualization mode is decided here: "line" only when every entity
// shares the same sub-selection and no slot has an NA anywhere in the
// range. Any gap or mixed sub-selection forces "tabular", since a line
// chart would silently interpolate data that does not exist.
func BuildSeries(prefix string, inputs []SeriesInput, startYear, endYear int) models.SeriesSet {
	years := make([]int, 0, endYear-startYear+1)
	for y := startYear; y <= endYear; y++ {
		years = append(years, y)
	}

	series := make(map[string]models.EntitySeries, len(inputs))
	hasNA := false
	sameSub := true
	for i, in := range inputs {
		if in.SubSelectionID != inputs[0].SubSelectionID {
			sameSub = false
		}
		data := make(map[int]string, len(years))
		for _, y := range years {
			v, ok := in.Values[y]
			if !ok || v == models.NA {
				v = models.NA
				hasNA = true
			}
			data[y] = v
		}
		series[models.SlotKey(prefix, i+1)] = models.EntitySeries{
			EntityID: in.EntityID,
			Data:     data,
		}
	}

	mode := models.VizTabular
	if len(inputs) > 0 && sameSub && !hasNA {
		mode = models.VizLine
	}

	return models.SeriesSet{Series: series, Years: years, Mode: mode}
}

// ValidateSeriesSpan enforces the fixed multi-year window: the inclusive
// range must cover exactly wantYears distinct years.
func ValidateSeriesSpan(startYear, endYear, wantYears int) error {
	if startYear <= 0 || endYear <= 0 {
		return NewValidationError("year_range", "start_year and end_year are required")
	}
	if endYear < startYear {
		return NewValidationError("year_range", "end_year precedes start_year")
	}
	if got := endYear - startYear + 1; got != wantYears {
		return NewValidationError("year_range",
			fmt.Sprintf("range must cover exactly %d years, got %d", wantYears, got))
	}
	return nil
}
