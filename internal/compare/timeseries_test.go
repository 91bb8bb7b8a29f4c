// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package compare

import (
	"errors"
	"testing"

	"github.com/collegium/collegium/internal/models"
)

func fullValues(start, end int, v string) map[int]string {
	m := make(map[int]string)
	for y := start; y <= end; y++ {
		m[y] = v
	}
	return m
}

func TestBuildSeriesLineWhenComplete(t *testing.T) {
	inputs := []SeriesInput{
		{EntityID: 1, Values: fullValues(2019, 2023, "80.00")},
		{EntityID: 2, Values: fullValues(2019, 2023, "75.00")},
	}
	set := BuildSeries("college", inputs, 2019, 2023)
	if set.Mode != models.VizLine {
		t.Errorf("complete identical-selection series must be line, got %q", set.Mode)
	}
	if len(set.Years) != 5 || set.Years[0] != 2019 || set.Years[4] != 2023 {
		t.Errorf("unexpected years %v", set.Years)
	}
	if set.Series["college_1"].EntityID != 1 {
		t.Errorf("slot order must follow input order")
	}
}

func TestBuildSeriesTabularOnGap(t *testing.T) {
	v := fullValues(2019, 2023, "80.00")
	delete(v, 2021)
	inputs := []SeriesInput{
		{EntityID: 1, Values: v},
		{EntityID: 2, Values: fullValues(2019, 2023, "75.00")},
	}
	set := BuildSeries("college", inputs, 2019, 2023)
	if set.Mode != models.VizTabular {
		t.Errorf("any NA in range must force tabular, got %q", set.Mode)
	}
	if set.Series["college_1"].Data[2021] != models.NA {
		t.Errorf("missing year must be NA-filled, got %q", set.Series["college_1"].Data[2021])
	}
}

func TestBuildSeriesTabularOnMixedSubSelection(t *testing.T) {
	inputs := []SeriesInput{
		{EntityID: 1, SubSelectionID: 4, Values: fullValues(2019, 2023, "90.00")},
		{EntityID: 2, SubSelectionID: 6, Values: fullValues(2019, 2023, "85.00")},
	}
	set := BuildSeries("college", inputs, 2019, 2023)
	if set.Mode != models.VizTabular {
		t.Errorf("mixed sub-selections must force tabular even with complete data, got %q", set.Mode)
	}
}

func TestBuildSeriesEmptyInputs(t *testing.T) {
	set := BuildSeries("college", nil, 2019, 2023)
	if set.Mode != models.VizTabular {
		t.Errorf("empty series defaults to tabular, got %q", set.Mode)
	}
	if len(set.Series) != 0 {
		t.Errorf("expected no slots, got %d", len(set.Series))
	}
}

func TestValidateSeriesSpan(t *testing.T) {
	if err := ValidateSeriesSpan(2019, 2023, 5); err != nil {
		t.Errorf("exact 5-year span must pass, got %v", err)
	}
	if err := ValidateSeriesSpan(2019, 2022, 5); err == nil {
		t.Error("4-year span must fail")
	}
	if err := ValidateSeriesSpan(2019, 2024, 5); err == nil {
		t.Error("6-year span must fail")
	}
	if err := ValidateSeriesSpan(2023, 2019, 5); err == nil {
		t.Error("inverted range must fail")
	}
	if err := ValidateSeriesSpan(0, 2023, 5); err == nil {
		t.Error("missing start year must fail")
	}

	var verr *ValidationError
	if err := ValidateSeriesSpan(2019, 2022, 5); !errors.As(err, &verr) {
		t.Errorf("expected *ValidationError, got %T", err)
	}
}
