// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package validation

import (
	"strings"
	"testing"
)

type compareRequestFixture struct {
	IDs       []int64 `validate:"required,min=1,dive,gt=0"`
	StartYear int     `validate:"omitempty,yearrange"`
	EndYear   int     `validate:"omitempty,yearrange"`
}

func TestValidateStructPasses(t *testing.T) {
	req := compareRequestFixture{IDs: []int64{5, 9}, StartYear: 2019, EndYear: 2023}
	if verr := ValidateStruct(&req); verr != nil {
		t.Errorf("expected valid request, got %v", verr)
	}
}

func TestValidateStructEmptyIDs(t *testing.T) {
	req := compareRequestFixture{IDs: []int64{}}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected validation error for empty id list")
	}
	if !strings.Contains(verr.Error(), "IDs") {
		t.Errorf("expected message to name the field, got %q", verr.Error())
	}
}

func TestValidateStructNegativeID(t *testing.T) {
	req := compareRequestFixture{IDs: []int64{5, -1}}
	if verr := ValidateStruct(&req); verr == nil {
		t.Error("expected validation error for non-positive id")
	}
}

func TestValidateStructYearRange(t *testing.T) {
	tests := []struct {
		year    int
		wantErr bool
	}{
		{2019, false},
		{1899, true},
		{2101, true},
		{0, false}, // omitempty
	}

	for _, tt := range tests {
		req := compareRequestFixture{IDs: []int64{1}, StartYear: tt.year}
		verr := ValidateStruct(&req)
		if tt.wantErr && verr == nil {
			t.Errorf("year %d: expected error", tt.year)
		}
		if !tt.wantErr && verr != nil {
			t.Errorf("year %d: unexpected error %v", tt.year, verr)
		}
	}
}

func TestFieldErrorsExposed(t *testing.T) {
	req := compareRequestFixture{IDs: nil, StartYear: 1800}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected validation errors")
	}
	if len(verr.Fields()) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(verr.Fields()))
	}
}
