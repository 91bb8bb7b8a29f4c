// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package models

import "testing"

func TestSlotKey(t *testing.T) {
	tests := []struct {
		prefix string
		pos    int
		want   string
	}{
		{"college", 1, "college_1"},
		{"college", 10, "college_10"},
		{"course", 2, "course_2"},
	}

	for _, tt := range tests {
		if got := SlotKey(tt.prefix, tt.pos); got != tt.want {
			t.Errorf("SlotKey(%q, %d) = %q, want %q", tt.prefix, tt.pos, got, tt.want)
		}
	}
}

func TestComparisonPairKeyUnordered(t *testing.T) {
	ab := ComparisonPair{CourseA: 12, CourseB: 7, Count: 5}
	ba := ComparisonPair{CourseA: 7, CourseB: 12, Count: 5}

	if ab.Key() != ba.Key() {
		t.Errorf("expected identical keys for (12,7) and (7,12), got %q vs %q", ab.Key(), ba.Key())
	}
	if ab.Key() != "7:12" {
		t.Errorf("expected sorted-id key 7:12, got %q", ab.Key())
	}
}

func TestScoreOrNA(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{72.5, "72.50"},
		{100, NA},
		{0, NA},
		{-1, NA},
		{99.99, "99.99"},
	}

	for _, tt := range tests {
		if got := ScoreOrNA(tt.score); got != tt.want {
			t.Errorf("ScoreOrNA(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestNARecordsKeepShape(t *testing.T) {
	r := NewNARankingRecord(999999)
	if r.CollegeID != 999999 {
		t.Errorf("expected placeholder to keep entity id, got %d", r.CollegeID)
	}
	if r.CollegeName != NA || r.Score != NA || r.NIRFRank != NA {
		t.Errorf("expected NA-filled fields, got %+v", r)
	}
	if r.StateRank != NotAvailable || r.OwnershipRank != NotAvailable {
		t.Errorf("expected Not Available cohort ranks, got %+v", r)
	}

	f := NewNAFacilityRecord(5, []string{"library", "hostel"})
	if len(f.Amenities) != 2 {
		t.Fatalf("expected all amenities present, got %d", len(f.Amenities))
	}
	for name, count := range f.Amenities {
		if count != 0 {
			t.Errorf("expected zero count for %s, got %d", name, count)
		}
	}
}

func TestComparisonRequestAccessors(t *testing.T) {
	req := ComparisonRequest{
		Entities: []EntityRef{
			{EntityID: 5, SubSelectionID: 11},
			{EntityID: 9, SubSelectionID: 11},
			{EntityID: 3},
		},
	}

	ids := req.EntityIDs()
	if len(ids) != 3 || ids[0] != 5 || ids[1] != 9 || ids[2] != 3 {
		t.Errorf("unexpected ids %v", ids)
	}

	subs := req.SubSelections()
	if len(subs) != 2 || subs[5] != 11 || subs[9] != 11 {
		t.Errorf("unexpected sub-selections %v", subs)
	}
	if _, ok := subs[3]; ok {
		t.Error("entity without sub-selection should be omitted")
	}
}
