// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package compare

import (
	"testing"

	"github.com/collegium/collegium/internal/models"
)

func TestAlignSlotsFillsEverySlot(t *testing.T) {
	lookup := map[int64]models.RankingRecord{
		5: {CollegeID: 5, CollegeName: "Alpha Institute"},
		9: {CollegeID: 9, CollegeName: "Beta College"},
	}

	slots := AlignSlots("college", []int64{9, 123, 5}, lookup, models.NewNARankingRecord)
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
	if slots["college_1"].CollegeName != "Beta College" {
		t.Errorf("slot order must follow input order, got %+v", slots["college_1"])
	}
	if slots["college_2"].CollegeName != models.NA || slots["college_2"].CollegeID != 123 {
		t.Errorf("unresolved id must get an NA placeholder, got %+v", slots["college_2"])
	}
	if slots["college_3"].CollegeName != "Alpha Institute" {
		t.Errorf("unexpected third slot %+v", slots["college_3"])
	}
}

func TestAlignSlotsDuplicateIDs(t *testing.T) {
	lookup := map[int64]models.DemographicsRecord{
		5: {CollegeID: 5, CollegeName: "Alpha Institute"},
	}
	slots := AlignSlots("college", []int64{5, 5}, lookup, models.NewNADemographicsRecord)
	if len(slots) != 2 {
		t.Fatalf("duplicate ids must get independent slots, got %d", len(slots))
	}
	if slots["college_1"].CollegeName != slots["college_2"].CollegeName {
		t.Error("duplicate slots should carry the same resolved record")
	}
}

func TestAlignSlotsAllUnresolved(t *testing.T) {
	slots := AlignSlots("course", []int64{1, 2}, map[int64]models.FeeRecord{}, models.NewNAFeeRecord)
	for key, rec := range slots {
		if rec.TuitionFee != models.NA || rec.TotalFee != models.NA {
			t.Errorf("slot %s not NA-shaped: %+v", key, rec)
		}
	}
}
