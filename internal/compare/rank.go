// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package compare

import (
	"fmt"
	"sort"

	"github.com/collegium/collegium/internal/models"
)

// RankedRow is one entity's position within a cohort dimension. CohortKey
// is the grouping attribute (state, ownership); nil keys form their own
// bucket. RankBasis is the value ranks are computed from, ascending.
type RankedRow struct {
	EntityID  int64
	CohortKey *string
	RankBasis float64
}

// unspecifiedCohort labels the bucket for rows whose cohort attribute is
// absent. They still rank against each other rather than being dropped.
const unspecifiedCohort = "Unspecified"

// ComputeCohortRanks groups rows by cohort key and assigns competition
// ranks within each cohort: ties share the lower rank and the next
// distinct value skips past them, so bases [10,10,20,30] rank [1,1,3,4].
// The result maps entity id to a human-readable position string such as
// "3rd out of 41 in Karnataka".
func ComputeCohortRanks(rows []RankedRow) map[int64]string {
	cohorts := make(map[string][]RankedRow)
	for _, row := range rows {
		label := unspecifiedCohort
		if row.CohortKey != nil && *row.CohortKey != "" {
			label = *row.CohortKey
		}
		cohorts[label] = append(cohorts[label], row)
	}

	result := make(map[int64]string, len(rows))
	for label, members := range cohorts {
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].RankBasis < members[j].RankBasis
		})

		size := len(members)
		rank := 0
		prevBasis := 0.0
		for i, m := range members {
			if i == 0 || m.RankBasis != prevBasis {
				rank = i + 1
			}
			prevBasis = m.RankBasis
			result[m.EntityID] = fmt.Sprintf("%d%s out of %d in %s", rank, OrdinalSuffix(rank), size, label)
		}
	}
	return result
}

// CohortRankOrNA looks up an entity's cohort rank string, returning
// "Not Available" when the entity never entered the ranked set.
func CohortRankOrNA(ranks map[int64]string, entityID int64) string {
	if s, ok := ranks[entityID]; ok {
		return s
	}
	return models.NotAvailable
}

// OrdinalSuffix returns the English ordinal suffix for n. The teens 11-13
// take "th" regardless of their last digit, so 112 is "112th" not "112nd".
func OrdinalSuffix(n int) string {
	if v := n % 100; v >= 11 && v <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// Ordinal renders n with its suffix, e.g. Ordinal(3) == "3rd".
func Ordinal(n int) string {
	return fmt.Sprintf("%d%s", n, OrdinalSuffix(n))
}
