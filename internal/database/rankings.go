// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package database

import (
	"context"
	"database/sql"

	"github.com/collegium/collegium/internal/database/query"
)

// RankedCollegeRow is one ranked college for a given year, joined with the
// cohort attributes relative ranks are computed against. Rows come back
// ascending by rank (lower is better).
type RankedCollegeRow struct {
	CollegeID   int64
	CollegeName string
	Rank        int64
	Score       float64
	State       *string
	Ownership   *string
}

// RankedColleges returns the full ranked cohort for year, ascending by
// NIRF rank. The caller computes relative cohort ranks from the whole
// list, so no entity filter is applied here.
func (db *DB) RankedColleges(ctx context.Context, year int) ([]RankedCollegeRow, error) {
	wb := query.NewWhereBuilder()
	wb.AddYear("r.year", year)
	wb.AddClause("r.nirf_rank IS NOT NULL")

	spec := FacetSpec{
		Table: "rankings r JOIN colleges c ON c.id = r.college_id",
		Columns: []string{
			"r.college_id",
			"c.name",
			"r.nirf_rank",
			"COALESCE(r.score, -1)",
			"c.state",
			"c.ownership",
		},
		Where:   wb,
		OrderBy: "r.nirf_rank ASC",
	}

	var rows []RankedCollegeRow
	err := db.queryFacet(ctx, spec, func(r *sql.Rows) error {
		var row RankedCollegeRow
		var state, ownership sql.NullString
		if err := r.Scan(&row.CollegeID, &row.CollegeName, &row.Rank, &row.Score, &state, &ownership); err != nil {
			return err
		}
		if state.Valid {
			row.State = &state.String
		}
		if ownership.Valid {
			row.Ownership = &ownership.String
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
