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

// ReviewAggRow is one college's review aggregate. ReviewText concatenates
// recent review bodies for downstream summarization.
type ReviewAggRow struct {
	CollegeID   int64
	CollegeName string
	AvgRating   float64
	ReviewCount int64
	ReviewText  string
}

// ReviewAggregates returns per-college review aggregates, keyed by college
// id. Colleges without reviews are absent from the map.
func (db *DB) ReviewAggregates(ctx context.Context, collegeIDs []int64) (map[int64]ReviewAggRow, error) {
	wb := query.NewWhereBuilder()
	wb.AddEntityIDs("r.college_id", collegeIDs)

	spec := FacetSpec{
		Table: "reviews r JOIN colleges c ON c.id = r.college_id",
		Columns: []string{
			"r.college_id",
			"ANY_VALUE(c.name)",
			"COALESCE(AVG(r.rating), -1)",
			"COUNT(*)",
			"COALESCE(string_agg(r.body, ' '), '')",
		},
		Where:   wb,
		GroupBy: []string{"r.college_id"},
	}

	aggs := make(map[int64]ReviewAggRow)
	err := db.queryFacet(ctx, spec, func(r *sql.Rows) error {
		var row ReviewAggRow
		if err := r.Scan(&row.CollegeID, &row.CollegeName, &row.AvgRating,
			&row.ReviewCount, &row.ReviewText); err != nil {
			return err
		}
		aggs[row.CollegeID] = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return aggs, nil
}
