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

// FeeRow is one course's fee breakdown joined with its college.
type FeeRow struct {
	CourseID    int64
	CollegeID   int64
	CollegeName string
	CourseName  string
	TuitionFee  float64
	HostelFee   float64
	OneTimeFee  float64
}

// Fees returns fee breakdowns for the given courses, keyed by course id.
func (db *DB) Fees(ctx context.Context, courseIDs []int64) (map[int64]FeeRow, error) {
	wb := query.NewWhereBuilder()
	wb.AddEntityIDs("f.course_id", courseIDs)

	spec := FacetSpec{
		Table: "fees f JOIN courses co ON co.id = f.course_id JOIN colleges c ON c.id = co.college_id",
		Columns: []string{
			"f.course_id",
			"co.college_id",
			"c.name",
			"co.name",
			"COALESCE(f.tuition_fee, -1)",
			"COALESCE(f.hostel_fee, -1)",
			"COALESCE(f.one_time_fee, -1)",
		},
		Where: wb,
	}

	fees := make(map[int64]FeeRow)
	err := db.queryFacet(ctx, spec, func(r *sql.Rows) error {
		var row FeeRow
		if err := r.Scan(&row.CourseID, &row.CollegeID, &row.CollegeName, &row.CourseName,
			&row.TuitionFee, &row.HostelFee, &row.OneTimeFee); err != nil {
			return err
		}
		fees[row.CourseID] = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fees, nil
}
