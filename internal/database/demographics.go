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

// DemographicsRow is one college's student intake profile.
type DemographicsRow struct {
	CollegeID       int64
	CollegeName     string
	TotalStudents   int64
	MalePercent     float64
	FemalePercent   float64
	OutOfStateShare float64
	FacultyCount    int64
}

// Demographics returns intake profiles for the given colleges, keyed by
// college id.
func (db *DB) Demographics(ctx context.Context, collegeIDs []int64) (map[int64]DemographicsRow, error) {
	wb := query.NewWhereBuilder()
	wb.AddEntityIDs("d.college_id", collegeIDs)

	spec := FacetSpec{
		Table: "demographics d JOIN colleges c ON c.id = d.college_id",
		Columns: []string{
			"d.college_id",
			"c.name",
			"COALESCE(d.total_students, 0)",
			"COALESCE(d.male_percent, -1)",
			"COALESCE(d.female_percent, -1)",
			"COALESCE(d.out_of_state_share, -1)",
			"COALESCE(d.faculty_count, 0)",
		},
		Where: wb,
	}

	profiles := make(map[int64]DemographicsRow)
	err := db.queryFacet(ctx, spec, func(r *sql.Rows) error {
		var row DemographicsRow
		if err := r.Scan(&row.CollegeID, &row.CollegeName, &row.TotalStudents,
			&row.MalePercent, &row.FemalePercent, &row.OutOfStateShare, &row.FacultyCount); err != nil {
			return err
		}
		profiles[row.CollegeID] = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
