// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package database

import (
	"context"
	"database/sql"

	"github.com/collegium/collegium/internal/database/query"
	"github.com/collegium/collegium/internal/models"
)

// CollegesByIDs bulk-resolves colleges, keyed by id. Unknown ids are
// simply absent; the caller decides how to fill the gap.
func (db *DB) CollegesByIDs(ctx context.Context, ids []int64) (map[int64]models.College, error) {
	wb := query.NewWhereBuilder()
	wb.AddEntityIDs("id", ids)

	spec := FacetSpec{
		Table: "colleges",
		Columns: []string{
			"id",
			"name",
			"COALESCE(short_name, '')",
			"COALESCE(city, '')",
			"COALESCE(state, '')",
			"COALESCE(ownership, '')",
			"COALESCE(established_year, 0)",
			"COALESCE(logo_url, '')",
		},
		Where: wb,
	}

	colleges := make(map[int64]models.College)
	err := db.queryFacet(ctx, spec, func(r *sql.Rows) error {
		var c models.College
		if err := r.Scan(&c.ID, &c.Name, &c.ShortName, &c.City, &c.State,
			&c.Ownership, &c.EstablishedYear, &c.LogoURL); err != nil {
			return err
		}
		colleges[c.ID] = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return colleges, nil
}

// CoursesByIDs bulk-resolves courses, keyed by id.
func (db *DB) CoursesByIDs(ctx context.Context, ids []int64) (map[int64]models.Course, error) {
	wb := query.NewWhereBuilder()
	wb.AddEntityIDs("id", ids)

	spec := FacetSpec{
		Table: "courses",
		Columns: []string{
			"id",
			"college_id",
			"name",
			"COALESCE(degree, '')",
			"COALESCE(branch, '')",
			"COALESCE(domain, '')",
			"COALESCE(duration_years, 0)",
			"COALESCE(total_fees, -1)",
		},
		Where: wb,
	}

	courses := make(map[int64]models.Course)
	err := db.queryFacet(ctx, spec, func(r *sql.Rows) error {
		var c models.Course
		if err := r.Scan(&c.ID, &c.CollegeID, &c.Name, &c.Degree, &c.Branch,
			&c.Domain, &c.DurationYears, &c.TotalFees); err != nil {
			return err
		}
		courses[c.ID] = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return courses, nil
}
