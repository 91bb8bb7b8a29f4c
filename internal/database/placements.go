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

// PlacementAggRow is one college's placement aggregate over all years.
// Absent metrics carry the -1 sentinel and render as NA downstream.
type PlacementAggRow struct {
	CollegeID      int64
	CollegeName    string
	PlacementRate  float64
	MedianPackage  float64
	HighestPackage float64
	RecruiterCount int64
}

// PlacementSeriesRow is one (college, year) placement rate observation.
// DomainID is 0 for the overall series.
type PlacementSeriesRow struct {
	CollegeID int64
	DomainID  int64
	Year      int
	Rate      float64
}

// PlacementAggregates returns per-college placement aggregates for the
// given colleges, keyed by college id. Colleges without placement rows
// are simply absent from the map.
func (db *DB) PlacementAggregates(ctx context.Context, collegeIDs []int64) (map[int64]PlacementAggRow, error) {
	wb := query.NewWhereBuilder()
	wb.AddEntityIDs("p.college_id", collegeIDs)
	wb.AddClause("p.domain_id IS NULL")

	spec := FacetSpec{
		Table: "placements p JOIN colleges c ON c.id = p.college_id",
		Columns: []string{
			"p.college_id",
			"ANY_VALUE(c.name)",
			"COALESCE(AVG(p.placement_rate), -1)",
			"COALESCE(AVG(p.median_package), -1)",
			"COALESCE(MAX(p.highest_package), -1)",
			"COALESCE(MAX(p.recruiter_count), 0)",
		},
		Where:   wb,
		GroupBy: []string{"p.college_id"},
	}

	aggs := make(map[int64]PlacementAggRow)
	err := db.queryFacet(ctx, spec, func(r *sql.Rows) error {
		var row PlacementAggRow
		if err := r.Scan(&row.CollegeID, &row.CollegeName, &row.PlacementRate,
			&row.MedianPackage, &row.HighestPackage, &row.RecruiterCount); err != nil {
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

// PlacementSeries returns (college, year) placement rates inside the
// inclusive year range. With domainOnly=false it returns the overall
// series (NULL domain rows); with domainOnly=true it returns every
// domain-specific row for the colleges, and the caller picks each
// college's sub-selection.
func (db *DB) PlacementSeries(ctx context.Context, collegeIDs []int64, startYear, endYear int, domainOnly bool) ([]PlacementSeriesRow, error) {
	wb := query.NewWhereBuilder()
	wb.AddEntityIDs("college_id", collegeIDs)
	wb.AddYearRange("year", startYear, endYear)
	if domainOnly {
		wb.AddClause("domain_id IS NOT NULL")
	} else {
		wb.AddClause("domain_id IS NULL")
	}

	spec := FacetSpec{
		Table: "placements",
		Columns: []string{
			"college_id",
			"COALESCE(domain_id, 0)",
			"year",
			"COALESCE(placement_rate, -1)",
		},
		Where:   wb,
		OrderBy: "college_id, year",
	}

	var rows []PlacementSeriesRow
	err := db.queryFacet(ctx, spec, func(r *sql.Rows) error {
		var row PlacementSeriesRow
		if err := r.Scan(&row.CollegeID, &row.DomainID, &row.Year, &row.Rate); err != nil {
			return err
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
