// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/collegium/collegium/internal/database/query"
	"github.com/collegium/collegium/internal/models"
)

const pairEventsTable = "comparison_events e" +
	" JOIN courses ca ON ca.id = e.course_a" +
	" JOIN courses cb ON cb.id = e.course_b"

var pairColumns = []string{"e.course_a", "e.course_b", "COUNT(*) AS cnt"}

// TopComparisonPairs returns the most frequently compared course pairs
// matching the predicate for typ, descending by frequency. Pairs are raw
// event groupings; the caller dedups order-insensitive duplicates.
func (db *DB) TopComparisonPairs(ctx context.Context, typ models.ComparisonType, dctx models.DiscoveryContext, limit int) ([]models.ComparisonPair, error) {
	wb, err := discoveryWhere(typ, dctx)
	if err != nil {
		return nil, err
	}
	return db.queryPairs(ctx, wb, limit)
}

// DegreeBranchFallbackPairs widens a degree_branch discovery from the exact
// focal course to any pair within the focal course's degree and branch. Used
// when the exact pool is too shallow.
func (db *DB) DegreeBranchFallbackPairs(ctx context.Context, dctx models.DiscoveryContext, limit int) ([]models.ComparisonPair, error) {
	wb := query.NewWhereBuilder()
	wb.AddDegree("ca.degree", dctx.Degree)
	wb.AddBranch("ca.branch", dctx.Branch)
	wb.AddDegree("cb.degree", dctx.Degree)
	wb.AddBranch("cb.branch", dctx.Branch)
	return db.queryPairs(ctx, wb, limit)
}

// ExactPairCount returns how many distinct pairs involve the given course.
func (db *DB) ExactPairCount(ctx context.Context, courseID int64) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	const q = "SELECT COUNT(DISTINCT CASE WHEN course_a = ? THEN course_b ELSE course_a END)" +
		" FROM comparison_events WHERE course_a = ? OR course_b = ?"
	stmt, err := db.prepareCached(ctx, q)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := stmt.QueryRowContext(ctx, courseID, courseID, courseID).Scan(&count); err != nil {
		return 0, fmt.Errorf("exact pair count for course %d failed: %w", courseID, err)
	}
	return count, nil
}

func (db *DB) queryPairs(ctx context.Context, wb *query.WhereBuilder, limit int) ([]models.ComparisonPair, error) {
	spec := FacetSpec{
		Table:   pairEventsTable,
		Columns: pairColumns,
		Where:   wb,
		GroupBy: []string{"e.course_a", "e.course_b"},
		OrderBy: "cnt DESC",
		Limit:   limit,
	}

	var pairs []models.ComparisonPair
	err := db.queryFacet(ctx, spec, func(r *sql.Rows) error {
		var p models.ComparisonPair
		if err := r.Scan(&p.CourseA, &p.CourseB, &p.Count); err != nil {
			return err
		}
		pairs = append(pairs, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

// discoveryWhere builds the per-type predicate over the joined event pairs.
func discoveryWhere(typ models.ComparisonType, dctx models.DiscoveryContext) (*query.WhereBuilder, error) {
	wb := query.NewWhereBuilder()
	switch typ {
	case models.CompareDegreeBranch:
		// Pairs the focal course itself participates in.
		wb.AddClause("(e.course_a = ? OR e.course_b = ?)", dctx.CourseID, dctx.CourseID)
	case models.CompareDegree:
		// Same degree on both sides, across different branches.
		wb.AddDegree("ca.degree", dctx.Degree)
		wb.AddDegree("cb.degree", dctx.Degree)
		wb.AddClause("ca.branch <> cb.branch")
	case models.CompareDomain:
		// Same domain on both sides, across different degrees.
		wb.AddDomain("ca.domain", dctx.Domain)
		wb.AddDomain("cb.domain", dctx.Domain)
		wb.AddClause("ca.degree <> cb.degree")
	case models.CompareCollege:
		// Either side belongs to the focal college, outside the focal branch.
		wb.AddClause("((ca.college_id = ? AND ca.branch <> ?) OR (cb.college_id = ? AND cb.branch <> ?))",
			dctx.CollegeID, dctx.Branch, dctx.CollegeID, dctx.Branch)
	case models.CompareAll:
		// No predicate, global top pairs.
	default:
		return nil, fmt.Errorf("unknown comparison type %q", typ)
	}
	return wb, nil
}
