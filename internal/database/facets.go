// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/collegium/collegium/internal/database/query"
	"github.com/collegium/collegium/internal/metrics"
)

// FacetSpec declaratively describes one facet read: the table, the select
// expressions and the filters. All facet fetchers build a spec and hand it
// to queryFacet instead of assembling SQL by hand.
type FacetSpec struct {
	Table   string
	Columns []string
	Where   *query.WhereBuilder
	GroupBy []string
	OrderBy string
	Limit   int
}

// SQL renders the spec into a parameterized statement.
func (s FacetSpec) SQL() (string, []interface{}) {
	where := s.Where
	if where == nil {
		where = query.NewWhereBuilder()
	}
	whereClause, args := where.Build()

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s WHERE %s", strings.Join(s.Columns, ", "), s.Table, whereClause)
	if len(s.GroupBy) > 0 {
		fmt.Fprintf(&b, " GROUP BY %s", strings.Join(s.GroupBy, ", "))
	}
	if s.OrderBy != "" {
		fmt.Fprintf(&b, " ORDER BY %s", s.OrderBy)
	}
	if s.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", s.Limit)
	}
	return b.String(), args
}

// queryFacet executes the spec and invokes scan once per row.
func (db *DB) queryFacet(ctx context.Context, spec FacetSpec, scan func(*sql.Rows) error) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	queryStr, args := spec.SQL()
	start := time.Now()

	stmt, err := db.prepareCached(ctx, queryStr)
	if err != nil {
		metrics.RecordDBError("facet", spec.Table)
		return err
	}

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		metrics.RecordDBError("facet", spec.Table)
		return fmt.Errorf("facet query on %s failed: %w", spec.Table, err)
	}
	defer closeWithLog(rows, "rows")

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("facet scan on %s failed: %w", spec.Table, err)
		}
	}
	if err := rows.Err(); err != nil {
		metrics.RecordDBError("facet", spec.Table)
		return fmt.Errorf("facet iteration on %s failed: %w", spec.Table, err)
	}

	metrics.RecordDBQuery("facet", spec.Table, start)
	return nil
}
