// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

// Package query provides SQL query building utilities for the database
// package. It keeps parameter handling consistent and reduces SQL
// injection risks.
package query

import (
	"fmt"
	"strings"
)

// WhereBuilder constructs SQL WHERE clauses with parameterized arguments.
//
// Example:
//
//	wb := query.NewWhereBuilder()
//	wb.AddEntityIDs("college_id", []int64{5, 9})
//	wb.AddYearRange("year", 2019, 2023)
//	whereClause, args := wb.Build()
//	// college_id IN (?, ?) AND year >= ? AND year <= ?
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates an empty WhereBuilder.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddClause adds a raw WHERE clause with its arguments. Useful for
// conditions not covered by the helpers.
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddEntityIDs adds an IN filter on the given id column.
// An empty slice is skipped.
func (wb *WhereBuilder) AddEntityIDs(column string, ids []int64) *WhereBuilder {
	if len(ids) > 0 {
		placeholders := make([]string, len(ids))
		for i, id := range ids {
			placeholders[i] = "?"
			wb.args = append(wb.args, id)
		}
		wb.clauses = append(wb.clauses, fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ", ")))
	}
	return wb
}

// AddYearRange adds inclusive start/end year filters on the given column.
// Zero years are skipped, allowing open-ended ranges.
func (wb *WhereBuilder) AddYearRange(column string, startYear, endYear int) *WhereBuilder {
	if startYear > 0 {
		wb.clauses = append(wb.clauses, column+" >= ?")
		wb.args = append(wb.args, startYear)
	}
	if endYear > 0 {
		wb.clauses = append(wb.clauses, column+" <= ?")
		wb.args = append(wb.args, endYear)
	}
	return wb
}

// AddYear adds an exact-year filter on the given column.
func (wb *WhereBuilder) AddYear(column string, year int) *WhereBuilder {
	if year > 0 {
		wb.clauses = append(wb.clauses, column+" = ?")
		wb.args = append(wb.args, year)
	}
	return wb
}

// AddDegree adds a degree equality filter. Empty values are skipped.
func (wb *WhereBuilder) AddDegree(column, degree string) *WhereBuilder {
	if degree != "" {
		wb.clauses = append(wb.clauses, column+" = ?")
		wb.args = append(wb.args, degree)
	}
	return wb
}

// AddBranch adds a branch equality filter. Empty values are skipped.
func (wb *WhereBuilder) AddBranch(column, branch string) *WhereBuilder {
	if branch != "" {
		wb.clauses = append(wb.clauses, column+" = ?")
		wb.args = append(wb.args, branch)
	}
	return wb
}

// AddDomain adds a domain equality filter. Empty values are skipped.
func (wb *WhereBuilder) AddDomain(column, domain string) *WhereBuilder {
	if domain != "" {
		wb.clauses = append(wb.clauses, column+" = ?")
		wb.args = append(wb.args, domain)
	}
	return wb
}

// AddCollege adds a college id equality filter. Zero is skipped.
func (wb *WhereBuilder) AddCollege(column string, collegeID int64) *WhereBuilder {
	if collegeID > 0 {
		wb.clauses = append(wb.clauses, column+" = ?")
		wb.args = append(wb.args, collegeID)
	}
	return wb
}

// Build constructs the final WHERE clause and returns it with arguments.
// Clauses are joined with "AND". Returns ("1=1", []) if nothing was added.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// BuildWithPrefix returns the WHERE clause with a "WHERE " prefix.
func (wb *WhereBuilder) BuildWithPrefix() (string, []interface{}) {
	whereClause, args := wb.Build()
	return "WHERE " + whereClause, args
}

// Count returns the number of clauses added so far.
func (wb *WhereBuilder) Count() int {
	return len(wb.clauses)
}

// IsEmpty reports whether no clauses have been added.
func (wb *WhereBuilder) IsEmpty() bool {
	return len(wb.clauses) == 0
}
