// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

// Package database provides DuckDB-backed data access for the comparison
// engine: colleges, courses, rankings, placements, fees, demographics,
// reviews and the comparison event log driving pair discovery.
//
// Facet reads go through a single declarative FacetSpec interpreter
// instead of one hand-written query helper per facet; callers describe
// the table, columns and filters and scan the rows themselves.
package database
