// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package database

import "fmt"

// schemaDDL creates the entity tables consumed by the comparison engine.
// Statements are idempotent so startup can run them unconditionally.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS colleges (
		id BIGINT PRIMARY KEY,
		name VARCHAR NOT NULL,
		short_name VARCHAR,
		city VARCHAR,
		state VARCHAR,
		ownership VARCHAR,
		established_year INTEGER,
		logo_url VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id BIGINT PRIMARY KEY,
		college_id BIGINT NOT NULL,
		name VARCHAR NOT NULL,
		degree VARCHAR,
		branch VARCHAR,
		domain VARCHAR,
		duration_years INTEGER,
		total_fees DOUBLE
	)`,
	`CREATE TABLE IF NOT EXISTS domains (
		id BIGINT PRIMARY KEY,
		name VARCHAR NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rankings (
		college_id BIGINT NOT NULL,
		year INTEGER NOT NULL,
		nirf_rank BIGINT,
		score DOUBLE
	)`,
	`CREATE TABLE IF NOT EXISTS placements (
		college_id BIGINT NOT NULL,
		domain_id BIGINT,
		year INTEGER NOT NULL,
		placement_rate DOUBLE,
		median_package DOUBLE,
		highest_package DOUBLE,
		recruiter_count BIGINT
	)`,
	`CREATE TABLE IF NOT EXISTS fees (
		course_id BIGINT NOT NULL,
		tuition_fee DOUBLE,
		hostel_fee DOUBLE,
		one_time_fee DOUBLE
	)`,
	`CREATE TABLE IF NOT EXISTS demographics (
		college_id BIGINT NOT NULL,
		total_students BIGINT,
		male_percent DOUBLE,
		female_percent DOUBLE,
		out_of_state_share DOUBLE,
		faculty_count BIGINT
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		college_id BIGINT NOT NULL,
		rating DOUBLE,
		body VARCHAR,
		created_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS comparison_events (
		course_a BIGINT NOT NULL,
		course_b BIGINT NOT NULL,
		occurred_at TIMESTAMP
	)`,
}

// initializeSchema runs the DDL statements.
func (db *DB) initializeSchema() error {
	for _, ddl := range schemaDDL {
		if _, err := db.conn.Exec(ddl); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}
