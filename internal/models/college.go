// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package models

import "strconv"

// NA is the canonical placeholder for absent string data. Responses never
// omit a field; absent values are filled with this literal (counts use 0).
const NA = "NA"

// NotAvailable is the placeholder for cohort ranks that cannot be computed.
const NotAvailable = "Not Available"

// College is a row from the colleges table.
type College struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	ShortName       string `json:"short_name"`
	City            string `json:"city"`
	State           string `json:"state"`
	Ownership       string `json:"ownership"`
	EstablishedYear int    `json:"established_year"`
	LogoURL         string `json:"logo_url"`
}

// Course is a row from the courses table. Degree, Branch and Domain are
// the classification axes used by the discovery predicates.
type Course struct {
	ID            int64   `json:"id"`
	CollegeID     int64   `json:"college_id"`
	Name          string  `json:"name"`
	Degree        string  `json:"degree"`
	Branch        string  `json:"branch"`
	Domain        string  `json:"domain"`
	DurationYears int     `json:"duration_years"`
	TotalFees     float64 `json:"total_fees"`
}

// FloatOrNA renders a float as a string, or NA when the value is absent
// (negative sentinel from the source).
func FloatOrNA(v float64) string {
	if v < 0 {
		return NA
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// IntOrNA renders a non-negative int as a string, or NA when absent.
func IntOrNA(v int64) string {
	if v < 0 {
		return NA
	}
	return strconv.FormatInt(v, 10)
}

// ScoreOrNA renders a ranking score, treating non-positive values and a
// score of exactly 100 as unavailable.
//
// The ==100 threshold reproduces the behavior observed in the upstream
// data feed, where 100 is a fill value; pending confirmation it is kept
// in this single place.
func ScoreOrNA(score float64) string {
	if score <= 0 || score == 100 {
		return NA
	}
	return strconv.FormatFloat(score, 'f', 2, 64)
}
