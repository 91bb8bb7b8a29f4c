// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package models

import "fmt"

// ComparisonType selects the predicate used for pair discovery.
type ComparisonType string

const (
	CompareDegreeBranch ComparisonType = "degree_branch"
	CompareDegree       ComparisonType = "degree"
	CompareDomain       ComparisonType = "domain"
	CompareCollege      ComparisonType = "college"
	CompareAll          ComparisonType = "all"
)

// Valid reports whether t is a known comparison type.
func (t ComparisonType) Valid() bool {
	switch t {
	case CompareDegreeBranch, CompareDegree, CompareDomain, CompareCollege, CompareAll:
		return true
	}
	return false
}

// ComparisonPair is an unordered frequency-ranked pair of courses users
// compared together. Identity for dedup is the sorted-id key.
type ComparisonPair struct {
	CourseA int64 `json:"course_a"`
	CourseB int64 `json:"course_b"`
	Count   int64 `json:"count"`
}

// Key returns the order-insensitive identity of the pair: (A,B) and (B,A)
// produce the same key.
func (p ComparisonPair) Key() string {
	a, b := p.CourseA, p.CourseB
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}

// EnrichedPair is a fully resolved comparison pair. When the discovery
// context names a focal college, the focal side always occupies First.
type EnrichedPair struct {
	First  PairSide `json:"first"`
	Second PairSide `json:"second"`
	Count  int64    `json:"count"`
}

// PairSide is one resolved side of an enriched comparison pair.
type PairSide struct {
	CourseID    int64  `json:"course_id"`
	CourseName  string `json:"course_name"`
	Degree      string `json:"degree"`
	Branch      string `json:"branch"`
	CollegeID   int64  `json:"college_id"`
	CollegeName string `json:"college_name"`
	LogoURL     string `json:"logo_url"`
}

// DiscoveryContext carries the focal ids the per-type predicates filter on.
type DiscoveryContext struct {
	CourseID  int64  `json:"course_id,omitempty"`
	CollegeID int64  `json:"college_id,omitempty"`
	Degree    string `json:"degree,omitempty"`
	Branch    string `json:"branch,omitempty"`
	Domain    string `json:"domain,omitempty"`
}
