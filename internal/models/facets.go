// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package models

// RankingRecord is one college's entry in a rankings comparison.
// Cohort ranks are human-readable competition-rank strings, e.g.
// "3rd out of 41 in Karnataka", or "Not Available".
type RankingRecord struct {
	CollegeID     int64  `json:"college_id"`
	CollegeName   string `json:"college_name"`
	NIRFRank      string `json:"nirf_rank"`
	Score         string `json:"score"`
	State         string `json:"state"`
	Ownership     string `json:"ownership"`
	StateRank     string `json:"state_rank"`
	OwnershipRank string `json:"ownership_rank"`
}

// NewNARankingRecord builds the NA-shaped placeholder for an unresolved college.
func NewNARankingRecord(id int64) RankingRecord {
	return RankingRecord{
		CollegeID:     id,
		CollegeName:   NA,
		NIRFRank:      NA,
		Score:         NA,
		State:         NA,
		Ownership:     NA,
		StateRank:     NotAvailable,
		OwnershipRank: NotAvailable,
	}
}

// PlacementRecord is one college's aggregate placement figures.
type PlacementRecord struct {
	CollegeID      int64  `json:"college_id"`
	CollegeName    string `json:"college_name"`
	PlacementRate  string `json:"placement_rate"`
	MedianPackage  string `json:"median_package"`
	HighestPackage string `json:"highest_package"`
	RecruiterCount int64  `json:"recruiter_count"`
}

// NewNAPlacementRecord builds the NA-shaped placeholder for an unresolved college.
func NewNAPlacementRecord(id int64) PlacementRecord {
	return PlacementRecord{
		CollegeID:      id,
		CollegeName:    NA,
		PlacementRate:  NA,
		MedianPackage:  NA,
		HighestPackage: NA,
		RecruiterCount: 0,
	}
}

// PlacementComparison carries aligned placement slots plus the overall and
// domain-specific year series with their visualization decisions.
type PlacementComparison struct {
	Slots     map[string]PlacementRecord `json:"slots"`
	Overall   SeriesSet                  `json:"overall"`
	Domain    SeriesSet                  `json:"domain_specific"`
	StartYear int                        `json:"start_year"`
	EndYear   int                        `json:"end_year"`
}

// FeeRecord is one course selection's fee breakdown.
type FeeRecord struct {
	CollegeID   int64  `json:"college_id"`
	CourseID    int64  `json:"course_id"`
	CollegeName string `json:"college_name"`
	CourseName  string `json:"course_name"`
	TuitionFee  string `json:"tuition_fee"`
	HostelFee   string `json:"hostel_fee"`
	OneTimeFee  string `json:"one_time_fee"`
	TotalFee    string `json:"total_fee"`
}

// NewNAFeeRecord builds the NA-shaped placeholder for an unresolved selection.
func NewNAFeeRecord(id int64) FeeRecord {
	return FeeRecord{
		CollegeID:   id,
		CollegeName: NA,
		CourseName:  NA,
		TuitionFee:  NA,
		HostelFee:   NA,
		OneTimeFee:  NA,
		TotalFee:    NA,
	}
}

// DemographicsRecord is one college's student intake profile.
type DemographicsRecord struct {
	CollegeID       int64  `json:"college_id"`
	CollegeName     string `json:"college_name"`
	TotalStudents   int64  `json:"total_students"`
	MalePercent     string `json:"male_percent"`
	FemalePercent   string `json:"female_percent"`
	OutOfStateShare string `json:"out_of_state_share"`
	FacultyCount    int64  `json:"faculty_count"`
}

// NewNADemographicsRecord builds the NA-shaped placeholder for an unresolved college.
func NewNADemographicsRecord(id int64) DemographicsRecord {
	return DemographicsRecord{
		CollegeID:       id,
		CollegeName:     NA,
		TotalStudents:   0,
		MalePercent:     NA,
		FemalePercent:   NA,
		OutOfStateShare: NA,
		FacultyCount:    0,
	}
}

// ReviewRecord is one college's review aggregate, optionally enriched with
// the insight service summary. Enrichment failures leave the defaults.
type ReviewRecord struct {
	CollegeID     int64    `json:"college_id"`
	CollegeName   string   `json:"college_name"`
	AverageRating string   `json:"average_rating"`
	ReviewCount   int64    `json:"review_count"`
	MostDiscussed []string `json:"most_discussed_attributes"`
	ShortSummary  string   `json:"short_summary"`
}

// NewNAReviewRecord builds the NA-shaped placeholder for an unresolved college.
func NewNAReviewRecord(id int64) ReviewRecord {
	return ReviewRecord{
		CollegeID:     id,
		CollegeName:   NA,
		AverageRating: NA,
		ReviewCount:   0,
		MostDiscussed: []string{},
		ShortSummary:  NA,
	}
}

// FacilityRecord is one college's amenity counts from the document index.
// Lookup failures degrade to zero counts, never missing keys.
type FacilityRecord struct {
	CollegeID   int64            `json:"college_id"`
	CollegeName string           `json:"college_name"`
	Amenities   map[string]int64 `json:"amenities"`
}

// NewNAFacilityRecord builds the placeholder for an unresolved college,
// with every tracked amenity present at count 0.
func NewNAFacilityRecord(id int64, amenities []string) FacilityRecord {
	counts := make(map[string]int64, len(amenities))
	for _, a := range amenities {
		counts[a] = 0
	}
	return FacilityRecord{
		CollegeID:   id,
		CollegeName: NA,
		Amenities:   counts,
	}
}
