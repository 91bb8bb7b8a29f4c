// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/collegium/collegium/internal/config"
	"github.com/collegium/collegium/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	cfg := &config.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "test.db"),
		Threads:      2,
		MaxMemory:    "256MB",
		QueryTimeout: 10 * time.Second,
	}
	db, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() failed: %v", err)
		}
	})
	return db
}

func seed(t *testing.T, db *DB, stmts ...string) {
	t.Helper()
	for _, s := range stmts {
		if _, err := db.conn.Exec(s); err != nil {
			t.Fatalf("seed statement failed: %v\n%s", err, s)
		}
	}
}

func TestFacetSpecSQL(t *testing.T) {
	spec := FacetSpec{
		Table:   "rankings r",
		Columns: []string{"r.college_id", "r.nirf_rank"},
		OrderBy: "r.nirf_rank ASC",
		Limit:   5,
	}
	sqlStr, args := spec.SQL()
	want := "SELECT r.college_id, r.nirf_rank FROM rankings r WHERE 1=1 ORDER BY r.nirf_rank ASC LIMIT 5"
	if sqlStr != want {
		t.Errorf("SQL() = %q, want %q", sqlStr, want)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestRankedColleges(t *testing.T) {
	db := newTestDB(t)
	seed(t, db,
		`INSERT INTO colleges VALUES
			(1, 'Alpha Institute', 'AI', 'Pune', 'MH', 'public', 1960, ''),
			(2, 'Beta College', 'BC', 'Chennai', 'TN', 'private', 1985, ''),
			(3, 'Gamma University', 'GU', 'Delhi', NULL, NULL, 2001, '')`,
		`INSERT INTO rankings VALUES
			(2, 2023, 5, 72.5),
			(1, 2023, 1, 88.1),
			(3, 2023, 5, 70.0),
			(1, 2022, 3, 80.0),
			(3, 2023, NULL, NULL)`,
	)

	rows, err := db.RankedColleges(context.Background(), 2023)
	if err != nil {
		t.Fatalf("RankedColleges() failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 ranked rows, got %d", len(rows))
	}
	if rows[0].CollegeID != 1 || rows[0].Rank != 1 {
		t.Errorf("expected college 1 at rank 1 first, got %+v", rows[0])
	}
	// Tied ranks come back adjacent; both rank-5 rows follow.
	if rows[1].Rank != 5 || rows[2].Rank != 5 {
		t.Errorf("expected two rank-5 rows, got %+v %+v", rows[1], rows[2])
	}
	for _, r := range rows {
		if r.CollegeID == 3 && (r.State != nil || r.Ownership != nil) {
			t.Errorf("expected nil state/ownership for college 3, got %+v", r)
		}
	}
}

func TestPlacementAggregatesOverallOnly(t *testing.T) {
	db := newTestDB(t)
	seed(t, db,
		`INSERT INTO colleges VALUES (1, 'Alpha Institute', NULL, NULL, NULL, NULL, NULL, NULL)`,
		`INSERT INTO placements VALUES
			(1, NULL, 2022, 80.0, 6.0, 20.0, 100),
			(1, NULL, 2023, 90.0, 8.0, 30.0, 120),
			(1, 7, 2023, 99.0, 50.0, 99.0, 999)`,
	)

	aggs, err := db.PlacementAggregates(context.Background(), []int64{1, 2})
	if err != nil {
		t.Fatalf("PlacementAggregates() failed: %v", err)
	}
	agg, ok := aggs[1]
	if !ok {
		t.Fatal("expected aggregate for college 1")
	}
	if agg.PlacementRate != 85.0 {
		t.Errorf("expected overall rate 85.0 (domain rows excluded), got %v", agg.PlacementRate)
	}
	if agg.HighestPackage != 30.0 {
		t.Errorf("expected highest package 30.0, got %v", agg.HighestPackage)
	}
	if _, ok := aggs[2]; ok {
		t.Error("college 2 has no placements and should be absent")
	}
}

func TestPlacementSeriesDomainToggle(t *testing.T) {
	db := newTestDB(t)
	seed(t, db,
		`INSERT INTO placements VALUES
			(1, NULL, 2021, 70.0, NULL, NULL, NULL),
			(1, NULL, 2022, 75.0, NULL, NULL, NULL),
			(1, 4, 2022, 95.0, NULL, NULL, NULL)`,
	)

	overall, err := db.PlacementSeries(context.Background(), []int64{1}, 2020, 2024, false)
	if err != nil {
		t.Fatalf("PlacementSeries(overall) failed: %v", err)
	}
	if len(overall) != 2 {
		t.Fatalf("expected 2 overall rows, got %d", len(overall))
	}
	for _, r := range overall {
		if r.DomainID != 0 {
			t.Errorf("overall series row carries domain id %d", r.DomainID)
		}
	}

	domain, err := db.PlacementSeries(context.Background(), []int64{1}, 2020, 2024, true)
	if err != nil {
		t.Fatalf("PlacementSeries(domain) failed: %v", err)
	}
	if len(domain) != 1 || domain[0].DomainID != 4 || domain[0].Rate != 95.0 {
		t.Errorf("unexpected domain series: %+v", domain)
	}
}

func TestFeesKeyedByCourse(t *testing.T) {
	db := newTestDB(t)
	seed(t, db,
		`INSERT INTO colleges VALUES (1, 'Alpha Institute', NULL, NULL, NULL, NULL, NULL, NULL)`,
		`INSERT INTO courses VALUES (10, 1, 'B.Tech CSE', 'B.Tech', 'CSE', 'Engineering', 4, 800000)`,
		`INSERT INTO fees VALUES (10, 200000, 50000, NULL)`,
	)

	fees, err := db.Fees(context.Background(), []int64{10, 11})
	if err != nil {
		t.Fatalf("Fees() failed: %v", err)
	}
	row, ok := fees[10]
	if !ok {
		t.Fatal("expected fee row for course 10")
	}
	if row.CollegeName != "Alpha Institute" || row.CourseName != "B.Tech CSE" {
		t.Errorf("unexpected join values: %+v", row)
	}
	if row.OneTimeFee != -1 {
		t.Errorf("expected -1 sentinel for NULL one_time_fee, got %v", row.OneTimeFee)
	}
}

func TestDemographicsAndReviews(t *testing.T) {
	db := newTestDB(t)
	seed(t, db,
		`INSERT INTO colleges VALUES (1, 'Alpha Institute', NULL, NULL, NULL, NULL, NULL, NULL)`,
		`INSERT INTO demographics VALUES (1, 4200, 61.0, 39.0, NULL, 310)`,
		`INSERT INTO reviews VALUES
			(1, 4.0, 'Good labs', NOW()),
			(1, 3.0, 'Average hostel', NOW())`,
	)

	demos, err := db.Demographics(context.Background(), []int64{1})
	if err != nil {
		t.Fatalf("Demographics() failed: %v", err)
	}
	d, ok := demos[1]
	if !ok {
		t.Fatal("expected demographics for college 1")
	}
	if d.TotalStudents != 4200 || d.OutOfStateShare != -1 {
		t.Errorf("unexpected demographics row: %+v", d)
	}

	reviews, err := db.ReviewAggregates(context.Background(), []int64{1})
	if err != nil {
		t.Fatalf("ReviewAggregates() failed: %v", err)
	}
	r, ok := reviews[1]
	if !ok {
		t.Fatal("expected review aggregate for college 1")
	}
	if r.AvgRating != 3.5 || r.ReviewCount != 2 {
		t.Errorf("unexpected review aggregate: %+v", r)
	}
	if r.ReviewText == "" {
		t.Error("expected concatenated review text")
	}
}

func TestBulkResolvers(t *testing.T) {
	db := newTestDB(t)
	seed(t, db,
		`INSERT INTO colleges VALUES (1, 'Alpha Institute', 'AI', 'Pune', 'MH', 'public', 1960, 'https://cdn/logo1.png')`,
		`INSERT INTO courses VALUES (10, 1, 'B.Tech CSE', 'B.Tech', 'CSE', 'Engineering', 4, 800000)`,
	)

	colleges, err := db.CollegesByIDs(context.Background(), []int64{1, 999})
	if err != nil {
		t.Fatalf("CollegesByIDs() failed: %v", err)
	}
	if len(colleges) != 1 {
		t.Fatalf("expected 1 resolved college, got %d", len(colleges))
	}
	if colleges[1].LogoURL != "https://cdn/logo1.png" {
		t.Errorf("unexpected college: %+v", colleges[1])
	}

	courses, err := db.CoursesByIDs(context.Background(), []int64{10})
	if err != nil {
		t.Fatalf("CoursesByIDs() failed: %v", err)
	}
	if courses[10].Degree != "B.Tech" || courses[10].CollegeID != 1 {
		t.Errorf("unexpected course: %+v", courses[10])
	}
}

func seedDiscoveryFixture(t *testing.T, db *DB) {
	t.Helper()
	seed(t, db,
		`INSERT INTO colleges VALUES
			(1, 'Alpha Institute', NULL, NULL, NULL, NULL, NULL, NULL),
			(2, 'Beta College', NULL, NULL, NULL, NULL, NULL, NULL)`,
		`INSERT INTO courses VALUES
			(10, 1, 'B.Tech CSE', 'B.Tech', 'CSE', 'Engineering', 4, 800000),
			(11, 2, 'B.Tech CSE', 'B.Tech', 'CSE', 'Engineering', 4, 700000),
			(12, 1, 'B.Tech ECE', 'B.Tech', 'ECE', 'Engineering', 4, 750000),
			(13, 2, 'MBA Finance', 'MBA', 'Finance', 'Management', 2, 900000)`,
		`INSERT INTO comparison_events VALUES
			(10, 11, NOW()), (10, 11, NOW()), (11, 10, NOW()),
			(10, 12, NOW()),
			(12, 13, NOW())`,
	)
}

func TestTopComparisonPairsByType(t *testing.T) {
	db := newTestDB(t)
	seedDiscoveryFixture(t, db)
	ctx := context.Background()

	t.Run("degree_branch", func(t *testing.T) {
		pairs, err := db.TopComparisonPairs(ctx, models.CompareDegreeBranch,
			models.DiscoveryContext{CourseID: 10}, 20)
		if err != nil {
			t.Fatalf("TopComparisonPairs() failed: %v", err)
		}
		if len(pairs) == 0 {
			t.Fatal("expected pairs involving course 10")
		}
		// (10,11) has 2 events in that order; it must lead.
		if pairs[0].Key() != "10:11" || pairs[0].Count != 2 {
			t.Errorf("unexpected top pair: %+v", pairs[0])
		}
		for _, p := range pairs {
			if p.CourseA != 10 && p.CourseB != 10 {
				t.Errorf("pair %+v does not involve the focal course", p)
			}
		}
	})

	t.Run("degree", func(t *testing.T) {
		pairs, err := db.TopComparisonPairs(ctx, models.CompareDegree,
			models.DiscoveryContext{Degree: "B.Tech"}, 20)
		if err != nil {
			t.Fatalf("TopComparisonPairs() failed: %v", err)
		}
		// Only (10,12) crosses branches within B.Tech.
		if len(pairs) != 1 || pairs[0].Key() != "10:12" {
			t.Errorf("unexpected degree pairs: %+v", pairs)
		}
	})

	t.Run("domain", func(t *testing.T) {
		pairs, err := db.TopComparisonPairs(ctx, models.CompareDomain,
			models.DiscoveryContext{Domain: "Engineering"}, 20)
		if err != nil {
			t.Fatalf("TopComparisonPairs() failed: %v", err)
		}
		// All Engineering pairs share the B.Tech degree, so none qualify.
		if len(pairs) != 0 {
			t.Errorf("expected no cross-degree pairs, got %+v", pairs)
		}
	})

	t.Run("college", func(t *testing.T) {
		pairs, err := db.TopComparisonPairs(ctx, models.CompareCollege,
			models.DiscoveryContext{CollegeID: 1, Branch: "CSE"}, 20)
		if err != nil {
			t.Fatalf("TopComparisonPairs() failed: %v", err)
		}
		for _, p := range pairs {
			if p.Key() == "10:11" {
				t.Errorf("focal-branch pair leaked into college discovery: %+v", p)
			}
		}
	})

	t.Run("all", func(t *testing.T) {
		pairs, err := db.TopComparisonPairs(ctx, models.CompareAll, models.DiscoveryContext{}, 20)
		if err != nil {
			t.Fatalf("TopComparisonPairs() failed: %v", err)
		}
		if len(pairs) < 3 {
			t.Errorf("expected every grouped pair, got %+v", pairs)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		if _, err := db.TopComparisonPairs(ctx, models.ComparisonType("bogus"), models.DiscoveryContext{}, 20); err == nil {
			t.Error("expected error for unknown comparison type")
		}
	})
}

func TestExactPairCountAndFallback(t *testing.T) {
	db := newTestDB(t)
	seedDiscoveryFixture(t, db)
	ctx := context.Background()

	count, err := db.ExactPairCount(ctx, 10)
	if err != nil {
		t.Fatalf("ExactPairCount() failed: %v", err)
	}
	// Course 10 pairs with 11 and 12.
	if count != 2 {
		t.Errorf("expected 2 distinct partners, got %d", count)
	}

	pairs, err := db.DegreeBranchFallbackPairs(ctx, models.DiscoveryContext{Degree: "B.Tech", Branch: "CSE"}, 20)
	if err != nil {
		t.Fatalf("DegreeBranchFallbackPairs() failed: %v", err)
	}
	for _, p := range pairs {
		if p.Key() != "10:11" {
			t.Errorf("fallback returned non-CSE pair: %+v", p)
		}
	}
}

func TestEnsureContextAppliesTimeout(t *testing.T) {
	db := newTestDB(t)
	ctx, cancel := db.ensureContext(context.Background())
	defer cancel()
	if _, ok := ctx.Deadline(); !ok {
		t.Error("expected a deadline on the derived context")
	}

	parent, parentCancel := context.WithTimeout(context.Background(), time.Minute)
	defer parentCancel()
	got, cancel2 := db.ensureContext(parent)
	defer cancel2()
	if got != parent {
		t.Error("expected caller deadline to be preserved")
	}
}
