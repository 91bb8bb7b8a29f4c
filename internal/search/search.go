// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

// Package search queries the amenity document index. Facility comparisons
// count exact-match amenity terms in each college's indexed documents;
// any index failure degrades to zero counts rather than failing the
// comparison.
package search

import "context"

// Counter returns per-amenity document counts for one college.
type Counter interface {
	AmenityCounts(ctx context.Context, collegeID int64, amenities []string) (map[string]int64, error)
}
