// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package compare

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/collegium/collegium/internal/cache"
	"github.com/collegium/collegium/internal/logging"
	"github.com/collegium/collegium/internal/metrics"
	"github.com/collegium/collegium/internal/models"
)

// DiscoverComparisons returns the most popular comparison pairs for one
// discovery type, fully enriched. The pipeline fetches raw pairs, dedups
// order-insensitive duplicates, bulk-resolves every referenced course and
// college, enriches on a bounded pool and truncates to the result limit.
func (s *Service) DiscoverComparisons(ctx context.Context, typ models.ComparisonType, dctx models.DiscoveryContext, burst bool) ([]models.EnrichedPair, error) {
	if !typ.Valid() {
		return nil, NewValidationError("type", fmt.Sprintf("unknown comparison type %q", typ))
	}
	if typ == models.CompareAll {
		return nil, NewValidationError("type", "use DiscoverAllComparisons for the all type")
	}

	key := cache.GenerateKey("discovery", string(typ),
		dctx.CourseID, dctx.CollegeID, dctx.Degree, dctx.Branch, dctx.Domain)
	return cache.Cached(s.store, key, s.cacheTTL, burst, func() ([]models.EnrichedPair, error) {
		return s.discover(ctx, typ, dctx)
	})
}

// DiscoverAllComparisons runs every discovery type concurrently and
// returns the per-type results. A failing branch fails the whole call.
func (s *Service) DiscoverAllComparisons(ctx context.Context, dctx models.DiscoveryContext, burst bool) (map[models.ComparisonType][]models.EnrichedPair, error) {
	types := []models.ComparisonType{
		models.CompareDegreeBranch,
		models.CompareDegree,
		models.CompareDomain,
		models.CompareCollege,
	}

	results := make(map[models.ComparisonType][]models.EnrichedPair, len(types))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, typ := range types {
		typ := typ
		g.Go(func() error {
			pairs, err := s.DiscoverComparisons(gctx, typ, dctx, burst)
			if err != nil {
				return fmt.Errorf("discovery type %s failed: %w", typ, err)
			}
			mu.Lock()
			results[typ] = pairs
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) discover(ctx context.Context, typ models.ComparisonType, dctx models.DiscoveryContext) ([]models.EnrichedPair, error) {
	pairs, err := s.fetchPairs(ctx, typ, dctx)
	if err != nil {
		return nil, err
	}
	metrics.DiscoveryPairsFetched.WithLabelValues(string(typ)).Add(float64(len(pairs)))

	pairs = dedupPairs(pairs)
	if len(pairs) == 0 {
		return []models.EnrichedPair{}, nil
	}

	courses, colleges, err := s.resolvePairRefs(ctx, pairs)
	if err != nil {
		return nil, err
	}

	enriched := s.enrichPairs(ctx, pairs, courses, colleges, dctx)
	if limit := s.cfg.DiscoveryResultLimit; limit > 0 && len(enriched) > limit {
		enriched = enriched[:limit]
	}
	return enriched, nil
}

// fetchPairs pulls the raw frequency-ranked pairs. For degree_branch the
// exact focal-course pool is preferred; a shallow pool falls back to the
// whole degree+branch cohort.
func (s *Service) fetchPairs(ctx context.Context, typ models.ComparisonType, dctx models.DiscoveryContext) ([]models.ComparisonPair, error) {
	limit := s.cfg.DiscoveryFetchLimit
	if typ == models.CompareDegreeBranch {
		count, err := s.db.ExactPairCount(ctx, dctx.CourseID)
		if err != nil {
			return nil, err
		}
		if count < int64(s.cfg.DiscoveryResultLimit) {
			return s.db.DegreeBranchFallbackPairs(ctx, dctx, limit)
		}
	}
	return s.db.TopComparisonPairs(ctx, typ, dctx, limit)
}

// dedupPairs collapses (A,B) and (B,A) into one entry. Input is sorted
// descending by count, so keeping the first occurrence keeps the most
// frequent orientation.
func dedupPairs(pairs []models.ComparisonPair) []models.ComparisonPair {
	seen := make(map[string]struct{}, len(pairs))
	out := pairs[:0]
	for _, p := range pairs {
		k := p.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}

// resolvePairRefs bulk-resolves every course and college the pairs touch,
// one IN query per table.
func (s *Service) resolvePairRefs(ctx context.Context, pairs []models.ComparisonPair) (map[int64]models.Course, map[int64]models.College, error) {
	courseIDSet := make(map[int64]struct{}, len(pairs)*2)
	for _, p := range pairs {
		courseIDSet[p.CourseA] = struct{}{}
		courseIDSet[p.CourseB] = struct{}{}
	}
	courseIDs := make([]int64, 0, len(courseIDSet))
	for id := range courseIDSet {
		courseIDs = append(courseIDs, id)
	}

	courses, err := s.db.CoursesByIDs(ctx, courseIDs)
	if err != nil {
		return nil, nil, err
	}

	collegeIDSet := make(map[int64]struct{}, len(courses))
	for _, c := range courses {
		collegeIDSet[c.CollegeID] = struct{}{}
	}
	collegeIDs := make([]int64, 0, len(collegeIDSet))
	for id := range collegeIDSet {
		collegeIDs = append(collegeIDs, id)
	}

	colleges, err := s.db.CollegesByIDs(ctx, collegeIDs)
	if err != nil {
		return nil, nil, err
	}
	return courses, colleges, nil
}

// enrichPairs builds the resolved pairs on a bounded pool. A pair that
// fails to enrich gets NA sides and never aborts its siblings. Results
// land in their input positions regardless of completion order.
func (s *Service) enrichPairs(ctx context.Context, pairs []models.ComparisonPair, courses map[int64]models.Course, colleges map[int64]models.College, dctx models.DiscoveryContext) []models.EnrichedPair {
	workers := enrichmentPoolSize(len(pairs), s.cfg.EnrichmentMaxWorkers)
	metrics.EnrichmentPoolSize.Set(float64(workers))

	enriched := make([]models.EnrichedPair, len(pairs))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			first, errA := resolveSide(p.CourseA, courses, colleges)
			second, errB := resolveSide(p.CourseB, courses, colleges)
			if errA != nil || errB != nil {
				metrics.DiscoveryEnrichmentFailures.Inc()
				logging.Ctx(ctx).Warn().
					Int64("course_a", p.CourseA).Int64("course_b", p.CourseB).
					Msg("pair enrichment incomplete, emitting placeholders")
			}
			// Focal college always occupies the first slot.
			if dctx.CollegeID != 0 && second.CollegeID == dctx.CollegeID && first.CollegeID != dctx.CollegeID {
				first, second = second, first
			}
			if dctx.CourseID != 0 && second.CourseID == dctx.CourseID {
				first, second = second, first
			}
			enriched[i] = models.EnrichedPair{First: first, Second: second, Count: p.Count}
			return nil
		})
	}
	_ = g.Wait()
	return enriched
}

// resolveSide builds one PairSide from the bulk-resolved maps. Missing
// references degrade to NA fields rather than dropping the pair.
func resolveSide(courseID int64, courses map[int64]models.Course, colleges map[int64]models.College) (models.PairSide, error) {
	course, ok := courses[courseID]
	if !ok {
		return models.PairSide{
			CourseID:    courseID,
			CourseName:  models.NA,
			Degree:      models.NA,
			Branch:      models.NA,
			CollegeName: models.NA,
			LogoURL:     models.NA,
		}, fmt.Errorf("course %d not resolved", courseID)
	}

	side := models.PairSide{
		CourseID:   courseID,
		CourseName: course.Name,
		Degree:     course.Degree,
		Branch:     course.Branch,
		CollegeID:  course.CollegeID,
	}
	college, ok := colleges[course.CollegeID]
	if !ok {
		side.CollegeName = models.NA
		side.LogoURL = models.NA
		return side, fmt.Errorf("college %d not resolved", course.CollegeID)
	}
	side.CollegeName = college.Name
	side.LogoURL = college.LogoURL
	return side, nil
}

// enrichmentPoolSize bounds the enrichment pool: never more workers than
// pairs, never more than the configured maximum, and a small default when
// the pair count is unknown.
func enrichmentPoolSize(pairCount, maxWorkers int) int {
	if maxWorkers <= 0 {
		maxWorkers = 32
	}
	if pairCount <= 0 {
		if maxWorkers < 8 {
			return maxWorkers
		}
		return 8
	}
	if pairCount < maxWorkers {
		return pairCount
	}
	return maxWorkers
}
