// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package compare

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/collegium/collegium/internal/cache"
	"github.com/collegium/collegium/internal/config"
	"github.com/collegium/collegium/internal/database"
	"github.com/collegium/collegium/internal/insight"
	"github.com/collegium/collegium/internal/logging"
	"github.com/collegium/collegium/internal/models"
	"github.com/collegium/collegium/internal/search"
)

// DataSource is the slice of the database layer the comparison service
// consumes. *database.DB satisfies it; tests substitute fakes.
type DataSource interface {
	RankedColleges(ctx context.Context, year int) ([]database.RankedCollegeRow, error)
	PlacementAggregates(ctx context.Context, collegeIDs []int64) (map[int64]database.PlacementAggRow, error)
	PlacementSeries(ctx context.Context, collegeIDs []int64, startYear, endYear int, domainOnly bool) ([]database.PlacementSeriesRow, error)
	Fees(ctx context.Context, courseIDs []int64) (map[int64]database.FeeRow, error)
	Demographics(ctx context.Context, collegeIDs []int64) (map[int64]database.DemographicsRow, error)
	ReviewAggregates(ctx context.Context, collegeIDs []int64) (map[int64]database.ReviewAggRow, error)
	CollegesByIDs(ctx context.Context, ids []int64) (map[int64]models.College, error)
	CoursesByIDs(ctx context.Context, ids []int64) (map[int64]models.Course, error)
	TopComparisonPairs(ctx context.Context, typ models.ComparisonType, dctx models.DiscoveryContext, limit int) ([]models.ComparisonPair, error)
	DegreeBranchFallbackPairs(ctx context.Context, dctx models.DiscoveryContext, limit int) ([]models.ComparisonPair, error)
	ExactPairCount(ctx context.Context, courseID int64) (int64, error)
}

// Service implements the facet comparison operations. Every operation
// validates first, then runs through the cache-aside path, so malformed
// requests never touch the cache and empty cohorts are never stored.
type Service struct {
	db         DataSource
	store      cache.Store
	summarizer insight.Summarizer
	counter    search.Counter
	cfg        *config.CompareConfig
	cacheTTL   time.Duration
}

// NewService wires the comparison service. summarizer and counter may be
// nil; the review and facility facets then degrade to their defaults.
func NewService(db DataSource, store cache.Store, summarizer insight.Summarizer, counter search.Counter, cfg *config.CompareConfig, cacheTTL time.Duration) *Service {
	return &Service{
		db:         db,
		store:      store,
		summarizer: summarizer,
		counter:    counter,
		cfg:        cfg,
		cacheTTL:   cacheTTL,
	}
}

// validateEntities checks the shared request shape. With needSub set,
// every entity must carry a sub-selection (e.g. a course id for fees).
func validateEntities(req *models.ComparisonRequest, needSub bool) error {
	if len(req.Entities) == 0 {
		return NewValidationError("entities", "at least one entity is required")
	}
	for i, e := range req.Entities {
		if e.EntityID <= 0 {
			return NewValidationError("entities", "entity ids must be positive")
		}
		if needSub && e.SubSelectionID <= 0 {
			return NewValidationError("entities",
				"entity at position "+strconv.Itoa(i+1)+" is missing its course selection")
		}
	}
	return nil
}

// keyArgs flattens the request identity into cache key arguments. Order
// matters: the same entities in a different order are a different key.
func keyArgs(req *models.ComparisonRequest, extra ...interface{}) []interface{} {
	args := make([]interface{}, 0, len(req.Entities)*2+len(extra))
	for _, e := range req.Entities {
		args = append(args, e.EntityID, e.SubSelectionID)
	}
	return append(args, extra...)
}

// CompareRankings returns NIRF ranking rows for the requested colleges in
// the engine's current year, with competition-ranked positions inside the
// state and ownership cohorts.
func (s *Service) CompareRankings(ctx context.Context, req *models.ComparisonRequest) (map[string]models.RankingRecord, error) {
	if err := validateEntities(req, false); err != nil {
		return nil, err
	}
	key := cache.GenerateKey("compare:rankings", keyArgs(req, s.cfg.CurrentYear)...)
	return cache.Cached(s.store, key, s.cacheTTL, req.CacheBurst, func() (map[string]models.RankingRecord, error) {
		return s.fetchRankings(ctx, req)
	})
}

func (s *Service) fetchRankings(ctx context.Context, req *models.ComparisonRequest) (map[string]models.RankingRecord, error) {
	cohort, err := s.db.RankedColleges(ctx, s.cfg.CurrentYear)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]database.RankedCollegeRow, len(cohort))
	stateRows := make([]RankedRow, 0, len(cohort))
	ownerRows := make([]RankedRow, 0, len(cohort))
	for _, row := range cohort {
		byID[row.CollegeID] = row
		basis := float64(row.Rank)
		stateRows = append(stateRows, RankedRow{EntityID: row.CollegeID, CohortKey: row.State, RankBasis: basis})
		ownerRows = append(ownerRows, RankedRow{EntityID: row.CollegeID, CohortKey: row.Ownership, RankBasis: basis})
	}

	ids := req.EntityIDs()
	found := false
	for _, id := range ids {
		if _, ok := byID[id]; ok {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNoDataAvailable
	}

	stateRanks := ComputeCohortRanks(stateRows)
	ownerRanks := ComputeCohortRanks(ownerRows)

	records := make(map[int64]models.RankingRecord, len(ids))
	for _, id := range ids {
		row, ok := byID[id]
		if !ok {
			continue
		}
		records[id] = models.RankingRecord{
			CollegeID:     id,
			CollegeName:   row.CollegeName,
			NIRFRank:      models.IntOrNA(row.Rank),
			Score:         models.ScoreOrNA(row.Score),
			State:         stringOrNA(row.State),
			Ownership:     stringOrNA(row.Ownership),
			StateRank:     CohortRankOrNA(stateRanks, id),
			OwnershipRank: CohortRankOrNA(ownerRanks, id),
		}
	}
	return AlignSlots("college", ids, records, models.NewNARankingRecord), nil
}

// ComparePlacements returns aligned placement aggregates plus the overall
// and domain-specific year series over the fixed multi-year window.
func (s *Service) ComparePlacements(ctx context.Context, req *models.ComparisonRequest) (*models.PlacementComparison, error) {
	if err := validateEntities(req, false); err != nil {
		return nil, err
	}
	if err := ValidateSeriesSpan(req.StartYear, req.EndYear, s.cfg.SeriesYears); err != nil {
		return nil, err
	}
	key := cache.GenerateKey("compare:placements", keyArgs(req, req.StartYear, req.EndYear)...)
	return cache.Cached(s.store, key, s.cacheTTL, req.CacheBurst, func() (*models.PlacementComparison, error) {
		return s.fetchPlacements(ctx, req)
	})
}

func (s *Service) fetchPlacements(ctx context.Context, req *models.ComparisonRequest) (*models.PlacementComparison, error) {
	ids := req.EntityIDs()
	subs := req.SubSelections()

	var (
		aggs        map[int64]database.PlacementAggRow
		overallRows []database.PlacementSeriesRow
		domainRows  []database.PlacementSeriesRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		aggs, err = s.db.PlacementAggregates(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		overallRows, err = s.db.PlacementSeries(gctx, ids, req.StartYear, req.EndYear, false)
		return err
	})
	g.Go(func() error {
		var err error
		domainRows, err = s.db.PlacementSeries(gctx, ids, req.StartYear, req.EndYear, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(aggs) == 0 {
		return nil, ErrNoDataAvailable
	}

	records := make(map[int64]models.PlacementRecord, len(aggs))
	for id, a := range aggs {
		records[id] = models.PlacementRecord{
			CollegeID:      id,
			CollegeName:    a.CollegeName,
			PlacementRate:  models.FloatOrNA(a.PlacementRate),
			MedianPackage:  models.FloatOrNA(a.MedianPackage),
			HighestPackage: models.FloatOrNA(a.HighestPackage),
			RecruiterCount: a.RecruiterCount,
		}
	}

	overall := BuildSeries("college", seriesInputs(ids, nil, overallRows), req.StartYear, req.EndYear)
	domain := BuildSeries("college", seriesInputs(ids, subs, domainRows), req.StartYear, req.EndYear)

	return &models.PlacementComparison{
		Slots:     AlignSlots("college", ids, records, models.NewNAPlacementRecord),
		Overall:   overall,
		Domain:    domain,
		StartYear: req.StartYear,
		EndYear:   req.EndYear,
	}, nil
}

// seriesInputs folds raw series rows into one SeriesInput per entity, in
// request order. With subs set, only rows matching each entity's selected
// domain contribute; everything else stays NA.
func seriesInputs(ids []int64, subs map[int64]int64, rows []database.PlacementSeriesRow) []SeriesInput {
	values := make(map[int64]map[int]string, len(ids))
	for _, id := range ids {
		values[id] = make(map[int]string)
	}
	for _, r := range rows {
		m, ok := values[r.CollegeID]
		if !ok {
			continue
		}
		if subs != nil && r.DomainID != subs[r.CollegeID] {
			continue
		}
		m[r.Year] = models.FloatOrNA(r.Rate)
	}

	inputs := make([]SeriesInput, len(ids))
	for i, id := range ids {
		inputs[i] = SeriesInput{
			EntityID:       id,
			SubSelectionID: subs[id],
			Values:         values[id],
		}
	}
	return inputs
}

// CompareFees returns fee breakdowns for the requested course selections.
// Entities are colleges; each must carry a course sub-selection.
func (s *Service) CompareFees(ctx context.Context, req *models.ComparisonRequest) (map[string]models.FeeRecord, error) {
	if err := validateEntities(req, true); err != nil {
		return nil, err
	}
	key := cache.GenerateKey("compare:fees", keyArgs(req)...)
	return cache.Cached(s.store, key, s.cacheTTL, req.CacheBurst, func() (map[string]models.FeeRecord, error) {
		return s.fetchFees(ctx, req)
	})
}

func (s *Service) fetchFees(ctx context.Context, req *models.ComparisonRequest) (map[string]models.FeeRecord, error) {
	courseIDs := make([]int64, len(req.Entities))
	for i, e := range req.Entities {
		courseIDs[i] = e.SubSelectionID
	}

	rows, err := s.db.Fees(ctx, courseIDs)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoDataAvailable
	}

	records := make(map[int64]models.FeeRecord, len(rows))
	for id, r := range rows {
		records[id] = models.FeeRecord{
			CollegeID:   r.CollegeID,
			CourseID:    r.CourseID,
			CollegeName: r.CollegeName,
			CourseName:  r.CourseName,
			TuitionFee:  models.FloatOrNA(r.TuitionFee),
			HostelFee:   models.FloatOrNA(r.HostelFee),
			OneTimeFee:  models.FloatOrNA(r.OneTimeFee),
			TotalFee:    totalFee(r.TuitionFee, r.HostelFee, r.OneTimeFee),
		}
	}
	return AlignSlots("course", courseIDs, records, models.NewNAFeeRecord), nil
}

// totalFee sums the available components. All-absent yields NA rather
// than a misleading zero.
func totalFee(components ...float64) string {
	total := 0.0
	any := false
	for _, c := range components {
		if c >= 0 {
			total += c
			any = true
		}
	}
	if !any {
		return models.NA
	}
	return models.FloatOrNA(total)
}

// CompareDemographics returns aligned student intake profiles.
func (s *Service) CompareDemographics(ctx context.Context, req *models.ComparisonRequest) (map[string]models.DemographicsRecord, error) {
	if err := validateEntities(req, false); err != nil {
		return nil, err
	}
	key := cache.GenerateKey("compare:demographics", keyArgs(req)...)
	return cache.Cached(s.store, key, s.cacheTTL, req.CacheBurst, func() (map[string]models.DemographicsRecord, error) {
		return s.fetchDemographics(ctx, req)
	})
}

func (s *Service) fetchDemographics(ctx context.Context, req *models.ComparisonRequest) (map[string]models.DemographicsRecord, error) {
	ids := req.EntityIDs()
	rows, err := s.db.Demographics(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoDataAvailable
	}

	records := make(map[int64]models.DemographicsRecord, len(rows))
	for id, r := range rows {
		records[id] = models.DemographicsRecord{
			CollegeID:       id,
			CollegeName:     r.CollegeName,
			TotalStudents:   r.TotalStudents,
			MalePercent:     models.FloatOrNA(r.MalePercent),
			FemalePercent:   models.FloatOrNA(r.FemalePercent),
			OutOfStateShare: models.FloatOrNA(r.OutOfStateShare),
			FacultyCount:    r.FacultyCount,
		}
	}
	return AlignSlots("college", ids, records, models.NewNADemographicsRecord), nil
}

// CompareReviews returns aligned review aggregates, each enriched by the
// insight summarizer. Enrichment failure for one college leaves its
// defaults and never fails the comparison.
func (s *Service) CompareReviews(ctx context.Context, req *models.ComparisonRequest) (map[string]models.ReviewRecord, error) {
	if err := validateEntities(req, false); err != nil {
		return nil, err
	}
	key := cache.GenerateKey("compare:reviews", keyArgs(req)...)
	return cache.Cached(s.store, key, s.cacheTTL, req.CacheBurst, func() (map[string]models.ReviewRecord, error) {
		return s.fetchReviews(ctx, req)
	})
}

func (s *Service) fetchReviews(ctx context.Context, req *models.ComparisonRequest) (map[string]models.ReviewRecord, error) {
	ids := req.EntityIDs()
	rows, err := s.db.ReviewAggregates(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoDataAvailable
	}

	// Results land in identity-keyed slots, never by completion order.
	records := make(map[int64]models.ReviewRecord, len(rows))
	for id, r := range rows {
		records[id] = models.ReviewRecord{
			CollegeID:     id,
			CollegeName:   r.CollegeName,
			AverageRating: models.FloatOrNA(r.AvgRating),
			ReviewCount:   r.ReviewCount,
			MostDiscussed: []string{},
			ShortSummary:  models.NA,
		}
	}

	if s.summarizer != nil {
		var mu sync.Mutex
		var g errgroup.Group
		g.SetLimit(len(rows))
		for id, r := range rows {
			id, r := id, r
			g.Go(func() error {
				ins, err := s.summarizer.Summarize(ctx, r.ReviewText, r.CollegeName)
				if err != nil {
					logging.Ctx(ctx).Warn().Err(err).Int64("college_id", id).
						Msg("review summarization failed, using defaults")
					return nil
				}
				mu.Lock()
				rec := records[id]
				rec.MostDiscussed = ins.MostDiscussedAttributes
				rec.ShortSummary = ins.ShortSummary
				records[id] = rec
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()
	}

	return AlignSlots("college", ids, records, models.NewNAReviewRecord), nil
}

// CompareFacilities returns per-college amenity counts from the document
// index. Index failures degrade to zero counts for the affected college.
func (s *Service) CompareFacilities(ctx context.Context, req *models.ComparisonRequest) (map[string]models.FacilityRecord, error) {
	if err := validateEntities(req, false); err != nil {
		return nil, err
	}
	key := cache.GenerateKey("compare:facilities", keyArgs(req)...)
	return cache.Cached(s.store, key, s.cacheTTL, req.CacheBurst, func() (map[string]models.FacilityRecord, error) {
		return s.fetchFacilities(ctx, req)
	})
}

func (s *Service) fetchFacilities(ctx context.Context, req *models.ComparisonRequest) (map[string]models.FacilityRecord, error) {
	ids := req.EntityIDs()
	colleges, err := s.db.CollegesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(colleges) == 0 {
		return nil, ErrNoDataAvailable
	}

	records := make(map[int64]models.FacilityRecord, len(colleges))
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(len(colleges))
	for id, c := range colleges {
		id, c := id, c
		g.Go(func() error {
			rec := models.NewNAFacilityRecord(id, s.cfg.Amenities)
			rec.CollegeName = c.Name
			if s.counter != nil {
				counts, err := s.counter.AmenityCounts(ctx, id, s.cfg.Amenities)
				if err != nil {
					logging.Ctx(ctx).Warn().Err(err).Int64("college_id", id).
						Msg("amenity lookup failed, using zero counts")
				} else {
					rec.Amenities = counts
				}
			}
			mu.Lock()
			records[id] = rec
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	naRecord := func(id int64) models.FacilityRecord {
		return models.NewNAFacilityRecord(id, s.cfg.Amenities)
	}
	return AlignSlots("college", ids, records, naRecord), nil
}

func stringOrNA(s *string) string {
	if s == nil || *s == "" {
		return models.NA
	}
	return *s
}
