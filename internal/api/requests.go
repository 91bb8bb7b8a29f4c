// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/collegium/collegium/internal/models"
	"github.com/collegium/collegium/internal/validation"
)

// parseComparisonRequest builds a ComparisonRequest from query params.
//
//	ids         required, comma-separated college ids, order = slot order
//	domains     optional, per-position domain sub-selections ("" skips one)
//	courses     optional, per-position course sub-selections
//	start_year  optional int
//	end_year    optional int
//	cache_burst optional bool
//
// domains and courses are positional: the value at index i attaches to the
// entity at index i, so a request can narrow some colleges and not others.
func parseComparisonRequest(r *http.Request) (*models.ComparisonRequest, error) {
	q := r.URL.Query()

	ids, err := parseIDList(q.Get("ids"))
	if err != nil {
		return nil, fmt.Errorf("ids: %w", err)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("ids parameter is required")
	}

	subs, err := parseSubSelections(q, len(ids))
	if err != nil {
		return nil, err
	}

	req := &models.ComparisonRequest{Entities: make([]models.EntityRef, len(ids))}
	for i, id := range ids {
		req.Entities[i] = models.EntityRef{EntityID: id, SubSelectionID: subs[i]}
	}

	if req.StartYear, err = parseOptionalInt(q.Get("start_year")); err != nil {
		return nil, fmt.Errorf("start_year: %w", err)
	}
	if req.EndYear, err = parseOptionalInt(q.Get("end_year")); err != nil {
		return nil, fmt.Errorf("end_year: %w", err)
	}
	req.CacheBurst = q.Get("cache_burst") == "true" || q.Get("cache_burst") == "1"

	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, verr
	}
	return req, nil
}

// parseSubSelections reads whichever positional sub-selection list the
// request carries. domains and courses are mutually exclusive.
func parseSubSelections(q map[string][]string, n int) ([]int64, error) {
	subs := make([]int64, n)
	raw := ""
	if v, ok := q["domains"]; ok && len(v) > 0 {
		raw = v[0]
	}
	if v, ok := q["courses"]; ok && len(v) > 0 {
		if raw != "" {
			return nil, fmt.Errorf("domains and courses cannot both be set")
		}
		raw = v[0]
	}
	if raw == "" {
		return subs, nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("sub-selection count %d does not match entity count %d", len(parts), n)
	}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sub-selection %q", p)
		}
		subs[i] = id
	}
	return subs, nil
}

// parseDiscoveryRequest builds discovery inputs from query params.
func parseDiscoveryRequest(r *http.Request) (models.ComparisonType, models.DiscoveryContext, bool, error) {
	q := r.URL.Query()

	typ := models.ComparisonType(q.Get("type"))
	if typ == "" {
		return "", models.DiscoveryContext{}, false, fmt.Errorf("type parameter is required")
	}

	dctx := models.DiscoveryContext{
		Degree: q.Get("degree"),
		Branch: q.Get("branch"),
		Domain: q.Get("domain"),
	}
	var err error
	if dctx.CourseID, err = parseOptionalInt64(q.Get("course_id")); err != nil {
		return "", models.DiscoveryContext{}, false, fmt.Errorf("course_id: %w", err)
	}
	if dctx.CollegeID, err = parseOptionalInt64(q.Get("college_id")); err != nil {
		return "", models.DiscoveryContext{}, false, fmt.Errorf("college_id: %w", err)
	}
	burst := q.Get("cache_burst") == "true" || q.Get("cache_burst") == "1"

	return typ, dctx, burst, nil
}

// parseIDList parses a comma-separated list of positive int64 ids,
// preserving order and duplicates.
func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseOptionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func parseOptionalInt64(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
