// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

// Package models defines the domain types shared across the comparison
// engine: colleges, courses, per-facet comparison records, time series
// and discovery pairs.
//
// Missing data is always represented in place: string fields carry the
// literal "NA" and counts carry 0, so every comparison response exposes
// the full record shape for every requested slot. The NewNA* constructors
// build placeholder records matching the resolved-record schema.
package models
