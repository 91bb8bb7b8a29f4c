// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

// Package cache implements the cache-aside layer for comparison payloads.
//
// It provides:
//   - GenerateKey: deterministic hashing of ordered arguments into a key
//   - Store: a TTL key/value interface with memory and badger backends
//   - GetOrCompute / Cached: the cache-aside read path with burst refresh
//
// The read path never depends on store health: a failing store degrades to
// direct computation. Errors and empty results are never cached.
//
// There is no single-flight coordination: concurrent misses on the same
// key may each invoke the compute function. Staleness is bounded by TTL
// and writes are last-writer-wins per key.
package cache
