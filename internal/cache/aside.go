// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package cache

import (
	"time"

	"github.com/goccy/go-json"

	"github.com/collegium/collegium/internal/logging"
	"github.com/collegium/collegium/internal/metrics"
)

// ComputeFunc produces the value for a cache key on miss or burst.
type ComputeFunc func() ([]byte, error)

// GetOrCompute is the cache-aside read path.
//
// With burst=true the key is deleted first and the value recomputed,
// overwriting any existing entry. Otherwise a hit returns the cached
// bytes and a miss computes them.
//
// Failure behavior:
//   - A store read error falls back to computing directly, uncached.
//   - A compute error propagates and nothing is cached.
//   - Empty compute results are returned but never cached.
//   - A store write error is logged; the computed value is still returned.
func GetOrCompute(store Store, key string, ttl time.Duration, burst bool, compute ComputeFunc) ([]byte, error) {
	backend := store.Name()

	if burst {
		metrics.CacheBursts.Inc()
		if err := store.Delete(key); err != nil {
			metrics.CacheStoreErrors.WithLabelValues(backend, "delete").Inc()
			logging.Warn().Err(err).Str("key", key).Msg("Cache burst delete failed")
		}
	} else {
		data, found, err := store.Get(key)
		if err != nil {
			// Store trouble must never break the read path.
			metrics.CacheStoreErrors.WithLabelValues(backend, "get").Inc()
			logging.Warn().Err(err).Str("key", key).Msg("Cache read failed, computing uncached")
			return compute()
		}
		if found {
			metrics.CacheHits.WithLabelValues(backend).Inc()
			return data, nil
		}
		metrics.CacheMisses.WithLabelValues(backend).Inc()
	}

	data, err := compute()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return data, nil
	}

	if err := store.Set(key, data, ttl); err != nil {
		metrics.CacheStoreErrors.WithLabelValues(backend, "set").Inc()
		logging.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
	return data, nil
}

// Cached wraps GetOrCompute with JSON marshaling for typed payloads.
// The compute function's result is marshaled before caching; cached bytes
// are unmarshaled back into T on a hit.
func Cached[T any](store Store, key string, ttl time.Duration, burst bool, compute func() (T, error)) (T, error) {
	var zero T

	data, err := GetOrCompute(store, key, ttl, burst, func() ([]byte, error) {
		value, err := compute()
		if err != nil {
			return nil, err
		}
		return json.Marshal(value)
	})
	if err != nil {
		return zero, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return zero, err
	}
	return value, nil
}
