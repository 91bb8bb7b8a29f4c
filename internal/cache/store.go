// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package cache

import (
	"fmt"
	"time"

	"github.com/collegium/collegium/internal/config"
)

// Store is the key/value contract the cache-aside layer runs against.
// Implementations must be safe for concurrent use; writes are
// last-writer-wins per key.
type Store interface {
	// Name identifies the backend for logging and metrics labels.
	Name() string

	// Get returns the value for key, or found=false on a miss or expiry.
	Get(key string) (value []byte, found bool, err error)

	// Set stores value under key with the given TTL.
	Set(key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Close releases backend resources.
	Close() error
}

// NewStore builds the configured Store backend.
func NewStore(cfg *config.CacheConfig) (Store, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemoryStore(cfg.DefaultTTL), nil
	case "badger":
		return NewBadgerStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
