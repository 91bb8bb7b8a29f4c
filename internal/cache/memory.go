// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package cache

import (
	"sync"
	"time"
)

// entry is a cached item with its expiration.
type entry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore is a thread-safe in-memory Store with TTL support. A
// background goroutine sweeps expired entries every cleanupInterval;
// Close stops it.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    map[string]entry
	defaultTTL time.Duration
	done       chan struct{}
	closeOnce  sync.Once

	stats Stats
}

// Stats tracks cache performance counters.
type Stats struct {
	mu        sync.Mutex
	Hits      int64
	Misses    int64
	Evictions int64
}

const cleanupInterval = 5 * time.Minute

// NewMemoryStore creates a memory-backed Store. defaultTTL applies when
// Set is called with a non-positive TTL.
func NewMemoryStore(defaultTTL time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries:    make(map[string]entry),
		defaultTTL: defaultTTL,
		done:       make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

// Name implements Store.
func (s *MemoryStore) Name() string { return "memory" }

// Get implements Store. Expired entries are removed on read and count as
// misses.
func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	e, exists := s.entries[key]
	s.mu.RUnlock()

	if !exists {
		s.recordMiss()
		return nil, false, nil
	}

	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		s.recordMiss()
		s.recordEviction()
		return nil, false, nil
	}

	s.recordHit()
	return e.data, true, nil
}

// Set implements Store.
func (s *MemoryStore) Set(key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	s.mu.Lock()
	s.entries[key] = entry{
		data:      value,
		expiresAt: time.Now().Add(ttl),
	}
	s.mu.Unlock()
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()

	s.recordEviction()
	return nil
}

// Close stops the background cleanup goroutine.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}

// Len returns the current number of entries, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetStats returns a snapshot of the hit/miss/eviction counters.
func (s *MemoryStore) GetStats() (hits, misses, evictions int64) {
	s.stats.mu.Lock()
	defer s.stats.mu.Unlock()
	return s.stats.Hits, s.stats.Misses, s.stats.Evictions
}

// cleanupLoop periodically removes expired entries until Close.
func (s *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.done:
			return
		}
	}
}

// cleanup removes all expired entries.
func (s *MemoryStore) cleanup() {
	now := time.Now()
	s.mu.Lock()
	evictions := int64(0)
	for key, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, key)
			evictions++
		}
	}
	s.mu.Unlock()

	s.stats.mu.Lock()
	s.stats.Evictions += evictions
	s.stats.mu.Unlock()
}

func (s *MemoryStore) recordHit() {
	s.stats.mu.Lock()
	s.stats.Hits++
	s.stats.mu.Unlock()
}

func (s *MemoryStore) recordMiss() {
	s.stats.mu.Lock()
	s.stats.Misses++
	s.stats.mu.Unlock()
}

func (s *MemoryStore) recordEviction() {
	s.stats.mu.Lock()
	s.stats.Evictions++
	s.stats.mu.Unlock()
}
