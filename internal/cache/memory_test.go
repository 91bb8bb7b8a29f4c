// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package cache

import (
	"testing"
	"time"
)

func TestMemoryStoreBasicOperations(t *testing.T) {
	s := newTestStore(t)

	if err := s.Set("key1", []byte("value1"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, found, err := s.Get("key1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Error("expected key1 to exist")
	}
	if string(value) != "value1" {
		t.Errorf("expected value1, got %s", value)
	}

	if _, found, _ := s.Get("key2"); found {
		t.Error("expected key2 to not exist")
	}
}

func TestMemoryStoreExpiration(t *testing.T) {
	s := newTestStore(t)

	if err := s.Set("key1", []byte("value1"), 50*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found, _ := s.Get("key1"); !found {
		t.Error("expected key1 immediately after set")
	}

	time.Sleep(80 * time.Millisecond)

	if _, found, _ := s.Get("key1"); found {
		t.Error("expected key1 to be expired")
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := newTestStore(t)

	_ = s.Set("key1", []byte("value1"), 0)
	if err := s.Delete("key1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found, _ := s.Get("key1"); found {
		t.Error("expected key1 to be deleted")
	}

	// Deleting an absent key is not an error.
	if err := s.Delete("missing"); err != nil {
		t.Errorf("deleting absent key should succeed, got %v", err)
	}
}

func TestMemoryStoreStats(t *testing.T) {
	s := newTestStore(t)

	_ = s.Set("key1", []byte("value1"), 0)
	_, _, _ = s.Get("key1") // hit
	_, _, _ = s.Get("key2") // miss
	_, _, _ = s.Get("key1") // hit

	hits, misses, _ := s.GetStats()
	if hits != 2 {
		t.Errorf("expected 2 hits, got %d", hits)
	}
	if misses != 1 {
		t.Errorf("expected 1 miss, got %d", misses)
	}
}

func TestMemoryStoreCleanup(t *testing.T) {
	s := newTestStore(t)

	_ = s.Set("stale", []byte("v"), time.Nanosecond)
	_ = s.Set("fresh", []byte("v"), time.Hour)
	time.Sleep(time.Millisecond)

	s.cleanup()

	if s.Len() != 1 {
		t.Errorf("expected 1 entry after cleanup, got %d", s.Len())
	}
	if _, found, _ := s.Get("fresh"); !found {
		t.Error("expected fresh entry to survive cleanup")
	}
}

func TestBadgerStoreRoundTrip(t *testing.T) {
	s, err := NewBadgerStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open badger store: %v", err)
	}
	defer func() { _ = s.Close() }()

	if err := s.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, found, err := s.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found || string(value) != "v" {
		t.Errorf("expected v, got %q found=%v", value, found)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found, _ := s.Get("k"); found {
		t.Error("expected k to be deleted")
	}
}
