/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package cache

import (
	"errors"
	"testing"
	"time"
)

func TestNewKnownPolicies(t *testing.T) {
	for _, policy := range []string{PolicyLRU, PolicyFIFO, PolicyMRU, PolicyTTL} {
		c, err := New(policy, Config{Capacity: 5, TTL: time.Minute})
		if err != nil {
			t.Fatalf("new %s: %v", policy, err)
		}

		s := c.Stats()
		if s.Hits != 0 || s.Misses != 0 || s.Size != 0 {
			t.Fatalf("%s: expected zeroed stats, got %+v", policy, s)
		}
		if s.Capacity != 5 {
			t.Fatalf("%s: expected capacity 5, got %d", policy, s.Capacity)
		}

		c.Close()
	}
}

func TestNewUnknownPolicy(t *testing.T) {
	// Matching is case-sensitive and exact.
	for _, policy := range []string{"LRU", "Lru", "lfu", "random", "", " lru"} {
		c, err := New(policy, Config{Capacity: 5})
		if !errors.Is(err, ErrUnknownPolicy) {
			t.Fatalf("policy %q: expected ErrUnknownPolicy, got %v", policy, err)
		}
		if c != nil {
			t.Fatalf("policy %q: expected nil cache on error", policy)
		}
	}
}

func TestKnownPolicy(t *testing.T) {
	for _, policy := range []string{PolicyLRU, PolicyFIFO, PolicyMRU, PolicyTTL} {
		if !KnownPolicy(policy) {
			t.Fatalf("expected %q to be known", policy)
		}
	}
	for _, policy := range []string{"LRU", "lfu", ""} {
		if KnownPolicy(policy) {
			t.Fatalf("expected %q to be unknown", policy)
		}
	}
}

func TestNewNegativeCapacityClamped(t *testing.T) {
	for _, policy := range []string{PolicyLRU, PolicyFIFO, PolicyMRU, PolicyTTL} {
		c, err := New(policy, Config{Capacity: -3, TTL: time.Minute})
		if err != nil {
			t.Fatalf("new %s: %v", policy, err)
		}

		if got := c.Stats().Capacity; got != 0 {
			t.Fatalf("%s: expected capacity 0, got %d", policy, got)
		}

		// Behaves like a zero-capacity cache: nothing is retained
		c.Set("k", []byte("v"))
		if _, ok := c.Get("k"); ok {
			t.Fatalf("%s: expected nothing retained", policy)
		}
		if got := c.Stats().Size; got != 0 {
			t.Fatalf("%s: expected size 0, got %d", policy, got)
		}

		c.Close()
	}
}

func TestNewTTLDefaultsCheckInterval(t *testing.T) {
	// A zero check interval would stall the sweeper; New substitutes the
	// default rather than constructing a broken instance.
	c, err := New(PolicyTTL, Config{Capacity: 5, TTL: time.Minute})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer c.Close()

	tc, ok := c.(*ttlCache)
	if !ok {
		t.Fatalf("expected *ttlCache, got %T", c)
	}
	if tc.interval != DefaultCheckInterval {
		t.Fatalf("expected default check interval, got %v", tc.interval)
	}
}
