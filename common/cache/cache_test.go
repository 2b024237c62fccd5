/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package cache

import (
	"testing"
)

func TestLRUEviction(t *testing.T) {
	c, err := New(PolicyLRU, Config{Capacity: 2})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer c.Close()

	c.Set("a", []byte("A"))
	c.Set("b", []byte("B"))

	// Touch a so b becomes the LRU entry.
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected a to exist")
	}

	// Insert c => should evict b.
	c.Set("c", []byte("C"))

	if _, ok := c.Get("b"); ok {
		t.Fatalf("expected b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected a to remain")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatalf("expected c to exist")
	}
}

func TestLRUOverwriteCountsAsUse(t *testing.T) {
	c, err := New(PolicyLRU, Config{Capacity: 2})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer c.Close()

	c.Set("a", []byte("A"))
	c.Set("b", []byte("B"))

	// Overwriting a makes b the LRU entry.
	c.Set("a", []byte("A2"))
	c.Set("c", []byte("C"))

	if _, ok := c.Get("b"); ok {
		t.Fatalf("expected b to be evicted")
	}
	v, ok := c.Get("a")
	if !ok {
		t.Fatalf("expected a to remain")
	}
	if string(v) != "A2" {
		t.Fatalf("expected overwritten value A2, got %q", v)
	}
}

func TestFIFOEviction(t *testing.T) {
	c, err := New(PolicyFIFO, Config{Capacity: 2})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer c.Close()

	c.Set("a", []byte("A"))
	c.Set("b", []byte("B"))

	// Access must not change fifo order.
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected a to exist")
	}

	// Insert c => a is the oldest insertion and must go.
	c.Set("c", []byte("C"))

	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected a to be evicted")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatalf("expected b to remain")
	}
}

func TestFIFOOverwriteKeepsPosition(t *testing.T) {
	c, err := New(PolicyFIFO, Config{Capacity: 2})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer c.Close()

	c.Set("a", []byte("A"))
	c.Set("b", []byte("B"))

	// Overwriting a must not refresh its insertion position.
	c.Set("a", []byte("A2"))
	c.Set("c", []byte("C"))

	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected a to be evicted despite overwrite")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatalf("expected b to remain")
	}
}

func TestMRUEviction(t *testing.T) {
	c, err := New(PolicyMRU, Config{Capacity: 2})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer c.Close()

	c.Set("a", []byte("A"))
	c.Set("b", []byte("B"))

	// Touch a so it becomes the MRU entry and the next eviction victim.
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected a to exist")
	}

	c.Set("c", []byte("C"))

	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected a to be evicted")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatalf("expected b to remain")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatalf("expected c to exist")
	}
}

func TestRemoveAndStats(t *testing.T) {
	c, err := New(PolicyLRU, Config{Capacity: 10})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer c.Close()

	c.Set("a", []byte("A"))
	c.Set("b", []byte("B"))

	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected a to exist")
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatalf("expected missing to be absent")
	}

	c.Remove("a")
	c.Remove("never-existed") // must be a no-op

	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected a to be removed")
	}

	s := c.Stats()
	if s.Hits != 1 {
		t.Fatalf("expected 1 hit, got %d", s.Hits)
	}
	// The failed lookup plus the post-remove lookup.
	if s.Misses != 2 {
		t.Fatalf("expected 2 misses, got %d", s.Misses)
	}
	if s.Size != 1 {
		t.Fatalf("expected size 1, got %d", s.Size)
	}
	if s.Capacity != 10 {
		t.Fatalf("expected capacity 10, got %d", s.Capacity)
	}
}

func TestZeroCapacityRetainsNothing(t *testing.T) {
	for _, policy := range []string{PolicyLRU, PolicyFIFO, PolicyMRU, PolicyTTL} {
		c, err := New(policy, Config{Capacity: 0, TTL: DefaultTTL})
		if err != nil {
			t.Fatalf("new %s: %v", policy, err)
		}

		c.Set("k", []byte("v"))
		if _, ok := c.Get("k"); ok {
			t.Fatalf("%s: expected zero-capacity cache to retain nothing", policy)
		}
		if s := c.Stats(); s.Size != 0 {
			t.Fatalf("%s: expected size 0, got %d", policy, s.Size)
		}

		c.Close()
	}
}

func TestValuesAreCopied(t *testing.T) {
	c, err := New(PolicyLRU, Config{Capacity: 10})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer c.Close()

	buf := []byte("original")
	c.Set("k", buf)
	buf[0] = 'X'

	v, ok := c.Get("k")
	if !ok {
		t.Fatalf("expected k to exist")
	}
	if string(v) != "original" {
		t.Fatalf("stored value aliases caller buffer: %q", v)
	}

	// Mutating the returned slice must not affect the stored value either.
	v[0] = 'Y'
	v2, _ := c.Get("k")
	if string(v2) != "original" {
		t.Fatalf("returned value aliases cache storage: %q", v2)
	}
}
