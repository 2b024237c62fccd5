/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package cache

import (
	"testing"
	"time"
)

func TestTTLLazyExpirationOnGet(t *testing.T) {
	// Long check interval so only the lazy path can remove the entry.
	c, err := New(PolicyTTL, Config{
		Capacity:      10,
		TTL:           30 * time.Millisecond,
		CheckInterval: time.Hour,
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer c.Close()

	c.Set("k", []byte("v"))

	if _, ok := c.Get("k"); !ok {
		t.Fatalf("expected k to exist before expiry")
	}

	time.Sleep(80 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected k to be expired and removed on get")
	}
	if s := c.Stats(); s.Size != 0 {
		t.Fatalf("expected expired entry to be removed, size %d", s.Size)
	}
}

func TestTTLBackgroundSweepRemovesWithoutGet(t *testing.T) {
	c, err := New(PolicyTTL, Config{
		Capacity:      10,
		TTL:           20 * time.Millisecond,
		CheckInterval: 10 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer c.Close()

	c.Set("k", []byte("v"))

	// Wait until the sweeper removes it. Use a deadline to avoid flakes.
	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		if c.Stats().Size == 0 {
			return // success
		}
		time.Sleep(5 * time.Millisecond)
	}

	t.Fatalf("expected sweeper to remove expired entry, size %d", c.Stats().Size)
}

func TestTTLSweepWithJitter(t *testing.T) {
	c, err := New(PolicyTTL, Config{
		Capacity:      10,
		TTL:           20 * time.Millisecond,
		CheckInterval: 10 * time.Millisecond,
		Jitter:        10 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer c.Close()

	c.Set("k", []byte("v"))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if c.Stats().Size == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}

	t.Fatalf("expected jittered sweeper to remove expired entry")
}

func TestTTLOverwriteRefreshesExpiry(t *testing.T) {
	c, err := New(PolicyTTL, Config{
		Capacity:      10,
		TTL:           60 * time.Millisecond,
		CheckInterval: time.Hour,
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer c.Close()

	c.Set("k", []byte("v1"))
	time.Sleep(40 * time.Millisecond)

	// The overwrite restarts the clock, so the entry survives past the
	// original deadline.
	c.Set("k", []byte("v2"))
	time.Sleep(40 * time.Millisecond)

	v, ok := c.Get("k")
	if !ok {
		t.Fatalf("expected overwritten entry to survive original expiry")
	}
	if string(v) != "v2" {
		t.Fatalf("expected v2, got %q", v)
	}
}

func TestTTLCapacityEvictsOldest(t *testing.T) {
	c, err := New(PolicyTTL, Config{
		Capacity:      2,
		TTL:           time.Hour,
		CheckInterval: time.Hour,
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer c.Close()

	c.Set("a", []byte("A"))
	c.Set("b", []byte("B"))
	c.Set("c", []byte("C"))

	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected oldest entry a to be evicted")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatalf("expected b to remain")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatalf("expected c to exist")
	}
}

func TestTTLZeroExpiresImmediately(t *testing.T) {
	c, err := New(PolicyTTL, Config{
		Capacity:      10,
		TTL:           0,
		CheckInterval: time.Hour,
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer c.Close()

	c.Set("k", []byte("v"))

	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected zero-ttl entry to be expired on first read")
	}
}

func TestTTLCloseIdempotentAndOpsRemainValid(t *testing.T) {
	c, err := New(PolicyTTL, Config{
		Capacity:      10,
		TTL:           time.Hour,
		CheckInterval: 10 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	c.Set("k", []byte("v"))

	c.Close()
	c.Close()

	// Key operations stay safe after Close so handles held by in-flight
	// requests never blow up; only the sweeper stops.
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("expected k to remain readable after close")
	}
	c.Set("k2", []byte("v2"))
	if _, ok := c.Get("k2"); !ok {
		t.Fatalf("expected set after close to work")
	}
	c.Remove("k")
}
