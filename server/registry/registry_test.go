/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/CacheRack/CacheRack/common/cache"
)

func TestCreateLookupRemove(t *testing.T) {
	r := New()
	defer r.Close()

	if err := r.Create("sessions", cache.PolicyLRU, cache.Config{Capacity: 10}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if !r.Exists("sessions") {
		t.Fatalf("expected sessions to exist")
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 cache, got %d", r.Len())
	}

	c, err := r.Lookup("sessions")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	c.Set("k", []byte("v"))
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("expected k to exist")
	}

	if err := r.Remove("sessions"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if r.Exists("sessions") {
		t.Fatalf("expected sessions to be gone")
	}
	if _, err := r.Lookup("sessions"); !errors.Is(err, ErrCacheNotFound) {
		t.Fatalf("expected ErrCacheNotFound, got %v", err)
	}
}

func TestCreateDuplicate(t *testing.T) {
	r := New()
	defer r.Close()

	if err := r.Create("a", cache.PolicyFIFO, cache.Config{Capacity: 5}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := r.Create("a", cache.PolicyLRU, cache.Config{Capacity: 5})
	if !errors.Is(err, ErrCacheAlreadyExists) {
		t.Fatalf("expected ErrCacheAlreadyExists, got %v", err)
	}
}

func TestCreateEmptyName(t *testing.T) {
	r := New()
	defer r.Close()

	if err := r.Create("", cache.PolicyLRU, cache.Config{Capacity: 5}); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestCreateUnknownPolicy(t *testing.T) {
	r := New()
	defer r.Close()

	err := r.Create("a", "arc", cache.Config{Capacity: 5})
	if !errors.Is(err, cache.ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
	if r.Exists("a") {
		t.Fatalf("expected no cache to be registered on error")
	}
}

func TestRemoveMissing(t *testing.T) {
	r := New()
	defer r.Close()

	if err := r.Remove("nope"); !errors.Is(err, ErrCacheNotFound) {
		t.Fatalf("expected ErrCacheNotFound, got %v", err)
	}
}

func TestNamesSorted(t *testing.T) {
	r := New()
	defer r.Close()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := r.Create(name, cache.PolicyLRU, cache.Config{Capacity: 1}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	names := r.Names()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestConcurrentCreateSingleWinner(t *testing.T) {
	r := New()
	defer r.Close()

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs[n] = r.Create("contested", cache.PolicyTTL, cache.Config{
				Capacity:      10,
				TTL:           time.Minute,
				CheckInterval: 10 * time.Millisecond,
			})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else if !errors.Is(err, ErrCacheAlreadyExists) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winner, got %d", wins)
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 cache, got %d", r.Len())
	}
}

func TestHandleValidAfterRemove(t *testing.T) {
	r := New()
	defer r.Close()

	if err := r.Create("h", cache.PolicyLRU, cache.Config{Capacity: 10}); err != nil {
		t.Fatalf("create: %v", err)
	}

	c, err := r.Lookup("h")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	c.Set("k", []byte("v"))

	if err := r.Remove("h"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	// The handle keeps working after the name is gone.
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("expected handle to remain valid after remove")
	}
	c.Set("k2", []byte("v2"))
}

func TestConcurrentMixedOperations(t *testing.T) {
	r := New()
	defer r.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("cache-%d", n)
			for j := 0; j < 50; j++ {
				_ = r.Create(name, cache.PolicyLRU, cache.Config{Capacity: 4})
				if c, err := r.Lookup(name); err == nil {
					c.Set("k", []byte("v"))
					c.Get("k")
				}
				_ = r.Names()
				_ = r.Remove(name)
			}
		}(i)
	}
	wg.Wait()
}
