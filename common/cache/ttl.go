/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package cache

import (
	"container/list"
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/CacheRack/CacheRack/common/interfaces"
)

// ttlCache expires entries after a fixed duration. A background sweeper
// removes expired entries on the configured interval, with an optional
// random jitter added per tick so that many ttl caches created together do
// not sweep in lockstep. Get also removes expired entries lazily, so the
// sweeper is a memory bound, not a correctness requirement.
//
// Because the TTL is uniform and overwriting a key refreshes both its value
// and its position, the insertion-ordered list is also expiry-ordered:
// Front = newest, Back = oldest. Capacity eviction takes the oldest entry,
// and the sweeper only needs to scan from the back until it finds a live one.
//
// The cache owns its sweeper goroutine. Call Close to stop it; key
// operations remain valid after Close so handles held by in-flight requests
// are never invalidated.
type ttlCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	interval time.Duration
	jitter   time.Duration
	items    map[string]*list.Element
	order    *list.List
	hits     uint64
	misses   uint64

	// Goroutine ownership
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	closed bool
}

type ttlEntry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

func newTTL(cfg Config) *ttlCache {
	ctx, cancel := context.WithCancel(context.Background())

	c := &ttlCache{
		capacity: cfg.Capacity,
		ttl:      cfg.TTL,
		interval: cfg.CheckInterval,
		jitter:   cfg.Jitter,
		items:    make(map[string]*list.Element),
		order:    list.New(),
		ctx:      ctx,
		cancel:   cancel,
	}

	c.wg.Add(1)
	go c.sweep()

	return c
}

func (c *ttlCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}

	e := el.Value.(*ttlEntry)
	if !time.Now().Before(e.expiresAt) {
		// Lazy expiry: an expired entry is a miss and is removed on sight
		c.order.Remove(el)
		delete(c.items, key)
		c.misses++
		return nil, false
	}

	c.hits++
	return cloneBytes(e.value), true
}

func (c *ttlCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()

	if el, ok := c.items[key]; ok {
		// Overwrite refreshes the expiry and the insertion position,
		// preserving the expiry-ordered list invariant
		e := el.Value.(*ttlEntry)
		e.value = cloneBytes(value)
		e.expiresAt = now.Add(c.ttl)
		c.order.MoveToFront(el)
		return
	}

	// A capacity of 0 never retains anything
	if c.capacity <= 0 {
		return
	}

	if c.order.Len() >= c.capacity {
		c.evictLocked()
	}

	el := c.order.PushFront(&ttlEntry{
		key:       key,
		value:     cloneBytes(value),
		expiresAt: now.Add(c.ttl),
	})
	c.items[key] = el
}

func (c *ttlCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
}

func (c *ttlCache) Stats() interfaces.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return interfaces.CacheStats{
		Hits:     c.hits,
		Misses:   c.misses,
		Size:     len(c.items),
		Capacity: c.capacity,
	}
}

// Close stops the sweeper goroutine and waits for it to exit.
// Close is safe to call multiple times.
func (c *ttlCache) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	cancel := c.cancel
	c.mu.Unlock()

	// Cancel outside the lock so shutdown doesn't block readers/writers
	cancel()
	c.wg.Wait()
}

// evictLocked removes the oldest entry. Caller holds the lock.
func (c *ttlCache) evictLocked() {
	el := c.order.Back()
	if el == nil {
		return
	}
	c.order.Remove(el)
	delete(c.items, el.Value.(*ttlEntry).key)
}

// sweep periodically removes expired entries until Close is called.
func (c *ttlCache) sweep() {
	defer c.wg.Done()

	for {
		timer := time.NewTimer(c.nextInterval())
		select {
		case <-c.ctx.Done():
			timer.Stop()
			return
		case now := <-timer.C:
			c.removeExpired(now)
		}
	}
}

// nextInterval returns the check interval plus a random jitter offset.
func (c *ttlCache) nextInterval() time.Duration {
	if c.jitter <= 0 {
		return c.interval
	}
	return c.interval + rand.N(c.jitter)
}

// removeExpired scans from the oldest end of the list and removes entries
// until it reaches a live one. The list is expiry-ordered, so nothing past
// that point can be expired.
func (c *ttlCache) removeExpired(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for {
		el := c.order.Back()
		if el == nil {
			return
		}
		e := el.Value.(*ttlEntry)
		if now.Before(e.expiresAt) {
			return
		}
		c.order.Remove(el)
		delete(c.items, e.key)
	}
}
