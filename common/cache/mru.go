/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package cache

import (
	"container/list"
	"sync"

	"github.com/CacheRack/CacheRack/common/interfaces"
)

// mruCache evicts the most-recently-accessed entry when a new key would
// exceed capacity. Same bookkeeping as lru (Front = most recently used),
// only the eviction end differs.
type mruCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
	hits     uint64
	misses   uint64
}

type mruEntry struct {
	key   string
	value []byte
}

func newMRU(capacity int) *mruCache {
	return &mruCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *mruCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}

	// Reading counts as use
	c.order.MoveToFront(el)
	c.hits++
	return cloneBytes(el.Value.(*mruEntry).value), true
}

func (c *mruCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		// Overwrite counts as use
		el.Value.(*mruEntry).value = cloneBytes(value)
		c.order.MoveToFront(el)
		return
	}

	// A capacity of 0 never retains anything
	if c.capacity <= 0 {
		return
	}

	// Evict the most recently used existing entry before inserting
	if c.order.Len() >= c.capacity {
		c.evictLocked()
	}

	el := c.order.PushFront(&mruEntry{key: key, value: cloneBytes(value)})
	c.items[key] = el
}

func (c *mruCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
}

func (c *mruCache) Stats() interfaces.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return interfaces.CacheStats{
		Hits:     c.hits,
		Misses:   c.misses,
		Size:     len(c.items),
		Capacity: c.capacity,
	}
}

// Close implements interfaces.Cache. The mru variant owns no goroutines.
func (c *mruCache) Close() {}

// evictLocked removes the most-recently-used entry. Caller holds the lock.
func (c *mruCache) evictLocked() {
	el := c.order.Front()
	if el == nil {
		return
	}
	c.order.Remove(el)
	delete(c.items, el.Value.(*mruEntry).key)
}
