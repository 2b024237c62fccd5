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

// lruCache evicts the least-recently-accessed entry when a new key would
// exceed capacity. A map gives O(1) key lookup and a doubly-linked list
// maintains recency ordering: Front = most recently used, Back = least.
type lruCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
	hits     uint64
	misses   uint64
}

// lruEntry is the value stored in the list elements. The key is kept here
// because eviction starts from list nodes.
type lruEntry struct {
	key   string
	value []byte
}

func newLRU(capacity int) *lruCache {
	return &lruCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *lruCache) Get(key string) ([]byte, bool) {
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
	return cloneBytes(el.Value.(*lruEntry).value), true
}

func (c *lruCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		// Overwrite counts as use
		el.Value.(*lruEntry).value = cloneBytes(value)
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

	el := c.order.PushFront(&lruEntry{key: key, value: cloneBytes(value)})
	c.items[key] = el
}

func (c *lruCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
}

func (c *lruCache) Stats() interfaces.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return interfaces.CacheStats{
		Hits:     c.hits,
		Misses:   c.misses,
		Size:     len(c.items),
		Capacity: c.capacity,
	}
}

// Close implements interfaces.Cache. The lru variant owns no goroutines.
func (c *lruCache) Close() {}

// evictLocked removes the least-recently-used entry. Caller holds the lock.
func (c *lruCache) evictLocked() {
	el := c.order.Back()
	if el == nil {
		return
	}
	c.order.Remove(el)
	delete(c.items, el.Value.(*lruEntry).key)
}
