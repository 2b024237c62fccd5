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

// fifoCache evicts the oldest-inserted entry when a new key would exceed
// capacity. Access order is irrelevant: Get never reorders, and overwriting
// an existing key keeps its original insertion position.
// Front = newest insertion, Back = oldest.
type fifoCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
	hits     uint64
	misses   uint64
}

type fifoEntry struct {
	key   string
	value []byte
}

func newFIFO(capacity int) *fifoCache {
	return &fifoCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *fifoCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}

	c.hits++
	return cloneBytes(el.Value.(*fifoEntry).value), true
}

func (c *fifoCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		// Overwrite in place, insertion position unchanged
		el.Value.(*fifoEntry).value = cloneBytes(value)
		return
	}

	// A capacity of 0 never retains anything
	if c.capacity <= 0 {
		return
	}

	if c.order.Len() >= c.capacity {
		c.evictLocked()
	}

	el := c.order.PushFront(&fifoEntry{key: key, value: cloneBytes(value)})
	c.items[key] = el
}

func (c *fifoCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
}

func (c *fifoCache) Stats() interfaces.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return interfaces.CacheStats{
		Hits:     c.hits,
		Misses:   c.misses,
		Size:     len(c.items),
		Capacity: c.capacity,
	}
}

// Close implements interfaces.Cache. The fifo variant owns no goroutines.
func (c *fifoCache) Close() {}

// evictLocked removes the oldest-inserted entry. Caller holds the lock.
func (c *fifoCache) evictLocked() {
	el := c.order.Back()
	if el == nil {
		return
	}
	c.order.Remove(el)
	delete(c.items, el.Value.(*fifoEntry).key)
}
