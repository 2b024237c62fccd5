/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package registry maintains the named cache instances owned by the server.
// All operations are safe for concurrent use. A handle returned by Lookup
// remains valid even if the cache is removed from the registry afterwards:
// removal only detaches the name and stops the instance's background work,
// it never invalidates in-flight operations.
package registry

import (
	"errors"
	"sort"
	"sync"

	"github.com/CacheRack/CacheRack/common/cache"
	"github.com/CacheRack/CacheRack/common/interfaces"
)

var (
	ErrCacheNotFound      = errors.New("cache not found")
	ErrCacheAlreadyExists = errors.New("cache already exists")
	ErrEmptyName          = errors.New("cache name cannot be empty")
)

// Registry maps cache names to live instances
type Registry struct {
	mu     sync.RWMutex
	caches map[string]interfaces.Cache
}

// New returns an empty registry
func New() *Registry {
	return &Registry{
		caches: make(map[string]interfaces.Cache),
	}
}

// Create constructs a cache for the given policy and registers it under
// name. The instance is built before the lock is taken so construction cost
// (including sweeper startup for ttl caches) never blocks other operations;
// if another request wins the race for the same name, the losing instance
// is closed and ErrCacheAlreadyExists is returned.
func (r *Registry) Create(name string, policy string, cfg cache.Config) error {
	if name == "" {
		return ErrEmptyName
	}

	c, err := cache.New(policy, cfg)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if _, exists := r.caches[name]; exists {
		r.mu.Unlock()
		c.Close()
		return ErrCacheAlreadyExists
	}
	r.caches[name] = c
	r.mu.Unlock()

	return nil
}

// Remove detaches the named cache and closes it, stopping any background
// work it owns. Callers still holding a handle from Lookup can continue to
// use it; the instance is simply no longer reachable by name.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	c, exists := r.caches[name]
	if !exists {
		r.mu.Unlock()
		return ErrCacheNotFound
	}
	delete(r.caches, name)
	r.mu.Unlock()

	// Close outside the lock; ttl caches wait for their sweeper to exit
	c.Close()
	return nil
}

// Lookup returns the named cache or ErrCacheNotFound
func (r *Registry) Lookup(name string) (interfaces.Cache, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.caches[name]
	if !exists {
		return nil, ErrCacheNotFound
	}
	return c, nil
}

// Exists reports whether a cache is registered under name
func (r *Registry) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.caches[name]
	return exists
}

// Names returns the registered cache names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.caches))
	for name := range r.caches {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of registered caches
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.caches)
}

// Close removes and closes every cache. Used at server shutdown.
func (r *Registry) Close() {
	r.mu.Lock()
	caches := r.caches
	r.caches = make(map[string]interfaces.Cache)
	r.mu.Unlock()

	for _, c := range caches {
		c.Close()
	}
}
