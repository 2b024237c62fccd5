/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package cache

import (
	"errors"
	"time"

	"github.com/CacheRack/CacheRack/common/interfaces"
)

// Policy identifiers accepted by New. Matching is case-sensitive.
const (
	PolicyLRU  = "lru"
	PolicyFIFO = "fifo"
	PolicyMRU  = "mru"
	PolicyTTL  = "ttl"
)

// Defaults applied by the API layer when a ttl cache is created without
// explicit values. DefaultCheckInterval is also applied by New itself
// because the sweeper requires a positive interval.
const (
	DefaultTTL           = 60 * time.Second
	DefaultCheckInterval = 10 * time.Second
	DefaultJitter        = 0 * time.Second
)

// ErrUnknownPolicy is returned by New for any policy identifier outside the
// four known values. It is detected before any instance is constructed.
var ErrUnknownPolicy = errors.New("unknown cache policy")

// Config carries the construction parameters for a cache instance.
// TTL, CheckInterval and Jitter are only used by the ttl policy.
type Config struct {
	Capacity      int
	TTL           time.Duration
	CheckInterval time.Duration
	Jitter        time.Duration
}

// New constructs a cache instance for the requested eviction policy with
// zeroed statistics, or returns ErrUnknownPolicy. A negative capacity is
// treated as zero so Stats never reports a negative bound.
func New(policy string, cfg Config) (interfaces.Cache, error) {
	if cfg.Capacity < 0 {
		cfg.Capacity = 0
	}
	switch policy {
	case PolicyLRU:
		return newLRU(cfg.Capacity), nil
	case PolicyFIFO:
		return newFIFO(cfg.Capacity), nil
	case PolicyMRU:
		return newMRU(cfg.Capacity), nil
	case PolicyTTL:
		if cfg.CheckInterval <= 0 {
			cfg.CheckInterval = DefaultCheckInterval
		}
		return newTTL(cfg), nil
	default:
		return nil, ErrUnknownPolicy
	}
}

// KnownPolicy reports whether the policy identifier is one of the four
// supported values. It allows callers to reject a request before doing any
// other work.
func KnownPolicy(policy string) bool {
	switch policy {
	case PolicyLRU, PolicyFIFO, PolicyMRU, PolicyTTL:
		return true
	}
	return false
}

// cloneBytes copies a value so the cache never aliases caller memory.
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
