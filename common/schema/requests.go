/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

// CreateCacheRequest is the body for POST /cache/create. TTL, CheckInterval
// and Jitter are seconds, only meaningful for the ttl cache type, and
// optional: a nil pointer means "use the server default", while an explicit
// zero is honored as zero.
type CreateCacheRequest struct {
	Name          string  `json:"name"`                     // Registry name, must be unique
	CacheType     string  `json:"cache_type"`               // lru, fifo, mru, or ttl
	Capacity      int     `json:"capacity"`                 // Maximum number of entries, 0 retains nothing
	TTL           *uint64 `json:"ttl,omitempty"`            // Entry lifetime in seconds
	CheckInterval *uint64 `json:"check_interval,omitempty"` // Sweep interval in seconds
	Jitter        *uint64 `json:"jitter,omitempty"`         // Max random addition to the sweep interval in seconds
}

// DeleteCacheRequest is the body for POST /cache/delete
type DeleteCacheRequest struct {
	Name string `json:"name"`
}
