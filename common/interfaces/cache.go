//
// Copyright (c) 2025-2026 CacheRack Project
// Please see the LICENSE file for details
//

package interfaces

// Cache is the capability contract every eviction-policy variant must
// satisfy. The registry and the API depend only on this interface and never
// branch on the concrete variant after construction.
//
// Every method must be safe for concurrent use; synchronization is the
// implementation's responsibility, not the caller's.
type Cache interface {
	// Get returns the value for key and true if present (and not expired).
	// It records exactly one hit or one miss in the statistics.
	Get(key string) ([]byte, bool)

	// Set inserts or overwrites a key. It always succeeds, evicting at most
	// one other entry if the key is new and the cache is at capacity.
	Set(key string, value []byte)

	// Remove deletes a key if present. Removing an absent key is a no-op.
	Remove(key string)

	// Stats returns a snapshot of the accumulated statistics.
	Stats() CacheStats

	// Close stops any background goroutines owned by the cache. It is
	// idempotent. Key operations remain safe after Close so that handles
	// held by in-flight requests stay valid.
	Close()
}

// CacheStats reports the hit/miss counters accumulated since creation,
// the current number of live entries, and the configured capacity.
type CacheStats struct {
	Hits     uint64 `json:"hits"`
	Misses   uint64 `json:"misses"`
	Size     int    `json:"size"`
	Capacity int    `json:"capacity"`
}
