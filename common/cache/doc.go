// Package cache provides the in-memory cache engine used by the registry.
//
// Four eviction policies are available, all implementing interfaces.Cache:
//
//   - lru:  evicts the least-recently-accessed entry when capacity is exceeded
//   - fifo: evicts the oldest-inserted entry when capacity is exceeded
//   - mru:  evicts the most-recently-accessed entry when capacity is exceeded
//   - ttl:  entries expire after a fixed duration; a background sweeper
//     removes them on a configured interval (optionally with random jitter),
//     and expired entries are also removed lazily on Get; bounded by capacity
//
// The factory function New is the single place that maps a policy name to a
// concrete variant; everything above it stays policy-agnostic.
//
// # Concurrency
//
// Every cache is safe for concurrent use; each instance carries its own
// mutex. Values are copied on Set and on Get so callers can never alias the
// cache's internal storage.
//
// # Capacity
//
// A capacity of 0 means the cache never retains any entry: Set is accepted
// but the entry is immediately discarded and Size stays 0. For ttl caches a
// TTL of 0 means entries expire immediately; both behaviors are deliberate
// rather than errors.
package cache
