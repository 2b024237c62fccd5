/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

// Comms abstracts the HTTP client so that functions can be tested against
// a fake. Put sends raw bytes because stored values are opaque; Post sends
// JSON.
type Comms interface {
	Post(endpoint string, payload interface{}) (int, []byte, error)
	Put(endpoint string, payload []byte) (int, []byte, error)
	Get(endpoint string) (int, []byte, error)
	Delete(endpoint string) (int, []byte, error)
}
