/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

// Put sends raw bytes to the specified endpoint and returns the response
// body. Values are stored verbatim, so no serialization is applied.
func (c *Communications) Put(endpoint string, payload []byte) (int, []byte, error) {
	return c.sendRequest("PUT", endpoint, "application/octet-stream", payload)
}
