/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

// Get sends a GET request to the specified endpoint and returns the response body.
func (c *Communications) Get(endpoint string) (int, []byte, error) {
	return c.sendRequest("GET", endpoint, "", nil)
}
