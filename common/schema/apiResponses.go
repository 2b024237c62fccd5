/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

// All JSON API responses include the Status and Code fields, with two
// exceptions: value reads (GET /cache/{name}/{key}) return the raw stored
// bytes on success, and stats reads (GET /cache/{name}/stats) return the
// bare interfaces.CacheStats counters. Both fall back to these structures
// on error.

// APIGenericResponse is used for responses that don't require a specific structure
type APIGenericResponse struct {
	Status  string `json:"status" example:"ok"`                           // ok or error - see schema/apiMeta.go
	Code    int    `json:"code" example:"200"`                            // HTTP status code
	Details string `json:"details,omitempty" example:"request processed"` // Optional response details
}

// APICacheListResponse lists the registered cache names in sorted order
type APICacheListResponse struct {
	Status string   `json:"status" example:"ok"`
	Code   int      `json:"code" example:"200"`
	Caches []string `json:"caches"`
}

// APIAnyResponse can be used by a client to deserialize any enveloped JSON
// API response
type APIAnyResponse struct {
	Status  string   `json:"status"`
	Code    int      `json:"code"`
	Details string   `json:"details,omitempty"`
	Caches  []string `json:"caches,omitempty"`
}
