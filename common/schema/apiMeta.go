//
// Copyright (c) 2025-2026 CacheRack Project
// Please see the LICENSE file for details
//

package schema

//goland:noinspection ALL
const (
	EndpointCacheCreate = "/cache/create"
	EndpointCacheDelete = "/cache/delete"
	EndpointCache       = "/cache"
	EndpointHealth      = "/health"
)

//goland:noinspection ALL
const (
	APIStatusOK    = "ok"
	APIStatusError = "error"
)
