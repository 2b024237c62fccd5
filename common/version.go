//
// Copyright (c) 2025-2026 CacheRack Project
// Please see the LICENSE file for details
//

package common

const (
	Version = "0.3"
	Build   = 7
)
