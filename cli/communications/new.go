/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import "github.com/CacheRack/CacheRack/cli/global"

// Ensure that Communications implements the global.Comms interface
var _ global.Comms = &Communications{}

type Communications struct {
	serverURL string
}

// New returns a new Communications object pointed at the configured server
func New() global.Comms {
	return &Communications{
		serverURL: global.ServerURL,
	}
}
