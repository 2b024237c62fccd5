/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Code for operating systems other than windows
//go:build linux || darwin

package uconfig

import (
	"errors"
)

func (c *UConfig) saveRegistry() error {
	return errors.New("registry not supported on this platform")
}

func (c *UConfig) loadRegistry() error {
	return errors.New("registry not supported on this platform")
}
