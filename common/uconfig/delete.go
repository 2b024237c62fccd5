/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package uconfig

import (
	"os"
)

// Delete the configuration file
func (c *UConfig) deleteFile() error {
	return os.Remove(c.file)
}
