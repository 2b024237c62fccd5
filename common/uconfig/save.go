/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package uconfig

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save configuration to specified file
func (c *UConfig) saveFile() error {

	// Open the file for writing (create if not exists, truncate if exists)
	file, err := os.OpenFile(c.file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	// The config file contains no secrets, but keep it private anyway
	_ = os.Chmod(c.file, 0600)

	// Create a JSON encoder and write the struct to the file
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ") // Pretty print with indentation
	err = encoder.Encode(&c)
	if err != nil {
		return fmt.Errorf("could not encode to JSON: %w", err)
	}
	return nil
}
