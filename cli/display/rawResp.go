/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"fmt"
	"net/http"
	"os"
)

// RawResp handles a value read. On success the stored bytes are written to
// stdout exactly as received; on error the server sends a JSON body, which
// is pretty-printed instead.
func RawResp(statusCode int, data []byte, err error) error {

	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}

	if statusCode == http.StatusOK {
		_, _ = os.Stdout.Write(data)
		fmt.Println("")
		return nil
	}

	return AnyResp(statusCode, data, nil)
}
