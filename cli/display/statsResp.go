/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/CacheRack/CacheRack/cli/global"
	"github.com/CacheRack/CacheRack/common/interfaces"
)

// StatsResp handles a stats read. On success the body is the bare counters
// object; on error the server sends the standard JSON envelope, which is
// pretty-printed instead.
func StatsResp(statusCode int, data []byte, err error) error {

	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}

	if statusCode != http.StatusOK {
		return AnyResp(statusCode, data, nil)
	}

	fmt.Printf("\nServer response: HTTP %d\n", statusCode)

	var stats interfaces.CacheStats
	if err = json.Unmarshal(data, &stats); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	global.Pretty(stats)
	return nil
}
