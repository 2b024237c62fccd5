/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package common

import (
	"strings"
)

// SingleLine normalizes a client-supplied string for logging:
//   - trims leading/trailing whitespace
//   - replaces newlines with a visible marker
//   - collapses runs of whitespace into single spaces
//
// Cache and key names arrive from the network and may contain anything,
// so they are always passed through here before being logged.
func SingleLine(s string) string {
	if s == "" {
		return s
	}

	s = strings.TrimSpace(s)

	replacer := strings.NewReplacer(
		"\r\n", " ⏎ ",
		"\n", " ⏎ ",
		"\r", " ⏎ ",
	)

	s = replacer.Replace(s)

	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
