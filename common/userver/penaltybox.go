//
// Copyright (c) 2025-2026 CacheRack Project
// Please see the LICENSE file for details
//

package userver

import (
	"math/rand"
	"time"
)

// PenaltyBox imposes a delay between s.PenaltyBoxMin and s.PenaltyBoxMax milliseconds.
// It is used by the catch-all handlers to slow down URL scanners.
func (s *HServer) PenaltyBox() {
	if s.PenaltyBoxMax == 0 || s.PenaltyBoxMin > s.PenaltyBoxMax {
		return
	}

	var delay int
	if s.PenaltyBoxMin == s.PenaltyBoxMax {
		delay = s.PenaltyBoxMin
	} else {
		delay = s.PenaltyBoxMin + rand.Intn(s.PenaltyBoxMax-s.PenaltyBoxMin)
	}

	time.Sleep(time.Duration(delay) * time.Millisecond)
}
