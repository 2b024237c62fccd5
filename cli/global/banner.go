//
// Copyright (c) 2025-2026 CacheRack Project
// See LICENSE file for details
//

package global

import (
	"github.com/CacheRack/CacheRack/common"
)

func Banner() {
	common.Banner(Description, Version, Build)
}
