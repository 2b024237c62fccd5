/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/CacheRack/CacheRack/common"
)

//goland:noinspection GoUnusedConst
const (
	Version          = common.Version
	Build            = common.Build
	Name             = "CacheRackCLI"
	Description      = "CacheRack CLI"
	LongDescription  = "CacheRack command line interface"
	Copyright        = "Copyright (c) 2025-2026 CacheRack Project"
	DefaultServerURL = "http://127.0.0.1:8080"
)

var ServerURL = DefaultServerURL

// Init loads a .env file if present and applies the CACHERACK_SERVER
// environment variable as the server URL.
func Init() {
	_ = godotenv.Load()
	if url := os.Getenv("CACHERACK_SERVER"); url != "" {
		ServerURL = strings.TrimRight(url, "/")
	}
}
