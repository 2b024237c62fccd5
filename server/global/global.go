//
// Copyright (c) 2025-2026 CacheRack Project
// See LICENSE file for details
//

package global

import "github.com/CacheRack/CacheRack/common"

const (
	Version           = common.Version
	Build             = common.Build
	Name              = "CacheRackServer"
	LogName           = "cacherack-server"
	Description       = "CacheRack Server"
	WindowsBinaryName = "cacherack-server.exe"
	UnixBinaryName    = "cacherack-server"
	TaskTicker        = 60 // seconds between periodic registry stats logging
	ConsoleExitDelay  = 10 // seconds to wait so that user can read the console output when exiting
)

var (
	UnixConfigFiles         = []string{"/etc/cacherack-server.conf", "/usr/local/etc/cacherack-server.conf", "/var/root/cacherack-server.conf"}
	UnixDefaultDataPaths    = []string{"/opt/cacherack-server", "/var/lib/cacherack-server", "/usr/local/cacherack-server"}
	WindowsDefaultDataPaths = []string{"C:\\ProgramData\\cacherack-server"}
	Debug                   = false
	ListenOverride          = ""
)
