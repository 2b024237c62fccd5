/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"runtime"

	"github.com/CacheRack/CacheRack/common/interfaces"
)

const (
	ConfigServerSet       = "server_config"
	ConfigLogFile         = "log_file"
	ConfigLogStdout       = "log_stdout"
	ConfigLogRetention    = "log_retention"
	ConfigListen          = "listen"
	ConfigDataPath        = "data_path"
	ConfigHTTPTimeout     = "http_timeout"
	ConfigHTTPIdleTimeout = "http_idle_timeout"
	ConfigMaxConcurrent   = "max_concurrent"
	ConfigPenaltyBoxMin   = "penalty_box_min"
	ConfigPenaltyBoxMax   = "penalty_box_max"
	ConfigHandlerTimeout  = "handler_timeout"
	ConfigMaxValueBytes   = "max_value_bytes"

	// Defaults for ttl caches created without explicit values
	ConfigDefaultTTL           = "default_ttl"
	ConfigDefaultCheckInterval = "default_check_interval"
	ConfigDefaultJitter        = "default_jitter"
)

// setDefaults makes sure the set exists, sets default values, and constraints
func setDefaults(c interfaces.Config) interfaces.Parameters {

	// Server configuration set
	sc := c.NewSet(ConfigServerSet)
	sc.SetConstraint(ConfigLogFile, 0, 0, "")              // no log file by default
	sc.SetConstraint(ConfigLogStdout, 0, 0, true)          // by default log to stdout
	sc.SetConstraint(ConfigLogRetention, 1, 0, 365)        // days
	sc.SetConstraint(ConfigListen, 0, 0, "127.0.0.1:8080") // listen address
	sc.SetConstraint(ConfigDataPath, 0, 0, "")             // data path (base directory for logs)
	sc.SetConstraint(ConfigHTTPTimeout, 0, 0, 30)          // seconds
	sc.SetConstraint(ConfigHTTPIdleTimeout, 0, 0, 30)      // seconds
	sc.SetConstraint(ConfigMaxConcurrent, 0, 0, 100)       // number of concurrent connections, others will wait
	sc.SetConstraint(ConfigPenaltyBoxMin, 0, 0, 1000)      // Minimum penalty box time in milliseconds
	sc.SetConstraint(ConfigPenaltyBoxMax, 0, 0, 5000)      // Maximum penalty box time in milliseconds
	sc.SetConstraint(ConfigHandlerTimeout, 0, 0, 30)       // seconds
	sc.SetConstraint(ConfigMaxValueBytes, 0, 0, 1048576)   // maximum PUT body size in bytes

	sc.SetConstraint(ConfigDefaultTTL, 0, 0, 60)           // seconds
	sc.SetConstraint(ConfigDefaultCheckInterval, 1, 0, 10) // seconds, must be positive
	sc.SetConstraint(ConfigDefaultJitter, 0, 0, 0)         // seconds

	return sc
}

// DefaultLog is used to create a log location if the usual approach fails
func DefaultLog() string {
	if runtime.GOOS == "windows" {
		return "C:\\ProgramData\\" + LogName + "\\" + LogName + ".log"
	}
	return "/var/log/" + LogName + ".log"
}
