/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"fmt"
	"os"
	"runtime"

	"github.com/CacheRack/CacheRack/common/interfaces"
	"github.com/CacheRack/CacheRack/common/uconfig"
)

type ServerConfig struct {
	C  interfaces.Config     // Config object
	SC interfaces.Parameters // Server configuration
}

// Config creates the configuration object, sets defaults, and
// loads the configuration from the registry or file system
func Config() (*ServerConfig, error) {
	var err error
	c := &ServerConfig{}

	// For Windows, use the registry
	if runtime.GOOS == "windows" {
		c.C, err = uconfig.New(uconfig.WithWindowsRegistry(Name))
	} else {
		configFiles := UnixConfigFiles
		c.C, err = uconfig.New(uconfig.WithFindOrCreate(configFiles))
	}

	if err != nil {
		return &ServerConfig{}, err
	}

	// Set constraints, including default values
	c.SC = setDefaults(c.C)

	// Check for a data path
	dPath := c.SC.Get(ConfigDataPath).String()
	if dPath == "" {
		var dSearch []string

		if runtime.GOOS == "windows" {
			dSearch = WindowsDefaultDataPaths
		} else {
			dSearch = UnixDefaultDataPaths
		}

		// Look for a suitable directory
		for _, path := range dSearch {
			// createDir will return true if the directory
			// exists or was successfully created
			if uconfig.CreateDir(path) {
				dPath = path
				break
			}
		}

		// Check for success
		if dPath == "" {
			return &ServerConfig{}, fmt.Errorf("unable to determine or create data directory")
		}

		// Save the path to the config
		c.SC.Set(ConfigDataPath, dPath)
	}

	// Check for logfile and if not set one
	logFile := c.SC.Get(ConfigLogFile).String()
	if logFile == "" {
		lPath := uconfig.CreateSubDir(dPath, "logs")
		if lPath == "" {
			// fall back to the default
			logFile = DefaultLog()
		} else {
			logFile = lPath + string(os.PathSeparator) + LogName + ".log"
		}
		c.SC.Set(ConfigLogFile, logFile)
	}

	// Make sure that critical directories exist
	// They could exist in the config file but have been deleted
	if !uconfig.CreateDir(dPath) {
		return &ServerConfig{}, fmt.Errorf("unable to open or create %s", dPath)
	}

	// Attempt to checkpoint the config
	err = c.C.Checkpoint()
	if err != nil {
		return &ServerConfig{}, fmt.Errorf("unable to checkpoint config: %w", err)
	}
	return c, err
}

func (c *ServerConfig) Checkpoint() error {
	return c.C.Checkpoint()
}

// NullConfig returns an in-memory configuration with defaults applied and
// no backing file. It is intended for tests.
func NullConfig() *ServerConfig {
	c := &ServerConfig{C: uconfig.Null()}
	c.SC = setDefaults(c.C)
	return c
}
