//
// Copyright (c) 2025-2026 CacheRack Project
// Please see the LICENSE file for details
//

package main

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/CacheRack/CacheRack/common"
	"github.com/CacheRack/CacheRack/common/fields"
	"github.com/CacheRack/CacheRack/common/interfaces"
	"github.com/CacheRack/CacheRack/common/ulogger"
	"github.com/CacheRack/CacheRack/common/uservice"
	"github.com/CacheRack/CacheRack/server/api"
	"github.com/CacheRack/CacheRack/server/global"
)

var conf *global.ServerConfig
var logger interfaces.Logger
var apiInstance *api.API

func main() {

	// Check for version request
	if len(os.Args) == 2 {
		if strings.ToLower(os.Args[1]) == "version" {
			common.Banner(global.Description, global.Version, global.Build)
			exit(0, false)
		}
	}

	// Load environment overrides from a .env file if one exists.
	// CACHERACK_LISTEN overrides the configured listen address.
	_ = godotenv.Load()
	if listen := os.Getenv("CACHERACK_LISTEN"); listen != "" {
		global.ListenOverride = listen
	}
	if os.Getenv("CACHERACK_DEBUG") != "" {
		global.Debug = true
	}

	// launch() provides OS-specific functionality and then calls startService() or console() below
	launch()
}

// OS-agnostic console mode
func console() {

	fmt.Println("")

	if len(os.Args) < 2 {
		usage()
		return
	}

	switch strings.ToLower(os.Args[1]) {

	case "foreground":
		startService(false)

	case "listen":
		if len(os.Args) != 3 {
			fmt.Println("Usage: listen <address>")
			fmt.Println("Example: cacherack-server listen 127.0.0.1:8080")
			return
		}

		address := os.Args[2]
		if _, err := net.ResolveTCPAddr("tcp", address); err != nil {
			fmt.Printf("Invalid listen address: %v\n", err)
			return
		}

		global.ListenOverride = address
		startService(false)

	case "dump":
		dumpConfig()

	default:
		usage()
	}
}

// dumpConfig loads the configuration and writes it to the console
func dumpConfig() {
	c, err := global.Config()
	if err != nil {
		fmt.Printf("Unable to load or create config: %v\n", err)
		return
	}
	c.C.Dump()
}

func usage() {
	fmt.Printf("Usage: %s <foreground | listen <address> | dump | version>\n", os.Args[0])
}

func exit(code int, delay bool) {
	if delay {
		fmt.Printf("\nExiting with code %d in %d seconds...\n\n", code, global.ConsoleExitDelay)
		time.Sleep(global.ConsoleExitDelay * time.Second)
	} else {
		fmt.Printf("\nExiting with code %d\n\n", code)
	}
	os.Exit(code)
}

func startService(daemon bool) {
	var err error

	// Load the configuration
	conf, err = global.Config()
	if err != nil {
		// Try to create a logger and write the fatal error
		var loggerErr error
		logger, loggerErr = ulogger.New(
			ulogger.WithPrefix(global.LogName),
			ulogger.WithLogFile(global.DefaultLog()),
			ulogger.WithLogStdout(true),
			ulogger.WithRetention(0),
			ulogger.WithDebug(global.Debug))

		if loggerErr != nil {
			fmt.Printf("Fatal logger error: %s\n", err.Error())
			exit(1, false)
		}
		logger.Fatalf(1001, "unable to load or create config: %s", err.Error())
		exit(1, false)
	}

	// Create a logger using the loaded configuration
	logger, err = ulogger.New(
		ulogger.WithPrefix(global.LogName),
		ulogger.WithLogFile(conf.SC.Get(global.ConfigLogFile).String()),
		ulogger.WithLogStdout(conf.SC.Get(global.ConfigLogStdout).Bool()),
		ulogger.WithRetention(conf.SC.Get(global.ConfigLogRetention).Int()),
		ulogger.WithDebug(global.Debug))

	if err != nil {
		fmt.Printf("error creating logger: %v\n", err)
		// Continue so that a logging issue doesn't prevent the server from starting
	}

	// Check for foreground option (used for testing)
	if !daemon {
		// This function will never return
		serviceForeground(logger)
	}

	// Start the service
	s, err := uservice.New(
		uservice.WithServiceName(global.Name),
		uservice.WithServiceVersion(global.Version),
		uservice.WithServiceBuild(global.Build),
		uservice.WithLogger(logger),
		uservice.WithTaskTicker(global.TaskTicker),
		uservice.WithBackgroundFunc(ServiceBackground),
		uservice.WithTasksFunc(ServiceTasks),
		uservice.WithStopFunc(ServiceStopping),
		uservice.WithSEid(1500))

	if err != nil {
		logger.Fatalf(1005, "unable to create service: %s", err.Error())
		exit(1, false)
	}

	//goland:noinspection GoDfaErrorMayBeNotNil
	err = s.Start()
	if err != nil {
		logger.Fatalf(1006, "service failed to start: %s", err.Error())
		exit(1, false)
	}
}

// serviceForeground will run as a foreground service instead of using the service module
// This is intended for testing, primarily on Windows
func serviceForeground(logger interfaces.Logger) {
	logger.Infof(2091, "Starting service in foreground")
	ServiceBackground(logger)

	// Infinite loop with task timer
	for {
		time.Sleep(global.TaskTicker * time.Second)
		ServiceTasks(logger)
	}
}

// ServiceBackground will be launched as a goroutine when the service starts
func ServiceBackground(logger interfaces.Logger) {
	logger.Infof(2000, "Starting background processes including API")

	// Start the API
	apiInstance = api.New(conf, logger)
	go apiInstance.Start()
}

// ServiceTasks will be called at the interval specified by TaskTicker
func ServiceTasks(logger interfaces.Logger) {
	if apiInstance == nil {
		return
	}
	logger.Debug(1510, "registry status", fields.NewFields(
		fields.NewField("caches", apiInstance.Registry().Len())))
}

// ServiceStopping is called when the service is about to exit
func ServiceStopping(logger interfaces.Logger) {
	// Close all caches and stop their background work
	if apiInstance != nil {
		apiInstance.Registry().Close()
	}

	// Save the configuration
	err := conf.C.Checkpoint()
	if err != nil {
		logger.Infof(1007, "error saving configuration: %s", err.Error())
	}
}
