//
// Copyright (c) 2025-2026 CacheRack Project
// See LICENSE file for details
//

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CacheRack/CacheRack/cli/functions/create"
	deleteCmd "github.com/CacheRack/CacheRack/cli/functions/delete"
	"github.com/CacheRack/CacheRack/cli/functions/get"
	"github.com/CacheRack/CacheRack/cli/functions/health"
	"github.com/CacheRack/CacheRack/cli/functions/list"
	"github.com/CacheRack/CacheRack/cli/functions/remove"
	"github.com/CacheRack/CacheRack/cli/functions/set"
	"github.com/CacheRack/CacheRack/cli/functions/stats"
	"github.com/CacheRack/CacheRack/cli/functions/version"
	"github.com/CacheRack/CacheRack/cli/global"
)

func main() {
	var err error

	// Apply CACHERACK_SERVER and .env overrides
	global.Init()

	// Get the name of this binary, eliminating any path information
	progName := os.Args[0]
	progName = progName[strings.LastIndex(progName, "/")+1:]

	// Initialize the root command
	rootCmd := &cobra.Command{
		Use:   progName,
		Short: global.Description,
		Long:  global.LongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("A subcommand is required\n")
		},
	}

	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add the functions
	rootCmd.AddCommand(create.Register())
	rootCmd.AddCommand(deleteCmd.Register())
	rootCmd.AddCommand(list.Register())
	rootCmd.AddCommand(stats.Register())
	rootCmd.AddCommand(get.Register())
	rootCmd.AddCommand(set.Register())
	rootCmd.AddCommand(remove.Register())
	rootCmd.AddCommand(health.Register())
	rootCmd.AddCommand(version.Register())

	// Execute the CLI
	err = rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
