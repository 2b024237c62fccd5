/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package stats

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/CacheRack/CacheRack/cli/communications"
	"github.com/CacheRack/CacheRack/cli/display"
	"github.com/CacheRack/CacheRack/common/schema"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <name>",
		Short: "cache statistics",
		Long:  "display hit, miss, size, and capacity counters for a cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(args[0])
		},
	}
}

func execute(name string) error {

	// Create communications object
	c := communications.New()

	// Get the stats from the server and display the result
	display.ErrorWrapper(display.StatsResp(c.Get(
		schema.EndpointCache + "/" + url.PathEscape(name) + "/stats")))
	return nil
}
