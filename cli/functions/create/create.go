/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package create

import (
	"github.com/spf13/cobra"

	"github.com/CacheRack/CacheRack/cli/communications"
	"github.com/CacheRack/CacheRack/cli/display"
	"github.com/CacheRack/CacheRack/common/schema"
)

var (
	capacity      int
	ttl           uint64
	checkInterval uint64
	jitter        uint64
)

func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name> <type>",
		Short: "create a new cache",
		Long:  "create a new cache with the given name and type (lru, fifo, mru, or ttl)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, args[0], args[1])
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", 0, "maximum number of entries (0 retains nothing)")
	cmd.Flags().Uint64Var(&ttl, "ttl", 0, "entry lifetime in seconds (ttl caches only)")
	cmd.Flags().Uint64Var(&checkInterval, "check-interval", 0, "sweep interval in seconds (ttl caches only)")
	cmd.Flags().Uint64Var(&jitter, "jitter", 0, "max random addition to the sweep interval in seconds (ttl caches only)")
	return cmd
}

func execute(cmd *cobra.Command, name, cacheType string) error {

	request := schema.CreateCacheRequest{
		Name:      name,
		CacheType: cacheType,
		Capacity:  capacity,
	}

	// Only send the ttl fields the user actually set so the server can
	// apply its defaults to the rest
	if cmd.Flags().Changed("ttl") {
		request.TTL = &ttl
	}
	if cmd.Flags().Changed("check-interval") {
		request.CheckInterval = &checkInterval
	}
	if cmd.Flags().Changed("jitter") {
		request.Jitter = &jitter
	}

	// Create communications object
	c := communications.New()

	// Post the request to the server and display the result
	display.ErrorWrapper(display.AnyResp(c.Post(schema.EndpointCacheCreate, request)))
	return nil
}
