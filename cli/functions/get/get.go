/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package get

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/CacheRack/CacheRack/cli/communications"
	"github.com/CacheRack/CacheRack/cli/display"
	"github.com/CacheRack/CacheRack/common/schema"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "get <cache> <key>",
		Short: "read a value",
		Long:  "read the value stored under a key and write it to stdout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(args[0], args[1])
		},
	}
}

func execute(name, key string) error {

	// Create communications object
	c := communications.New()

	// Get the value from the server and display it
	display.ErrorWrapper(display.RawResp(c.Get(
		schema.EndpointCache + "/" + url.PathEscape(name) + "/" + url.PathEscape(key))))
	return nil
}
