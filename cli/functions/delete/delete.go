/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package deleteCmd

import (
	"github.com/spf13/cobra"

	"github.com/CacheRack/CacheRack/cli/communications"
	"github.com/CacheRack/CacheRack/cli/display"
	"github.com/CacheRack/CacheRack/common/schema"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "delete a cache",
		Long:  "delete a cache and discard all of its entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(args[0])
		},
	}
}

func execute(name string) error {

	// Create communications object
	c := communications.New()

	// Post the request to the server and display the result
	display.ErrorWrapper(display.AnyResp(c.Post(schema.EndpointCacheDelete,
		schema.DeleteCacheRequest{Name: name})))
	return nil
}
