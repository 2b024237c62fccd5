/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package list

import (
	"github.com/spf13/cobra"

	"github.com/CacheRack/CacheRack/cli/communications"
	"github.com/CacheRack/CacheRack/cli/display"
	"github.com/CacheRack/CacheRack/common/schema"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list caches",
		Long:  "list all registered cache names",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute()
		},
	}
}

func execute() error {

	// Create communications object
	c := communications.New()

	// Get the list from the server and display the result
	display.ErrorWrapper(display.AnyResp(c.Get(schema.EndpointCache)))
	return nil
}
