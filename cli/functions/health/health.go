/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package health

import (
	"github.com/spf13/cobra"

	"github.com/CacheRack/CacheRack/cli/communications"
	"github.com/CacheRack/CacheRack/cli/display"
	"github.com/CacheRack/CacheRack/common/schema"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "check server health",
		Long:  "check that the server is up and responding",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute()
		},
	}
}

func execute() error {

	// Create communications object
	c := communications.New()

	// Get the health endpoint and display the result
	display.ErrorWrapper(display.AnyResp(c.Get(schema.EndpointHealth)))
	return nil
}
