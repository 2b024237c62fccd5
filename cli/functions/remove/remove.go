/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package remove

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/CacheRack/CacheRack/cli/communications"
	"github.com/CacheRack/CacheRack/cli/display"
	"github.com/CacheRack/CacheRack/common/schema"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <cache> <key>",
		Short: "remove a value",
		Long:  "remove the value stored under a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(args[0], args[1])
		},
	}
}

func execute(name, key string) error {

	// Create communications object
	c := communications.New()

	// Send the delete to the server and display the result
	display.ErrorWrapper(display.AnyResp(c.Delete(
		schema.EndpointCache + "/" + url.PathEscape(name) + "/" + url.PathEscape(key))))
	return nil
}
