/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package set

import (
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/CacheRack/CacheRack/cli/communications"
	"github.com/CacheRack/CacheRack/cli/display"
	"github.com/CacheRack/CacheRack/common/schema"
)

var fromStdin bool

func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <cache> <key> [value]",
		Short: "store a value",
		Long:  "store a value under a key, from the command line or stdin",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(args)
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the value from stdin")
	return cmd
}

func execute(args []string) error {
	var value []byte

	if fromStdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read value from stdin: %w", err)
		}
		value = data
	} else {
		if len(args) != 3 {
			return fmt.Errorf("a value argument is required unless --stdin is used")
		}
		value = []byte(args[2])
	}

	// Create communications object
	c := communications.New()

	// Put the value to the server and display the result
	display.ErrorWrapper(display.AnyResp(c.Put(
		schema.EndpointCache+"/"+url.PathEscape(args[0])+"/"+url.PathEscape(args[1]), value)))
	return nil
}
