package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShapeCmd() *cobra.Command {
	var src schemeSource

	cmd := &cobra.Command{
		Use:          "shape",
		Short:        "Print the result shape of a scheme",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := src.node()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), node.Shape())
			return nil
		},
	}

	src.addFlags(cmd)

	return cmd
}
