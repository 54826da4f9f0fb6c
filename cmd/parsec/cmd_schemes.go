package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parsec/scheme"
)

func newSchemesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "schemes <library>",
		Short:        "List the schemes in a TOML or YAML library with their shapes",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := scheme.LoadFile(args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range lib.Names() {
				shape := "error"
				if node, err := lib.Compile(name); err != nil {
					log.Warningf("%v", err)
				} else {
					shape = node.Shape().String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, shape, lib.Schemes[name].Description)
			}
			return w.Flush()
		},
	}

	return cmd
}
