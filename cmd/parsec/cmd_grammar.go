package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parsec/scheme"
)

func newGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF token grammar of the scheme notation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), scheme.Grammar())
			return err
		},
	}
}
