package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"github.com/tliron/kutil/util"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("parsec.cli")

func main() {
	// util.Exit runs the exit hooks registered by the log backend.
	if err := newRootCmd().Execute(); err != nil {
		util.Exit(1)
	}
	util.Exit(0)
}

func newRootCmd() *cobra.Command {
	var verbose int
	var logFile string

	rootCmd := &cobra.Command{
		Use:   "parsec",
		Short: "Parse text with combinator schemes",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string
			if logFile != "" {
				path = &logFile
			}
			commonlog.Configure(verbose, path)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "add verbosity (repeat for debug output)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write log output to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newShapeCmd())
	rootCmd.AddCommand(newSchemesCmd())
	rootCmd.AddCommand(newGrammarCmd())

	return rootCmd
}
