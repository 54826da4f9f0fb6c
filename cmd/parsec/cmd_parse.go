package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parsec/format"
	"github.com/dhamidi/parsec/parsec"
)

func newParseCmd() *cobra.Command {
	var src schemeSource
	var outputFormat string
	var requireEnd bool
	var lines bool

	cmd := &cobra.Command{
		Use:   "parse [input]",
		Short: "Parse input with a scheme and print the result",
		Long: `Parse input with a scheme and print the result.

The input is taken from the argument, or from stdin when no argument is
given. With --lines every line of stdin is parsed separately.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := src.node()
			if err != nil {
				return err
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(cmd.OutOrStdout())
			case "text":
				encoder = format.NewTextEncoder(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			opts := []parsec.Option{parsec.WithLogger(log)}
			if requireEnd {
				opts = append(opts, parsec.WithRequireEnd())
			}
			p := parsec.New(node, opts...)

			inputs, err := readInputs(cmd, args, lines)
			if err != nil {
				return err
			}
			for i, input := range inputs {
				value, err := p.Parse(input)
				if err != nil {
					if len(inputs) > 1 {
						return fmt.Errorf("parse line %d: %w", i+1, err)
					}
					return fmt.Errorf("parse: %w", err)
				}
				if err := encoder.Encode(format.Result{Shape: p.Shape(), Value: value}); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			return nil
		},
	}

	src.addFlags(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (json, text)")
	cmd.Flags().BoolVar(&requireEnd, "require-end", false, "fail if the scheme does not consume all input")
	cmd.Flags().BoolVar(&lines, "lines", false, "parse each line of stdin separately")

	return cmd
}

func readInputs(cmd *cobra.Command, args []string, lines bool) ([]string, error) {
	if len(args) == 1 {
		return []string{args[0]}, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	text := string(data)
	if !lines {
		return []string{strings.TrimSuffix(text, "\n")}, nil
	}

	var inputs []string
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		inputs = append(inputs, strings.TrimSuffix(line, "\r"))
	}
	return inputs, nil
}
