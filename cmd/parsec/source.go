package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parsec/parsec"
	"github.com/dhamidi/parsec/scheme"
)

// schemeSource selects a scheme either inline or from a library file.
type schemeSource struct {
	pattern string
	library string
	name    string
}

func (s *schemeSource) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.pattern, "scheme", "s", "", "scheme notation, e.g. 'float \",\" string'")
	cmd.Flags().StringVarP(&s.library, "library", "l", "", "TOML or YAML scheme library")
	cmd.Flags().StringVarP(&s.name, "name", "n", "", "scheme name within --library")
}

func (s *schemeSource) node() (parsec.Node, error) {
	switch {
	case s.pattern != "" && s.library != "":
		return nil, errors.New("--scheme and --library are mutually exclusive")
	case s.pattern != "":
		node, err := scheme.Compile(s.pattern)
		if err != nil {
			return nil, fmt.Errorf("compile scheme: %w", err)
		}
		return node, nil
	case s.library != "":
		if s.name == "" {
			return nil, errors.New("--library requires --name")
		}
		lib, err := scheme.LoadFile(s.library)
		if err != nil {
			return nil, err
		}
		log.Debugf("loaded %d schemes from %s", len(lib.Schemes), s.library)
		return lib.Compile(s.name)
	}
	return nil, errors.New("one of --scheme or --library is required")
}
