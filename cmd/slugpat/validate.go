package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slugkit/patterndsl/pkg/parser"
	"github.com/slugkit/patterndsl/pkg/partial"
)

func newValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate <pattern>",
		Short: "Validate a pattern, reporting the first error if any",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			if _, err := parser.Parse(pattern); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "invalid: %v\n", err)
				if verbose {
					info := partial.ParsePartial(pattern)
					fmt.Fprintf(cmd.OutOrStdout(), "deepest state reached: %s (position %d)\n", info.State, info.Position)
				}
				os.Exit(1)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print the deepest partial-parse state reached")
	return cmd
}
