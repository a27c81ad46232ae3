package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slugkit/patterndsl/pkg/parser"
)

func newParseCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <pattern>",
		Short: "Parse a pattern and print its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parser.Parse(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(parsed)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d element(s), %d text chunk(s)\n", len(parsed.Elements), len(parsed.TextChunks))
			for i, el := range parsed.Elements {
				fmt.Fprintf(cmd.OutOrStdout(), "  [%d] %s\n", i, el.String())
			}
			if parsed.GlobalSettings != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "  global settings present\n")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the parsed AST as JSON")
	return cmd
}
