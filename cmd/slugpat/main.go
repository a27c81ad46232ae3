// Command slugpat is a small CLI around the patterndsl core: parsing,
// validation, suggestion, and a stdin-driven partial-parse watch mode, mostly
// useful for exercising the library from a shell or from editor tooling
// that shells out rather than linking Go directly.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "slugpat",
		Short:         "Inspect and validate slug generation patterns",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(
		newParseCmd(),
		newValidateCmd(),
		newSuggestCmd(),
		newWatchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "slugpat: %v\n", err)
		os.Exit(1)
	}
}
