package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/slugkit/patterndsl/pkg/dictionary"
	"github.com/slugkit/patterndsl/pkg/parser"
	"github.com/slugkit/patterndsl/pkg/suggest"
)

// demoDictionaries is used when --manifest is omitted, so `slugpat suggest`
// is usable without wiring up a real dictionary file.
var demoDictionaries = []dictionary.Info{
	{Kind: "noun", Count: 512},
	{Kind: "adjective", Count: 340},
	{Kind: "adverb", Count: 210},
	{Kind: "verb", Count: 275},
}

var demoTags = []dictionary.Tag{
	{Kind: "noun", Tag: "animal"},
	{Kind: "noun", Tag: "artifact"},
	{Kind: "noun", Tag: "plant"},
	{Kind: "noun", Tag: "object"},
	{Kind: "noun", Tag: "person"},
	{Kind: "noun", Tag: "place"},
}

func newSuggestCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "suggest <pattern> <cursor>",
		Short: "Suggest completions for a pattern at a cursor position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			cursor, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("cursor: %w", err)
			}
			if cursor < 0 || cursor > len(pattern) {
				cursor = len(pattern)
			}

			provider, closeFn, err := resolveProvider(manifestPath)
			if err != nil {
				return err
			}
			defer closeFn()

			engine := suggest.New(provider)
			results, err := engine.Suggest(context.Background(), pattern, cursor)
			if err != nil {
				return err
			}
			for _, s := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-20q [%d,%d)\n", s.Kind, s.Text, s.ReplaceRange.Start, s.ReplaceRange.End)
			}

			suggestDidYouMean(cmd, pattern)
			return nil
		},
	}
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "path to a dictionary manifest JSON file (uses a small built-in demo set if omitted)")
	return cmd
}

func resolveProvider(manifestPath string) (dictionary.Provider, func(), error) {
	if manifestPath == "" {
		return dictionary.NewStaticProvider(demoDictionaries, demoTags), func() {}, nil
	}
	fp, err := dictionary.NewFileProvider(manifestPath, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("loading manifest: %w", err)
	}
	return fp, func() { _ = fp.Close() }, nil
}

// suggestDidYouMean prints a fuzzy-matched hint when the pattern's first
// placeholder names a selector kind unknown to the demo dictionary set,
// separate from the suggestion engine's own strict-prefix matching so the
// engine's exact replace-range semantics stay unaffected.
func suggestDidYouMean(cmd *cobra.Command, pattern string) {
	parsed, err := parser.Parse(pattern)
	if err != nil || len(parsed.Elements) == 0 {
		return
	}
	sel := parsed.Elements[0].Selector
	if sel == nil {
		return
	}
	known := make([]string, 0, len(demoDictionaries))
	for _, d := range demoDictionaries {
		known = append(known, d.Kind)
		if d.Kind == sel.Kind {
			return
		}
	}
	matches := fuzzy.RankFindFold(sel.Kind, known)
	if len(matches) == 0 {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "did you mean %q?\n", matches[0].Target)
}
