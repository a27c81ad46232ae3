package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/slugkit/patterndsl/pkg/partial"
)

// newWatchCmd implements the liveness demo: for each line read from stdin,
// it re-runs ParsePartial on every prefix of that line, as an editor would
// on every keystroke, and prints the resulting state and expected-next set.
func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Drive parse_partial against stdin lines, one prefix at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := newCancellableContext()
			defer cancel()

			return watchLines(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	return cmd
}

func watchLines(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line := scanner.Text()
		for i := 1; i <= len(line); i++ {
			prefix := line[:i]
			info := partial.ParsePartial(prefix)
			printContextInfo(out, prefix, info)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return nil
}

func printContextInfo(out io.Writer, prefix string, info *partial.ParserContextInfo) {
	expected := make([]string, len(info.ExpectedNext))
	for i, t := range info.ExpectedNext {
		expected[i] = t.String()
	}
	fmt.Fprintf(out, "%-30q state=%-28s valid=%-5t expected=[%s]\n",
		prefix, info.State, info.IsValid, strings.Join(expected, ", "))
}

func newCancellableContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()
	return ctx, cancel
}
