package parser

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/slugkit/patterndsl/pkg/grammar"
)

// TestRenderParseRoundTrip exercises spec §8's "reserialize-parse" property:
// rendering a ParsedPattern's elements and re-parsing reproduces an
// equivalent ParsedPattern.
func TestRenderParseRoundTrip(t *testing.T) {
	t.Parallel()

	patterns := []string{
		"{noun@en:+animal -nsfw>3,case=lower}",
		"{number:5,hex}",
		"{special:3-7}",
		"{verb}",
		"a-{noun}-{number:4x}-b",
	}

	for _, p := range patterns {
		p := p
		t.Run(p, func(t *testing.T) {
			t.Parallel()

			parsed, err := Parse(p)
			require.NoError(t, err)

			var rebuilt string
			chunkIdx := 0
			for _, el := range parsed.Elements {
				rebuilt += parsed.TextChunks[chunkIdx]
				rebuilt += "{" + grammar.RenderElement(&el) + "}"
				chunkIdx++
			}
			rebuilt += parsed.TextChunks[chunkIdx]

			reparsed, err := Parse(rebuilt)
			require.NoError(t, err, fmt.Sprintf("rebuilt pattern %q", rebuilt))

			if diff := cmp.Diff(parsed, reparsed); diff != "" {
				t.Errorf("round-trip mismatch for %q (-original +reparsed):\n%s", p, diff)
			}
		})
	}
}
