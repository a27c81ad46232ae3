package patterndsl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slugkit/patterndsl/pkg/dictionary"
)

func TestParseAndValidateAgree(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"{noun}", "{noun", "", "literal text"} {
		_, parseErr := Parse(p)
		assert.Equal(t, parseErr == nil, Validate(p), p)
		assert.Equal(t, parseErr == nil, IsComplete(p), p)
	}
}

func TestValidPrefixIsAlwaysAPrefix(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"{noun:", "abc}", "{noun}"} {
		prefix := ValidPrefix(p)
		require.LessOrEqual(t, len(prefix), len(p))
		assert.Equal(t, p[:len(prefix)], prefix)
	}
}

func TestExpectedNextForEmptyPlaceholder(t *testing.T) {
	t.Parallel()

	next := ExpectedNext("{")
	assert.NotEmpty(t, next)
}

func TestSuggesterEndToEnd(t *testing.T) {
	t.Parallel()

	provider := dictionary.NewStaticProvider([]dictionary.Info{{Kind: "noun", Count: 1}}, nil)
	s := NewSuggester(provider)

	results, err := s.Suggest(context.Background(), "{n", 2)
	require.NoError(t, err)
	assert.NotEmpty(t, results)
}
