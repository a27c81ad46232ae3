package suggest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slugkit/patterndsl/pkg/dictionary"
)

func textsOf(suggestions []Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Text
	}
	return out
}

func TestSuggestOutsidePlaceholderOffersOpenBrace(t *testing.T) {
	t.Parallel()

	e := New(dictionary.NewStaticProvider(nil, nil))
	results, err := e.Suggest(context.Background(), "hello world", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "{", results[0].Text)
	assert.Equal(t, KindSymbol, results[0].Kind)
}

func TestSuggestGeneratorNameCaseVariants(t *testing.T) {
	t.Parallel()

	provider := dictionary.NewStaticProvider([]dictionary.Info{
		{Kind: "adjective", Count: 1},
		{Kind: "adverb", Count: 1},
		{Kind: "noun", Count: 1},
		{Kind: "verb", Count: 1},
	}, nil)
	e := New(provider)

	results, err := e.Suggest(context.Background(), "{a", 2)
	require.NoError(t, err)

	// spec §8 scenario 7: exactly these four, in this order.
	assert.Equal(t, []string{"adjective", "adverb", "aDjEcTiVe", "aDvErB"}, textsOf(results))
	for _, s := range results {
		assert.Equal(t, Range{1, 2}, s.ReplaceRange)
		assert.Equal(t, KindGenerator, s.Kind)
	}
}

func TestSuggestTagModeExcludesUsedTags(t *testing.T) {
	t.Parallel()

	provider := dictionary.NewStaticProvider(nil, []dictionary.Tag{
		{Kind: "noun", Tag: "animal"},
		{Kind: "noun", Tag: "artifact"},
		{Kind: "noun", Tag: "plant"},
		{Kind: "noun", Tag: "object"},
		{Kind: "noun", Tag: "person"},
		{Kind: "noun", Tag: "place"},
	})
	e := New(provider)

	pattern := "{noun:+animal +"
	results, err := e.Suggest(context.Background(), pattern, len(pattern))
	require.NoError(t, err)

	texts := textsOf(results)
	assert.NotContains(t, texts, "animal")
	assert.Len(t, results, 5)
	for _, s := range results {
		assert.Equal(t, KindTag, s.Kind)
		assert.Equal(t, Range{len(pattern), len(pattern)}, s.ReplaceRange)
	}
}

func TestSuggestTagModeSwitchesToOperatorsRightAfterCompletedTag(t *testing.T) {
	t.Parallel()

	provider := dictionary.NewStaticProvider(nil, []dictionary.Tag{
		{Kind: "noun", Tag: "animal"},
		{Kind: "noun", Tag: "artifact"},
	})
	e := New(provider)

	// cursor sits immediately after a just-finished tag, no trailing space
	// or sigil yet: the tag-mode partial-equals-existing-tag branch must
	// fire here, not only once a second tag slot has been opened.
	pattern := "{noun:+animal"
	results, err := e.Suggest(context.Background(), pattern, len(pattern))
	require.NoError(t, err)

	// no size limit has been typed yet, so the full operator set (including
	// comparison operators) plus close brace is on offer, in emission order.
	assert.Equal(t, []string{"+", "-", "==", "!=", "<", "<=", ">", ">=", "}"}, textsOf(results))
}

func TestSuggestNoSecondComparisonOperatorAfterSizeLimit(t *testing.T) {
	t.Parallel()

	provider := dictionary.NewStaticProvider(nil, nil)
	e := New(provider)

	pattern := "{noun:==4"
	results, err := e.Suggest(context.Background(), pattern, len(pattern))
	require.NoError(t, err)

	// spec §8 scenario 8: exactly [+, -, }].
	assert.Equal(t, []string{"+", "-", "}"}, textsOf(results))
}

func TestSuggestIsStableAcrossRepeatedCalls(t *testing.T) {
	t.Parallel()

	provider := dictionary.NewStaticProvider([]dictionary.Info{
		{Kind: "noun", Count: 1},
		{Kind: "verb", Count: 1},
	}, nil)
	e := New(provider)

	first, err := e.Suggest(context.Background(), "{n", 2)
	require.NoError(t, err)
	second, err := e.Suggest(context.Background(), "{n", 2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSuggestReplaceRangeNeverExceedsCursor(t *testing.T) {
	t.Parallel()

	provider := dictionary.NewStaticProvider([]dictionary.Info{{Kind: "noun", Count: 1}}, []dictionary.Tag{
		{Kind: "noun", Tag: "animal"},
	})
	e := New(provider)

	for _, pattern := range []string{"{noun:+an", "{n", "{noun:==4"} {
		results, err := e.Suggest(context.Background(), pattern, len(pattern))
		require.NoError(t, err)
		for _, s := range results {
			assert.LessOrEqual(t, s.ReplaceRange.Start, s.ReplaceRange.End)
			assert.LessOrEqual(t, s.ReplaceRange.End, len(pattern))
		}
	}
}

func TestSuggestClampsCursorBeyondPatternLength(t *testing.T) {
	t.Parallel()

	provider := dictionary.NewStaticProvider(nil, nil)
	e := New(provider)

	results, err := e.Suggest(context.Background(), "{noun}", 999)
	require.NoError(t, err)
	assert.NotEmpty(t, results)
}
