package partial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePartialExpectingTagOrSizeLimit(t *testing.T) {
	t.Parallel()

	info := ParsePartial("{noun:")
	assert.Equal(t, StateExpectingTagOrSizeLimit, info.State)
	assert.True(t, info.IsValid)
	assert.Contains(t, info.ExpectedNext, TokenTagSpec)
	assert.Contains(t, info.ExpectedNext, TokenComparisonOp)
	assert.Contains(t, info.ExpectedNext, TokenOption)
	assert.Contains(t, info.ExpectedNext, TokenCloseBrace)
}

func TestParsePartialExpectingTagOnlyAfterSizeLimit(t *testing.T) {
	t.Parallel()

	info := ParsePartial("{noun:>5")
	assert.Equal(t, StateExpectingTagOnly, info.State)
	assert.NotContains(t, info.ExpectedNext, TokenComparisonOp)
}

func TestParsePartialCompleteOnFullyValidPattern(t *testing.T) {
	t.Parallel()

	info := ParsePartial("hello {noun} world")
	assert.Equal(t, StateComplete, info.State)
	assert.True(t, info.IsValid)
}

func TestParsePartialIncompleteOnDanglingEscape(t *testing.T) {
	t.Parallel()

	info := ParsePartial(`abc\`)
	assert.Equal(t, StateIncomplete, info.State)
	assert.True(t, info.IsValid)
}

func TestParsePartialOutsidePlaceholderOnUnmatchedCloseBrace(t *testing.T) {
	t.Parallel()

	info := ParsePartial("abc}")
	assert.Equal(t, StateOutsidePlaceholder, info.State)
	assert.False(t, info.IsValid)
}

func TestParsePartialDuplicateTagStaysInDeepestState(t *testing.T) {
	t.Parallel()

	info := ParsePartial("{noun:+animal +animal")
	assert.False(t, info.IsValid)
	assert.Equal(t, StateExpectingTagIdentifier, info.State)
}

func TestParsePartialNumberGenStates(t *testing.T) {
	t.Parallel()

	info := ParsePartial("{number:")
	assert.Equal(t, StateExpectingNumberLength, info.State)

	info = ParsePartial("{number:5")
	assert.Equal(t, StateExpectingNumberBase, info.State)
	assert.True(t, info.IsValid)
}

func TestParsePartialSpecialGenStates(t *testing.T) {
	t.Parallel()

	info := ParsePartial("{special:3-")
	assert.Equal(t, StateExpectingSpecialRange, info.State)
	assert.True(t, info.IsValid)
}

func TestParsePartialGlobalSettingsTrailingContentIsInvalid(t *testing.T) {
	t.Parallel()

	info := ParsePartial("{noun}[@en] extra")
	assert.Equal(t, StateInvalid, info.State)
	assert.False(t, info.IsValid)
}

func TestIsCompleteMatchesFullParserSuccess(t *testing.T) {
	t.Parallel()

	assert.True(t, IsComplete("{noun}"))
	assert.False(t, IsComplete("{noun"))
}

func TestValidPrefixIsAPrefixOfInput(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "{noun}", "{noun:", "abc}", "{noun:+animal"}
	for _, in := range inputs {
		prefix := ValidPrefix(in)
		require.LessOrEqual(t, len(prefix), len(in), in)
		assert.Equal(t, in[:len(prefix)], prefix, in)
	}
}

func TestParsePartialEmptyPatternIsComplete(t *testing.T) {
	t.Parallel()

	info := ParsePartial("")
	assert.Equal(t, StateComplete, info.State)
	assert.True(t, info.IsValid)
}
