package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slugkit/patterndsl/pkg/grammar"
)

func TestParseSelectorWithTagsSizeLimitAndOptions(t *testing.T) {
	t.Parallel()

	parsed, err := Parse("{noun@en:+animal -nsfw >3,case=lower}")
	require.NoError(t, err)
	require.Len(t, parsed.Elements, 1)
	require.Equal(t, []string{"", ""}, parsed.TextChunks)

	sel := parsed.Elements[0].Selector
	require.NotNil(t, sel)
	assert.Equal(t, "noun", sel.Kind)
	assert.Equal(t, "en", sel.Language)
	assert.Equal(t, []string{"animal"}, sel.IncludeTags)
	assert.Equal(t, []string{"nsfw"}, sel.ExcludeTags)
	require.NotNil(t, sel.SizeLimit)
	assert.Equal(t, grammar.OpGt, sel.SizeLimit.Op)
	assert.Equal(t, 3, sel.SizeLimit.Value)
	val, ok := sel.Option("case")
	assert.True(t, ok)
	assert.Equal(t, "lower", val)
}

func TestParseNumberGenWithHexBase(t *testing.T) {
	t.Parallel()

	parsed, err := Parse("{number:5,hex}")
	require.NoError(t, err)
	require.Len(t, parsed.Elements, 1)
	gen := parsed.Elements[0].Number
	require.NotNil(t, gen)
	assert.Equal(t, 5, gen.MaxLength)
	assert.Equal(t, grammar.BaseHex, gen.Base)
}

func TestParseNumberGenShortBaseLetter(t *testing.T) {
	t.Parallel()

	parsed, err := Parse("{number:8x}")
	require.NoError(t, err)
	gen := parsed.Elements[0].Number
	assert.Equal(t, 8, gen.MaxLength)
	assert.Equal(t, grammar.BaseHex, gen.Base)
}

func TestParseNumberGenRejectsUnknownLongBase(t *testing.T) {
	t.Parallel()

	_, err := Parse("{number:5,Dec}")
	assert.Error(t, err)
}

func TestParseNumberGenRejectsLongFormWithoutComma(t *testing.T) {
	t.Parallel()

	_, err := Parse("{number:5hex}")
	assert.Error(t, err)
}

func TestParseSpecialCharGenRange(t *testing.T) {
	t.Parallel()

	parsed, err := Parse("{special:3-7}")
	require.NoError(t, err)
	gen := parsed.Elements[0].Special
	require.NotNil(t, gen)
	assert.Equal(t, 3, gen.MinLength)
	assert.Equal(t, 7, gen.MaxLength)
}

func TestParseSpecialCharGenInvalidRange(t *testing.T) {
	t.Parallel()

	_, err := Parse("{special:5-3}")
	require.Error(t, err)
}

func TestParseSpecialCharGenDefaultsWhenBare(t *testing.T) {
	t.Parallel()

	parsed, err := Parse("{special}")
	require.NoError(t, err)
	gen := parsed.Elements[0].Special
	assert.Equal(t, 1, gen.MinLength)
	assert.Equal(t, 1, gen.MaxLength)
}

func TestParseUnterminatedPlaceholder(t *testing.T) {
	t.Parallel()

	_, err := Parse("{noun")
	require.Error(t, err)
}

func TestParseUnmatchedCloseBrace(t *testing.T) {
	t.Parallel()

	_, err := Parse("hello}")
	require.Error(t, err)
}

func TestParseEscapes(t *testing.T) {
	t.Parallel()

	parsed, err := Parse(`a\{b\}c\\d`)
	require.NoError(t, err)
	require.Len(t, parsed.Elements, 0)
	assert.Equal(t, []string{`a\{b\}c\\d`}, parsed.TextChunks)
}

func TestParseDanglingEscapeErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse(`abc\`)
	require.Error(t, err)
}

func TestParseDuplicateTagIsSemanticError(t *testing.T) {
	t.Parallel()

	_, err := Parse("{noun:+animal +animal}")
	require.Error(t, err)
}

func TestParseGlobalSettings(t *testing.T) {
	t.Parallel()

	parsed, err := Parse("{noun}[@en +animal <10]")
	require.NoError(t, err)
	require.NotNil(t, parsed.GlobalSettings)
	assert.Equal(t, "en", parsed.GlobalSettings.Language)
	assert.Equal(t, []string{"animal"}, parsed.GlobalSettings.IncludeTags)
	require.NotNil(t, parsed.GlobalSettings.SizeLimit)
	assert.Equal(t, grammar.OpLt, parsed.GlobalSettings.SizeLimit.Op)
}

func TestParseContentAfterGlobalSettingsErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse("{noun}[@en] extra")
	require.Error(t, err)
}

func TestParseEmptyPattern(t *testing.T) {
	t.Parallel()

	parsed, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, []string{""}, parsed.TextChunks)
	assert.Empty(t, parsed.Elements)
}

func TestParseLiteralOnlyPattern(t *testing.T) {
	t.Parallel()

	parsed, err := Parse("just literal text")
	require.NoError(t, err)
	assert.Equal(t, []string{"just literal text"}, parsed.TextChunks)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.True(t, Validate("{noun}"))
	assert.False(t, Validate("{noun"))
}

func TestTextChunksElementsInvariant(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"a{noun}b{verb}c",
		"{noun}{verb}{number}",
		"prefix{noun:+animal}suffix",
	}
	for _, p := range cases {
		parsed, err := Parse(p)
		require.NoError(t, err, p)
		assert.Equal(t, len(parsed.Elements)+1, len(parsed.TextChunks), p)
	}
}

func TestTrailingCommaInOptionsIsRejected(t *testing.T) {
	t.Parallel()

	_, err := Parse("{noun:case=lower,}")
	require.Error(t, err)
}

func TestOptionWithoutEqualsIsRejected(t *testing.T) {
	t.Parallel()

	_, err := Parse("{noun:case}")
	require.Error(t, err)
}
