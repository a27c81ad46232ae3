package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSelectorRoundTrip(t *testing.T) {
	t.Parallel()

	sel := &Selector{
		Kind:         "noun",
		Language:     "en",
		IncludeTags:  []string{"animal"},
		ExcludeTags:  []string{"nsfw"},
		SizeLimit:    &SizeLimit{Op: OpGt, Value: 3},
		OptionKeys:   []string{"case"},
		OptionValues: map[string]string{"case": "lower"},
	}
	el := &PatternElement{Kind: ElementSelector, Selector: sel}

	rendered := RenderElement(el)
	assert.Equal(t, "noun@en:+animal -nsfw >3,case=lower", rendered)
}

func TestRenderNumberGen(t *testing.T) {
	t.Parallel()

	el := &PatternElement{Kind: ElementNumberGen, Number: &NumberGen{MaxLength: 5, Base: BaseHex}}
	assert.Equal(t, "number:5,hex", RenderElement(el))
}

func TestRenderSpecialCharGen(t *testing.T) {
	t.Parallel()

	el := &PatternElement{Kind: ElementSpecialCharGen, Special: &SpecialCharGen{MinLength: 3, MaxLength: 7}}
	assert.Equal(t, "special:3-7", RenderElement(el))
}

func TestNumberBaseConversions(t *testing.T) {
	t.Parallel()

	base, ok := NumberBaseFromShort('x')
	assert.True(t, ok)
	assert.Equal(t, BaseHex, base)

	_, ok = NumberBaseFromShort('q')
	assert.False(t, ok)

	base, ok = NumberBaseFromLong("ROMAN")
	assert.True(t, ok)
	assert.Equal(t, BaseROMAN, base)
}
