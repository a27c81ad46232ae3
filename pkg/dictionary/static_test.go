package dictionary

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProviderReturnsCopies(t *testing.T) {
	t.Parallel()

	p := NewStaticProvider([]Info{{Kind: "noun", Count: 5}}, []Tag{{Kind: "noun", Tag: "animal"}})

	infos, err := p.Dictionaries(context.Background())
	require.NoError(t, err)
	infos[0].Count = 999

	infos2, err := p.Dictionaries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, infos2[0].Count, "mutating a returned slice must not affect the provider's internal state")
}

func TestStaticProviderTags(t *testing.T) {
	t.Parallel()

	p := NewStaticProvider(nil, []Tag{{Kind: "noun", Tag: "animal", Description: "animals"}})
	tags, err := p.Tags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "animal", tags[0].Tag)
}
