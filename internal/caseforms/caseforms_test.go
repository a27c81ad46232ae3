package caseforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLowercase(t *testing.T) {
	t.Parallel()
	assert.Equal(t, StyleLower, Detect("adj"))
}

func TestDetectUppercase(t *testing.T) {
	t.Parallel()
	assert.Equal(t, StyleUpper, Detect("ADJ"))
}

func TestDetectTitlecase(t *testing.T) {
	t.Parallel()
	assert.Equal(t, StyleTitle, Detect("Adj"))
}

func TestDetectAlternating(t *testing.T) {
	t.Parallel()
	assert.Equal(t, StyleAlternating, Detect("aDj"))
}

func TestApplyAlternatingContinuesPattern(t *testing.T) {
	t.Parallel()
	// spec §4.5 worked example: user typed "aDj" over base "adjective".
	out := Apply(StyleAlternating, "adjective", "aDj")
	assert.Equal(t, "aDjEcTiVe", out)
}

func TestApplyLowerUpperTitle(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "adjective", Apply(StyleLower, "Adjective", ""))
	assert.Equal(t, "ADJECTIVE", Apply(StyleUpper, "adjective", ""))
	assert.Equal(t, "Adjective", Apply(StyleTitle, "adjective", ""))
}

func TestDetectSingleCharacter(t *testing.T) {
	t.Parallel()
	assert.Equal(t, StyleLower, Detect("a"))
	assert.Equal(t, StyleUpper, Detect("A"))
}

func TestDetectNoLettersDefaultsToLower(t *testing.T) {
	t.Parallel()
	assert.Equal(t, StyleLower, Detect("_123"))
}
