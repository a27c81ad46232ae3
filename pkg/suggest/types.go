// Package suggest implements the context-aware autocomplete engine (spec
// §4.5): given a pattern and a cursor position, it localizes the enclosing
// placeholder (or lack of one), classifies what region of the grammar the
// cursor sits in, and emits a sorted list of Suggestions.
//
// The engine never fails visibly on parse uncertainty — it degrades to
// narrower suggestion sets instead (spec §4.5 "Failure semantics"); the only
// error it surfaces is a dictionary.Provider error.
package suggest

// Kind classifies what a Suggestion completes.
type Kind int

const (
	KindGenerator Kind = iota
	KindTag
	KindOperator
	KindSymbol
	KindLanguage
	KindBase
)

func (k Kind) String() string {
	switch k {
	case KindGenerator:
		return "generator"
	case KindTag:
		return "tag"
	case KindOperator:
		return "operator"
	case KindSymbol:
		return "symbol"
	case KindLanguage:
		return "language"
	case KindBase:
		return "base"
	default:
		return "?"
	}
}

// Range is a half-open character interval a Suggestion would overwrite.
type Range struct {
	Start int
	End   int
}

// Suggestion is one completion candidate (spec §3 "Suggestion").
type Suggestion struct {
	Text         string
	Kind         Kind
	Description  string
	ReplaceRange Range
}
