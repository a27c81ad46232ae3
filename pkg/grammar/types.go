// Package grammar holds the value types of the slug pattern AST.
//
// The surface grammar is:
//
//	pattern      := ( literal | escape | placeholder )* global_settings? trailing
//	placeholder  := "{" ( selector | number_gen | special_gen ) "}"
//	selector     := ident ( "@" ident )? ( ":" sel_body )?
//	sel_body     := ( tag_list ws* )? ( size_limit ws* )? ( "," ws* options | options )?
//	tag_list     := tag_atom ( ws+ tag_atom )*
//	tag_atom     := ("+"|"-") ident
//	size_limit   := ( "<=" | "<" | ">=" | ">" | "==" | "!=" ) ws* digits
//	options      := option ( "," ws* option )*
//	option       := ident "=" value
//	value        := [A-Za-z0-9_]*
//	number_gen   := "number" ( ":" digits ( [dxr] | "," ws* ("dec"|"hex"|"HEX"|"roman"|"ROMAN") )? )?
//	special_gen  := "special" ( ":" digits ( "-" digits )? )?
//	global_settings := "[" ( "@" ident ws* )? sel_body "]"
//	escape       := "\{" | "\}" | "\\"
//	ident        := [A-Za-z_][A-Za-z0-9_]*
//	digits       := [0-9]+
//
// All types here are immutable once constructed and carry no behavior beyond
// rendering (see render.go); the parser packages own construction.
package grammar

import "fmt"

// CompareOperator is the comparison used by a SizeLimit.
type CompareOperator int

const (
	OpNone CompareOperator = iota
	OpEq                   // ==
	OpNe                   // !=
	OpLt                   // <
	OpLe                   // <=
	OpGt                   // >
	OpGe                   // >=
)

func (op CompareOperator) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	default:
		return ""
	}
}

// NumberBase is the radix used to render a NumberGen placeholder.
type NumberBase int

const (
	BaseDec NumberBase = iota
	BaseHex            // lowercase hex
	BaseHEX            // uppercase hex
	BaseRoman
	BaseROMAN
)

// String renders the base's long form, matching the grammar's long-form spelling.
func (b NumberBase) String() string {
	switch b {
	case BaseDec:
		return "dec"
	case BaseHex:
		return "hex"
	case BaseHEX:
		return "HEX"
	case BaseRoman:
		return "roman"
	case BaseROMAN:
		return "ROMAN"
	default:
		return "dec"
	}
}

// NumberBaseFromShort resolves a single-letter short base form (d, x, r).
func NumberBaseFromShort(letter byte) (NumberBase, bool) {
	switch letter {
	case 'd':
		return BaseDec, true
	case 'x':
		return BaseHex, true
	case 'r':
		return BaseRoman, true
	default:
		return BaseDec, false
	}
}

// NumberBaseFromLong resolves a case-sensitive long base form.
func NumberBaseFromLong(word string) (NumberBase, bool) {
	switch word {
	case "dec":
		return BaseDec, true
	case "hex":
		return BaseHex, true
	case "HEX":
		return BaseHEX, true
	case "roman":
		return BaseRoman, true
	case "ROMAN":
		return BaseROMAN, true
	default:
		return BaseDec, false
	}
}

// SizeLimit is a comparison on a generated word's length. Op is never OpNone
// on a constructed value.
type SizeLimit struct {
	Op    CompareOperator
	Value int
}

// Selector is a dictionary placeholder, e.g. {noun@en:+animal -nsfw >3,case=lower}.
//
// Invariants: Kind is never "number" or "special"; each tag in IncludeTags
// and ExcludeTags appears at most once within this selector; both tag lists
// preserve source order; Options preserves first-seen key order with later
// duplicates overwriting earlier values.
type Selector struct {
	Kind         string
	Language     string // empty when unspecified
	IncludeTags  []string
	ExcludeTags  []string
	SizeLimit    *SizeLimit
	OptionKeys   []string // source order, deduplicated
	OptionValues map[string]string
}

// Option returns the value for key and whether it was set.
func (s *Selector) Option(key string) (string, bool) {
	if s.OptionValues == nil {
		return "", false
	}
	v, ok := s.OptionValues[key]
	return v, ok
}

// NumberGen is the built-in "number" generator.
type NumberGen struct {
	MaxLength int // default 1
	Base      NumberBase
}

// SpecialCharGen is the built-in "special" generator.
//
// Invariant: MinLength <= MaxLength; both are positive.
type SpecialCharGen struct {
	MinLength int
	MaxLength int
}

// ElementKind discriminates the PatternElement tagged union.
type ElementKind int

const (
	ElementSelector ElementKind = iota
	ElementNumberGen
	ElementSpecialCharGen
)

// PatternElement is a tagged variant over {Selector, NumberGen, SpecialCharGen}.
// Exactly one of the three pointer fields matching Kind is non-nil.
type PatternElement struct {
	Kind      ElementKind
	Selector  *Selector
	Number    *NumberGen
	Special   *SpecialCharGen
}

func (e *PatternElement) String() string {
	switch e.Kind {
	case ElementSelector:
		return fmt.Sprintf("Selector(%s)", e.Selector.Kind)
	case ElementNumberGen:
		return "NumberGen"
	case ElementSpecialCharGen:
		return "SpecialCharGen"
	default:
		return "PatternElement(?)"
	}
}

// GlobalSettings has the same shape as Selector minus Kind; it applies
// defaults to every placeholder in the pattern and, when present, must be
// the final non-whitespace construct.
type GlobalSettings struct {
	Language     string
	IncludeTags  []string
	ExcludeTags  []string
	SizeLimit    *SizeLimit
	OptionKeys   []string
	OptionValues map[string]string
}

// ParsedPattern is the top-level parse result.
//
// Invariant: len(TextChunks) == len(Elements)+1. Concatenating
// TextChunks[0], render(Elements[0]), TextChunks[1], ..., TextChunks[n] plus
// the optional global settings block reproduces the original input
// byte-for-byte except for whitespace/escape normalization.
type ParsedPattern struct {
	Elements       []PatternElement
	GlobalSettings *GlobalSettings
	TextChunks     []string
}
