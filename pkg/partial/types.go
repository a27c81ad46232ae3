package partial

import "github.com/slugkit/patterndsl/pkg/grammar"

// PartialElement is whatever has been recognized of a PatternElement (or a
// GlobalSettings block) at the point a partial parse stopped. Unlike
// grammar.PatternElement, none of its invariants need hold yet.
type PartialElement struct {
	Kind string // "selector", "number", "special", or "global"
	Name string // selector kind identifier, when Kind == "selector"

	Language string

	IncludeTags []string
	ExcludeTags []string
	SizeLimit   *grammar.SizeLimit

	OptionKeys   []string
	OptionValues map[string]string

	NumberMaxLength *int
	NumberBase      *grammar.NumberBase

	SpecialMin *int
	SpecialMax *int
}

func newPartialElement(kind string) *PartialElement {
	return &PartialElement{Kind: kind, OptionValues: map[string]string{}}
}

func (e *PartialElement) hasTag(tag string) bool {
	for _, t := range e.IncludeTags {
		if t == tag {
			return true
		}
	}
	for _, t := range e.ExcludeTags {
		if t == tag {
			return true
		}
	}
	return false
}

// ParserContextInfo is the result of a partial parse (spec §3).
type ParserContextInfo struct {
	State          State
	Position       int
	ParsedSoFar    string
	ExpectedNext   []ExpectedToken
	LastParsedToken *string
	IsValid        bool
	ErrorMessage   *string
	PartialElement *PartialElement
}
