// Package patterndsl is the public facade over the slug pattern grammar
// (spec §6.2): Parse and Validate for complete patterns, ParsePartial and
// its IsComplete/ValidPrefix/ExpectedNext derivatives for editor liveness,
// and Suggest for context-aware autocomplete. It is a thin wrapper over
// pkg/parser, pkg/partial, and pkg/suggest — callers needing the AST or
// state-machine types directly may import those packages instead.
package patterndsl

import (
	"context"

	"github.com/slugkit/patterndsl/pkg/dictionary"
	"github.com/slugkit/patterndsl/pkg/grammar"
	"github.com/slugkit/patterndsl/pkg/parser"
	"github.com/slugkit/patterndsl/pkg/partial"
	"github.com/slugkit/patterndsl/pkg/suggest"
)

// Parse parses a complete pattern, or returns the first error encountered.
func Parse(input string) (*grammar.ParsedPattern, error) {
	return parser.Parse(input)
}

// Validate reports whether input parses successfully.
func Validate(input string) bool {
	return parser.Validate(input)
}

// ParsePartial parses the longest recognizable prefix of input and reports
// where it stopped, for editor liveness.
func ParsePartial(input string) *partial.ParserContextInfo {
	return partial.ParsePartial(input)
}

// IsComplete reports whether Parse(input) would succeed.
func IsComplete(input string) bool {
	return partial.IsComplete(input)
}

// ValidPrefix returns the longest prefix of input for which a partial parse
// reaches a recognized state.
func ValidPrefix(input string) string {
	return partial.ValidPrefix(input)
}

// ExpectedNext returns the token classes that could legally follow input.
func ExpectedNext(input string) []partial.ExpectedToken {
	info := partial.ParsePartial(input)
	return info.ExpectedNext
}

// Suggester generates context-aware Suggestions for a pattern and cursor,
// backed by a dictionary.Provider.
type Suggester struct {
	engine *suggest.Engine
}

// NewSuggester builds a Suggester backed by provider.
func NewSuggester(provider dictionary.Provider) *Suggester {
	return &Suggester{engine: suggest.New(provider)}
}

// Suggest generates Suggestions for pattern at cursor.
func (s *Suggester) Suggest(ctx context.Context, pattern string, cursor int) ([]suggest.Suggestion, error) {
	return s.engine.Suggest(ctx, pattern, cursor)
}
