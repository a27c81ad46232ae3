// Package patternerr holds the parser error taxonomy used by pkg/parser,
// rendering errors as a positioned source snippet with a caret under the
// offending byte. pkg/partial does not use it: it reports failures as a
// message in its ParserContextInfo.
package patternerr

import (
	"fmt"
	"strings"
)

// ErrorType categorizes why a parse failed.
type ErrorType int

const (
	// ErrUnexpectedChar covers unexpected characters, including unmatched
	// closers and a bare "=" or "!" that never completed into an operator.
	ErrUnexpectedChar ErrorType = iota
	// ErrUnterminated covers a construct that ran out of input before
	// closing; only ever raised by the full parser (pkg/partial reports an
	// incompleteness state instead).
	ErrUnterminated
	// ErrInvalidIdentifier covers an identifier used somewhere the grammar
	// forbids it, e.g. mixing short and long number-base forms.
	ErrInvalidIdentifier
	// ErrSemantic covers a semantically invalid but lexically well-formed
	// construct: empty tag, invalid range, trailing comma, option with no "=".
	ErrSemantic
)

func (t ErrorType) String() string {
	switch t {
	case ErrUnexpectedChar:
		return "unexpected character"
	case ErrUnterminated:
		return "unterminated construct"
	case ErrInvalidIdentifier:
		return "invalid identifier context"
	case ErrSemantic:
		return "semantic error"
	default:
		return "parse error"
	}
}

// ParseError is a positioned parse failure. Position is a 0-based byte
// offset into the pattern that was being parsed.
type ParseError struct {
	Type     ErrorType
	Message  string
	Position int
	Input    string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("%s at position %d: %s", e.Type, e.Position, e.Message)
	}
	return fmt.Sprintf("%s at position %d: %s\n%s", e.Type, e.Position, e.Message, e.snippet())
}

// snippet renders a single-line caret pointer under the error position,
// patterns being single-line input there is no line/column split to do.
func (e *ParseError) snippet() string {
	var b strings.Builder
	b.WriteString("   | ")
	b.WriteString(e.Input)
	b.WriteString("\n   | ")
	if e.Position >= 0 && e.Position <= len(e.Input) {
		b.WriteString(strings.Repeat(" ", e.Position))
		b.WriteString("^")
	}
	return b.String()
}

// New constructs a ParseError.
func New(t ErrorType, input string, position int, format string, args ...any) *ParseError {
	return &ParseError{
		Type:     t,
		Message:  fmt.Sprintf(format, args...),
		Position: position,
		Input:    input,
	}
}

// Unexpected reports an unexpected character error at position.
func Unexpected(input string, position int, format string, args ...any) *ParseError {
	return New(ErrUnexpectedChar, input, position, format, args...)
}

// Unterminated reports an unterminated-construct error at position.
func Unterminated(input string, position int, format string, args ...any) *ParseError {
	return New(ErrUnterminated, input, position, format, args...)
}

// InvalidIdentifier reports an invalid-identifier-context error at position.
func InvalidIdentifier(input string, position int, format string, args ...any) *ParseError {
	return New(ErrInvalidIdentifier, input, position, format, args...)
}

// Semantic reports a semantic-violation error at position.
func Semantic(input string, position int, format string, args ...any) *ParseError {
	return New(ErrSemantic, input, position, format, args...)
}
