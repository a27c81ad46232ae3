// Package cursor implements a character-indexed reader over pattern source
// text, shared by the full and partial parsers (pkg/parser, pkg/partial).
//
// It deliberately knows nothing about the grammar: callers drive peek,
// advance, match and expect, and the cursor's only grammar-adjacent
// primitives are ParseNumber/ParseIdentifier, which recognize the two
// lexical classes ([0-9]+ and [A-Za-z_][A-Za-z0-9_]*) that appear
// everywhere in the grammar.
package cursor

import "fmt"

// ASCII classification tables, built once at init for fast byte lookups.
var (
	isDigitTable    [128]bool
	isIdentStart    [128]bool
	isIdentPart     [128]bool
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		isDigitTable[i] = ch >= '0' && ch <= '9'
		isIdentStart[i] = (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
		isIdentPart[i] = isIdentStart[i] || isDigitTable[i]
	}
}

func isDigitByte(b byte) bool {
	return b < 128 && isDigitTable[b]
}

func isIdentStartByte(b byte) bool {
	return b < 128 && isIdentStart[b]
}

func isIdentPartByte(b byte) bool {
	return b < 128 && isIdentPart[b]
}

// Cursor is a byte-offset reader over an input string. Patterns are ASCII
// grammar over possibly non-ASCII literal runs, so the cursor indexes bytes;
// literal runs are passed through verbatim regardless of what they contain.
type Cursor struct {
	input string
	pos   int

	// lastParsedToken records the literal consumed by the most recent
	// successful multi-char consumption (identifier, number, or matched
	// literal string), for ParserContextInfo.LastParsedToken.
	lastParsedToken string
}

// New creates a cursor positioned at the start of input.
func New(input string) *Cursor {
	return &Cursor{input: input}
}

// Input returns the full source string the cursor reads over.
func (c *Cursor) Input() string { return c.input }

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// SetPos repositions the cursor; used by the partial parser to snapshot and
// restore position across backtracking attempts (e.g. number-gen base
// disambiguation).
func (c *Cursor) SetPos(pos int) { c.pos = pos }

// AtEnd reports whether the cursor has consumed the whole input.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.input) }

// LastParsedToken returns the most recently consumed literal token, if any.
func (c *Cursor) LastParsedToken() (string, bool) {
	if c.lastParsedToken == "" {
		return "", false
	}
	return c.lastParsedToken, true
}

// Peek returns the byte at the current position without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if c.AtEnd() {
		return 0, false
	}
	return c.input[c.pos], true
}

// PeekAt returns the byte offset bytes ahead of the current position
// without consuming anything.
func (c *Cursor) PeekAt(offset int) (byte, bool) {
	p := c.pos + offset
	if p < 0 || p >= len(c.input) {
		return 0, false
	}
	return c.input[p], true
}

// Advance consumes and returns the current byte.
func (c *Cursor) Advance() (byte, bool) {
	b, ok := c.Peek()
	if !ok {
		return 0, false
	}
	c.pos++
	return b, true
}

// Match consumes the current byte if it equals want, reporting whether it did.
func (c *Cursor) Match(want byte) bool {
	b, ok := c.Peek()
	if !ok || b != want {
		return false
	}
	c.pos++
	return true
}

// MatchString consumes len(want) bytes if they equal want exactly.
func (c *Cursor) MatchString(want string) bool {
	if c.pos+len(want) > len(c.input) {
		return false
	}
	if c.input[c.pos:c.pos+len(want)] != want {
		return false
	}
	c.pos += len(want)
	c.lastParsedToken = want
	return true
}

// Expect consumes the current byte if it equals want, or returns a
// positioned error naming what was expected.
func (c *Cursor) Expect(want byte) error {
	if c.Match(want) {
		return nil
	}
	got := "end of input"
	if b, ok := c.Peek(); ok {
		got = fmt.Sprintf("%q", b)
	}
	return fmt.Errorf("expected %q at position %d, got %s", want, c.pos, got)
}

// SkipWhitespace consumes zero or more space/tab/newline/carriage-return bytes.
func (c *Cursor) SkipWhitespace() {
	for {
		b, ok := c.Peek()
		if !ok || !isSpaceByte(b) {
			return
		}
		c.pos++
	}
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// ParseNumber consumes one or more decimal digits and returns their value.
// Fails (ok=false) if the current byte is not a digit.
func (c *Cursor) ParseNumber() (int, bool) {
	start := c.pos
	for {
		b, ok := c.Peek()
		if !ok || !isDigitByte(b) {
			break
		}
		c.pos++
	}
	if c.pos == start {
		return 0, false
	}
	text := c.input[start:c.pos]
	c.lastParsedToken = text
	n := 0
	for i := 0; i < len(text); i++ {
		n = n*10 + int(text[i]-'0')
	}
	return n, true
}

// ParseIdentifier consumes [A-Za-z_][A-Za-z0-9_]* and returns it. Fails
// (ok=false) if the current byte cannot start an identifier.
func (c *Cursor) ParseIdentifier() (string, bool) {
	start := c.pos
	b, ok := c.Peek()
	if !ok || !isIdentStartByte(b) {
		return "", false
	}
	c.pos++
	for {
		b, ok := c.Peek()
		if !ok || !isIdentPartByte(b) {
			break
		}
		c.pos++
	}
	text := c.input[start:c.pos]
	c.lastParsedToken = text
	return text, true
}

// PeekIdentifier reports the identifier starting at the current position
// without consuming it, used by lookahead in the partial parser.
func (c *Cursor) PeekIdentifier() (string, bool) {
	save := c.pos
	id, ok := c.ParseIdentifier()
	c.pos = save
	return id, ok
}

// ParseValueRun consumes a (possibly empty) run of [A-Za-z0-9_] bytes, the
// character class the grammar uses for option values.
func (c *Cursor) ParseValueRun() string {
	start := c.pos
	for {
		b, ok := c.Peek()
		if !ok || !isIdentPartByte(b) {
			break
		}
		c.pos++
	}
	return c.input[start:c.pos]
}
