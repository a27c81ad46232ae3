package partial

import (
	"fmt"

	"github.com/slugkit/patterndsl/pkg/cursor"
	"github.com/slugkit/patterndsl/pkg/grammar"
)

// ParsePartial parses the longest recognizable prefix of input and reports
// where it stopped. It always returns a result; it never panics and never
// returns an error — see package doc.
func ParsePartial(input string) *ParserContextInfo {
	cur := cursor.New(input)

	for {
		if cur.AtEnd() {
			return newInfo(cur, StateComplete, true, "", nil)
		}

		b, _ := cur.Peek()
		switch b {
		case '{':
			cur.Advance()
			if done, result := parsePlaceholder(cur); done {
				return result
			}
			// placeholder closed successfully; keep scanning top level.

		case '[':
			cur.Advance()
			return parseGlobalSettingsPartial(cur)

		case '}':
			return newInfo(cur, StateOutsidePlaceholder, false, "unmatched '}'", nil)

		case ']':
			return newInfo(cur, StateOutsidePlaceholder, false, "unmatched ']'", nil)

		case '\\':
			cur.Advance()
			if cur.AtEnd() {
				return newInfo(cur, StateIncomplete, true, "", nil)
			}
			nb, _ := cur.Peek()
			if nb == '{' || nb == '}' || nb == '\\' {
				cur.Advance()
			} else {
				return newInfo(cur, StateOutsidePlaceholder, false, fmt.Sprintf("invalid escape sequence '\\%c'", nb), nil)
			}

		default:
			cur.Advance()
		}
	}
}

// IsComplete reports whether Parse(input) would succeed.
func IsComplete(input string) bool {
	info := ParsePartial(input)
	return info.State == StateComplete && info.IsValid
}

// ValidPrefix returns the longest prefix of input for which ParsePartial
// reaches a recognized (non-error) state; it equals input when input is
// itself a complete, valid pattern.
func ValidPrefix(input string) string {
	info := ParsePartial(input)
	if info.IsValid {
		return input
	}
	return input[:info.Position]
}

func newInfo(cur *cursor.Cursor, state State, valid bool, message string, elem *PartialElement) *ParserContextInfo {
	pos := cur.Pos()
	ci := &ParserContextInfo{
		State:          state,
		Position:       pos,
		ParsedSoFar:    cur.Input()[:pos],
		ExpectedNext:   ExpectedNext(state),
		IsValid:        valid,
		PartialElement: elem,
	}
	if tok, ok := cur.LastParsedToken(); ok {
		ci.LastParsedToken = &tok
	}
	if message != "" {
		ci.ErrorMessage = &message
	}
	return ci
}

// parsePlaceholder parses from just past the opening '{'. Returns
// done=true with a terminal result, or done=false once the matching '}'
// has been consumed (caller resumes top-level scanning).
func parsePlaceholder(cur *cursor.Cursor) (bool, *ParserContextInfo) {
	if cur.AtEnd() {
		return true, newInfo(cur, StateExpectingIdentifier, true, "", nil)
	}
	b, _ := cur.Peek()
	if b == '}' {
		return true, newInfo(cur, StateExpectingIdentifier, false, "placeholder cannot be empty", nil)
	}
	if _, ok := cur.PeekIdentifier(); !ok {
		return true, newInfo(cur, StateExpectingIdentifier, false, fmt.Sprintf("expected an identifier, got %q", b), nil)
	}
	kind, _ := cur.ParseIdentifier()

	if cur.AtEnd() {
		switch kind {
		case "number":
			return true, newInfo(cur, StatePartialNumberGen, true, "", newPartialElement("number"))
		case "special":
			return true, newInfo(cur, StatePartialSpecialGen, true, "", newPartialElement("special"))
		default:
			elem := newPartialElement("selector")
			elem.Name = kind
			return true, newInfo(cur, StatePartialSelector, true, "", elem)
		}
	}

	switch kind {
	case "number":
		return parseNumberGenPartial(cur)
	case "special":
		return parseSpecialGenPartial(cur)
	default:
		return parseSelectorPartial(cur, kind)
	}
}

func parseSelectorPartial(cur *cursor.Cursor, kind string) (bool, *ParserContextInfo) {
	elem := newPartialElement("selector")
	elem.Name = kind

	afterState := StatePartialSelector

	if cur.Match('@') {
		afterState = StateExpectingAfterLanguage
		if cur.AtEnd() {
			return true, newInfo(cur, StateExpectingLanguageIdentifier, true, "", elem)
		}
		b, _ := cur.Peek()
		if _, ok := cur.PeekIdentifier(); !ok {
			return true, newInfo(cur, StateExpectingLanguageIdentifier, false, fmt.Sprintf("expected a language identifier after '@', got %q", b), elem)
		}
		lang, _ := cur.ParseIdentifier()
		elem.Language = lang
		if cur.AtEnd() {
			return true, newInfo(cur, StateExpectingAfterLanguage, true, "", elem)
		}
	}

	if cur.Match(':') {
		return parseSelBodyPartial(cur, elem, '}', StateExpectingTagOrSizeLimit, StateExpectingTagOnly, StateExpectingCloseBrace)
	}
	if cur.Match('}') {
		return false, nil
	}
	if cur.AtEnd() {
		return true, newInfo(cur, afterState, true, "", elem)
	}
	b, _ := cur.Peek()
	return true, newInfo(cur, afterState, false, fmt.Sprintf("unexpected character %q", b), elem)
}

// parseSelBodyPartial parses the tag/size-limit/options body shared by
// selectors and global settings. closeByte is '}' or ']'; the three state
// parameters let the caller reuse this for either closer.
func parseSelBodyPartial(
	cur *cursor.Cursor,
	elem *PartialElement,
	closeByte byte,
	stateTagOrSize, stateTagOnly, stateCloseExpect State,
) (bool, *ParserContextInfo) {
	cur.SkipWhitespace()
	sizeLimitSeen := elem.SizeLimit != nil

	tagOrSizeState := func() State {
		if sizeLimitSeen {
			return stateTagOnly
		}
		return stateTagOrSize
	}

	for {
		if cur.AtEnd() {
			return true, newInfo(cur, tagOrSizeState(), true, "", elem)
		}
		b, _ := cur.Peek()
		if b != '+' && b != '-' {
			break
		}
		cur.Advance()
		if cur.AtEnd() {
			return true, newInfo(cur, StateExpectingTagIdentifier, true, "", elem)
		}
		tag, ok := cur.ParseIdentifier()
		if !ok {
			return true, newInfo(cur, StateExpectingTagIdentifier, false, "empty tag name", elem)
		}
		if elem.hasTag(tag) {
			return true, newInfo(cur, StateExpectingTagIdentifier, false, fmt.Sprintf("duplicate tag %q", tag), elem)
		}
		if b == '+' {
			elem.IncludeTags = append(elem.IncludeTags, tag)
		} else {
			elem.ExcludeTags = append(elem.ExcludeTags, tag)
		}
		cur.SkipWhitespace()
	}

	if !sizeLimitSeen {
		if cur.AtEnd() {
			return true, newInfo(cur, tagOrSizeState(), true, "", elem)
		}
		if b, ok := cur.Peek(); ok && isCompareStart(b) {
			op, complete, valid := tryParseCompareOp(cur)
			if !valid {
				return true, newInfo(cur, StateExpectingSizeLimit, false, "invalid comparison operator", elem)
			}
			if !complete {
				return true, newInfo(cur, StateExpectingSizeLimit, true, "", elem)
			}
			cur.SkipWhitespace()
			if cur.AtEnd() {
				return true, newInfo(cur, StateExpectingSizeLimit, true, "", elem)
			}
			val, ok := cur.ParseNumber()
			if !ok {
				return true, newInfo(cur, StateExpectingSizeLimit, false, "expected a non-negative integer", elem)
			}
			elem.SizeLimit = &grammar.SizeLimit{Op: op, Value: val}
			sizeLimitSeen = true
			cur.SkipWhitespace()
		}
	}

	cur.Match(',')
	cur.SkipWhitespace()

	for {
		if cur.AtEnd() {
			return true, newInfo(cur, tagOrSizeState(), true, "", elem)
		}
		save := cur.Pos()
		key, ok := cur.ParseIdentifier()
		if !ok {
			cur.SetPos(save)
			break
		}
		if cur.AtEnd() {
			return true, newInfo(cur, StateExpectingOption, true, "", elem)
		}
		if !cur.Match('=') {
			return true, newInfo(cur, StateExpectingOption, false, fmt.Sprintf("option %q has no '='", key), elem)
		}
		val := cur.ParseValueRun()
		if _, exists := elem.OptionValues[key]; !exists {
			elem.OptionKeys = append(elem.OptionKeys, key)
		}
		elem.OptionValues[key] = val
		if cur.AtEnd() {
			return true, newInfo(cur, StateExpectingOption, true, "", elem)
		}
		if !cur.Match(',') {
			break
		}
		cur.SkipWhitespace()
		if cur.AtEnd() {
			return true, newInfo(cur, StateExpectingOption, true, "", elem)
		}
	}

	if cur.Match(closeByte) {
		return false, nil
	}
	if cur.AtEnd() {
		return true, newInfo(cur, stateCloseExpect, true, "", elem)
	}
	b, _ := cur.Peek()
	return true, newInfo(cur, stateCloseExpect, false, fmt.Sprintf("unexpected character %q", b), elem)
}

func isCompareStart(b byte) bool {
	return b == '<' || b == '>' || b == '=' || b == '!'
}

// tryParseCompareOp tokenizes a comparison operator greedily, the same six
// operators as pkg/parser, but tolerates running out of input mid-operator
// (complete=false) rather than failing outright.
func tryParseCompareOp(cur *cursor.Cursor) (op grammar.CompareOperator, complete bool, valid bool) {
	b0, _ := cur.Advance()
	switch b0 {
	case '<':
		if cur.AtEnd() {
			return grammar.OpLt, false, true
		}
		if cur.Match('=') {
			return grammar.OpLe, true, true
		}
		return grammar.OpLt, true, true
	case '>':
		if cur.AtEnd() {
			return grammar.OpGt, false, true
		}
		if cur.Match('=') {
			return grammar.OpGe, true, true
		}
		return grammar.OpGt, true, true
	case '=':
		if cur.AtEnd() {
			return grammar.OpNone, false, true
		}
		if cur.Match('=') {
			return grammar.OpEq, true, true
		}
		return grammar.OpNone, true, false
	case '!':
		if cur.AtEnd() {
			return grammar.OpNone, false, true
		}
		if cur.Match('=') {
			return grammar.OpNe, true, true
		}
		return grammar.OpNone, true, false
	default:
		return grammar.OpNone, true, false
	}
}

func isShortBaseLetter(b byte) bool {
	return b == 'd' || b == 'x' || b == 'r'
}

func parseNumberGenPartial(cur *cursor.Cursor) (bool, *ParserContextInfo) {
	elem := newPartialElement("number")

	if cur.Match(':') {
		if cur.AtEnd() {
			return true, newInfo(cur, StateExpectingNumberLength, true, "", elem)
		}
		n, ok := cur.ParseNumber()
		if !ok {
			return true, newInfo(cur, StateExpectingNumberLength, false, "expected digits after 'number:'", elem)
		}
		elem.NumberMaxLength = &n

		if cur.AtEnd() {
			return true, newInfo(cur, StateExpectingNumberBase, true, "", elem)
		}
		b, _ := cur.Peek()
		switch {
		case b == ',':
			cur.Advance()
			cur.SkipWhitespace()
			if cur.AtEnd() {
				return true, newInfo(cur, StateExpectingNumberBase, true, "", elem)
			}
			word, ok := cur.ParseIdentifier()
			if !ok {
				return true, newInfo(cur, StateExpectingNumberBase, false, "expected a number base after ','", elem)
			}
			base, ok := grammar.NumberBaseFromLong(word)
			if !ok {
				return true, newInfo(cur, StateExpectingNumberBase, false, fmt.Sprintf("unknown number base %q", word), elem)
			}
			elem.NumberBase = &base
		case isShortBaseLetter(b):
			if ident, ok := cur.PeekIdentifier(); ok && len(ident) > 1 {
				return true, newInfo(cur, StateExpectingNumberBase, false, fmt.Sprintf("long-form base %q must be preceded by ','", ident), elem)
			}
			cur.Advance()
			base, _ := grammar.NumberBaseFromShort(b)
			elem.NumberBase = &base
		}

		if cur.Match('}') {
			return false, nil
		}
		if cur.AtEnd() {
			return true, newInfo(cur, StateExpectingNumberBase, true, "", elem)
		}
		b2, _ := cur.Peek()
		return true, newInfo(cur, StateExpectingNumberBase, false, fmt.Sprintf("unexpected character %q", b2), elem)
	}

	if cur.Match('}') {
		return false, nil
	}
	if cur.AtEnd() {
		return true, newInfo(cur, StatePartialNumberGen, true, "", elem)
	}
	b, _ := cur.Peek()
	return true, newInfo(cur, StatePartialNumberGen, false, fmt.Sprintf("unexpected character %q", b), elem)
}

func parseSpecialGenPartial(cur *cursor.Cursor) (bool, *ParserContextInfo) {
	elem := newPartialElement("special")

	if cur.Match(':') {
		if cur.AtEnd() {
			return true, newInfo(cur, StateExpectingSpecialLength, true, "", elem)
		}
		first, ok := cur.ParseNumber()
		if !ok {
			return true, newInfo(cur, StateExpectingSpecialLength, false, "expected digits after 'special:'", elem)
		}
		elem.SpecialMin = &first
		elem.SpecialMax = &first

		if cur.AtEnd() {
			return true, newInfo(cur, StatePartialSpecialGen, true, "", elem)
		}

		if cur.Match('-') {
			if cur.AtEnd() {
				return true, newInfo(cur, StateExpectingSpecialRange, true, "", elem)
			}
			second, ok := cur.ParseNumber()
			if !ok {
				return true, newInfo(cur, StateExpectingSpecialRange, false, "expected digits after '-'", elem)
			}
			if first > second {
				return true, newInfo(cur, StateExpectingSpecialRange, false, fmt.Sprintf("invalid range: %d-%d", first, second), elem)
			}
			elem.SpecialMax = &second
		}

		if cur.Match('}') {
			return false, nil
		}
		if cur.AtEnd() {
			return true, newInfo(cur, StatePartialSpecialGen, true, "", elem)
		}
		b, _ := cur.Peek()
		return true, newInfo(cur, StatePartialSpecialGen, false, fmt.Sprintf("unexpected character %q", b), elem)
	}

	if cur.Match('}') {
		return false, nil
	}
	if cur.AtEnd() {
		return true, newInfo(cur, StatePartialSpecialGen, true, "", elem)
	}
	b, _ := cur.Peek()
	return true, newInfo(cur, StatePartialSpecialGen, false, fmt.Sprintf("unexpected character %q", b), elem)
}

func parseGlobalSettingsPartial(cur *cursor.Cursor) *ParserContextInfo {
	elem := newPartialElement("global")

	if cur.AtEnd() {
		return newInfo(cur, StateInGlobalSettings, true, "", elem)
	}
	cur.SkipWhitespace()
	if cur.AtEnd() {
		return newInfo(cur, StateInGlobalSettings, true, "", elem)
	}

	if cur.Match('@') {
		if cur.AtEnd() {
			return newInfo(cur, StateExpectingLanguageIdentifier, true, "", elem)
		}
		b, _ := cur.Peek()
		if _, ok := cur.PeekIdentifier(); !ok {
			return newInfo(cur, StateExpectingLanguageIdentifier, false, fmt.Sprintf("expected a language identifier after '@', got %q", b), elem)
		}
		lang, _ := cur.ParseIdentifier()
		elem.Language = lang
		if cur.AtEnd() {
			return newInfo(cur, StateInGlobalSettings, true, "", elem)
		}
		cur.SkipWhitespace()
	}

	done, result := parseSelBodyPartial(cur, elem, ']', StateExpectingTagOrSizeLimit, StateExpectingTagOnly, StateExpectingCloseBracket)
	if done {
		return result
	}

	cur.SkipWhitespace()
	if cur.AtEnd() {
		return newInfo(cur, StateComplete, true, "", nil)
	}
	return newInfo(cur, StateInvalid, false, "content after global settings block", nil)
}
