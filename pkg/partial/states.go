// Package partial implements the resumable variant of the pattern grammar
// (spec §4.4): given an arbitrary prefix of a pattern, ParsePartial reports
// exactly where parsing stopped, what has been recognized so far, and which
// token classes would legally continue the input. It never raises past the
// first unterminated construct; a definite syntax error sets IsValid false
// but still reports the deepest state reached.
//
// State and ExpectedToken mirror the full parser's productions (pkg/parser)
// but are data for pkg/suggest to consult, not parser-internal detail —
// hence the state -> expected-next mapping below is a plain table, not code,
// so it stays testable on its own.
package partial

// State identifies the grammar production where a partial parse halted.
type State int

const (
	StateOutsidePlaceholder State = iota
	StateInPlaceholder
	StateInGlobalSettings
	StateExpectingIdentifier
	StateExpectingColon
	StateExpectingLanguageIdentifier
	StateExpectingAfterLanguage
	StateExpectingTagOrSizeLimit
	StateExpectingTagOnly
	StateExpectingTagIdentifier
	StateExpectingSizeLimit
	StateExpectingOption
	StateExpectingNumberLength
	StateExpectingNumberBase
	StateExpectingSpecialLength
	StateExpectingSpecialRange
	StateExpectingCloseBrace
	StateExpectingCloseBracket
	StatePartialSelector
	StatePartialNumberGen
	StatePartialSpecialGen
	StateComplete
	StateIncomplete
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateOutsidePlaceholder:
		return "OUTSIDE_PLACEHOLDER"
	case StateInPlaceholder:
		return "IN_PLACEHOLDER"
	case StateInGlobalSettings:
		return "IN_GLOBAL_SETTINGS"
	case StateExpectingIdentifier:
		return "EXPECTING_IDENTIFIER"
	case StateExpectingColon:
		return "EXPECTING_COLON"
	case StateExpectingLanguageIdentifier:
		return "EXPECTING_LANGUAGE_IDENTIFIER"
	case StateExpectingAfterLanguage:
		return "EXPECTING_AFTER_LANGUAGE"
	case StateExpectingTagOrSizeLimit:
		return "EXPECTING_TAG_OR_SIZE_LIMIT"
	case StateExpectingTagOnly:
		return "EXPECTING_TAG_ONLY"
	case StateExpectingTagIdentifier:
		return "EXPECTING_TAG_IDENTIFIER"
	case StateExpectingSizeLimit:
		return "EXPECTING_SIZE_LIMIT"
	case StateExpectingOption:
		return "EXPECTING_OPTION"
	case StateExpectingNumberLength:
		return "EXPECTING_NUMBER_LENGTH"
	case StateExpectingNumberBase:
		return "EXPECTING_NUMBER_BASE"
	case StateExpectingSpecialLength:
		return "EXPECTING_SPECIAL_LENGTH"
	case StateExpectingSpecialRange:
		return "EXPECTING_SPECIAL_RANGE"
	case StateExpectingCloseBrace:
		return "EXPECTING_CLOSE_BRACE"
	case StateExpectingCloseBracket:
		return "EXPECTING_CLOSE_BRACKET"
	case StatePartialSelector:
		return "PARTIAL_SELECTOR"
	case StatePartialNumberGen:
		return "PARTIAL_NUMBER_GEN"
	case StatePartialSpecialGen:
		return "PARTIAL_SPECIAL_GEN"
	case StateComplete:
		return "COMPLETE"
	case StateIncomplete:
		return "INCOMPLETE"
	case StateInvalid:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// ExpectedToken is a token class that could legally continue a prefix.
type ExpectedToken int

const (
	TokenIdentifier ExpectedToken = iota
	TokenColon
	TokenCloseBrace
	TokenCloseBracket
	TokenTagSpec
	TokenComparisonOp
	TokenNumber
	TokenOption
	TokenOpenBrace
	TokenOpenBracket
	TokenEquals
	TokenExclamation
	TokenPlus
	TokenMinus
	TokenDash
	TokenNumberBase
	TokenAtSign
)

func (t ExpectedToken) String() string {
	switch t {
	case TokenIdentifier:
		return "identifier"
	case TokenColon:
		return "colon"
	case TokenCloseBrace:
		return "close_brace"
	case TokenCloseBracket:
		return "close_bracket"
	case TokenTagSpec:
		return "tag_spec"
	case TokenComparisonOp:
		return "comparison_op"
	case TokenNumber:
		return "number"
	case TokenOption:
		return "option"
	case TokenOpenBrace:
		return "open_brace"
	case TokenOpenBracket:
		return "open_bracket"
	case TokenEquals:
		return "equals"
	case TokenExclamation:
		return "exclamation"
	case TokenPlus:
		return "plus"
	case TokenMinus:
		return "minus"
	case TokenDash:
		return "dash"
	case TokenNumberBase:
		return "number_base"
	case TokenAtSign:
		return "at_sign"
	default:
		return "?"
	}
}

// expectedNextTable maps each state to the fixed set of token classes that
// could legally follow. Pure data, deliberately not computed inline in the
// scanning logic, so it can be unit-tested and audited on its own (spec §4.4
// "State machine as table").
var expectedNextTable = map[State][]ExpectedToken{
	StateOutsidePlaceholder:          {TokenOpenBrace, TokenOpenBracket},
	StateInPlaceholder:               {TokenIdentifier},
	StateInGlobalSettings:            {TokenAtSign, TokenTagSpec, TokenComparisonOp, TokenOption, TokenCloseBracket},
	StateExpectingIdentifier:         {TokenIdentifier},
	StateExpectingColon:              {TokenColon},
	StateExpectingLanguageIdentifier: {TokenIdentifier},
	StateExpectingAfterLanguage:      {TokenColon, TokenCloseBrace},
	StateExpectingTagOrSizeLimit:     {TokenTagSpec, TokenComparisonOp, TokenOption, TokenCloseBrace},
	StateExpectingTagOnly:            {TokenTagSpec, TokenOption, TokenCloseBrace},
	StateExpectingTagIdentifier:      {TokenIdentifier},
	StateExpectingSizeLimit:          {TokenNumber, TokenCloseBrace},
	StateExpectingOption:             {TokenIdentifier, TokenEquals},
	StateExpectingNumberLength:       {TokenNumber},
	StateExpectingNumberBase:         {TokenNumberBase, TokenCloseBrace},
	StateExpectingSpecialLength:      {TokenNumber},
	StateExpectingSpecialRange:       {TokenNumber},
	StateExpectingCloseBrace:         {TokenCloseBrace},
	StateExpectingCloseBracket:       {TokenCloseBracket},
	StatePartialSelector:             {TokenAtSign, TokenColon, TokenCloseBrace},
	StatePartialNumberGen:            {TokenColon, TokenCloseBrace},
	StatePartialSpecialGen:           {TokenColon, TokenCloseBrace},
	StateComplete:                    {TokenOpenBrace, TokenOpenBracket},
	StateIncomplete:                  {},
	StateInvalid:                     {},
}

// ExpectedNext returns the token classes legally allowed to follow s.
func ExpectedNext(s State) []ExpectedToken {
	toks := expectedNextTable[s]
	out := make([]ExpectedToken, len(toks))
	copy(out, toks)
	return out
}
