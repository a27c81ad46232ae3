package suggest

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/slugkit/patterndsl/internal/caseforms"
	"github.com/slugkit/patterndsl/pkg/dictionary"
)

var (
	sizeLimitRe  = regexp.MustCompile(`[=!<>]=?\s*\d+`)
	tagFragRe    = regexp.MustCompile(`[+-]\w*$`)
	tagDoneFragRe = regexp.MustCompile(`[+-]\w+$`)
	usedTagRe    = regexp.MustCompile(`[+-]\w+`)
)

// Engine generates context-aware Suggestions for a pattern and cursor,
// using provider for dictionary kinds and tags (spec §4.5).
type Engine struct {
	provider dictionary.Provider
}

// New builds an Engine backed by provider.
func New(provider dictionary.Provider) *Engine {
	return &Engine{provider: provider}
}

// Suggest implements the full pipeline: localize, classify, generate, sort.
func (e *Engine) Suggest(ctx context.Context, pattern string, cursor int) ([]Suggestion, error) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(pattern) {
		cursor = len(pattern)
	}

	start, end, ok := localize(pattern, cursor)
	if !ok {
		return []Suggestion{{Text: "{", Kind: KindSymbol, ReplaceRange: Range{cursor, cursor}}}, nil
	}

	content := pattern[start+1 : end]
	relCursor := cursor - start - 1
	if relCursor < 0 {
		relCursor = 0
	}
	if relCursor > len(content) {
		relCursor = len(content)
	}

	colonIdx := strings.IndexByte(content, ':')
	var suggestions []Suggestion
	var err error
	if colonIdx == -1 || relCursor <= colonIdx {
		suggestions, err = e.generatorNameSuggestions(ctx, content[:relCursor], start, cursor)
	} else {
		settings := content[colonIdx+1 : relCursor]
		suggestions, err = e.settingsSuggestions(ctx, content, settings, cursor)
	}
	if err != nil {
		return nil, err
	}

	sortSuggestions(suggestions)
	return suggestions, nil
}

// localize scans backward from cursor-1 for the nearest unmatched '{', then
// forward from cursor for the matching '}' (spec §4.5 Step 1). ok is false
// when the cursor sits outside any placeholder.
func localize(pattern string, cursor int) (start, end int, ok bool) {
	start = -1
	for i := cursor - 1; i >= 0; i-- {
		switch pattern[i] {
		case '{':
			start = i
		case '}':
			i = -1
			continue
		}
		if start != -1 {
			break
		}
	}
	if start == -1 {
		return 0, 0, false
	}

	end = len(pattern)
	for i := cursor; i < len(pattern); i++ {
		if pattern[i] == '}' {
			end = i
			break
		}
	}
	return start, end, true
}

func caseVariants(canonical string) []Suggestion {
	lower := caseforms.Apply(caseforms.StyleLower, canonical, "")
	upper := caseforms.Apply(caseforms.StyleUpper, canonical, "")
	title := caseforms.Apply(caseforms.StyleTitle, canonical, "")
	alt := alternatingSeed(canonical)
	return []Suggestion{
		{Text: lower, Kind: KindGenerator},
		{Text: upper, Kind: KindGenerator},
		{Text: title, Kind: KindGenerator},
		{Text: alt, Kind: KindGenerator},
	}
}

// alternatingSeed produces the canonical "aLtErNaTiNg" rendering starting
// lowercase, used both for empty-input seeding and as the alternating variant
// offered for all-lowercase user input.
func alternatingSeed(word string) string {
	var b strings.Builder
	upper := false
	for _, r := range word {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isLetter {
			b.WriteRune(r)
			continue
		}
		if upper {
			b.WriteString(strings.ToUpper(string(r)))
		} else {
			b.WriteString(strings.ToLower(string(r)))
		}
		upper = !upper
	}
	return b.String()
}

// generatorNameSuggestions implements Step 3's generator-name mode.
func (e *Engine) generatorNameSuggestions(ctx context.Context, typed string, placeholderStart, cursor int) ([]Suggestion, error) {
	rng := Range{placeholderStart + 1, cursor}

	if typed == "" {
		infos, err := e.provider.Dictionaries(ctx)
		if err != nil {
			return nil, err
		}
		var out []Suggestion
		out = append(out, Suggestion{Text: "number", Kind: KindGenerator, ReplaceRange: rng})
		out = append(out, Suggestion{Text: "special", Kind: KindGenerator, ReplaceRange: rng})
		for _, info := range infos {
			for _, s := range caseVariants(info.Kind) {
				s.ReplaceRange = rng
				out = append(out, s)
			}
		}
		return out, nil
	}

	lowerTyped := strings.ToLower(typed)
	if lowerTyped == "number" {
		return []Suggestion{{Text: ":", Kind: KindSymbol, ReplaceRange: Range{cursor, cursor}}}, nil
	}
	if lowerTyped == "special" {
		return []Suggestion{
			{Text: "}", Kind: KindSymbol, ReplaceRange: Range{cursor, cursor}},
			{Text: ":", Kind: KindSymbol, ReplaceRange: Range{cursor, cursor}},
		}, nil
	}

	infos, err := e.provider.Dictionaries(ctx)
	if err != nil {
		return nil, err
	}
	for _, info := range infos {
		if strings.EqualFold(info.Kind, typed) {
			return []Suggestion{
				{Text: "}", Kind: KindSymbol, ReplaceRange: Range{cursor, cursor}},
				{Text: "@", Kind: KindSymbol, ReplaceRange: Range{cursor, cursor}},
				{Text: ":", Kind: KindSymbol, ReplaceRange: Range{cursor, cursor}},
			}, nil
		}
	}

	var out []Suggestion
	for _, info := range infos {
		if strings.HasPrefix(strings.ToLower(info.Kind), lowerTyped) {
			out = append(out, matchingCaseVariants(info.Kind, typed, rng)...)
		}
	}
	for _, builtin := range []string{"number", "special"} {
		if strings.HasPrefix(builtin, lowerTyped) {
			out = append(out, Suggestion{Text: builtin, Kind: KindGenerator, ReplaceRange: rng})
		}
	}
	return out, nil
}

// matchingCaseVariants applies the case-inference rule (spec §4.5 "Case
// inference") against the user's typed prefix and returns the resulting
// completions, all rendered as full words (not just the remaining suffix) to
// match the generator-name replace range (which spans the whole typed run).
func matchingCaseVariants(canonical, typed string, rng Range) []Suggestion {
	style := caseforms.Detect(typed)
	mk := func(text string) Suggestion {
		return Suggestion{Text: text, Kind: KindGenerator, ReplaceRange: rng}
	}

	switch style {
	case caseforms.StyleLower:
		return []Suggestion{
			mk(caseforms.Apply(caseforms.StyleLower, canonical, typed)),
			mk(alternatingSeed(canonical)),
		}
	case caseforms.StyleUpper:
		return []Suggestion{
			mk(caseforms.Apply(caseforms.StyleUpper, canonical, typed)),
			mk(caseforms.Apply(caseforms.StyleTitle, canonical, typed)),
			mk(upperAlternatingSeed(canonical)),
		}
	case caseforms.StyleTitle:
		return []Suggestion{mk(caseforms.Apply(caseforms.StyleTitle, canonical, typed))}
	default: // mixed / alternating
		return []Suggestion{mk(caseforms.Apply(caseforms.StyleAlternating, canonical, typed))}
	}
}

func upperAlternatingSeed(word string) string {
	var b strings.Builder
	upper := true
	for _, r := range word {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isLetter {
			b.WriteRune(r)
			continue
		}
		if upper {
			b.WriteString(strings.ToUpper(string(r)))
		} else {
			b.WriteString(strings.ToLower(string(r)))
		}
		upper = !upper
	}
	return b.String()
}

var operatorSet = []string{"+", "-", "==", "!=", "<", "<=", ">", ">="}

func operatorSuggestions(cursor int) []Suggestion {
	out := make([]Suggestion, 0, len(operatorSet)+1)
	for _, op := range operatorSet {
		out = append(out, Suggestion{Text: op, Kind: KindOperator, ReplaceRange: Range{cursor, cursor}})
	}
	out = append(out, Suggestion{Text: "}", Kind: KindSymbol, ReplaceRange: Range{cursor, cursor}})
	return out
}

// settingsSuggestions implements Step 2's settings classification and
// Step 3's settings-region generation for selectors and global settings.
// placeholderContent is the full "kind@lang:settings" body; settings is the
// slice of it up to the cursor.
func (e *Engine) settingsSuggestions(ctx context.Context, placeholderContent, settings string, cursor int) ([]Suggestion, error) {
	kind := placeholderContent
	if idx := strings.IndexByte(kind, ':'); idx != -1 {
		kind = kind[:idx]
	}
	if idx := strings.IndexByte(kind, '@'); idx != -1 {
		kind = kind[:idx]
	}

	switch kind {
	case "number":
		return numberGenSuggestions(settings, cursor), nil
	case "special":
		return specialGenSuggestions(settings, cursor), nil
	}

	hasSizeLimit := sizeLimitRe.MatchString(settings)

	if hasSizeLimit && !tagFragRe.MatchString(settings) {
		// EXPECTING_TAG_ONLY-equivalent: size limit already present, and the
		// cursor isn't mid-tag — only tags or close remain (no operators).
		if loneOp, ok := loneComparisonCompletion(settings, cursor); ok {
			return loneOp, nil
		}
		return []Suggestion{
			{Text: "+", Kind: KindOperator, ReplaceRange: Range{cursor, cursor}},
			{Text: "-", Kind: KindOperator, ReplaceRange: Range{cursor, cursor}},
			{Text: "}", Kind: KindSymbol, ReplaceRange: Range{cursor, cursor}},
		}, nil
	}

	trimmed := strings.TrimRight(settings, " \t\n\r")
	switch {
	case tagFragRe.MatchString(settings) && !tagDoneFragRe.MatchString(settings):
		// e.g. a lone "+" or "-" with nothing after it yet: partial tag mode
		// with an empty partial.
		return e.tagSuggestions(ctx, kind, settings, "", cursor)

	case tagFragRe.MatchString(settings):
		// "+something" with a word after the sigil: partial tag mode.
		m := tagFragRe.FindString(settings)
		partial := m[1:]
		return e.tagSuggestions(ctx, kind, settings, partial, cursor)

	case settings == "" || trimmed != settings:
		// settings-neutral: nothing typed yet, or the fragment before the
		// cursor ends in whitespace.
		if loneOp, ok := loneComparisonCompletion(settings, cursor); ok {
			return loneOp, nil
		}
		return operatorSuggestions(cursor), nil

	default:
		if loneOp, ok := loneComparisonCompletion(settings, cursor); ok {
			return loneOp, nil
		}
		return operatorSuggestions(cursor), nil
	}
}

// loneComparisonCompletion handles the cursor sitting right after a lone
// '=', '!', '<', or '>': offer '=' to complete a two-char operator. After a
// completed "==", "!=", "<=" or ">=" it offers nothing (waiting on digits).
func loneComparisonCompletion(settings string, cursor int) ([]Suggestion, bool) {
	if settings == "" {
		return nil, false
	}
	last := settings[len(settings)-1]
	switch last {
	case '=', '!', '<', '>':
		if len(settings) >= 2 {
			prev := settings[len(settings)-2]
			if prev == '=' || prev == '!' || (last == '=' && (prev == '<' || prev == '>')) {
				// already a completed two-char operator; no suggestions.
				return []Suggestion{}, true
			}
		}
		return []Suggestion{{Text: "=", Kind: KindOperator, ReplaceRange: Range{cursor, cursor}}}, true
	default:
		return nil, false
	}
}

func (e *Engine) tagSuggestions(ctx context.Context, kind, settings, partial string, cursor int) ([]Suggestion, error) {
	allTags, err := e.provider.Tags(ctx)
	if err != nil {
		return nil, err
	}

	used := map[string]bool{}
	for _, m := range usedTagRe.FindAllString(settings, -1) {
		used[strings.ToLower(m[1:])] = true
	}

	var kindTags, available []dictionary.Tag
	for _, t := range allTags {
		if !strings.EqualFold(t.Kind, kind) {
			continue
		}
		kindTags = append(kindTags, t)
		if used[strings.ToLower(t.Tag)] {
			continue
		}
		available = append(available, t)
	}

	if partial != "" {
		for _, t := range kindTags {
			if strings.EqualFold(t.Tag, partial) {
				// partial matches an existing tag exactly (including the one
				// just finished before the cursor, which is always "used"):
				// the user has completed a tag, so advertise operators+close
				// instead.
				return operatorSuggestions(cursor), nil
			}
		}
	}

	replaceStart := cursor - len(partial)
	rng := Range{replaceStart, cursor}

	var out []Suggestion
	lowerPartial := strings.ToLower(partial)
	for _, t := range available {
		if partial == "" || strings.HasPrefix(strings.ToLower(t.Tag), lowerPartial) {
			out = append(out, Suggestion{Text: t.Tag, Kind: KindTag, Description: t.Description, ReplaceRange: rng})
		}
	}
	return out, nil
}

func numberGenSuggestions(settings string, cursor int) []Suggestion {
	rng := Range{cursor, cursor}
	if settings == "" {
		return nil
	}
	lastDigit := -1
	for i, r := range settings {
		if r >= '0' && r <= '9' {
			lastDigit = i
		} else {
			break
		}
	}
	if lastDigit == len(settings)-1 {
		return []Suggestion{
			{Text: "d", Kind: KindBase, ReplaceRange: rng},
			{Text: "x", Kind: KindBase, ReplaceRange: rng},
			{Text: "X", Kind: KindBase, ReplaceRange: rng},
			{Text: "r", Kind: KindBase, ReplaceRange: rng},
			{Text: "R", Kind: KindBase, ReplaceRange: rng},
		}
	}
	return []Suggestion{{Text: "}", Kind: KindSymbol, ReplaceRange: rng}}
}

func specialGenSuggestions(settings string, cursor int) []Suggestion {
	rng := Range{cursor, cursor}
	if settings == "" {
		return nil
	}
	if !strings.Contains(settings, "-") {
		return []Suggestion{
			{Text: "-", Kind: KindSymbol, ReplaceRange: rng},
			{Text: "}", Kind: KindSymbol, ReplaceRange: rng},
		}
	}
	afterDash := settings[strings.IndexByte(settings, '-')+1:]
	if afterDash == "" {
		return nil
	}
	return []Suggestion{{Text: "}", Kind: KindSymbol, ReplaceRange: rng}}
}

// caseGroup implements Step 5's sort key: generators first by their special
// lowercase group, then plain lowercase, uppercase, Titlecase, mixed; every
// other kind gets key -1 and keeps its emission order (they're already
// emitted as fixed deterministic lists).
func caseGroup(s Suggestion) int {
	if s.Kind != KindGenerator {
		return -1
	}
	if s.Text == "number" || s.Text == "special" {
		return 0
	}
	switch caseforms.Detect(s.Text) {
	case caseforms.StyleLower:
		return 1
	case caseforms.StyleUpper:
		return 2
	case caseforms.StyleTitle:
		return 3
	default:
		return 4
	}
}

func sortSuggestions(s []Suggestion) {
	sort.SliceStable(s, func(i, j int) bool {
		gi, gj := caseGroup(s[i]), caseGroup(s[j])
		if gi != gj {
			return gi < gj
		}
		if gi == -1 {
			// non-generator kinds keep their emission order.
			return false
		}
		return s[i].Text < s[j].Text
	})
}
