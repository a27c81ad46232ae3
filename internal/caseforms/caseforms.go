// Package caseforms detects and reproduces the capitalization style of a
// partially typed identifier, so pkg/suggest can offer completions like
// "aDjEcTiVe" when the user has already typed "aDj" (spec §8 case-inference
// scenario). Detection and generation are split: Detect classifies a typed
// prefix, and Apply renders a canonical word in the detected
// style.
package caseforms

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style identifies a capitalization pattern observed in a typed prefix.
type Style int

const (
	// StyleLower is all-lowercase ("adjective").
	StyleLower Style = iota
	// StyleUpper is all-uppercase ("ADJECTIVE").
	StyleUpper
	// StyleTitle is a capitalized first letter, lowercase rest ("Adjective").
	StyleTitle
	// StyleAlternating is anything else with mixed case ("aDjEcTiVe"), inferred
	// letter-by-letter rather than matched against a single fixed template.
	StyleAlternating
)

var titleCaser = cases.Title(language.Und)
var upperCaser = cases.Upper(language.Und)
var lowerCaser = cases.Lower(language.Und)

// Detect classifies the capitalization style of a non-empty typed prefix.
// A prefix with no letters at all (e.g. all digits/underscores) is reported
// as StyleLower, the grammar's and the generator dictionary's default case.
func Detect(prefix string) Style {
	hasLower, hasUpper := false, false
	sawFirstLetter := false

	for _, r := range prefix {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isLetter {
			continue
		}
		upper := r >= 'A' && r <= 'Z'
		if upper {
			hasUpper = true
		} else {
			hasLower = true
		}
		sawFirstLetter = true
	}

	if !sawFirstLetter {
		return StyleLower
	}
	if hasLower && !hasUpper {
		return StyleLower
	}
	if hasUpper && !hasLower {
		return StyleUpper
	}

	// Mixed case: Titlecase is exactly "first letter upper, every other
	// letter lower". Anything else mixed is treated as an alternating style,
	// reproduced letter-by-letter rather than matched to one fixed pattern.
	first := true
	isTitle := true
	for _, r := range prefix {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isLetter {
			continue
		}
		upper := r >= 'A' && r <= 'Z'
		if first {
			if !upper {
				isTitle = false
				break
			}
			first = false
			continue
		}
		if upper {
			isTitle = false
			break
		}
	}
	if isTitle {
		return StyleTitle
	}

	return StyleAlternating
}

// Apply renders word in the given style. For StyleAlternating it reproduces
// the exact per-letter case sequence observed in prefix, extending the
// pattern by continuing the alternation for any letters beyond prefix's
// length.
func Apply(style Style, word, prefix string) string {
	switch style {
	case StyleLower:
		return lowerCaser.String(word)
	case StyleUpper:
		return upperCaser.String(word)
	case StyleTitle:
		return titleCaser.String(word)
	case StyleAlternating:
		return applyAlternating(word, prefix)
	default:
		return word
	}
}

// applyAlternating reproduces the letter-by-letter case sequence of prefix
// over word, continuing the observed upper/lower alternation past the end
// of prefix (spec example: prefix "aDj" over "adjective" -> "aDjEcTiVe").
func applyAlternating(word, prefix string) string {
	pattern := letterCasePattern(prefix)
	if len(pattern) == 0 {
		return word
	}

	var b strings.Builder
	letterIdx := 0
	for _, r := range word {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isLetter {
			b.WriteRune(r)
			continue
		}
		upper := nextAlternatingCase(pattern, letterIdx)
		if upper {
			b.WriteString(upperCaser.String(string(r)))
		} else {
			b.WriteString(lowerCaser.String(string(r)))
		}
		letterIdx++
	}
	return b.String()
}

// letterCasePattern extracts the upper/lower sequence of the letters in s,
// ignoring non-letters.
func letterCasePattern(s string) []bool {
	var pattern []bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			pattern = append(pattern, false)
		case r >= 'A' && r <= 'Z':
			pattern = append(pattern, true)
		}
	}
	return pattern
}

// nextAlternatingCase returns the case for letter index idx: if idx falls
// within the observed pattern, use it verbatim; beyond that, keep flipping
// case starting from the opposite of the pattern's last observed letter.
func nextAlternatingCase(pattern []bool, idx int) bool {
	if idx < len(pattern) {
		return pattern[idx]
	}
	last := pattern[len(pattern)-1]
	stepsBeyond := idx - len(pattern) + 1
	if stepsBeyond%2 == 1 {
		return !last
	}
	return last
}
