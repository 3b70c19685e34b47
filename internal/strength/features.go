// Package strength implements the heuristic credential-strength engine:
// feature extraction, fixed-point scoring and remediation suggestions.
package strength

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// commonPatterns are matched case-insensitively anywhere in the input.
var commonPatterns = []string{"123", "abc", "password", "qwerty"}

// Features is the fixed set of signals derived from a credential string.
type Features struct {
	Length           int
	HasUpper         bool
	HasLower         bool
	HasDigit         bool
	HasSpecial       bool
	HasCommonPattern bool
	HasRepeatRun     bool
}

// Extract scans password once and returns its feature record.
// Every feature is always computed; the empty string yields the zero record.
func Extract(password string) Features {
	var f Features

	var prev rune
	run := 0
	for _, r := range password {
		f.Length++

		switch {
		case r >= 'A' && r <= 'Z':
			f.HasUpper = true
		case r >= 'a' && r <= 'z':
			f.HasLower = true
		case r >= '0' && r <= '9':
			f.HasDigit = true
		default:
			f.HasSpecial = true
		}

		if run > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= 3 {
			f.HasRepeatRun = true
		}
		prev = r
	}

	f.HasCommonPattern = containsCommonPattern(password)
	return f
}

// ClassCount returns how many of the four character classes are present.
func (f Features) ClassCount() int {
	n := 0
	for _, ok := range []bool{f.HasUpper, f.HasLower, f.HasDigit, f.HasSpecial} {
		if ok {
			n++
		}
	}
	return n
}

func containsCommonPattern(password string) bool {
	if password == "" {
		return false
	}
	// Und lowercases with the root rules, never a user locale.
	lower := cases.Lower(language.Und).String(password)
	for _, p := range commonPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// runeLen is the character count used for truncation and reporting.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
