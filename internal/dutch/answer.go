package dutch

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

var numerals = func() map[string]string {
	m := make(map[string]string, len(hourNames))
	for i, w := range hourNames {
		n := i
		if n == 0 {
			n = 12
		}
		m[w] = strconv.Itoa(n)
	}
	return m
}()

// Normalize trims the answer, collapses whitespace runs to single spaces and
// case-folds it.
func Normalize(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

// WithNumerals replaces every Dutch number word (een..twaalf) in a phrase
// with its digits, e.g. "kwart over drie" becomes "kwart over 3".
func WithNumerals(phrase string) string {
	words := strings.Fields(Normalize(phrase))
	for i, w := range words {
		if d, ok := numerals[w]; ok {
			words[i] = d
		}
	}
	return strings.Join(words, " ")
}

// IsEquivalent reports whether a submitted answer matches the expected
// phrase, either literally or with number words written as digits.
// Empty submissions never match.
func IsEquivalent(submitted, expected string) bool {
	got := Normalize(submitted)
	if got == "" {
		return false
	}
	if got == Normalize(expected) {
		return true
	}
	return got == WithNumerals(expected)
}
