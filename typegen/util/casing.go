package util

import (
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune of s and keeps the rest as-is.
// e.g. "theMacroExpander" -> "TheMacroExpander", "sun" -> "Sun"
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Uncapitalize lower-cases the first rune of s and keeps the rest as-is.
// Haskell value identifiers must start lower-case: "Widget" -> "widget"
func Uncapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
