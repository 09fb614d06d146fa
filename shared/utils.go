package shared

import (
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune, leaving the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func Pluralize(n int, singular string) string {
	if n == 1 {
		return singular
	}
	return singular + "s"
}
