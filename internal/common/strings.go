package common

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownStr is the String() result of out-of-range enum values.
const UnknownStr = "unknown"

var upper = cases.Upper(language.Und)

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return upper.String(string(r)) + s[size:]
}

// LowerCamel turns an exported identifier into an unexported one.
// A leading acronym is lower-cased as a whole ("ID" -> "id",
// "URLPath" -> "urlPath"). Go keywords get a trailing underscore.
func LowerCamel(s string) string {
	runes := []rune(s)

	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}

	switch {
	case n == 0:
	case n == 1 || n == len(runes):
		for i := range n {
			runes[i] = unicode.ToLower(runes[i])
		}
	default:
		// The last upper-case rune starts the next word.
		for i := range n - 1 {
			runes[i] = unicode.ToLower(runes[i])
		}
	}

	out := string(runes)
	if token.IsKeyword(out) {
		out += "_"
	}

	return out
}

// EqualFoldIdent reports whether two identifiers match case-insensitively.
func EqualFoldIdent(a, b string) bool {
	return strings.EqualFold(a, b)
}
