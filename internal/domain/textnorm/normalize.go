// Package textnorm holds the text normalization shared by inference and the
// training corpus export. Any change here invalidates fitted artifacts.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Punctuation is the set of ASCII punctuation characters removed from text
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize lowercases text, strips ASCII punctuation and collapses every
// whitespace run into a single space. Leading and trailing whitespace is
// dropped.
func Normalize(text string) string {
	// A Caser keeps state between calls and must not be shared across goroutines.
	lowered := cases.Lower(language.Und).String(text)

	stripped := strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && strings.ContainsRune(Punctuation, r) {
			return -1
		}
		return r
	}, lowered)

	return strings.Join(strings.FieldsFunc(stripped, isSpace), " ")
}

// isSpace also treats the ASCII information separators as whitespace,
// matching the tokenizer used to build the training corpus.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// IsBlank reports whether text holds nothing but whitespace, using the same
// whitespace set as Normalize.
func IsBlank(text string) bool {
	return strings.TrimFunc(text, isSpace) == ""
}
