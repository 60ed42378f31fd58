// Package textfmt provides the text normalizations applied when rendering statblocks
package textfmt

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ListSeparator joins plain string lists such as languages and senses
const ListSeparator = ", "

// TitleCase capitalizes the first letter of every whitespace-separated word
// and lower-cases the rest of the word. Leading punctuation is skipped, so
// "(blind" becomes "(Blind"; a word that starts with a digit is only
// lower-cased. Whitespace is preserved as-is.
//
//	TitleCase("chaotic evil") == "Chaotic Evil"
//	TitleCase("ANY race")     == "Any Race"
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for len(s) > 0 {
		start := strings.IndexFunc(s, isWordRune)
		if start < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:start])
		s = s[start:]

		end := strings.IndexFunc(s, unicode.IsSpace)
		if end < 0 {
			end = len(s)
		}
		b.WriteString(titleWord(s[:end]))
		s = s[end:]
	}

	return b.String()
}

func titleWord(word string) string {
	lower := cases.Lower(language.Und)

	i := strings.IndexFunc(word, isAlphanumeric)
	if i < 0 {
		return word
	}
	r, size := utf8.DecodeRuneInString(word[i:])
	if !unicode.IsLetter(r) {
		return lower.String(word)
	}
	return word[:i] + string(unicode.ToTitle(r)) + lower.String(word[i+size:])
}

func isWordRune(r rune) bool {
	return !unicode.IsSpace(r)
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Lower lower-cases s using full Unicode case mapping
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// StripParens removes one leading "(" and one trailing ")" independently,
// so "(8d10+24)" becomes "8d10+24" and "10" is returned unchanged.
func StripParens(s string) string {
	s = strings.TrimPrefix(s, "(")
	return strings.TrimSuffix(s, ")")
}

// EscapeNewlines replaces every newline with the two characters `\n` so
// multi-line text fits on a single markup line
func EscapeNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}

// JoinList joins items with ListSeparator
func JoinList(items []string) string {
	return strings.Join(items, ListSeparator)
}
