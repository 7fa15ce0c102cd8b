// Package text holds language aware helpers used when parsing story content.
package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// KeyPhraseWords is the maximum number of words taken into key phrase.
const KeyPhraseWords = 12

// Clean brings line to NFC and strips surrounding white space. Devanagari
// text in particular arrives in decomposed form from some editors.
func Clean(line string) string {
	return strings.TrimSpace(norm.NFC.String(line))
}

// Normalize prepares text for loose comparison: lower case, runs of white
// space collapsed to a single space, sentence punctuation removed.
func Normalize(in string) string {
	var b strings.Builder
	b.Grow(len(in))

	space := false
	for _, sym := range strings.ToLower(norm.NFC.String(in)) {
		if isSeparator(sym) {
			space = true
			continue
		}
		if space {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
		}
		b.WriteRune(sym)
	}
	return strings.TrimSpace(strings.Map(func(sym rune) rune {
		switch sym {
		case '.', ',', ';', ':', '!', '?':
			return -1
		}
		return sym
	}, b.String()))
}

// KeyPhrase returns up to KeyPhraseWords significant (longer than two
// characters) words of normalized text joined by single space.
func KeyPhrase(in string) string {
	words := make([]string, 0, KeyPhraseWords)
	for word := range Words(Normalize(in)) {
		if utf8.RuneCountInString(word) <= 2 {
			continue
		}
		words = append(words, word)
		if len(words) == KeyPhraseWords {
			break
		}
	}
	return strings.Join(words, " ")
}

// Length returns number of characters in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate returns first n characters of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
