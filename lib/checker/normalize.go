package checker

import (
	"strings"
	"unicode"
)

// confusables maps latin letters and digits to the cyrillic glyphs they imitate.
// used to catch words like "виaгpa" where some letters are swapped to evade
// plain substring matching.
var confusables = map[rune]rune{
	'a': 'а',
	'b': 'в',
	'c': 'с',
	'e': 'е',
	'h': 'н',
	'k': 'к',
	'm': 'м',
	'o': 'о',
	'p': 'р',
	't': 'т',
	'x': 'х',
	'y': 'у',
	'0': 'о',
	'3': 'з',
	'6': 'б',
}

// Normalize prepares a message for matching: lowercases it, drops control and
// format runes (zero-width spaces and joiners included) and collapses runs of
// whitespace to a single space.
func Normalize(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.In(r, unicode.Cf, unicode.Cc) && !unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// LookalikeWords returns words mixing cyrillic letters with latin lookalike
// glyphs. the input is expected to be normalized already.
func LookalikeWords(text string) []string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	res := []string{}
	for _, word := range words {
		var cyrillic, confusable bool
		for _, r := range word {
			if unicode.Is(unicode.Cyrillic, r) {
				cyrillic = true
				continue
			}
			if _, ok := confusables[r]; ok {
				confusable = true
			}
		}
		if cyrillic && confusable {
			res = append(res, word)
		}
	}
	return res
}

// FoldLookalikes replaces latin lookalike glyphs with their cyrillic
// counterparts in words containing cyrillic letters. pure-latin words are kept
// intact to avoid mangling legitimate english text.
func FoldLookalikes(text string) string {
	words := strings.Split(text, " ")
	for i, word := range words {
		if !strings.ContainsFunc(word, func(r rune) bool { return unicode.Is(unicode.Cyrillic, r) }) {
			continue
		}
		words[i] = strings.Map(func(r rune) rune {
			if c, ok := confusables[r]; ok {
				return c
			}
			return r
		}, word)
	}
	return strings.Join(words, " ")
}
