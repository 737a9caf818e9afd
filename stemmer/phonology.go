package stemmer

import (
	"strings"
	"unicode/utf8"
)

// backVowels contains Kazakh back (hard) vowels. These select the
// restored vowel ы during elision repair.
var backVowels = map[rune]bool{
	'а': true,
	'о': true,
	'ұ': true,
	'ы': true,
}

// frontVowels contains Kazakh front (soft) vowels. These select the
// restored vowel і during elision repair.
var frontVowels = map[rune]bool{
	'ә': true,
	'е': true,
	'ө': true,
	'ү': true,
	'і': true,
}

// neutralVowels are vowels that carry no harmony class of their own
// (и and у occur in both harmony contexts, ё only in loanwords).
// They count as vowels for constraint checks but are ignored when
// determining the backness of a stem.
var neutralVowels = map[rune]bool{
	'и': true,
	'у': true,
	'ё': true,
}

// reverseMutations maps a voiced stem-final consonant back to the
// voiceless citation form it alternates with before vowel-initial
// suffixes (кітап -> кітабы, қазақ -> қазағы).
var reverseMutations = map[rune]rune{
	'б': 'п',
	'г': 'к',
	'ғ': 'қ',
	'д': 'т',
}

// isVowel reports whether r is a Kazakh vowel. Expects lowercase input.
func isVowel(r rune) bool {
	return backVowels[r] || frontVowels[r] || neutralVowels[r]
}

// isHarmonyVowel reports whether r carries a vowel harmony class.
func isHarmonyVowel(r rune) bool {
	return backVowels[r] || frontVowels[r]
}

// lastHarmonyVowel returns the harmony-bearing vowel closest to the end
// of s, or 0 if s has none. Iterates right-to-left.
func lastHarmonyVowel(s string) rune {
	for i := len(s); i > 0; {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if isHarmonyVowel(r) {
			return r
		}
		i -= size
	}
	return 0
}

// harmonyVowelCount returns the number of harmony-bearing vowels in s.
// Neutral vowels are not counted.
func harmonyVowelCount(s string) int {
	n := 0
	for _, r := range s {
		if isHarmonyVowel(r) {
			n++
		}
	}
	return n
}

// reverseMutation returns the candidate with its final consonant
// devoiced back to citation form (кітаб -> кітап), or "" if the final
// rune is not a mutating consonant.
func reverseMutation(candidate string) string {
	r, size := utf8.DecodeLastRuneInString(candidate)
	repl, ok := reverseMutations[r]
	if !ok {
		return ""
	}
	var b strings.Builder
	b.Grow(len(candidate))
	b.WriteString(candidate[:len(candidate)-size])
	b.WriteRune(repl)
	return b.String()
}

// restoreElision attempts to undo high-vowel elision before the final
// consonant of candidate (ауз -> ауыз, орн -> орын) and returns the
// restored form if lex knows it, or "" otherwise.
//
// Restoration only fires on candidates with exactly one harmony-bearing
// vowel: longer stems do not elide, and the single vowel fixes the
// harmony class of the vowel to reinsert.
func restoreElision(candidate string, lex *Lexicon) string {
	runes := []rune(candidate)
	if len(runes) < 2 {
		return ""
	}
	if harmonyVowelCount(candidate) != 1 {
		return ""
	}
	var insert rune
	switch v := lastHarmonyVowel(candidate); {
	case backVowels[v]:
		insert = 'ы'
	case frontVowels[v]:
		insert = 'і'
	default:
		return ""
	}
	restored := make([]rune, 0, len(runes)+1)
	restored = append(restored, runes[:len(runes)-1]...)
	restored = append(restored, insert, runes[len(runes)-1])
	if s := string(restored); lex.Contains(s) {
		return s
	}
	return ""
}
