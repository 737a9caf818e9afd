package stemmer

import (
	"strings"
	"unicode/utf8"
)

// caseConstraint describes the contextual conditions under which a case
// suffix surface may be stripped. Surfaces without an entry strip
// unconditionally.
type caseConstraint struct {
	vowelBefore     bool     // rune preceding the suffix must be a vowel
	consonantBefore bool     // rune preceding the suffix must not be a vowel
	blockedTails    []string // reject when the residual base ends in one of these
	baseTails       []string // accept only when the base ends in one of these...
	possMarker      bool     // ...or in м/ң preceded by a vowel (1st/2nd possessive)
	enclitic        bool     // bare accusative н riding on a possessive tail
}

// possTails are the third-person possessive tails a bare accusative н
// or a short dative а/е can attach to.
var possTails = []string{"сы", "сі", "ы", "і"}

// caseConstraints keys case suffix surfaces to their stripping
// conditions. The conditions keep homographic surfaces from eating
// into stems: -ны after a consonant, -ын after a vowel, and -ды after
// the evidential -ып are all spurious parses.
var caseConstraints = map[string]caseConstraint{
	"ны": {vowelBefore: true, blockedTails: []string{"сы", "сі"}},
	"ні": {vowelBefore: true, blockedTails: []string{"сы", "сі"}},

	"ын": {consonantBefore: true, blockedTails: []string{"с"}},
	"ін": {consonantBefore: true, blockedTails: []string{"с"}},

	"ды": {consonantBefore: true, blockedTails: []string{"ып", "іп"}},
	"ді": {consonantBefore: true, blockedTails: []string{"ып", "іп"}},
	"ты": {consonantBefore: true, blockedTails: []string{"ып", "іп"}},
	"ті": {consonantBefore: true, blockedTails: []string{"ып", "іп"}},

	"а": {baseTails: possTails, possMarker: true},
	"е": {baseTails: possTails, possMarker: true},

	"н": {enclitic: true, baseTails: possTails},
}

// negationSuffixes are the verbal negation markers in all harmony and
// assimilation variants.
var negationSuffixes = map[string]bool{
	"ма": true, "ме": true,
	"ба": true, "бе": true,
	"па": true, "пе": true,
}

// hasAnyTail reports whether base ends in one of the given tails.
func hasAnyTail(base string, tails []string) bool {
	for _, t := range tails {
		if strings.HasSuffix(base, t) {
			return true
		}
	}
	return false
}

// endsPossMarker reports whether base ends in a first/second person
// possessive marker: м or ң immediately preceded by a vowel.
func endsPossMarker(base string) bool {
	last, size := utf8.DecodeLastRuneInString(base)
	if last != 'м' && last != 'ң' {
		return false
	}
	prev, _ := utf8.DecodeLastRuneInString(base[:len(base)-size])
	return isVowel(prev)
}

// caseAdmissible evaluates the constraint record for a case suffix
// against the word it would be stripped from. Surfaces without a
// record are unconditionally admissible.
func (e *Engine) caseAdmissible(word, base, sfx string) bool {
	c, ok := caseConstraints[sfx]
	if !ok {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(base)
	if c.vowelBefore && !isVowel(prev) {
		return false
	}
	if c.consonantBefore && isVowel(prev) {
		return false
	}
	if hasAnyTail(base, c.blockedTails) {
		return false
	}
	if c.enclitic {
		// The bare accusative only rides on a third-person possessive
		// tail, and never when the whole word is itself a lemma
		// (орын must not lose its -н).
		if e.lex.Contains(word) {
			return false
		}
		return hasAnyTail(base, c.baseTails)
	}
	if len(c.baseTails) > 0 || c.possMarker {
		if hasAnyTail(base, c.baseTails) {
			return true
		}
		return c.possMarker && endsPossMarker(base)
	}
	return true
}

// verbAdmissible evaluates the verbal-layer guards. Single-vowel tense
// markers а/е demand a lemma base outright; negation markers and other
// single-rune markers are suppressed when stripping would trade one
// lemma for another.
func (e *Engine) verbAdmissible(word, base, sfx string) bool {
	if sfx == "а" || sfx == "е" {
		if !e.lex.Contains(base) {
			return false
		}
	}
	if negationSuffixes[sfx] {
		if e.lex.Contains(word) && e.lex.Contains(base) && utf8.RuneCountInString(base) <= 2 {
			return false
		}
	}
	if utf8.RuneCountInString(sfx) == 1 {
		if e.lex.Contains(word) && e.lex.Contains(base) {
			return false
		}
	}
	return true
}

// comparativeAdmissible evaluates the degree-suffix guard for the
// predicate layer: the residual base must be a reasonably long known
// lemma, so that -лау/-рақ never chip fragments off short stems.
func (e *Engine) comparativeAdmissible(base string) bool {
	return utf8.RuneCountInString(base) >= 4 && e.lex.Contains(base)
}

// isSingleVowel reports whether sfx is a lone vowel surface.
func isSingleVowel(sfx string) bool {
	r, size := utf8.DecodeRuneInString(sfx)
	return size == len(sfx) && isVowel(r)
}

// admissible reports whether sfx of category cat may be stripped from
// word. The caller has already verified the structural match (word
// ends in sfx with a non-empty remainder). safeguard enables the
// single-vowel protection used during stripping but not probing.
func (e *Engine) admissible(word, base string, cat Category, sfx string, safeguard bool) bool {
	switch cat {
	case CategoryCase:
		if !e.caseAdmissible(word, base, sfx) {
			return false
		}
	case CategoryVerb:
		if !e.verbAdmissible(word, base, sfx) {
			return false
		}
	case CategoryPredicate:
		if !e.comparativeAdmissible(base) {
			return false
		}
	}

	// Lone-vowel suffixes on a word that is already a lemma only strip
	// when the base itself resolves: жеті must not decay to жет.
	if safeguard && isSingleVowel(sfx) && e.lex.Contains(word) {
		if _, _, ok := e.lex.Resolve(base); !ok {
			return false
		}
	}

	// When both the word and the base are lemmas, the nominal layers
	// leave the word alone (білім stays білім despite біл).
	switch cat {
	case CategoryCase, CategoryPossessive, CategoryPlural:
		if e.lex.Contains(word) && e.lex.Contains(base) {
			return false
		}
	}
	return true
}

// looksInflected reports whether at least one suffix surface could be
// stripped from word under the layer guards. It is a pure structural
// probe: the residual base is not validated against the lexicon, and
// the single-vowel safeguard is off.
func (e *Engine) looksInflected(word string) bool {
	for _, cat := range categoryOrder {
		for _, sfx := range e.inv.suffixes(cat) {
			if len(word) <= len(sfx) || !strings.HasSuffix(word, sfx) {
				continue
			}
			if e.admissible(word, word[:len(word)-len(sfx)], cat, sfx, false) {
				return true
			}
		}
	}
	return false
}
