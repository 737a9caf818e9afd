package stemmer

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Repair records which phonological repair, if any, mapped a stripped
// base onto a dictionary lemma.
type Repair int

const (
	RepairNone     Repair = iota // base matched the lemma directly
	RepairMutation               // final consonant devoiced (кітаб -> кітап)
	RepairElision                // elided high vowel restored (ауз -> ауыз)
)

// String returns the repair name.
func (r Repair) String() string {
	switch r {
	case RepairNone:
		return "none"
	case RepairMutation:
		return "mutation"
	case RepairElision:
		return "elision"
	}
	return fmt.Sprintf("Repair(%d)", int(r))
}

// Normalize brings a word into the canonical form used for all lexicon
// and suffix comparisons: NFC composition followed by lowercasing.
func Normalize(word string) string {
	return strings.ToLower(norm.NFC.String(word))
}

// Lexicon is an immutable set of known lemmas. All entries are stored
// normalized (see Normalize), so lookups against normalized input are
// exact string matches. A Lexicon is safe for concurrent use once built.
type Lexicon struct {
	entries map[string]struct{}
}

// NewLexicon builds a Lexicon from a list of lemmas. Entries are
// normalized; empty entries are dropped.
func NewLexicon(lemmas []string) *Lexicon {
	entries := make(map[string]struct{}, len(lemmas))
	for _, l := range lemmas {
		l = Normalize(strings.TrimSpace(l))
		if l == "" {
			continue
		}
		entries[l] = struct{}{}
	}
	return &Lexicon{entries: entries}
}

// Len returns the number of lemmas in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Contains reports whether word is a known lemma.
// Expects normalized input.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.entries[word]
	return ok
}

// Resolve maps a candidate base onto a dictionary lemma, applying
// phonological repair when the raw form is not listed. The checks run
// in a fixed order: consonant mutation reversal first, then direct
// membership, then vowel elision restoration. Mutation runs before the
// direct check so that a voiced-final base like кітаб never shadows
// its citation form кітап.
func (l *Lexicon) Resolve(candidate string) (lemma string, repair Repair, ok bool) {
	if candidate == "" {
		return "", RepairNone, false
	}
	if m := reverseMutation(candidate); m != "" && l.Contains(m) {
		return m, RepairMutation, true
	}
	if l.Contains(candidate) {
		return candidate, RepairNone, true
	}
	if r := restoreElision(candidate, l); r != "" {
		return r, RepairElision, true
	}
	return "", RepairNone, false
}

// ParseLemmaList parses a lemma list in the one-lemma-per-line text
// format used by the embedded data files. Blank lines and lines
// starting with '#' are ignored. Lemmas are returned unnormalized;
// NewLexicon handles normalization.
func ParseLemmaList(raw []byte) ([]string, error) {
	var lemmas []string
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lemmas = append(lemmas, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("stemmer: parse lemma list: %w", err)
	}
	return lemmas, nil
}
