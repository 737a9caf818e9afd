// Package stemmer reduces inflected Kazakh words to dictionary lemmas
// by iterative suffix stripping over a known-lemma lexicon.
//
// The package provides two API layers:
//
//   - Structured: Engine.Lookup returns a Result carrying the resolved
//     lemma, the phonological repair used and the final stripped suffix.
//
//   - Convenience: Stem returns just the lemma string against the
//     embedded default lexicon, and StemAll is its batch wrapper.
//
// The stemmer runs a bounded depth-first search over an ordered suffix
// inventory (personal predicate endings, then case, possessive, plural,
// verbal and remaining predicate layers; longest surface first within a
// layer). Stripped bases are validated against the lexicon with two
// phonological repairs: reversal of stem-final consonant voicing
// (кітаб -> кітап) and restoration of elided high vowels (ауз -> ауыз).
// A word with no resolvable parse is returned unchanged, never an
// error.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations (v1.0):
//
//   - Quality is bounded by lexicon coverage; out-of-vocabulary stems
//     pass through unstemmed.
//   - Derivational morphology (-лық, -шы, -лы) is not stripped.
//   - Hyphenated compounds are treated as single opaque tokens.
//   - Input is expected in Kazakh Cyrillic; NFC normalization and
//     lowercasing are applied internally.
package stemmer

import (
	"encoding/json"
	"fmt"

	"github.com/qazaq-nlp/qazstem/data"
)

// maxWordBytes caps input length. Anything longer is returned verbatim
// without analysis; no real Kazakh word comes close.
const maxWordBytes = 256

// DefaultMaxDepth is the recursion budget used when Config.MaxDepth is
// zero. Kazakh words rarely stack more than four inflectional suffixes.
const DefaultMaxDepth = 8

// Policy controls when a word that is already a known lemma is
// returned immediately, before any stripping is attempted.
type Policy int

const (
	// PolicyIfLooksUninflected returns a known lemma immediately only
	// when no suffix surface could structurally be stripped from it.
	// This is the default.
	PolicyIfLooksUninflected Policy = iota
	// PolicyAlways returns any known lemma immediately.
	PolicyAlways
	// PolicyNever always runs the full search.
	PolicyNever
)

var policyNames = map[Policy]string{
	PolicyIfLooksUninflected: "if_looks_uninflected",
	PolicyAlways:             "always",
	PolicyNever:              "never",
}

// String returns the policy name.
func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses a policy name as accepted by configuration files
// and command-line flags.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("stemmer: unknown early-return policy %q", s)
}

// MarshalJSON encodes the policy as its name string.
func (p Policy) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a policy from its name string.
func (p *Policy) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// DefaultExceptions are forms that are never stripped: proper nouns
// and function words whose tails look like live suffixes.
var DefaultExceptions = []string{"абай", "алматы", "туралы", "және"}

// Config carries the tunable parts of an Engine. The zero value gives
// the default policy, depth and no tracing.
type Config struct {
	Policy     Policy   // early-return policy for known lemmas
	MaxDepth   int      // recursion budget; 0 means DefaultMaxDepth
	Exceptions []string // pass-through forms; nil means DefaultExceptions
	Tracer     Tracer   // optional search event sink
}

// Engine stems words against a fixed Lexicon and suffix Inventory. An
// Engine is immutable and safe for concurrent use.
type Engine struct {
	lex        *Lexicon
	inv        *Inventory
	policy     Policy
	maxDepth   int
	exceptions map[string]struct{}
	tracer     Tracer
}

// New builds an Engine over the given lexicon and inventory.
func New(lex *Lexicon, inv *Inventory, cfg Config) *Engine {
	depth := cfg.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	excs := cfg.Exceptions
	if excs == nil {
		excs = DefaultExceptions
	}
	exceptions := make(map[string]struct{}, len(excs))
	for _, x := range excs {
		exceptions[Normalize(x)] = struct{}{}
	}
	return &Engine{
		lex:        lex,
		inv:        inv,
		policy:     cfg.Policy,
		maxDepth:   depth,
		exceptions: exceptions,
		tracer:     cfg.Tracer,
	}
}

// Lookup stems a single word and reports how the lemma was reached.
// The input is normalized first; if no parse resolves, the normalized
// input is returned with Found == false.
func (e *Engine) Lookup(word string) Result {
	if word == "" || len(word) > maxWordBytes {
		return Result{Lemma: word}
	}
	w := Normalize(word)
	if _, ok := e.exceptions[w]; ok {
		return Result{Lemma: w, Found: true}
	}

	known := e.lex.Contains(w)
	looks := false
	if known {
		looks = e.looksInflected(w)
		switch e.policy {
		case PolicyAlways:
			return Result{Lemma: w, Found: true}
		case PolicyIfLooksUninflected:
			if !looks {
				return Result{Lemma: w, Found: true}
			}
		}
	}

	seen := make(map[string]struct{}, e.maxDepth)
	if res, ok := e.search(w, e.maxDepth, seen, known && looks); ok {
		return res
	}
	return Result{Lemma: w}
}

// Stem returns the lemma for word, or the normalized word itself when
// no parse resolves.
func (e *Engine) Stem(word string) string {
	return e.Lookup(word).Lemma
}

// StemAll stems a slice of words, preserving order.
func (e *Engine) StemAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = e.Stem(w)
	}
	return out
}

// defaultEngine runs against the embedded lemma list and suffix
// inventory, populated by init().
var defaultEngine *Engine

func init() {
	lemmas, err := ParseLemmaList(data.Lemmas)
	if err != nil {
		panic("stemmer: embedded lemma list: " + err.Error())
	}
	groups, err := ParseEndings(data.Endings)
	if err != nil {
		panic("stemmer: embedded endings: " + err.Error())
	}
	inv, err := NewInventory(groups)
	if err != nil {
		panic("stemmer: embedded endings: " + err.Error())
	}
	defaultEngine = New(NewLexicon(lemmas), inv, Config{})
}

// Default returns the engine backed by the embedded lexicon and
// inventory.
func Default() *Engine {
	return defaultEngine
}

// Stem stems word against the embedded default lexicon.
func Stem(word string) string {
	return defaultEngine.Stem(word)
}

// StemAll stems words against the embedded default lexicon.
func StemAll(words []string) []string {
	return defaultEngine.StemAll(words)
}
