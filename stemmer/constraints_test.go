package stemmer

import (
	"strings"
	"testing"
)

func TestCaseAdmissible(t *testing.T) {
	e := newTestEngine(t, []string{"алма", "сөз", "орын", "бала"}, Config{})

	tests := []struct {
		name string
		word string
		sfx  string
		want bool
	}{
		// -- ны/ні demand a vowel before the suffix --
		{"ны after vowel", "алманы", "ны", true},
		{"ны after consonant", "сөзны", "ны", false},
		{"ні on possessive tail", "алмасыні", "ні", false},

		// -- ын/ін demand a consonant, and no sibilant possessive tail --
		{"ін after consonant", "сөзін", "ін", true},
		{"ын after vowel", "алмаын", "ын", false},
		{"ын after possessive с", "алмасын", "ын", false},

		// -- ды/ты family: consonant before, never after evidential ып --
		{"ды after consonant", "сөзды", "ды", true},
		{"ды after vowel", "алмады", "ды", false},
		{"ты after ып", "барыпты", "ты", false},

		// -- short dative а/е ride possessive material only --
		{"а on poss3 tail", "алмасына", "а", false}, // structural note: -на strips first; direct -а needs the tail
		{"а on bare stem", "сөзқа", "а", false},
		{"е on possessive м", "сөзіме", "е", true},
		{"а on tail ы", "алмасыа", "а", true},

		// -- bare accusative н --
		{"н on poss3 tail", "алмасын", "н", true},
		{"н on plain vowel", "балан", "н", false},
		{"н when word is lemma", "орын", "н", false},

		// -- unconstrained surfaces always pass --
		{"unconstrained да", "алмада", "да", true},
		{"unconstrained ға", "алмаларға", "ға", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := strings.TrimSuffix(tt.word, tt.sfx)
			if got := e.caseAdmissible(tt.word, base, tt.sfx); got != tt.want {
				t.Errorf("caseAdmissible(%q, %q) = %v, want %v", tt.word, tt.sfx, got, tt.want)
			}
		})
	}
}

func TestEndsPossMarker(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"сөзім", true},
		{"балаң", true},
		{"сөзм", false},  // м not after a vowel
		{"бала", false},
		{"м", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := endsPossMarker(tt.in); got != tt.want {
			t.Errorf("endsPossMarker(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVerbAdmissible(t *testing.T) {
	e := newTestEngine(t, []string{"бар", "ал", "кел", "бала", "бал", "алма"}, Config{})

	tests := []struct {
		name string
		word string
		sfx  string
		want bool
	}{
		// -- lone а/е demand a lemma base --
		{"а with lemma base", "бара", "а", true},
		{"а with unknown base", "қышқа", "а", false},
		{"е with lemma base", "келе", "е", true},

		// -- negation on a short lemma/lemma pair is suppressed --
		{"ма short dual lemma", "алма", "ма", false},
		{"ма unknown word", "барма", "ма", true},

		// -- other single-rune markers on a dual lemma pair --
		{"а dual lemma", "бала", "а", false},

		// -- multi-rune markers are free --
		{"ған", "барған", "ған", true},
		{"ып", "барып", "ып", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := strings.TrimSuffix(tt.word, tt.sfx)
			if got := e.verbAdmissible(tt.word, base, tt.sfx); got != tt.want {
				t.Errorf("verbAdmissible(%q, %q) = %v, want %v", tt.word, tt.sfx, got, tt.want)
			}
		})
	}
}

func TestComparativeAdmissible(t *testing.T) {
	e := newTestEngine(t, []string{"қысқа", "үлкен", "топ"}, Config{})

	tests := []struct {
		base string
		want bool
	}{
		{"қысқа", true},
		{"үлкен", true},
		{"топ", false},    // lemma but too short
		{"дөкем", false},  // long enough but unknown
	}
	for _, tt := range tests {
		if got := e.comparativeAdmissible(tt.base); got != tt.want {
			t.Errorf("comparativeAdmissible(%q) = %v, want %v", tt.base, got, tt.want)
		}
	}
}

func TestSingleVowelSafeguard(t *testing.T) {
	// жеті is a lemma; stripping lone -і would leave unknown жет.
	e := newTestEngine(t, []string{"жеті"}, Config{})
	if e.admissible("жеті", "жет", CategoryPossessive, "і", true) {
		t.Error("lone vowel stripped from a lemma with an unknown base")
	}
	// The probe runs without the safeguard.
	if !e.admissible("жеті", "жет", CategoryPossessive, "і", false) {
		t.Error("probe mode must ignore the single-vowel safeguard")
	}
	// When the base resolves (here via elision repair) the safeguard
	// lets the strip through.
	e2 := newTestEngine(t, []string{"аузы", "ауыз"}, Config{})
	if !e2.admissible("аузы", "ауз", CategoryPossessive, "ы", true) {
		t.Error("lone vowel blocked although the base resolves")
	}
}

func TestDualLemmaGuard(t *testing.T) {
	e := newTestEngine(t, []string{"білім", "біл", "жылы", "жыл"}, Config{})

	if e.admissible("білім", "біл", CategoryPossessive, "ім", true) {
		t.Error("possessive strip allowed although word and base are both lemmas")
	}
	if e.admissible("жылы", "жыл", CategoryPossessive, "ы", true) {
		t.Error("possessive strip allowed although word and base are both lemmas")
	}
	// The guard covers only the nominal layers.
	if !e.admissible("білім", "біл", CategoryVerb, "ім", true) {
		t.Error("verb layer wrongly inherited the dual-lemma guard")
	}
}

func TestLooksInflected(t *testing.T) {
	e := Default()

	tests := []struct {
		word string
		want bool
	}{
		{"мектептің", true},
		{"алмалар", true},
		{"кітабым", true},
		{"алма", false},    // all structural matches are guard-blocked
		{"баста", false},
		{"жылы", false},
		{"мектеп", true},   // lone -п is a converb surface
		{"сөз", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := e.looksInflected(tt.word); got != tt.want {
				t.Errorf("looksInflected(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}
