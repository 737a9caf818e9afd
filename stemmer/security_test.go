package stemmer

import (
	"strings"
	"testing"
)

func TestMaxWordBytesEnforcement(t *testing.T) {
	// 256 bytes of Cyrillic (2 bytes per rune) is the boundary.
	atLimit := strings.Repeat("ы", 128)
	overLimit := strings.Repeat("ы", 129)

	if got := Stem(atLimit); got == "" {
		t.Error("Stem returned empty at the length limit")
	}
	if got := Stem(overLimit); got != overLimit {
		t.Errorf("Stem over the limit = %q, want input returned verbatim", got)
	}

	res := Default().Lookup(overLimit)
	if res.Found {
		t.Error("Lookup.Found = true for over-limit input")
	}
}

func TestMalformedUTF8(t *testing.T) {
	inputs := []string{
		"\xff",
		"\xff\xfe\xfd",
		"мект\xffеп",
		"\xc3",       // truncated multibyte sequence
		"алма\x80",   // stray continuation byte
	}

	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Stem(%q) panicked: %v", in, r)
				}
			}()
			if got := Stem(in); got == "" {
				t.Errorf("Stem(%q) returned empty", in)
			}
		}()
	}
}

func TestControlCharacters(t *testing.T) {
	inputs := []string{
		"мектеп\x00тің",
		"\x01\x02\x03",
		"алма\n",
		"сөз\t",
	}

	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Stem(%q) panicked: %v", in, r)
				}
			}()
			_ = Stem(in)
		}()
	}
}

func TestConcurrentSafety(t *testing.T) {
	words := []string{
		"алмасындағы",
		"мектептің",
		"кітабымыз",
		"аузында",
		"сөздерміз",
		"дөкембірь",
	}

	const numGoroutines = 100
	done := make(chan bool, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("goroutine %d panicked: %v", id, r)
				}
				done <- true
			}()

			for j := 0; j < 100; j++ {
				word := words[j%len(words)]
				_ = Stem(word)
				_ = Default().Lookup(word)
			}
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		<-done
	}
}

// Adversarial inputs built entirely from suffix surfaces must still
// terminate within the depth budget.
func TestSuffixOnlyInput(t *testing.T) {
	inputs := []string{
		strings.Repeat("лар", 20),
		strings.Repeat("ы", 100),
		"ларлерділерден",
		strings.Repeat("дағы", 10),
	}
	for _, in := range inputs {
		if got := Stem(in); got == "" {
			t.Errorf("Stem(%q) returned empty", in)
		}
	}
}
