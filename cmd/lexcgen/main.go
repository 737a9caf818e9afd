// Command lexcgen generates data/lemmas.txt from an Apertium .lexc
// lexicon file (apertium-kaz).
//
// Download apertium-kaz.kaz.lexc from the apertium-kaz repository,
// then run:
//
//	go run ./cmd/lexcgen -input apertium-kaz.kaz.lexc -lexicons Common
//
// Output: data/lemmas.txt (commit this file). Regenerate when a new
// lexicon release is available.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/qazaq-nlp/qazstem/stemmer"
)

const (
	defaultOutput  = "data/lemmas.txt"
	scannerBufSize = 1 << 20 // 1 MB
	minLemmaRunes  = 2
)

func main() {
	inputPath := flag.String("input", "", "path to Apertium .lexc file")
	outputPath := flag.String("output", defaultOutput, "output path for lemmas.txt")
	lexicons := flag.String("lexicons", "Common", "comma-separated LEXICON sections to extract")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: lexcgen -input <file> [-output <file>] [-lexicons Common,...]\n")
		os.Exit(1)
	}

	wanted := make(map[string]bool)
	for _, name := range strings.Split(*lexicons, ",") {
		if name = strings.TrimSpace(name); name != "" {
			wanted[name] = true
		}
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexcgen: open input: %v\n", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(f)
	buf := make([]byte, scannerBufSize)
	scanner.Buffer(buf, scannerBufSize)

	seen := make(map[string]struct{})
	current := ""

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}

		// LEXICON <Name> opens a section.
		if strings.HasPrefix(line, "LEXICON") {
			fields := strings.Fields(line)
			current = ""
			if len(fields) >= 2 {
				current = fields[1]
			}
			continue
		}

		if !wanted[current] {
			continue
		}

		// Entry format: <surface>:<analysis> <Continuation> ;
		// The lemma is the part before the colon, with %-escapes removed.
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			continue
		}
		lemma := stemmer.Normalize(unescapeLexc(line[:colon]))
		if !isAcceptable(lemma) {
			continue
		}
		seen[lemma] = struct{}{}
	}

	scanErr := scanner.Err()

	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "lexcgen: close input: %v\n", err)
		os.Exit(1)
	}

	if scanErr != nil {
		fmt.Fprintf(os.Stderr, "lexcgen: scan error: %v\n", scanErr)
		os.Exit(1)
	}

	lemmas := make([]string, 0, len(seen))
	for lemma := range seen {
		lemmas = append(lemmas, lemma)
	}
	sort.Strings(lemmas)

	out := &strings.Builder{}
	fmt.Fprintf(out, "# Kazakh lemma list extracted from Apertium .lexc.\n")
	fmt.Fprintf(out, "# One lemma per line, lowercase Cyrillic, NFC.\n")
	for _, lemma := range lemmas {
		out.WriteString(lemma)
		out.WriteByte('\n')
	}

	if err := os.WriteFile(*outputPath, []byte(out.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "lexcgen: write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "lexcgen: wrote %d lemmas to %s\n", len(lemmas), *outputPath)
}

// unescapeLexc removes lexc %-escapes (e.g. "ақ% орда" -> "ақ орда").
func unescapeLexc(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if !escaped && r == '%' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}

// isAcceptable filters out multiword entries, digits and non-Cyrillic
// lemmas, which the stemmer cannot use.
func isAcceptable(lemma string) bool {
	runes := []rune(lemma)
	if len(runes) < minLemmaRunes {
		return false
	}
	for _, r := range runes {
		if r == '-' {
			continue
		}
		if !unicode.Is(unicode.Cyrillic, r) {
			return false
		}
	}
	return true
}
