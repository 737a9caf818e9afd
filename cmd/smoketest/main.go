// Command smoketest runs the stemmer over a directory of .txt corpus
// files and reports aggregate quality numbers: how many tokens were
// reduced to a dictionary lemma, which repairs fired, and the most
// frequent lemmas. Useful as a sanity check after regenerating
// data/lemmas.txt.
//
//	go run ./cmd/smoketest <directory>
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/qazaq-nlp/qazstem/stemmer"
)

const (
	maxWorkers     = 4
	expectedArgs   = 2
	topLemmas      = 20
	bytesToKBShift = 10
)

type Stats struct {
	mu           sync.Mutex
	filesScanned int
	totalBytes   int64
	tokens       int
	found        int
	mutations    int
	elisions     int
	lemmaCounts  map[string]int
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	dirPath := os.Args[1]
	stats := &Stats{lemmaCounts: make(map[string]int)}

	var filePaths []string
	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	engine := stemmer.Default()
	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(path string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			if err := processFile(path, engine, stats); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			}
		}(path)
	}
	wg.Wait()

	elapsed := time.Since(start)
	report(stats, elapsed)
}

func processFile(path string, engine *stemmer.Engine, stats *Stats) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	local := struct {
		tokens, found, mutations, elisions int
		lemmaCounts                        map[string]int
	}{lemmaCounts: make(map[string]int)}

	for _, word := range cyrillicWords(string(data)) {
		res := engine.Lookup(word)
		local.tokens++
		if res.Found {
			local.found++
			local.lemmaCounts[res.Lemma]++
		}
		switch res.Repair {
		case stemmer.RepairMutation:
			local.mutations++
		case stemmer.RepairElision:
			local.elisions++
		}
	}

	stats.mu.Lock()
	defer stats.mu.Unlock()
	stats.filesScanned++
	stats.totalBytes += int64(len(data))
	stats.tokens += local.tokens
	stats.found += local.found
	stats.mutations += local.mutations
	stats.elisions += local.elisions
	for lemma, n := range local.lemmaCounts {
		stats.lemmaCounts[lemma] += n
	}
	return nil
}

// cyrillicWords splits text into maximal runs of Cyrillic letters,
// keeping inner hyphens (кез-келген stays one token).
func cyrillicWords(text string) []string {
	var words []string
	var b strings.Builder
	flush := func() {
		if w := strings.Trim(b.String(), "-"); w != "" {
			words = append(words, w)
		}
		b.Reset()
	}
	for _, r := range text {
		if unicode.Is(unicode.Cyrillic, r) || (r == '-' && b.Len() > 0) {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return words
}

func report(stats *Stats, elapsed time.Duration) {
	fmt.Printf("files scanned:    %d\n", stats.filesScanned)
	fmt.Printf("corpus size:      %d KB\n", stats.totalBytes>>bytesToKBShift)
	fmt.Printf("tokens:           %d\n", stats.tokens)
	if stats.tokens > 0 {
		fmt.Printf("lemma matches:    %d (%.1f%%)\n", stats.found,
			100*float64(stats.found)/float64(stats.tokens))
	}
	fmt.Printf("mutation repairs: %d\n", stats.mutations)
	fmt.Printf("elision repairs:  %d\n", stats.elisions)
	fmt.Printf("elapsed:          %v\n", elapsed.Round(time.Millisecond))

	type lemmaCount struct {
		lemma string
		n     int
	}
	counts := make([]lemmaCount, 0, len(stats.lemmaCounts))
	for lemma, n := range stats.lemmaCounts {
		counts = append(counts, lemmaCount{lemma, n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].n != counts[j].n {
			return counts[i].n > counts[j].n
		}
		return counts[i].lemma < counts[j].lemma
	})
	if len(counts) > topLemmas {
		counts = counts[:topLemmas]
	}
	fmt.Printf("top lemmas:\n")
	for _, c := range counts {
		fmt.Printf("  %6d  %s\n", c.n, c.lemma)
	}
}
