package stemmer

import "strings"

// Result is the outcome of a single-word lookup.
type Result struct {
	Lemma    string   // resolved lemma, or the normalized input when !Found
	Found    bool     // whether a dictionary lemma was resolved
	Repair   Repair   // phonological repair that closed the match
	Category Category // layer of the final stripped suffix, CategoryNone if none
	Suffix   string   // surface of the final stripped suffix, "" if none
}

// search runs the bounded depth-first suffix-stripping search. It
// returns the first successful resolution in layer order, longest
// surface first within each layer. seen prevents revisiting a form on
// this call's path; depth is the remaining recursion budget.
//
// In preferStrip mode the word's own dictionary entry is consulted
// only after every stripping avenue fails, so that an inflected form
// that happens to collide with a lemma still sheds its suffixes.
func (e *Engine) search(word string, depth int, seen map[string]struct{}, preferStrip bool) (Result, bool) {
	if depth <= 0 {
		e.trace(Event{Kind: EventExhaust, Word: word, Depth: depth})
		return Result{}, false
	}
	if _, dup := seen[word]; dup {
		return Result{}, false
	}
	seen[word] = struct{}{}
	e.trace(Event{Kind: EventEnter, Word: word, Depth: depth})

	if !preferStrip {
		if lemma, repair, ok := e.lex.Resolve(word); ok && !e.looksInflected(word) {
			e.trace(Event{Kind: EventResolve, Word: word, Depth: depth, Lemma: lemma, Repair: repair})
			return Result{Lemma: lemma, Found: true, Repair: repair}, true
		}
	}

	for _, cat := range categoryOrder {
		for _, sfx := range e.inv.suffixes(cat) {
			if len(word) <= len(sfx) || !strings.HasSuffix(word, sfx) {
				continue
			}
			base := word[:len(word)-len(sfx)]
			if !e.admissible(word, base, cat, sfx, true) {
				e.trace(Event{Kind: EventBlock, Word: word, Depth: depth, Category: cat, Suffix: sfx})
				continue
			}
			e.trace(Event{Kind: EventMatch, Word: word, Depth: depth, Category: cat, Suffix: sfx})
			if lemma, repair, ok := e.lex.Resolve(base); ok {
				e.trace(Event{Kind: EventResolve, Word: base, Depth: depth, Category: cat, Suffix: sfx, Lemma: lemma, Repair: repair})
				return Result{Lemma: lemma, Found: true, Repair: repair, Category: cat, Suffix: sfx}, true
			}
			if res, ok := e.search(base, depth-1, seen, preferStrip); ok {
				return res, true
			}
		}
	}

	if preferStrip {
		if lemma, repair, ok := e.lex.Resolve(word); ok {
			e.trace(Event{Kind: EventResolve, Word: word, Depth: depth, Lemma: lemma, Repair: repair})
			return Result{Lemma: lemma, Found: true, Repair: repair}, true
		}
	}
	e.trace(Event{Kind: EventExhaust, Word: word, Depth: depth})
	return Result{}, false
}
