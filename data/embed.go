// Package data embeds the default linguistic data files: the known
// lemma list and the suffix inventory used by the stemmer package.
package data

import _ "embed"

// Lemmas is the default lemma list, one lemma per line. Lines starting
// with '#' are comments.
//
//go:embed lemmas.txt
var Lemmas []byte

// Endings is the default suffix inventory, a JSON object mapping
// category names to suffix surface lists.
//
//go:embed endings.json
var Endings []byte
