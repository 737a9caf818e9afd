package stemmer

import (
	"encoding/json"
	"fmt"
	"sort"
	"unicode/utf8"
)

// Category classifies suffixes by the inflectional layer they belong to.
type Category int

const (
	CategoryNone         Category = iota // no suffix stripped
	CategoryPredPriority                 // personal predicate endings, checked first
	CategoryCase                         // declension case endings
	CategoryPossessive                   // possessive endings
	CategoryPlural                       // plural markers
	CategoryVerb                         // verbal endings
	CategoryPredicate                    // remaining predicate / degree endings
)

var categoryNames = map[Category]string{
	CategoryNone:         "NONE",
	CategoryPredPriority: "PRED_PRIORITY",
	CategoryCase:         "CASE",
	CategoryPossessive:   "POSSESSIVE",
	CategoryPlural:       "PLURAL",
	CategoryVerb:         "VERB",
	CategoryPredicate:    "PREDICATE",
}

// categoryFromName accepts the category names used in the endings data
// file. PRED_PRIORITY is not listed: it is carved out of PREDICATE
// automatically by NewInventory.
var categoryFromName = map[string]Category{
	"CASE":       CategoryCase,
	"POSSESSIVE": CategoryPossessive,
	"PLURAL":     CategoryPlural,
	"VERB":       CategoryVerb,
	"PREDICATE":  CategoryPredicate,
}

// categoryOrder is the fixed order in which suffix layers are tried.
// Personal predicate endings outrank everything else: a form like
// сөзбін must shed -бін before the case layer can misread its tail.
var categoryOrder = [...]Category{
	CategoryPredPriority,
	CategoryCase,
	CategoryPossessive,
	CategoryPlural,
	CategoryVerb,
	CategoryPredicate,
}

// String returns the category name as used in the endings data file.
func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// MarshalJSON encodes the category as its name string.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a category from its name string.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for cat, name := range categoryNames {
		if name == s {
			*c = cat
			return nil
		}
	}
	return fmt.Errorf("stemmer: unknown category %q", s)
}

// predPriority lists the personal predicate endings hoisted ahead of
// every other layer (мын/сың/сыз/мыз paradigm in all harmony and
// assimilation variants, singular and plural).
var predPriority = map[string]bool{
	"мын": true, "мін": true, "бын": true, "бін": true, "пын": true, "пін": true,
	"сың": true, "сің": true, "сыз": true, "сіз": true,
	"мыз": true, "міз": true, "быз": true, "біз": true, "пыз": true, "піз": true,
	"сыңдар": true, "сіңдер": true, "сыздар": true, "сіздер": true,
}

// Inventory holds the suffix surfaces for each inflectional layer,
// sorted longest-first within each layer. An Inventory is immutable
// and safe for concurrent use once built.
type Inventory struct {
	groups map[Category][]string
}

// NewInventory builds an Inventory from category-name-keyed suffix
// lists, as produced by ParseEndings. Suffixes are normalized; empty
// suffixes and unknown category names are rejected. Predicate endings
// that belong to the personal paradigm are moved into the priority
// layer.
func NewInventory(src map[string][]string) (*Inventory, error) {
	groups := make(map[Category][]string, len(src)+1)
	for name, list := range src {
		cat, ok := categoryFromName[name]
		if !ok {
			return nil, fmt.Errorf("stemmer: unknown suffix category %q", name)
		}
		for _, s := range list {
			s = Normalize(s)
			if s == "" {
				return nil, fmt.Errorf("stemmer: empty suffix in category %q", name)
			}
			if cat == CategoryPredicate && predPriority[s] {
				groups[CategoryPredPriority] = append(groups[CategoryPredPriority], s)
				continue
			}
			groups[cat] = append(groups[cat], s)
		}
	}
	for _, list := range groups {
		sortLongestFirst(list)
	}
	return &Inventory{groups: groups}, nil
}

// suffixes returns the surfaces for a layer, longest first. The
// returned slice is shared and must not be modified.
func (inv *Inventory) suffixes(c Category) []string {
	return inv.groups[c]
}

// Len returns the total number of suffix surfaces in the inventory.
func (inv *Inventory) Len() int {
	n := 0
	for _, list := range inv.groups {
		n += len(list)
	}
	return n
}

// sortLongestFirst orders suffixes by descending rune length. Equal
// lengths keep their source order, so the data file decides ties.
func sortLongestFirst(list []string) {
	sort.SliceStable(list, func(i, j int) bool {
		return utf8.RuneCountInString(list[i]) > utf8.RuneCountInString(list[j])
	})
}

// ParseEndings parses the JSON endings file mapping category names to
// suffix surface lists.
func ParseEndings(raw []byte) (map[string][]string, error) {
	var groups map[string][]string
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, fmt.Errorf("stemmer: parse endings: %w", err)
	}
	return groups, nil
}
