package stemmer

import (
	"encoding/json"
	"testing"
	"unicode/utf8"
)

func TestNewInventory(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		_, err := NewInventory(map[string][]string{"GERUND": {"у"}})
		if err == nil {
			t.Error("NewInventory accepted an unknown category")
		}
	})

	t.Run("empty suffix", func(t *testing.T) {
		_, err := NewInventory(map[string][]string{"CASE": {"ға", ""}})
		if err == nil {
			t.Error("NewInventory accepted an empty suffix")
		}
	})

	t.Run("suffixes are normalized", func(t *testing.T) {
		inv, err := NewInventory(map[string][]string{"CASE": {"ҒА"}})
		if err != nil {
			t.Fatalf("NewInventory: %v", err)
		}
		got := inv.suffixes(CategoryCase)
		if len(got) != 1 || got[0] != "ға" {
			t.Errorf("suffixes(CASE) = %v, want [ға]", got)
		}
	})
}

func TestInventoryLongestFirst(t *testing.T) {
	inv, err := NewInventory(map[string][]string{
		"CASE": {"н", "ндағы", "ға", "дағы"},
	})
	if err != nil {
		t.Fatalf("NewInventory: %v", err)
	}
	got := inv.suffixes(CategoryCase)
	for i := 1; i < len(got); i++ {
		if utf8.RuneCountInString(got[i-1]) < utf8.RuneCountInString(got[i]) {
			t.Fatalf("suffixes not longest-first: %v", got)
		}
	}
	if got[0] != "ндағы" {
		t.Errorf("longest suffix first = %q, want %q", got[0], "ндағы")
	}
}

func TestPredPriorityCarveOut(t *testing.T) {
	inv, err := NewInventory(map[string][]string{
		"PREDICATE": {"мын", "сыз", "лау", "рақ"},
	})
	if err != nil {
		t.Fatalf("NewInventory: %v", err)
	}

	prio := inv.suffixes(CategoryPredPriority)
	rest := inv.suffixes(CategoryPredicate)

	if len(prio) != 2 {
		t.Fatalf("priority layer = %v, want [мын сыз]", prio)
	}
	for _, s := range prio {
		if !predPriority[s] {
			t.Errorf("%q in priority layer but not a personal ending", s)
		}
	}
	for _, s := range rest {
		if predPriority[s] {
			t.Errorf("personal ending %q left in the predicate layer", s)
		}
	}
}

func TestDefaultInventory(t *testing.T) {
	inv := Default().inv
	if inv.Len() == 0 {
		t.Fatal("embedded inventory is empty")
	}
	for _, cat := range categoryOrder {
		if len(inv.suffixes(cat)) == 0 {
			t.Errorf("embedded inventory has no %v suffixes", cat)
		}
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{CategoryNone, "NONE"},
		{CategoryCase, "CASE"},
		{CategoryPossessive, "POSSESSIVE"},
		{CategoryPlural, "PLURAL"},
		{CategoryVerb, "VERB"},
		{CategoryPredicate, "PREDICATE"},
		{CategoryPredPriority, "PRED_PRIORITY"},
		{Category(42), "Category(42)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.c), got, tt.want)
		}
	}
}

func TestCategoryJSON(t *testing.T) {
	b, err := json.Marshal(CategoryPlural)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"PLURAL"` {
		t.Errorf("Marshal(CategoryPlural) = %s, want %q", b, `"PLURAL"`)
	}

	var c Category
	if err := json.Unmarshal([]byte(`"CASE"`), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if c != CategoryCase {
		t.Errorf("Unmarshal(\"CASE\") = %v, want CategoryCase", c)
	}
	if err := json.Unmarshal([]byte(`"GERUND"`), &c); err == nil {
		t.Error("Unmarshal of unknown category did not fail")
	}
}

func TestParseEndings(t *testing.T) {
	groups, err := ParseEndings([]byte(`{"CASE": ["ға", "ге"], "PLURAL": ["лар"]}`))
	if err != nil {
		t.Fatalf("ParseEndings: %v", err)
	}
	if len(groups["CASE"]) != 2 || len(groups["PLURAL"]) != 1 {
		t.Errorf("unexpected groups: %v", groups)
	}
	if _, err := ParseEndings([]byte(`{`)); err == nil {
		t.Error("ParseEndings accepted malformed JSON")
	}
}
