package grammar

import (
	"context"
	"testing"
)

func TestBuiltinMisspelling(t *testing.T) {
	c := NewBuiltin()
	matches, err := c.Check(context.Background(), "Teh cat sat.")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	var found *Match
	for i := range matches {
		if matches[i].RuleIssueType == "misspelling" {
			found = &matches[i]
			break
		}
	}
	if found == nil {
		t.Fatalf("expected a misspelling match, got %+v", matches)
	}
	if found.Offset != 0 || found.Length != 3 {
		t.Errorf("match span = (%d, %d), want (0, 3)", found.Offset, found.Length)
	}
	if len(found.Replacements) == 0 || found.Replacements[0] != "The" {
		t.Errorf("replacements = %v, want [The]", found.Replacements)
	}
}

func TestBuiltinMisspellingCasePreserved(t *testing.T) {
	c := NewBuiltin()

	tests := []struct {
		text string
		want string
	}{
		{"I will recieve it.", "receive"},
		{"Recieve the parcel.", "Receive"},
		{"RECIEVE NOW.", "RECEIVE"},
	}
	for _, tt := range tests {
		matches, err := c.Check(context.Background(), tt.text)
		if err != nil {
			t.Fatalf("Check(%q) error = %v", tt.text, err)
		}
		var got string
		for _, m := range matches {
			if m.RuleIssueType == "misspelling" && len(m.Replacements) > 0 {
				got = m.Replacements[0]
			}
		}
		if got != tt.want {
			t.Errorf("Check(%q) replacement = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestBuiltinDoubledWord(t *testing.T) {
	c := NewBuiltin()
	matches, _ := c.Check(context.Background(), "The cat sat on on the mat.")

	var found bool
	for _, m := range matches {
		if m.RuleIssueType == "duplication" {
			found = true
			if m.Offset != 12 {
				t.Errorf("duplication offset = %d, want 12", m.Offset)
			}
		}
	}
	if !found {
		t.Error("expected a duplication match")
	}
}

func TestBuiltinDoubledWordNotAcrossPunctuation(t *testing.T) {
	c := NewBuiltin()
	matches, _ := c.Check(context.Background(), "He said it again, again.")
	for _, m := range matches {
		if m.RuleIssueType == "duplication" {
			t.Errorf("unexpected duplication match: %+v", m)
		}
	}
}

func TestBuiltinLowercaseSentenceStart(t *testing.T) {
	c := NewBuiltin()
	matches, _ := c.Check(context.Background(), "This is fine. but this is not.")

	var found bool
	for _, m := range matches {
		if m.RuleIssueType == "typographical" {
			found = true
			if m.Offset != 14 {
				t.Errorf("typographical offset = %d, want 14", m.Offset)
			}
		}
	}
	if !found {
		t.Error("expected a typographical match")
	}
}

func TestBuiltinCleanText(t *testing.T) {
	c := NewBuiltin()
	matches, err := c.Check(context.Background(), "The quick brown fox jumps over the lazy dog.")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %+v", matches)
	}
}

func TestBuiltinRuneOffsets(t *testing.T) {
	c := NewBuiltin()
	// The misspelling sits after a multibyte word; offsets must count runes.
	matches, _ := c.Check(context.Background(), "Café teh bar.")

	var found *Match
	for i := range matches {
		if matches[i].RuleIssueType == "misspelling" {
			found = &matches[i]
		}
	}
	if found == nil {
		t.Fatal("expected a misspelling match")
	}
	if found.Offset != 5 {
		t.Errorf("offset = %d, want 5 (rune position)", found.Offset)
	}
}
