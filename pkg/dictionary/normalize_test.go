package dictionary

import (
	"errors"
	"testing"
)

func TestCanonical(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"abandon", "abandon"},
		{"ZOO", "zoo"},
		{"ni\u00f1o", "nin\u0303o"},
		{"NI\u00d1O", "nin\u0303o"},
		{"nin\u0303o", "nin\u0303o"},
		{"ａｂ", "ab"}, // fullwidth letters fold to ASCII
	}

	for _, tc := range testCases {
		if got := Canonical(tc.in); got != tc.want {
			t.Errorf("Canonical(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCanonicalLookup(t *testing.T) {
	d, err := New([]string{"\u00e1baco", "ni\u00f1o"})
	if err != nil {
		t.Fatal(err)
	}

	for _, q := range []string{"ni\u00f1o", "NI\u00d1O", "nin\u0303o"} {
		if !d.Contains(q) {
			t.Errorf("Contains(%q) = false", q)
		}
	}
	if i, ok := d.Index("a\u0301baco"); !ok || i != 0 {
		t.Errorf("Index(decomposed a\u0301baco) = %d, %v", i, ok)
	}
	if got := d.Complete("\u00c1", 0); len(got) != 1 || got[0] != "a\u0301baco" {
		t.Errorf("Complete(Á) = %q", got)
	}

	_, err = New([]string{"ni\u00f1o", "nin\u0303o"})
	var dup *DuplicateError
	if !errors.As(err, &dup) || dup.First != 0 || dup.Again != 1 {
		t.Errorf("expected duplicate for two spellings of ni\u00f1o, got %v", err)
	}
}
