package dictionary

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name    string
		words   []string
		wantErr bool
	}{
		{"ordered list", []string{"apple", "banana", "orange"}, false},
		{"single word", []string{"zoo"}, false},
		{"unicode entries", []string{"ábaco", "niño"}, false},
		{"empty list", nil, true},
		{"duplicate", []string{"apple", "pear", "apple"}, true},
		{"uppercase entry", []string{"apple", "Pear"}, true},
		{"blank entry", []string{"apple", ""}, true},
		{"entry with space", []string{"apple pie"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := New(tc.words)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v, got dictionary of %d", tc.words, d.Len())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Len() != len(tc.words) {
				t.Errorf("expected %d words, got %d", len(tc.words), d.Len())
			}
		})
	}
}

func TestNewErrorTypes(t *testing.T) {
	if _, err := New([]string{}); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}

	_, err := New([]string{"a", "b", "a"})
	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected *DuplicateError, got %T", err)
	}
	if dup.Word != "a" || dup.First != 0 || dup.Again != 2 {
		t.Errorf("unexpected duplicate details: %+v", dup)
	}

	_, err = New([]string{"ok", "Bad"})
	var entry *EntryError
	if !errors.As(err, &entry) {
		t.Fatalf("expected *EntryError, got %T", err)
	}
	if entry.Position != 1 {
		t.Errorf("expected position 1, got %d", entry.Position)
	}
}

func TestNewCopiesInput(t *testing.T) {
	words := []string{"apple", "pear"}
	d, err := New(words)
	if err != nil {
		t.Fatal(err)
	}
	words[0] = "mutated"

	if !d.Contains("apple") {
		t.Error("dictionary changed after caller mutated its slice")
	}

	out := d.Words()
	out[1] = "mutated"
	if w, _ := d.Word(1); w != "pear" {
		t.Errorf("Words() leaked internal storage, entry 1 is now %q", w)
	}
}

func TestContains(t *testing.T) {
	d, err := New([]string{"apple", "banana", "orange"})
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		word string
		want bool
	}{
		{"apple", true},
		{"Apple", true},
		{"ORANGE", true},
		{"aple", false},
		{"", false},
		{"apple ", false},
	}

	for _, tc := range testCases {
		if got := d.Contains(tc.word); got != tc.want {
			t.Errorf("Contains(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestIndexAndWord(t *testing.T) {
	d, err := New([]string{"apple", "banana", "orange"})
	if err != nil {
		t.Fatal(err)
	}

	if i, ok := d.Index("banana"); !ok || i != 1 {
		t.Errorf("Index(banana) = %d, %v", i, ok)
	}
	if _, ok := d.Index("kiwi"); ok {
		t.Error("Index(kiwi) should not be found")
	}
	if w, ok := d.Word(2); !ok || w != "orange" {
		t.Errorf("Word(2) = %q, %v", w, ok)
	}
	for _, i := range []int{-1, 3} {
		if _, ok := d.Word(i); ok {
			t.Errorf("Word(%d) should be out of range", i)
		}
	}
}

func TestNilDictionary(t *testing.T) {
	var d *Dictionary
	if d.Contains("apple") {
		t.Error("nil dictionary should contain nothing")
	}
	if _, ok := d.FindClosest("apple"); ok {
		t.Error("nil dictionary should have no closest word")
	}
	if got := d.Complete("a", 0); len(got) != 0 {
		t.Errorf("nil dictionary completed to %v", got)
	}
	if d.Len() != 0 {
		t.Errorf("nil dictionary has length %d", d.Len())
	}
}

func TestComplete(t *testing.T) {
	d, err := New([]string{"zebra", "abandon", "ability", "able", "about", "zoo"})
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		prefix string
		limit  int
		want   []string
	}{
		{"ab", 0, []string{"abandon", "ability", "able", "about"}},
		{"ab", 2, []string{"abandon", "ability"}},
		{"AB", 1, []string{"abandon"}},
		{"abl", 0, []string{"able"}},
		{"z", 0, []string{"zebra", "zoo"}},
		{"q", 0, []string{}},
		{"", 0, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.prefix, func(t *testing.T) {
			got := d.Complete(tc.prefix, tc.limit)
			if len(got) != len(tc.want) {
				t.Fatalf("Complete(%q, %d) = %v, want %v", tc.prefix, tc.limit, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("Complete(%q, %d)[%d] = %q, want %q", tc.prefix, tc.limit, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestExpand(t *testing.T) {
	d := Default()

	testCases := []struct {
		prefix string
		want   string
		ok     bool
	}{
		{"aban", "abandon", true},
		{"zoo", "zoo", true},
		{"abso", "absorb", true},
		{"ABAN", "abandon", true},
		{"ab", "", false},
		{"zz", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		got, ok := d.Expand(tc.prefix)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Expand(%q) = %q, %v; want %q, %v", tc.prefix, got, ok, tc.want, tc.ok)
		}
	}
}
