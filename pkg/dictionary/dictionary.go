// Package dictionary holds the canonical mnemonic word list and answers membership, similarity and prefix queries over it.
package dictionary

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/tchap/go-patricia/v2/patricia"
)

// DefaultMaxDistance is the widest edit distance FindClosest still reports as a match.
const DefaultMaxDistance = 3

// ErrEmpty is returned when a dictionary is built from no words at all.
var ErrEmpty = errors.New("dictionary: word list is empty")

// DuplicateError reports a word listed more than once.
type DuplicateError struct {
	Word  string
	First int
	Again int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("dictionary: duplicate word %q at positions %d and %d", e.Word, e.First, e.Again)
}

// EntryError reports a word that is not a lowercase, whitespace-free token.
type EntryError struct {
	Word     string
	Position int
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("dictionary: invalid entry %q at position %d", e.Word, e.Position)
}

// Dictionary is an immutable, ordered word list.
// All methods are safe for concurrent use; nothing is mutated after New returns.
type Dictionary struct {
	words       []string
	index       map[string]int
	trie        *patricia.Trie
	maxDistance int
}

// Option tunes a Dictionary at construction time.
type Option func(*Dictionary)

// WithMaxDistance sets the applicability window of FindClosest.
// Zero (or a negative value) disables the window so any nearest word is reported.
func WithMaxDistance(n int) Option {
	return func(d *Dictionary) {
		if n < 0 {
			n = 0
		}
		d.maxDistance = n
	}
}

// New builds a dictionary from words, keeping their order.
// The slice is copied; later changes to it do not leak into the dictionary.
func New(words []string, opts ...Option) (*Dictionary, error) {
	if len(words) == 0 {
		return nil, ErrEmpty
	}

	d := &Dictionary{
		words:       make([]string, len(words)),
		index:       make(map[string]int, len(words)),
		trie:        patricia.NewTrie(),
		maxDistance: DefaultMaxDistance,
	}
	for _, opt := range opts {
		opt(d)
	}

	for i, raw := range words {
		if !validEntry(raw) {
			return nil, &EntryError{Word: raw, Position: i}
		}
		w := Canonical(raw)
		if first, exists := d.index[w]; exists {
			return nil, &DuplicateError{Word: w, First: first, Again: i}
		}
		d.words[i] = w
		d.index[w] = i
		d.trie.Insert(patricia.Prefix(w), i)
	}

	return d, nil
}

func validEntry(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if unicode.IsSpace(r) || unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// Contains reports whether word, in canonical form, is on the list.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.Index(word)
	return ok
}

// Index returns the canonical position of word.
func (d *Dictionary) Index(word string) (int, bool) {
	if d == nil {
		return 0, false
	}
	i, ok := d.index[Canonical(word)]
	return i, ok
}

// Word returns the entry at position i.
func (d *Dictionary) Word(i int) (string, bool) {
	if d == nil || i < 0 || i >= len(d.words) {
		return "", false
	}
	return d.words[i], true
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Words returns a copy of the ordered entries.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// MaxDistance returns the applicability window used by FindClosest.
func (d *Dictionary) MaxDistance() int {
	if d == nil {
		return 0
	}
	return d.maxDistance
}
