/*
Package mnemonic classifies user-entered mnemonic passphrases.

A Validator runs a fixed chain of rules against a candidate and stops at the
first one that fails, so the caller always gets the most specific message:

 1. empty input
 2. wrong word count
 3. a word that is not on the list, with the closest listed word when one is near
 4. a checksum that does not match the words
 5. valid

Every outcome is a Result value; Validate never returns an error and never
panics on malformed input.

	v := mnemonic.New(dictionary.Default())
	res := v.Validate("abandon abandon ... about")
	if !res.Valid {
		fmt.Println(res.Message)
	}

Validators and the dictionaries they hold are read-only, so a single instance
can serve any number of goroutines.
*/
package mnemonic

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/seedcheck/pkg/dictionary"
	"github.com/charmbracelet/log"
)

const (
	DefaultWordCount     = 12
	DefaultMinSuggestLen = 2
	DefaultMaxSuggestLen = 8
)

const (
	msgEmpty       = "Empty passphrase"
	msgWordCount   = "Passphrase should have %d words, entered passphrase has %d"
	msgUnknown     = "Word \"%s\" is not on the passphrase Word List."
	msgUnknownHint = "Word \"%s\" is not on the passphrase Word List. Most similar word on the list is \"%s\""
	msgChecksum    = "Passphrase is not valid"
)

// Validator checks candidate passphrases against a dictionary.
type Validator struct {
	dict          *dictionary.Dictionary
	wordCount     int
	minSuggestLen int
	maxSuggestLen int
	checksum      ChecksumFunc
}

// Option configures a Validator.
type Option func(*Validator)

// WithWordCount sets the number of words a passphrase must have.
func WithWordCount(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.wordCount = n
		}
	}
}

// WithSuggestRange sets the inclusive word length band, in characters,
// inside which a closest-word suggestion is attempted.
func WithSuggestRange(minLen, maxLen int) Option {
	return func(v *Validator) {
		if minLen < 0 || maxLen < minLen {
			return
		}
		v.minSuggestLen = minLen
		v.maxSuggestLen = maxLen
	}
}

// WithChecksum replaces the final structural rule. Passing nil is the same as NoChecksum.
func WithChecksum(fn ChecksumFunc) Option {
	return func(v *Validator) {
		if fn == nil {
			fn = NoChecksum
		}
		v.checksum = fn
	}
}

// New creates a Validator over dict. A nil dict means the bundled BIP39 English list.
func New(dict *dictionary.Dictionary, opts ...Option) *Validator {
	if dict == nil {
		dict = dictionary.Default()
	}
	v := &Validator{
		dict:          dict,
		wordCount:     DefaultWordCount,
		minSuggestLen: DefaultMinSuggestLen,
		maxSuggestLen: DefaultMaxSuggestLen,
		checksum:      BIP39Checksum,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Dictionary returns the word list the validator checks against.
func (v *Validator) Dictionary() *dictionary.Dictionary {
	return v.dict
}

// WordCount returns the number of words a passphrase must have.
func (v *Validator) WordCount() int {
	return v.wordCount
}

// phrase is the per-call working state threaded through the rules.
type phrase struct {
	normalized string
	words      []string
}

// rule inspects a phrase and reports a failing Result, or false to pass it on.
type rule func(v *Validator, p *phrase) (Result, bool)

// rules run in this order; the first failure is the answer.
var rules = []rule{
	(*Validator).checkEmpty,
	(*Validator).checkWordCount,
	(*Validator).checkWords,
	(*Validator).checkChecksum,
}

// Validate classifies candidate. It is safe for concurrent use.
func (v *Validator) Validate(candidate string) Result {
	p := &phrase{normalized: Normalize(candidate)}

	for _, check := range rules {
		if res, failed := check(v, p); failed {
			log.Debug("Passphrase rejected", "kind", res.Kind, "words", len(p.words))
			return res
		}
	}

	log.Debug("Passphrase accepted", "words", len(p.words))
	return Result{Valid: true, Kind: Valid}
}

// IsValid reports whether candidate passes every rule.
func (v *Validator) IsValid(candidate string) bool {
	return v.Validate(candidate).Valid
}

// IsDictionaryWord reports whether word is on the list.
func (v *Validator) IsDictionaryWord(word string) bool {
	return v.dict.Contains(word)
}

// SuggestClosest returns the listed word nearest to word.
// Unlike Validate it does not apply the length band.
func (v *Validator) SuggestClosest(word string) (string, bool) {
	return v.dict.FindClosest(word)
}

func (v *Validator) checkEmpty(p *phrase) (Result, bool) {
	if p.normalized != "" {
		return Result{}, false
	}
	return Result{Kind: EmptyInput, Message: msgEmpty}, true
}

func (v *Validator) checkWordCount(p *phrase) (Result, bool) {
	p.words = Tokenize(p.normalized)
	if len(p.words) == v.wordCount {
		return Result{}, false
	}
	return Result{
		Kind:     WrongWordCount,
		Message:  fmt.Sprintf(msgWordCount, v.wordCount, len(p.words)),
		Expected: v.wordCount,
		Actual:   len(p.words),
	}, true
}

func (v *Validator) checkWords(p *phrase) (Result, bool) {
	for _, word := range p.words {
		if v.dict.Contains(word) {
			continue
		}

		res := Result{Kind: UnknownWord, Word: word, Message: fmt.Sprintf(msgUnknown, word)}
		if v.suggestable(word) {
			if closest, ok := v.dict.FindClosest(word); ok {
				res.Suggestion = closest
				res.Message = fmt.Sprintf(msgUnknownHint, word, closest)
			}
		}
		return res, true
	}
	return Result{}, false
}

func (v *Validator) checkChecksum(p *phrase) (Result, bool) {
	if v.checksum(v.dict, p.words) {
		return Result{}, false
	}
	return Result{Kind: ChecksumInvalid, Message: msgChecksum}, true
}

// suggestable holds the closest-word search to the length band where it is reliable.
func (v *Validator) suggestable(word string) bool {
	n := utf8.RuneCountInString(word)
	return n >= v.minSuggestLen && n <= v.maxSuggestLen
}

// Normalize trims surrounding whitespace, lower-cases candidate and puts it in NFKD form.
func Normalize(candidate string) string {
	return dictionary.Canonical(strings.TrimSpace(candidate))
}

// Tokenize splits a normalized passphrase on single spaces.
// Consecutive spaces yield empty tokens, which count toward the word total.
func Tokenize(normalized string) []string {
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}
