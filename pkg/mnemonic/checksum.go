package mnemonic

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/seedcheck/pkg/dictionary"
)

// bitsPerWord is log2 of the canonical dictionary size.
const bitsPerWord = 11

var (
	ErrDictionarySize = fmt.Errorf("mnemonic: checksum needs a %d-word dictionary", dictionary.CanonicalSize)
	ErrWordCount      = errors.New("mnemonic: word count must be a multiple of 3 between 12 and 24")
	ErrEntropyLength  = errors.New("mnemonic: entropy must be 16, 20, 24, 28 or 32 bytes")
	ErrChecksum       = errors.New("mnemonic: checksum mismatch")
)

// UnknownWordError is returned by PhraseToEntropy for a word missing from the dictionary.
type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("mnemonic: word %q is not in the dictionary", e.Word)
}

// ChecksumFunc is the final structural rule of a Validator.
// It receives words that are all known to be in dict.
type ChecksumFunc func(dict *dictionary.Dictionary, words []string) bool

// BIP39Checksum accepts words whose trailing bits equal the leading bits of
// SHA-256 over the entropy they encode.
func BIP39Checksum(dict *dictionary.Dictionary, words []string) bool {
	_, err := PhraseToEntropy(dict, words)
	return err == nil
}

// NoChecksum accepts every phrase. It suits dictionaries that do not encode entropy.
func NoChecksum(*dictionary.Dictionary, []string) bool {
	return true
}

// PhraseToEntropy decodes words into the entropy they carry and verifies the checksum.
func PhraseToEntropy(dict *dictionary.Dictionary, words []string) ([]byte, error) {
	if dict.Len() != dictionary.CanonicalSize {
		return nil, ErrDictionarySize
	}
	n := len(words)
	if n < 12 || n > 24 || n%3 != 0 {
		return nil, ErrWordCount
	}

	totalBits := n * bitsPerWord
	checksumBits := totalBits / 33
	entropyBits := totalBits - checksumBits

	buf := make([]byte, (totalBits+7)/8)
	pos := 0
	for _, w := range words {
		idx, ok := dict.Index(w)
		if !ok {
			return nil, &UnknownWordError{Word: w}
		}
		for b := bitsPerWord - 1; b >= 0; b-- {
			if idx>>b&1 == 1 {
				buf[pos/8] |= 0x80 >> (pos % 8)
			}
			pos++
		}
	}

	entropy := make([]byte, entropyBits/8)
	copy(entropy, buf)

	sum := sha256.Sum256(entropy)
	for i := 0; i < checksumBits; i++ {
		at := entropyBits + i
		got := buf[at/8] >> (7 - at%8) & 1
		want := sum[i/8] >> (7 - i%8) & 1
		if got != want {
			return nil, ErrChecksum
		}
	}

	return entropy, nil
}

// EntropyToPhrase encodes entropy as a checksummed phrase over dict.
func EntropyToPhrase(dict *dictionary.Dictionary, entropy []byte) (string, error) {
	if dict.Len() != dictionary.CanonicalSize {
		return "", ErrDictionarySize
	}
	switch len(entropy) {
	case 16, 20, 24, 28, 32:
	default:
		return "", ErrEntropyLength
	}

	entropyBits := len(entropy) * 8
	checksumBits := entropyBits / 32
	sum := sha256.Sum256(entropy)

	// checksum bits never exceed one byte
	buf := make([]byte, len(entropy)+1)
	copy(buf, entropy)
	buf[len(entropy)] = sum[0]

	n := (entropyBits + checksumBits) / bitsPerWord
	words := make([]string, n)
	pos := 0
	for i := range words {
		idx := 0
		for b := 0; b < bitsPerWord; b++ {
			idx = idx<<1 | int(buf[pos/8]>>(7-pos%8)&1)
			pos++
		}
		words[i], _ = dict.Word(idx)
	}

	return strings.Join(words, " "), nil
}

// Generate draws fresh entropy from r and returns a phrase of the given word count.
// Pass crypto/rand.Reader outside of tests.
func Generate(dict *dictionary.Dictionary, words int, r io.Reader) (string, error) {
	if words < 12 || words > 24 || words%3 != 0 {
		return "", ErrWordCount
	}

	entropy := make([]byte, words*4/3)
	if _, err := io.ReadFull(r, entropy); err != nil {
		return "", fmt.Errorf("failed to read entropy: %w", err)
	}
	return EntropyToPhrase(dict, entropy)
}
