package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tyler-smith/go-bip39/wordlists"
)

// CanonicalSize is the length of a BIP39 word list.
const CanonicalSize = 2048

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the BIP39 English word list. It is built on first use and shared afterwards.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		d, err := New(wordlists.English)
		if err != nil {
			// the bundled list is fixed; failing here means a broken build
			panic(fmt.Sprintf("bundled BIP39 word list is invalid: %v", err))
		}
		defaultDict = d
	})
	return defaultDict
}

// Load parses a plain text word list, one word per line.
// Blank lines and lines starting with '#' are skipped; entries are trimmed and lower-cased.
func Load(r io.Reader, opts ...Option) (*Dictionary, error) {
	scanner := bufio.NewScanner(r)
	var words []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return New(words, opts...)
}

// LoadFile reads a word list from path after checking the file looks like one.
func LoadFile(path string, opts ...Option) (*Dictionary, error) {
	if err := ValidateFile(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	d, err := Load(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
	}

	if d.Len() != CanonicalSize {
		log.Warnf("Word list %s has %d words, checksum validation expects %d", path, d.Len(), CanonicalSize)
	}
	log.Debugf("Loaded %d words from %s", d.Len(), path)
	return d, nil
}

// ValidateFile checks extension and size of a plain text word list.
func ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, expected a word list file", path)
	}
	if info.Size() < 1 {
		return fmt.Errorf("file %s is empty", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".txt" {
		return fmt.Errorf("file %s has invalid extension %s for a word list (expected: .txt)", path, ext)
	}
	return nil
}
