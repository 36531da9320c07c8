package dictionary

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Canonical lower-cases word and returns it in Unicode NFKD form.
// Entries and queries are both compared in this form, so precomposed and
// decomposed spellings of the same word match.
func Canonical(word string) string {
	return norm.NFKD.String(strings.ToLower(word))
}
