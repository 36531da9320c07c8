package utils

import (
	"unicode"
	"unicode/utf8"
)

// IsWordInput checks if input should be processed as a word or word prefix.
// Returns false for empty strings, strings longer than maxLen runes, and
// strings holding anything other than letters and combining marks.
func IsWordInput(s string, maxLen int) bool {
	if len(s) == 0 {
		return false
	}
	if maxLen > 0 && utf8.RuneCountInString(s) > maxLen {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.Is(unicode.Mn, r) {
			return false
		}
	}
	return true
}
