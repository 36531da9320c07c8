package utils

import "testing"

func TestIsWordInput(t *testing.T) {
	testCases := []struct {
		input  string
		maxLen int
		want   bool
	}{
		{"abandon", 0, true},
		{"Zoo", 8, true},
		{"ni\u00f1o", 4, true},
		{"nin\u0303o", 0, true},
		{"", 0, false},
		{"abandonment", 8, false},
		{"word2vec", 0, false},
		{"two words", 0, false},
		{"user-name", 0, false},
	}

	for _, tc := range testCases {
		if got := IsWordInput(tc.input, tc.maxLen); got != tc.want {
			t.Errorf("IsWordInput(%q, %d) = %v, want %v", tc.input, tc.maxLen, got, tc.want)
		}
	}
}
