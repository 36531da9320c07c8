package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/seedcheck/pkg/mnemonic"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.FatalLevel)
}

func runLines(t *testing.T, limit int, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	h := NewInputHandlerWithIO(mnemonic.New(nil), limit, in, &out)
	if err := h.Start(); err != nil {
		t.Fatalf("Start returned %v", err)
	}
	return out.String()
}

func TestValidationOutput(t *testing.T) {
	testCases := []struct {
		name  string
		line  string
		wants []string
	}{
		{
			name:  "valid",
			line:  strings.Repeat("abandon ", 11) + "about",
			wants: []string{"valid passphrase"},
		},
		{
			name:  "word count",
			line:  "abandon about",
			wants: []string{"Passphrase should have 12 words, entered passphrase has 2"},
		},
		{
			name:  "unknown word hint",
			line:  strings.Repeat("abandon ", 11) + "abot",
			wants: []string{`Word "abot" is not on the passphrase Word List.`, "did you mean", "about"},
		},
		{
			name:  "checksum",
			line:  strings.TrimSpace(strings.Repeat("abandon ", 12)),
			wants: []string{"Passphrase is not valid"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := runLines(t, 8, tc.line)
			for _, want := range tc.wants {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestCompletionOutput(t *testing.T) {
	out := runLines(t, 3, "?AB")
	if !strings.Contains(out, "Found 3 words for prefix 'ab'") {
		t.Errorf("missing completion header:\n%s", out)
	}
	for _, w := range []string{"abandon", "ability", "able"} {
		if !strings.Contains(out, w) {
			t.Errorf("missing completion %q:\n%s", w, out)
		}
	}
	if strings.Contains(out, "about") {
		t.Errorf("limit not applied:\n%s", out)
	}

	out = runLines(t, 3, "?qx")
	if !strings.Contains(out, "No words found for prefix 'qx'") {
		t.Errorf("expected empty completion notice:\n%s", out)
	}
}

func TestBlankLinesSkipped(t *testing.T) {
	out := runLines(t, 8, "", "   ", "")
	if strings.Contains(out, "Empty passphrase") {
		t.Errorf("blank lines should not be validated:\n%s", out)
	}
}
