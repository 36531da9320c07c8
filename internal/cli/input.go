// Package cli handles cmd line input for checking passphrases interactively and debugging the validator
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/seedcheck/internal/utils"
	"github.com/bastiangx/seedcheck/pkg/mnemonic"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// completionPrefix marks a line as a prefix completion query instead of a passphrase
const completionPrefix = "?"

var (
	validStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	invalidStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"})
	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#56949f", Dark: "#31748f"})
	hintStyle = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#797593", Dark: "#908caa"})
)

// InputHandler reads lines from its input, validating each one as a passphrase.
// Lines starting with '?' list dictionary words starting with the rest of the line.
type InputHandler struct {
	validator    *mnemonic.Validator
	suggestLimit int
	in           io.Reader
	out          io.Writer
	requestCount int
}

// NewInputHandler creates a handler bound to stdin and stdout
func NewInputHandler(validator *mnemonic.Validator, limit int) *InputHandler {
	return NewInputHandlerWithIO(validator, limit, os.Stdin, os.Stdout)
}

// NewInputHandlerWithIO creates a handler over arbitrary streams
func NewInputHandlerWithIO(validator *mnemonic.Validator, limit int, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		validator:    validator,
		suggestLimit: limit,
		in:           in,
		out:          out,
	}
}

// Start begins the interface loop.
// It reads lines until the input ends, skipping blank ones.
func (h *InputHandler) Start() error {
	fmt.Fprintln(h.out, hintStyle.Render(fmt.Sprintf(
		"enter a %d word passphrase, or ?prefix to list words (Ctrl+C to exit):", h.validator.WordCount())))

	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			return scanner.Err()
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput dispatches one line to either completion or validation
func (h *InputHandler) handleInput(line string) {
	h.requestCount++
	trimmed := strings.TrimSpace(line)
	if prefix, ok := strings.CutPrefix(trimmed, completionPrefix); ok {
		h.handleCompletion(prefix)
		return
	}
	h.handleValidation(line)
}

func (h *InputHandler) handleValidation(line string) {
	start := time.Now()
	res := h.validator.Validate(line)
	log.Debugf("Took [ %v ] for request #%d", time.Since(start), h.requestCount)
	log.Debug("Verdict", "kind", res.Kind)

	if res.Valid {
		fmt.Fprintln(h.out, validStyle.Render("✓ valid passphrase"))
		return
	}
	fmt.Fprintln(h.out, invalidStyle.Render("✗ "+res.Message))
	if res.Kind == mnemonic.UnknownWord && res.Suggestion != "" {
		fmt.Fprintln(h.out, hintStyle.Render("  did you mean ")+wordStyle.Render(res.Suggestion)+hintStyle.Render("?"))
	}
}

func (h *InputHandler) handleCompletion(prefix string) {
	prefix = mnemonic.Normalize(prefix)
	if !utils.IsWordInput(prefix, 0) {
		log.Warnf("Not a word prefix: '%s'", prefix)
		return
	}

	words := h.validator.Dictionary().Complete(prefix, h.suggestLimit)
	if len(words) == 0 {
		fmt.Fprintln(h.out, hintStyle.Render(fmt.Sprintf("No words found for prefix '%s'", prefix)))
		return
	}

	fmt.Fprintf(h.out, "Found %d words for prefix '%s':\n", len(words), prefix)
	for i, w := range words {
		fmt.Fprintf(h.out, "%2d. %s\n", i+1, wordStyle.Render(w))
	}
}
