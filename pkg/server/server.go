package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/seedcheck/internal/logger"
	"github.com/bastiangx/seedcheck/internal/utils"
	"github.com/bastiangx/seedcheck/pkg/config"
	"github.com/bastiangx/seedcheck/pkg/mnemonic"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	reloadEvery = 100
	// consecutive undecodable messages before the stream is considered broken
	maxDecodeFailures = 8
)

// Server handles msgpack IPC for passphrase validation
type Server struct {
	validator    *mnemonic.Validator
	config       *config.Config
	configPath   string
	listOverride string
	dec          *msgpack.Decoder
	enc          *msgpack.Encoder
	out          *bufio.Writer
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server reading requests from stdin and writing responses to stdout
func NewServer(validator *mnemonic.Validator, cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(validator, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams.
// An empty configPath disables periodic config reloads.
func NewServerWithIO(validator *mnemonic.Validator, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if validator == nil {
		validator = mnemonic.New(nil)
	}
	out := bufio.NewWriter(w)
	return &Server{
		validator:  validator,
		config:     cfg,
		configPath: configPath,
		dec:        msgpack.NewDecoder(bufio.NewReader(r)),
		enc:        msgpack.NewEncoder(out),
		out:        out,
		logger:     logger.New("server"),
	}
}

// SetListOverride pins [dict] path to path across config reloads, as given by -list.
// An empty path means the file's value is used.
func (s *Server) SetListOverride(path string) {
	s.listOverride = path
	if path != "" {
		s.config.Dict.Path = path
	}
}

// Start processes requests until the input stream ends.
// A clean EOF between messages returns nil.
func (s *Server) Start() error {
	s.logger.Debug("Starting msgpack IPC", "words", s.validator.Dictionary().Len(), "word_count", s.validator.WordCount())

	failures := 0
	for {
		raw, err := s.dec.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client closed stream")
				return nil
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("truncated request: %w", err)
			}
			failures++
			if failures >= maxDecodeFailures {
				return fmt.Errorf("reading requests: %w", err)
			}
			s.logger.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			continue
		}
		failures = 0

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.logger.Errorf("Unmarshaling request: %v", err)
			s.sendError("", "Invalid request format", 400)
			continue
		}
		s.handleRequest(req)
	}
}

// handleRequest routes a request by action and counts it toward the reload cycle
func (s *Server) handleRequest(req Request) {
	s.requestCount++
	if s.requestCount%reloadEvery == 0 {
		s.reloadConfig()
	}

	switch req.Action {
	case "", "validate":
		s.handleValidate(req)
	case "suggest":
		s.handleSuggest(req)
	case "complete":
		s.handleComplete(req)
	case "health":
		s.send(HealthResponse{
			ID:        req.ID,
			Status:    "ok",
			Words:     s.validator.Dictionary().Len(),
			WordCount: s.validator.WordCount(),
		})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleValidate(req Request) {
	maxLen := s.config.Server.MaxPhraseLen
	if maxLen > 0 && len(req.Phrase) > maxLen {
		s.sendError(req.ID, fmt.Sprintf("Phrase exceeds maximum length of %d bytes", maxLen), 413)
		return
	}

	start := time.Now()
	res := s.validator.Validate(req.Phrase)
	elapsed := time.Since(start)

	s.send(ValidateResponse{
		ID:         req.ID,
		Valid:      res.Valid,
		Message:    res.Message,
		Kind:       res.Kind.String(),
		Word:       res.Word,
		Suggestion: res.Suggestion,
		TimeTaken:  elapsed.Microseconds(),
	})
}

func (s *Server) handleSuggest(req Request) {
	word := mnemonic.Normalize(req.Word)
	if word == "" {
		s.sendError(req.ID, "Missing 'w' parameter", 400)
		return
	}
	if !utils.IsWordInput(word, s.config.Server.MaxPhraseLen) {
		s.sendError(req.ID, "Word must contain letters only", 400)
		return
	}

	start := time.Now()
	match, ok := s.validator.Dictionary().Closest(word)
	elapsed := time.Since(start)

	resp := SuggestResponse{ID: req.ID, Word: word, TimeTaken: elapsed.Microseconds()}
	if ok {
		resp.Suggestion = match.Word
		resp.Distance = match.Distance
	} else {
		resp.Distance = -1
	}
	s.send(resp)
}

func (s *Server) handleComplete(req Request) {
	prefix := mnemonic.Normalize(req.Phrase)
	if prefix == "" {
		s.sendError(req.ID, "Missing 'p' parameter", 400)
		return
	}
	if !utils.IsWordInput(prefix, s.config.Server.MaxPhraseLen) {
		s.sendError(req.ID, "Prefix must contain letters only", 400)
		return
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.config.CLI.DefaultLimit
	}
	if maxLimit := s.config.Server.MaxLimit; maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	start := time.Now()
	words := s.validator.Dictionary().Complete(prefix, limit)
	elapsed := time.Since(start)

	suggestions := make([]CompletionSuggestion, len(words))
	for i, w := range words {
		suggestions[i] = CompletionSuggestion{Word: w, Rank: uint16(i + 1)}
	}
	s.send(CompleteResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// reloadConfig rereads the TOML file and rebuilds the validator when anything changed.
// Failures keep the running config.
func (s *Server) reloadConfig() {
	if s.configPath == "" {
		return
	}
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		s.logger.Warnf("Failed to reload config: %v", err)
		return
	}
	if s.listOverride != "" {
		cfg.Dict.Path = s.listOverride
	}
	if *cfg == *s.config {
		return
	}
	v, err := cfg.NewValidator()
	if err != nil {
		s.logger.Warnf("Keeping previous validator, reload failed: %v", err)
		return
	}
	s.config = cfg
	s.validator = v
	s.logger.Debug("Config reloaded", "path", s.configPath, "word_count", v.WordCount())
}

// send encodes a response and flushes it so clients see it immediately
func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.out.Flush(); err != nil {
		s.logger.Errorf("Writing response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
