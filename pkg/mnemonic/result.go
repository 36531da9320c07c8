package mnemonic

// Kind classifies the outcome of a validation.
type Kind int

const (
	Valid Kind = iota
	EmptyInput
	WrongWordCount
	UnknownWord
	ChecksumInvalid
)

func (k Kind) String() string {
	switch k {
	case Valid:
		return "valid"
	case EmptyInput:
		return "empty_input"
	case WrongWordCount:
		return "wrong_word_count"
	case UnknownWord:
		return "unknown_word"
	case ChecksumInvalid:
		return "checksum_invalid"
	default:
		return "unknown"
	}
}

// Result is the verdict for one candidate passphrase.
// Message is empty when Valid is true. The remaining fields carry the
// details of the failing rule: Expected and Actual for WrongWordCount,
// Word and (optionally) Suggestion for UnknownWord.
type Result struct {
	Valid      bool
	Message    string
	Kind       Kind
	Expected   int
	Actual     int
	Word       string
	Suggestion string
}

// Err returns the result as an error, or nil when the passphrase is valid.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Kind: r.Kind, Message: r.Message}
}

// ValidationError wraps a failed Result for callers that prefer error values.
type ValidationError struct {
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
