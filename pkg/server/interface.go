/*
Package server implements msgpack IPC for passphrase validation services.

The server reads a stream of msgpack encoded requests from stdin and writes
exactly one msgpack response per request to stdout, echoing the request ID.
Requests are handled synchronously in arrival order with timing info (in
microseconds) included in responses.

# IPC

Every request carries an ID and an action. A missing action means validate.

Validate a passphrase:

	{"id": "req_001", "action": "validate", "p": "abandon abandon ... about"}

The response carries the verdict, the diagnostic message and its kind:

	{"id": "req_001", "v": false, "m": "Passphrase is not valid", "k": "checksum_invalid", "t": 31}

Unknown words are reported with the offending word and, when one exists
close enough, the most similar dictionary word:

	{"id": "req_002", "v": false, "m": "Word \"abandn\" is not ...", "k": "unknown_word", "w": "abandn", "s": "abandon", "t": 88}

Closest word lookup and prefix completion:

	{"id": "req_003", "action": "suggest", "w": "zooo"}
	{"id": "req_004", "action": "complete", "p": "aba", "l": 8}

Health check:

	{"id": "req_005", "action": "health"}

Errors are reported as {"id": ..., "e": message, "c": code}, with code 400
for malformed requests and 413 for phrases over the configured maximum.

The server counts requests and reloads its TOML config periodically.
*/
package server

// Request is the single request shape for every action
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`
	Phrase string `msgpack:"p,omitempty"`
	Word   string `msgpack:"w,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// ValidateResponse - validation verdict
type ValidateResponse struct {
	ID         string `msgpack:"id"`
	Valid      bool   `msgpack:"v"`
	Message    string `msgpack:"m,omitempty"`
	Kind       string `msgpack:"k"`
	Word       string `msgpack:"w,omitempty"`
	Suggestion string `msgpack:"s,omitempty"`
	TimeTaken  int64  `msgpack:"t"`
}

// SuggestResponse - closest dictionary word for a single word.
// Suggestion is empty when nothing lies within the distance window.
type SuggestResponse struct {
	ID         string `msgpack:"id"`
	Word       string `msgpack:"w"`
	Suggestion string `msgpack:"s,omitempty"`
	Distance   int    `msgpack:"d"`
	TimeTaken  int64  `msgpack:"t"`
}

// CompletionSuggestion - minimal completion entry
type CompletionSuggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// CompleteResponse - prefix completion response, ranked in dictionary order
type CompleteResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// HealthResponse reports liveness and the loaded dictionary size
type HealthResponse struct {
	ID        string `msgpack:"id"`
	Status    string `msgpack:"status"`
	Words     int    `msgpack:"n"`
	WordCount int    `msgpack:"wc"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
