package convoso

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/convoso-client/internal/constants"
)

const forbiddenText = "Forbidden"

// Failure is an application-level error delivered in a 2xx body of the form
// {"success": false, "code": ..., "text": ...}.
type Failure struct {
	Code      int    `json:"code"      yaml:"code"`
	Text      string `json:"text"      yaml:"text"`
	Forbidden bool   `json:"forbidden" yaml:"forbidden"`
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.Forbidden {
		return "convoso: forbidden"
	}

	return fmt.Sprintf("convoso: %s (code: %d)", f.Text, f.Code)
}

// ErrorSet is the closed set of failure codes an endpoint can return,
// mapped to their fixed text.
type ErrorSet map[int]string

// Text returns the documented text for code.
func (s ErrorSet) Text(code int) (string, bool) {
	text, ok := s[code]

	return text, ok
}

// Contains reports whether f is one of the documented variants of s.
// The forbidden variant belongs to every set.
func (s ErrorSet) Contains(f *Failure) bool {
	if f == nil {
		return false
	}

	if f.Forbidden {
		return true
	}

	_, ok := s[f.Code]

	return ok
}

// Result is the outcome of a typed endpoint call: either Data on success, or
// a Failure describing the application-level rejection.
type Result[T any] struct {
	Success bool
	Data    *T
	Failure *Failure
	// Empty is set when the API answered without a JSON body.
	Empty bool
}

// Err returns the failure as an error, or nil on success.
func (r *Result[T]) Err() error {
	if r == nil || r.Failure == nil {
		return nil
	}

	return r.Failure
}

// Unwrap returns Data, or the failure as an error.
func (r *Result[T]) Unwrap() (*T, error) {
	if err := r.Err(); err != nil {
		return nil, err
	}

	return r.Data, nil
}

type failureEnvelope struct {
	Success *bool           `json:"success"`
	Code    json.RawMessage `json:"code"`
	Text    string          `json:"text"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// DecodeResult decodes a response body into a Result. An empty body yields a
// successful Result holding a zero T.
func DecodeResult[T any](body []byte) (*Result[T], error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return &Result[T]{Success: true, Data: new(T), Empty: true}, nil
	}

	var envelope failureEnvelope
	if bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
		err := json.Unmarshal(body, &envelope)
		if err != nil {
			return nil, fmt.Errorf("decoding response envelope: %w", err)
		}
	}

	if envelope.Success != nil && !*envelope.Success {
		return &Result[T]{Failure: envelope.failure()}, nil
	}

	data := new(T)

	err := json.Unmarshal(body, data)
	if err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &Result[T]{Success: true, Data: data}, nil
}

func (e failureEnvelope) failure() *Failure {
	text := e.Text
	if text == "" {
		text = e.Error
	}

	if text == "" {
		text = e.Message
	}

	code := ParseCode(e.Code)

	return &Failure{
		Code:      code,
		Text:      text,
		Forbidden: code == constants.HTTPStatusForbidden || strings.EqualFold(text, forbiddenText),
	}
}

// ParseCode reads an application code that may be encoded as a JSON number
// or a numeric string. Anything else yields 0.
func ParseCode(raw json.RawMessage) int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}

	var n json.Number

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}

		n = json.Number(strings.TrimSpace(s))
	} else {
		n = json.Number(raw)
	}

	if i, err := n.Int64(); err == nil {
		return int(i)
	}

	if f, err := strconv.ParseFloat(n.String(), 64); err == nil {
		return int(f)
	}

	return 0
}
