// Package errors provides the typed failures surfaced by the admin API client.
// Callers use the category to decide whether offering a retry makes sense;
// the client itself never retries.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

// ErrorCategory tells the caller whether repeating the request may help.
type ErrorCategory int

const (
	// Recoverable errors may succeed when the user repeats the action.
	// Examples: 500 Internal Server Error, network timeouts, connection failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors will fail again without a change on the caller side.
	// Examples: 401 Unauthorized, 403 Forbidden, 400 Bad Request.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ErrSessionNotBound is returned by the private surface when no session
// source has been bound. It signals a wiring bug, not a runtime condition.
var ErrSessionNotBound = errors.New("client: private request issued before BindSession")

// HTTPError is a response that arrived with a non-2xx status.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	msg := e.Message()
	if msg == "" {
		return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, msg)
}

// Category classifies the status code.
func (e *HTTPError) Category() ErrorCategory { return categoryForStatus(e.StatusCode) }

// Retryable reports whether repeating the request may succeed.
func (e *HTTPError) Retryable() bool { return e.Category() == Recoverable }

// Message extracts a human readable message from the body. Backends answer
// with {"message": "..."} or {"error": "..."}; anything else falls back to a
// trimmed plain-text body.
func (e *HTTPError) Message() string {
	if len(e.Body) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(e.Body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		return payload.Error
	}
	return truncate(strings.TrimSpace(string(e.Body)), maxMessageBytes)
}

const maxMessageBytes = 200

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	i := n
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return s[:i]
}

// NetworkError means the request could not be sent or no response arrived.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s network error: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *NetworkError) Unwrap() error { return e.Err }

// Category is always Recoverable; the failure may be transient.
func (e *NetworkError) Category() ErrorCategory { return Recoverable }

// StatusCode returns the HTTP status carried by err, or 0 when err is not
// an *HTTPError.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether err is an HTTP 401 response.
func IsUnauthorized(err error) bool { return StatusCode(err) == http.StatusUnauthorized }

// IsIrrecoverable returns true if repeating the request will not help.
func IsIrrecoverable(err error) bool {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Category() == Irrecoverable
	}
	return false
}
