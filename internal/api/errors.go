package api

import (
	"errors"
	"net/http"
	"sort"
)

// FallbackMessage is shown when the server gives no usable error text.
const FallbackMessage = "Something went wrong."

// Error is a failed API call. It keeps the HTTP status plus whatever the
// backend reported: a top-level message, per-field validation errors, or
// both.
type Error struct {
	Status  int
	Message string
	Fields  map[string][]string
}

// Error returns the most specific human-readable text available: the first
// field error, then the top-level message, then a generic fallback.
func (e *Error) Error() string {
	for _, field := range sortedKeys(e.Fields) {
		if msgs := e.Fields[field]; len(msgs) > 0 {
			return msgs[0]
		}
	}
	if e.Message != "" {
		return e.Message
	}
	return FallbackMessage
}

// IsAuth reports whether the error is an authentication failure.
func (e *Error) IsAuth() bool {
	return e.Status == http.StatusUnauthorized
}

// IsValidation reports whether the error is a 4xx carrying field errors.
func (e *Error) IsValidation() bool {
	return e.Status >= 400 && e.Status < 500 && len(e.Fields) > 0
}

// IsServer reports whether the backend itself failed.
func (e *Error) IsServer() bool {
	return e.Status >= 500
}

// AsError unwraps err into an *Error when the failure came from the API.
// Transport-level failures (unreachable host, timeout) are not *Error.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// UserMessage converts any error from the client into text fit for a
// notification, falling back to a generic string for transport failures.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := AsError(err); ok {
		return apiErr.Error()
	}
	return FallbackMessage
}

// Field error iteration order must be stable so "first field error" is
// deterministic for the same response.
func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
