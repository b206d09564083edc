package api

import (
	"errors"
	"fmt"
	"strings"
)

// Error is the single typed error returned for every failed backend call.
// Status is the HTTP status code of the response, or 0 for transport-level
// failures (network errors, timeouts, cancellation). Payload holds the parsed
// JSON error body when the backend sent one, or a {"raw": <text>} wrapper for
// non-JSON bodies.
type Error struct {
	Status  int
	Message string
	Payload any
}

func (e *Error) Error() string { return e.Message }

// NewError constructs a typed backend error.
func NewError(status int, message string, payload any) *Error {
	return &Error{Status: status, Message: message, Payload: payload}
}

// IsStatus reports whether err is a backend *Error with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// genericFailurePrefix is the fallback message format for HTTP failures whose
// body carried no usable "error" or "message" field.
const genericFailurePrefix = "Request failed with status"

// errorMessageFromPayload resolves the best human-readable message from a
// parsed response body: the "error" field wins, then "message", then the
// generic fallback for the given status.
func errorMessageFromPayload(payload any, status int) string {
	if m, ok := payload.(map[string]any); ok {
		if v, ok := m["error"]; ok && v != nil {
			if s := fmt.Sprint(v); s != "" {
				return s
			}
		}
		if v, ok := m["message"]; ok && v != nil {
			if s := fmt.Sprint(v); s != "" {
				return s
			}
		}
	}
	return fmt.Sprintf("%s %d", genericFailurePrefix, status)
}

// MessageFromError extracts the friendliest available message from a caught
// error for display to the operator. Resolution order: the typed error's
// structured payload ("error" field, then "message"), then the typed error's
// own message unless it is the generic HTTP fallback, then the plain error
// text, then fallback.
func MessageFromError(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		if m, ok := apiErr.Payload.(map[string]any); ok {
			if v, ok := m["error"]; ok && v != nil {
				if s := fmt.Sprint(v); s != "" {
					return s
				}
			}
			if v, ok := m["message"]; ok && v != nil {
				if s := fmt.Sprint(v); s != "" {
					return s
				}
			}
		}
		if apiErr.Message != "" && !strings.Contains(apiErr.Message, genericFailurePrefix) {
			return apiErr.Message
		}
		return fallback
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
