package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized marks a 401 response. It is session-terminal: callers hand
// control to the login boundary instead of retrying in place.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response with a human-readable message taken from the
// body's error field when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Retryable reports whether the failure is transient. Server-side errors and
// throttling may succeed on retry; other client errors never will.
func (e *APIError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// errorFromResponse maps a non-2xx status plus body to the error taxonomy.
func errorFromResponse(statusCode int, body []byte) error {
	if statusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	message := fmt.Sprintf("request failed with status %d", statusCode)
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			message = envelope.Error
		} else if envelope.Message != "" {
			message = envelope.Message
		}
	}

	return &APIError{StatusCode: statusCode, Message: message}
}
