package leads

import (
	"errors"
	"fmt"
)

// ErrInvalidAPIKey is returned when the backend rejects the configured key (HTTP 401).
var ErrInvalidAPIKey = errors.New("invalid API key")

// HTTPError is any other non-2xx response.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: status %d", e.StatusCode)
}

// TransportError covers an unreachable endpoint and unreadable bodies.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to fetch leads: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
