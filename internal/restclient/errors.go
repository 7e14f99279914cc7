package restclient

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the backend answers 401. By the time a
// caller sees it the stored token has already been cleared and the
// unauthorized hook has fired.
var ErrUnauthorized = errors.New("unauthorized")

// RequestError is a non-2xx, non-401 response. Message is the backend's
// "message" field when it sent one, else a generic status-coded message.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

// NetworkError is a transport-level failure (DNS, refused connection,
// reset) surfaced before any HTTP status was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
