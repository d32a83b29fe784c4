package client

import (
	"errors"
	"fmt"
)

// ErrUnexpectedResponse marks responses that are not a decodable envelope.
var ErrUnexpectedResponse = errors.New("unexpected response")

// Error reports a failed call. StatusCode is the HTTP status (0 when the
// request never completed); Code and Message come from the response envelope.
type Error struct {
	Op         string
	StatusCode int
	Code       int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.StatusCode == 0:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode extracts the HTTP status from err, or 0 when err is not an *Error.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
