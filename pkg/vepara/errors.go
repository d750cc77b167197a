package vepara

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport covers building, sending and reading the HTTP exchange.
	ErrTransport = errors.New("vepara: transport failure")
	// ErrDecode covers response bodies that are not JSON or match no known outcome.
	ErrDecode = errors.New("vepara: decode failure")
)

// DecodeError keeps the raw body so a failed classification can be diagnosed.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v: status=%d: %v, response body: %s", ErrDecode, e.StatusCode, e.Err, e.Body)
	}
	return fmt.Sprintf("%v: %v, response body: %s", ErrDecode, e.Err, e.Body)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
}
