package envelope

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrMissingCallback indicates a callback-mode body without the c( ... ); wrapper
	ErrMissingCallback = errors.New("response is not wrapped in callback c(...);")
	// ErrMissingKey indicates a required key was absent
	ErrMissingKey = errors.New("required key missing")
	// ErrWrongType indicates a key held the wrong JSON type
	ErrWrongType = errors.New("key has wrong JSON type")
)

// Error types for envelope decoding
type (
	// ProtocolError indicates a well-formed body that does not follow the
	// meta/response/notifications envelope
	ProtocolError struct {
		Key string // offending key, empty for the body as a whole
		Err error
	}

	// DecodeError indicates the body was not valid JSON
	DecodeError struct {
		Err error
	}
)

func (e *ProtocolError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("protocol error: %v", e.Err)
	}
	return fmt.Sprintf("protocol error at '%s': %v", e.Key, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed response JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func missing(key string) error {
	return &ProtocolError{Key: key, Err: ErrMissingKey}
}

func wrongType(key, expected, got string) error {
	return &ProtocolError{Key: key, Err: fmt.Errorf("%w: expected %s, got %s", ErrWrongType, expected, got)}
}
