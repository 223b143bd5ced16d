package domain

import (
	"errors"
	"fmt"
)

// ErrMalformedTimestamp is returned (wrapped) when a record's published field cannot be parsed
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// Error codes
const (
	ErrCodeData   = "DATA_ERROR"
	ErrCodeStore  = "STORE_ERROR"
	ErrCodeOutput = "OUTPUT_ERROR"
	ErrCodeConfig = "CONFIG_ERROR"
)

// Error is an error with a category code
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// TimestampError reports a record whose published timestamp could not be parsed.
// Index is the position of the record in the sequence returned by the store.
type TimestampError struct {
	Index int
	Board string
	Value string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("[%s] record %d (board %q): cannot parse published %q", ErrCodeData, e.Index, e.Board, e.Value)
}

func (e *TimestampError) Unwrap() error {
	return ErrMalformedTimestamp
}

// NewStoreError wraps a failure returned by a status store
func NewStoreError(message string, cause error) error {
	return &Error{Code: ErrCodeStore, Message: message, Cause: cause}
}

// NewOutputError wraps a failure to write the report
func NewOutputError(message string, cause error) error {
	return &Error{Code: ErrCodeOutput, Message: message, Cause: cause}
}

// NewConfigError wraps an invalid configuration
func NewConfigError(message string, cause error) error {
	return &Error{Code: ErrCodeConfig, Message: message, Cause: cause}
}

// HasCode reports whether err, or any error it wraps, is an *Error with the given code
func HasCode(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
