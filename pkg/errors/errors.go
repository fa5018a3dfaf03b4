package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrMissingConfig = errors.New("missing required configuration")
	ErrNoContent     = errors.New("no content extracted")
)

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// UpstreamError carries the HTTP status and body of a failed LinkedIn
// request, for both the token exchange and the posts retrieval.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Status, e.Body)
}

// New creates a new error with a message
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// IsMissingConfig returns true if the error is a missing configuration error
func IsMissingConfig(err error) bool {
	return errors.Is(err, ErrMissingConfig)
}

// IsUpstream returns true if the error chain contains an UpstreamError
func IsUpstream(err error) bool {
	var e *UpstreamError
	return errors.As(err, &e)
}
