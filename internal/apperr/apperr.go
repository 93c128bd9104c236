// Package apperr defines the error taxonomy shared by the service and HTTP
// layers: validation failures, missing references and store faults each map
// to a distinct response status.
package apperr

import "errors"

// Kind classifies an error for HTTP status mapping.
type Kind int

const (
	// KindValidation marks malformed or missing input.
	KindValidation Kind = iota
	// KindNotFound marks a reference to a record that does not exist.
	KindNotFound
	// KindStore marks an underlying persistence failure.
	KindStore
)

// Error carries a client-facing message plus an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a KindValidation error with a client-facing message.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound builds a KindNotFound error with a client-facing message.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Store wraps a persistence failure. The message is safe to log; the HTTP
// layer never sends it to clients.
func Store(message string, err error) *Error {
	return &Error{Kind: KindStore, Message: message, Err: err}
}

// KindOf extracts the Kind of err, defaulting to KindStore for errors that
// did not originate in this package.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

// MessageOf extracts the client-facing message of err, or empty when err is
// not an apperr.Error.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}
