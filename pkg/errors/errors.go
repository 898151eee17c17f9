package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an application error so handlers can map it to an HTTP
// status without string matching.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindForbidden
	KindInternal
)

// Error is the error type returned by services and repositories. Message is
// human-readable and safe to place in a response envelope; Err carries the
// underlying cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation signals a missing or malformed input field.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound signals that a user, list, or item does not exist.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Forbidden signals an authenticated but unauthorized caller.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// Internal wraps a storage or infrastructure fault.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the Kind of err, or KindInternal for errors that did not
// originate from this package.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the user-facing message of err, or fallback for errors
// that did not originate from this package.
func MessageOf(err error, fallback string) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Message
	}
	return fallback
}

// CauseOf returns the underlying cause of an internal error, or err itself.
func CauseOf(err error) error {
	var e *Error
	if stderrors.As(err, &e) && e.Err != nil {
		return e.Err
	}
	return err
}
