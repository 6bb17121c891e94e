// Package apperrors carries the error taxonomy used at operation
// boundaries: NotFound, InvalidState, CollaboratorUnavailable and
// Validation. Handlers map these onto the success=false wire shape;
// anything else is treated as an internal error.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an operation error
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidState
	KindUnavailable
	KindValidation
)

// Error is a kinded error with an operator-facing message and an
// optional wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports an absent entity (driver, match, station)
func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// InvalidState reports an operation that is not valid for the entity's
// current status or actor.
func InvalidState(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidState, Msg: fmt.Sprintf(format, args...)}
}

// Unavailable reports a downstream collaborator failure or timeout
func Unavailable(msg string, err error) error {
	return &Error{Kind: KindUnavailable, Msg: msg, Err: err}
}

// Validation reports malformed input
func Validation(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or KindUnknown for foreign errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a NotFound error
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsInvalidState reports whether err is an InvalidState error
func IsInvalidState(err error) bool {
	return KindOf(err) == KindInvalidState
}

// IsUnavailable reports whether err is a CollaboratorUnavailable error
func IsUnavailable(err error) bool {
	return KindOf(err) == KindUnavailable
}
