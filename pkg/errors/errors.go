// Package errors defines the closed set of error kinds used across the poster.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an error for the orchestration boundary.
type Kind string

const (
	KindConfiguration    Kind = "configuration"
	KindAuthentication   Kind = "authentication"
	KindPostCreation     Kind = "post_creation"
	KindGenerationFormat Kind = "generation_format"
	KindInputValidation  Kind = "input_validation"
	KindUnknown          Kind = "unknown"
)

// Error carries a kind, a message, and an optional underlying error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a kind and the operation being attempted.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf reports the kind of err, or KindUnknown for errors outside the taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
