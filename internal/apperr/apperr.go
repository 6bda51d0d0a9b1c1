// Package apperr defines the error type shared by the application's packages
package apperr

import "fmt"

// Error is a user-facing error. Message doubles as the template for Fmt, and
// errors derived from the same template match under errors.Is.
type Error struct {
	Cause     error
	Message   string
	formatted string
}

func (e *Error) Error() string {
	msg := e.Message
	if e.formatted != "" {
		msg = e.formatted
	}

	if e.Cause == nil {
		return msg
	}

	return msg + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target was derived from the same template.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Message == e.Message
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message:   e.Message,
		Cause:     e.Cause,
		formatted: fmt.Sprintf(e.Message, args...),
	}
}

// Wrap returns a copy of the error with err attached as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message:   e.Message,
		Cause:     err,
		formatted: e.formatted,
	}
}
