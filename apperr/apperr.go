// Package apperr defines the error taxonomy shared by every registry
// operation.  All failures are returned as values; the code tells the
// caller which recovery path applies (re-prompt, refresh, or render a
// business outcome such as a blacklist denial).
package apperr

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	CodeValidation    Code = "VALIDATION_ERROR"
	CodeNotFound      Code = "NOT_FOUND"
	CodeAccessDenied  Code = "ACCESS_DENIED"
	CodeAlreadyInside Code = "ALREADY_INSIDE"
	CodeAlreadyExited Code = "ALREADY_EXITED"
	CodeStorage       Code = "STORAGE_ERROR"
)

type Error struct {
	Code    Code
	Field   string // set for validation errors, names the offending form field
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code to an underlying error, typically a storage
// failure the caller should see but not interpret.
func Wrap(code Code, err error, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// Validation builds a field-scoped VALIDATION_ERROR.
func Validation(field, reason string) *Error {
	return &Error{Code: CodeValidation, Field: field, Message: reason}
}

// CodeOf extracts the taxonomy code from err, or CodeStorage if err is
// not an *Error (unexpected failures are treated as storage/system ones).
func CodeOf(err error) Code {
	var ae *Error
	if stdErrors.As(err, &ae) {
		return ae.Code
	}
	return CodeStorage
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	var ae *Error
	if stdErrors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
