// Package errors provides the structured errors hostdash reports to users:
//
//	✗ <what failed>
//
//	  <cause>
//
//	  <how to fix it>
package errors

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ErrConfig   = "CONFIG"
	ErrProvider = "PROVIDER"
	ErrDecode   = "DECODE"
	ErrRender   = "RENDER"
)

type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

func New(code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// Wrap attaches message to err. The code is inherited from err when it is
// already an *Error, otherwise ErrProvider.
func Wrap(err error, message string) *Error {
	code := ErrProvider
	var e *Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return &Error{Code: code, Message: message, Cause: err}
}

func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion, Cause: err}
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✗ %s\n", e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, "\n  %s\n", e.Cause.Error())
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  %s\n", e.Suggestion)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// IsCode reports whether err is, or wraps, an *Error with code.
func IsCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
