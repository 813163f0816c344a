// Package errors provides structured error types for gfakit.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The codes mirror the failure classes of a GFA graph engine:
//   - FORMAT_ERROR: a malformed line (field count, tag triple, payload)
//   - TYPE_ERROR: a tag value that does not match its declared type
//   - LINE_MISSING: a reference to a segment, path or link that does not exist
//   - NOT_UNIQUE: a duplicate segment or path name
//   - INVALID_ARGUMENT: a precondition violation in an algorithm call
//
// # Usage
//
//	err := errors.New(errors.ErrCodeFormat, "wrong number of fields: %d", n)
//	if errors.Is(err, errors.ErrCodeFormat) {
//	    // Handle malformed input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFormat, origErr, "line %d", lineNo)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Parse and validation errors
	ErrCodeFormat      Code = "FORMAT_ERROR"
	ErrCodeType        Code = "TYPE_ERROR"
	ErrCodeLineMissing Code = "LINE_MISSING"
	ErrCodeNotUnique   Code = "NOT_UNIQUE"

	// Algorithm preconditions
	ErrCodeArgument Code = "INVALID_ARGUMENT"

	// Input errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code     // Machine-readable error code
	Message string   // Human-readable message
	Cause   error    // Underlying error (optional)
	Lines   []string // GFA lines involved in the failure (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithLines attaches the offending GFA lines and returns e.
func (e *Error) WithLines(lines ...string) *Error {
	e.Lines = append(e.Lines, lines...)
	return e
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// LinesOf returns the GFA lines attached to the first *Error in err's chain.
func LinesOf(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Lines
	}
	return nil
}

// AttachLines appends lines to the first *Error in err's chain and returns err
// unchanged. Errors of other types are returned as-is.
func AttachLines(err error, lines ...string) error {
	var e *Error
	if errors.As(err, &e) {
		e.WithLines(lines...)
	}
	return err
}
