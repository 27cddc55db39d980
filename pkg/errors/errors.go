// Package errors provides structured error types for iconkit.
//
// Every failure that leaves a package carries a [Code], so the CLI can tell a
// bad configuration apart from a failed write without string matching.
//
// # Error Codes
//
//   - INVALID_*: input validation failures (sizes, config, colors, paths)
//   - FONT_UNAVAILABLE: a font face could not be loaded (recovered, never fatal)
//   - ENCODE_FAILED / WRITE_FAILED: output failures
//   - OUTPUT_DRIFT: check mode found files that differ from a fresh render
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidSize, "size must be positive, got %d", size)
//	if errors.Is(err, errors.ErrCodeInvalidSize) {
//	    // Handle validation error
//	}
//
//	err := errors.Wrap(errors.ErrCodeWriteFailed, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidSize   Code = "INVALID_SIZE"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Recoverable rendering conditions
	ErrCodeFontUnavailable Code = "FONT_UNAVAILABLE"

	// Output errors
	ErrCodeEncodeFailed Code = "ENCODE_FAILED"
	ErrCodeWriteFailed  Code = "WRITE_FAILED"
	ErrCodeOutputDrift  Code = "OUTPUT_DRIFT"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
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

// DriftError lists output files whose content no longer matches a fresh render.
type DriftError struct {
	Paths []string
}

// Error implements the error interface.
func (e *DriftError) Error() string {
	if len(e.Paths) == 1 {
		return fmt.Sprintf("1 icon is out of date: %s", e.Paths[0])
	}
	return fmt.Sprintf("%d icons are out of date: %v", len(e.Paths), e.Paths)
}
