// Package errors provides structured error types for boardplan.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP API
//   - Machine-readable error codes for exit statuses and API responses
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Every error produced by the planning core is fatal. The three planning
// failures are:
//   - MISSING_COLUMN: the input lacks one of PIN, CAL or QTY
//   - BOUNDARY_VIOLATION: a position id regresses into an earlier half-board
//   - UNSUPPORTED_RACK_COUNT: a caliber row has no rack grouping
//
// The remaining codes cover malformed rows, bad options and I/O.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingColumn, "found no %s column in %s", "QTY", name)
//	if errors.Is(err, errors.ErrCodeMissingColumn) {
//	    os.Exit(2)
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "read %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Planning errors
	ErrCodeMissingColumn        Code = "MISSING_COLUMN"
	ErrCodeBoundaryViolation    Code = "BOUNDARY_VIOLATION"
	ErrCodeUnsupportedRackCount Code = "UNSUPPORTED_RACK_COUNT"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidModel  Code = "INVALID_MODEL"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// IsPlanning reports whether err is one of the three planning failures
// (missing column, boundary violation, unsupported rack count).
func IsPlanning(err error) bool {
	switch GetCode(err) {
	case ErrCodeMissingColumn, ErrCodeBoundaryViolation, ErrCodeUnsupportedRackCount:
		return true
	}
	return false
}
