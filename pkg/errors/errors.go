// Package errors provides structured error types for cargo-add.
//
// This package defines error codes and types that enable:
//   - Consistent error handling between the manifest core and the CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// Structural manifest failures each carry their own code so callers can
// branch without string matching:
//
//	_, err := manifest.Open(path)
//	if errors.Is(err, errors.ErrCodeManifestNotFound) {
//	    // No Cargo.toml anywhere up the tree
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Structural manifest errors
	ErrCodeManifestNotFound Code = "MANIFEST_NOT_FOUND"      // upward search exhausted
	ErrCodeTypeConflict     Code = "TYPE_CONFLICT"           // dependency table slot holds a non-table
	ErrCodeMissingPackage   Code = "MISSING_PACKAGE_SECTION" // neither [package] nor [project] at save time

	// Propagated failures
	ErrCodeParse     Code = "PARSE_ERROR" // TOML parser rejected the document
	ErrCodeFileOpen  Code = "FILE_OPEN"   // open/stat failures (permission, existence)
	ErrCodeFileWrite Code = "FILE_WRITE"  // seek/write/truncate failures on save

	// Input and registry errors (CLI layer)
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodePackageNotFound Code = "PACKAGE_NOT_FOUND"
	ErrCodeNetwork         Code = "NETWORK_ERROR"

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

// IsStructural reports whether err is one of the structural manifest errors
// (not found, type conflict, missing primary section).
func IsStructural(err error) bool {
	switch GetCode(err) {
	case ErrCodeManifestNotFound, ErrCodeTypeConflict, ErrCodeMissingPackage:
		return true
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
// For *Error types, returns the message (plus cause) without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
