package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Setup errors abort the invocation before any sweep starts
	ErrSetup       ErrorCode = "SETUP"
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrSweepLocked ErrorCode = "SWEEP_LOCKED"

	// Sweep errors
	ErrDirectoryNotFound ErrorCode = "DIRECTORY_NOT_FOUND"
	ErrFileAccess        ErrorCode = "FILE_ACCESS"

	// Per-entry errors, recovered by the sorter
	ErrInvalidEntry        ErrorCode = "INVALID_ENTRY"
	ErrRelocation          ErrorCode = "RELOCATION"
	ErrResolutionExhausted ErrorCode = "RESOLUTION_EXHAUSTED"
	ErrDirCreate           ErrorCode = "DIR_CREATE"
)

// SortError represents a structured error with code and details
type SortError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SortError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SortError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a SortError with the same code
func (e *SortError) Is(target error) bool {
	var targetErr *SortError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SortError with the given code and message
func New(code ErrorCode, message string) *SortError {
	return &SortError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SortError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SortError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a SortError. Returns nil for a nil err.
func Wrap(err error, code ErrorCode, message string) *SortError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SortError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *SortError) WithDetail(key string, value interface{}) *SortError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sortErr *SortError
	if errors.As(err, &sortErr) {
		return sortErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SortError
func GetErrorCode(err error) ErrorCode {
	var sortErr *SortError
	if errors.As(err, &sortErr) {
		return sortErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SortError
func GetErrorDetails(err error) map[string]interface{} {
	var sortErr *SortError
	if errors.As(err, &sortErr) {
		return sortErr.Details
	}
	return nil
}

// IsSetupError reports whether err belongs to the setup phase, which
// escalates to a process failure rather than a per-entry warning.
func IsSetupError(err error) bool {
	switch GetErrorCode(err) {
	case ErrSetup, ErrConfigLoad, ErrConfigParse, ErrSweepLocked:
		return true
	}
	return false
}
