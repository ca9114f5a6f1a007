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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Lookup and collision errors
	ErrNotFound ErrorCode = "NOT_FOUND"
	ErrConflict ErrorCode = "CONFLICT"

	// Call-boundary errors
	ErrPreconditionFailed ErrorCode = "PRECONDITION_FAILED"
	ErrBlocked            ErrorCode = "BLOCKED"
	ErrValidationFailed   ErrorCode = "VALIDATION_FAILED"

	// Disk/archive errors
	ErrIOFailure     ErrorCode = "IO_FAILURE"
	ErrArchiveRead   ErrorCode = "ARCHIVE_READ"
	ErrArchiveWrite  ErrorCode = "ARCHIVE_WRITE"
	ErrMetadataWrite ErrorCode = "METADATA_WRITE"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
	ErrConfigSave ErrorCode = "CONFIG_SAVE"
)

// SavekeeperError represents a structured error with code and details
type SavekeeperError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SavekeeperError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SavekeeperError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SavekeeperError) Is(target error) bool {
	var targetErr *SavekeeperError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SavekeeperError with the given code and message
func New(code ErrorCode, message string) *SavekeeperError {
	return &SavekeeperError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SavekeeperError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SavekeeperError {
	return &SavekeeperError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SavekeeperError
func Wrap(err error, code ErrorCode, message string) *SavekeeperError {
	if err == nil {
		return nil
	}
	return &SavekeeperError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SavekeeperError {
	if err == nil {
		return nil
	}
	return &SavekeeperError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SavekeeperError) WithDetail(key string, value interface{}) *SavekeeperError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsCode checks whether err carries the given code anywhere in its chain
func IsCode(err error, code ErrorCode) bool {
	var se *SavekeeperError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// CodeOf returns the code carried by err, or ErrUnknown for foreign errors
func CodeOf(err error) ErrorCode {
	var se *SavekeeperError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrUnknown
}
