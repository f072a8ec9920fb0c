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
	ErrOutOfRange   ErrorCode = "OUT_OF_RANGE"

	// Markup errors
	ErrUnmatchedClosingTag ErrorCode = "UNMATCHED_CLOSING_TAG"
	ErrUnrecognizedTag     ErrorCode = "UNRECOGNIZED_TAG"
	ErrInvalidTag          ErrorCode = "INVALID_TAG"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Output errors
	ErrRenderFailed ErrorCode = "RENDER_FAILED"
	ErrWriteFailed  ErrorCode = "WRITE_FAILED"
)

// TaglineError represents a structured error with code and details
type TaglineError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TaglineError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TaglineError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TaglineError) Is(target error) bool {
	var targetErr *TaglineError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TaglineError with the given code and message
func New(code ErrorCode, message string) *TaglineError {
	return &TaglineError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TaglineError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TaglineError {
	return &TaglineError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TaglineError
func Wrap(err error, code ErrorCode, message string) *TaglineError {
	if err == nil {
		return nil
	}
	return &TaglineError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TaglineError {
	if err == nil {
		return nil
	}
	return &TaglineError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TaglineError) WithDetail(key string, value interface{}) *TaglineError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tlErr *TaglineError
	if errors.As(err, &tlErr) {
		return tlErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TaglineError
func GetErrorCode(err error) ErrorCode {
	var tlErr *TaglineError
	if errors.As(err, &tlErr) {
		return tlErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TaglineError
func GetErrorDetails(err error) map[string]interface{} {
	var tlErr *TaglineError
	if errors.As(err, &tlErr) {
		return tlErr.Details
	}
	return nil
}
