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

	// Configuration errors: bad template path, bad variable source, bad config file
	ErrConfiguration ErrorCode = "CONFIGURATION"
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"

	// Validation errors
	ErrValidation         ErrorCode = "VALIDATION"
	ErrUnknownEnvironment ErrorCode = "UNKNOWN_ENVIRONMENT"

	// Render errors
	ErrRender ErrorCode = "RENDER"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
)

// ConfgenError represents a structured error with code and details
type ConfgenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ConfgenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ConfgenError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ConfgenError) Is(target error) bool {
	var targetErr *ConfgenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ConfgenError with the given code and message
func New(code ErrorCode, message string) *ConfgenError {
	return &ConfgenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ConfgenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ConfgenError {
	return &ConfgenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ConfgenError
func Wrap(err error, code ErrorCode, message string) *ConfgenError {
	if err == nil {
		return nil
	}
	return &ConfgenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ConfgenError {
	if err == nil {
		return nil
	}
	return &ConfgenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ConfgenError) WithDetail(key string, value interface{}) *ConfgenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ConfgenError) WithDetails(details map[string]interface{}) *ConfgenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var confgenErr *ConfgenError
	if errors.As(err, &confgenErr) {
		return confgenErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ConfgenError
func GetErrorCode(err error) ErrorCode {
	var confgenErr *ConfgenError
	if errors.As(err, &confgenErr) {
		return confgenErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ConfgenError
func GetErrorDetails(err error) map[string]interface{} {
	var confgenErr *ConfgenError
	if errors.As(err, &confgenErr) {
		return confgenErr.Details
	}
	return nil
}

// IsConfiguration reports whether err stems from a bad template path,
// variable source or configuration file.
func IsConfiguration(err error) bool {
	switch GetErrorCode(err) {
	case ErrConfiguration, ErrConfigLoad, ErrConfigParse:
		return true
	}
	return false
}

// IsValidation reports whether err is a missing-variable or unknown
// environment failure.
func IsValidation(err error) bool {
	switch GetErrorCode(err) {
	case ErrValidation, ErrUnknownEnvironment:
		return true
	}
	return false
}

// IsRender reports whether err came from the template engine.
func IsRender(err error) bool {
	return IsErrorCode(err, ErrRender)
}
