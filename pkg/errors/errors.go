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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrCanceled      ErrorCode = "CANCELED"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Descriptor errors
	ErrNoPackageDir        ErrorCode = "NO_PACKAGE_DIR"
	ErrMissingDescriptor   ErrorCode = "MISSING_DESCRIPTOR"
	ErrMalformedDescriptor ErrorCode = "MALFORMED_DESCRIPTOR"
	ErrUnknownTarget       ErrorCode = "UNKNOWN_TARGET"
	ErrUnhandledArea       ErrorCode = "UNHANDLED_AREA"
	ErrUnhandledDesignType ErrorCode = "UNHANDLED_DESIGN_TYPE"
	ErrUnhandledWebTarget  ErrorCode = "UNHANDLED_WEB_TARGET"
	ErrMappingConflict     ErrorCode = "MAPPING_CONFLICT"
	ErrUnsafePath          ErrorCode = "UNSAFE_PATH"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// ModmanError represents a structured error with code and details
type ModmanError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ModmanError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ModmanError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ModmanError) Is(target error) bool {
	var targetErr *ModmanError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ModmanError with the given code and message
func New(code ErrorCode, message string) *ModmanError {
	return &ModmanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ModmanError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ModmanError {
	return &ModmanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ModmanError
func Wrap(err error, code ErrorCode, message string) *ModmanError {
	if err == nil {
		return nil
	}
	return &ModmanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ModmanError {
	if err == nil {
		return nil
	}
	return &ModmanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ModmanError) WithDetail(key string, value interface{}) *ModmanError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var modmanErr *ModmanError
	if errors.As(err, &modmanErr) {
		return modmanErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ModmanError
func GetErrorCode(err error) ErrorCode {
	var modmanErr *ModmanError
	if errors.As(err, &modmanErr) {
		return modmanErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ModmanError
func GetErrorDetails(err error) map[string]interface{} {
	var modmanErr *ModmanError
	if errors.As(err, &modmanErr) {
		return modmanErr.Details
	}
	return nil
}
