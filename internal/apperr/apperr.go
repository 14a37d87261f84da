package apperr

import (
	"errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code string) bool {
	return GetCode(err) == code
}

// Error taxonomy. InvalidInput is detected before submission and never reaches
// the network layer; RequestFailure surfaces a failed view state with retry;
// EmptyResult is a valid response with zero items, not an error.
const (
	CodeInvalidInput   = "INVALID_INPUT"
	CodeRequestFailure = "REQUEST_FAILURE"
	CodeEmptyResult    = "EMPTY_RESULT"
	CodeNotFound       = "NOT_FOUND"
	CodeConfigInvalid  = "CONFIG_INVALID"
	CodeInternal       = "INTERNAL_ERROR"
)

// Common error constructors
func InvalidInput(field, reason string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("invalid %s: %s", field, reason))
}

func RequestFailure(operation string, cause error) *AppError {
	return &AppError{
		Code:    CodeRequestFailure,
		Message: fmt.Sprintf("%s request failed", operation),
		Cause:   cause,
	}
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource))
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// IsInvalidInput reports whether err is a pre-submission form error.
func IsInvalidInput(err error) bool {
	return IsCode(err, CodeInvalidInput)
}

// IsRequestFailure reports whether err is a network/service failure.
func IsRequestFailure(err error) bool {
	return IsCode(err, CodeRequestFailure)
}
