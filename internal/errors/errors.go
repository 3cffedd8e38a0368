package errors

import (
	"fmt"
)

// CheckError is the structured error type for envcheck probes.
// Every probe failure is converted into one of these at the probe boundary;
// it never escapes a check to abort the run.
type CheckError struct {
	// Code is the unique error code (e.g., "ERR_201_RESOURCE_MISSING").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, Resource, Version, ...).
	Category Category

	// Cause is the underlying error that caused this error.
	Cause error
}

// Error implements the error interface.
func (e *CheckError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *CheckError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with CheckError.
func (e *CheckError) Is(target error) bool {
	if t, ok := target.(*CheckError); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new CheckError with the given code and message.
// Category is derived from the code.
func New(code string, message string, cause error) *CheckError {
	return &CheckError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a CheckError from an existing error.
// The error's message becomes the CheckError message.
func Wrap(code string, err error) *CheckError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ResourceMissing creates an error for an absent binary, file, or directory.
func ResourceMissing(message string, cause error) *CheckError {
	return New(ErrCodeResourceMissing, message, cause)
}

// PermissionDenied creates an error for an unwritable location.
func PermissionDenied(message string, cause error) *CheckError {
	return New(ErrCodePermissionDenied, message, cause)
}

// Timeout creates an error for a probe subprocess that exceeded its deadline.
func Timeout(message string, cause error) *CheckError {
	return New(ErrCodeSubprocessTimeout, message, cause)
}

// GetCode extracts the error code from a CheckError.
// Returns empty string if not a CheckError.
func GetCode(err error) string {
	if ce, ok := err.(*CheckError); ok {
		return ce.Code
	}
	return ""
}

// GetCategory extracts the category from a CheckError.
// Returns empty string if not a CheckError.
func GetCategory(err error) Category {
	if ce, ok := err.(*CheckError); ok {
		return ce.Category
	}
	return ""
}

// IsTimeout reports whether err is a subprocess timeout.
func IsTimeout(err error) bool {
	return GetCode(err) == ErrCodeSubprocessTimeout
}
