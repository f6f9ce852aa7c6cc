// Package errors provides structured error types and error handling utilities.
package errors

import (
	"errors"
	"fmt"
)

// Wrap creates a new error by wrapping an existing error with additional context.
// This uses fmt.Errorf with %w verb for proper error chain support.
func Wrap(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// New creates a new error using fmt.Errorf.
func New(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Join wraps multiple errors into a single error.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Sentinel errors. Every constructor below wraps one of these so callers can
// branch with Is regardless of the message.
var (
	ErrValidation    = errors.New("validation error")
	ErrSecurity      = errors.New("security error")
	ErrPermission    = errors.New("permission error")
	ErrConfiguration = errors.New("configuration error")
	ErrExecution     = errors.New("execution error")
	ErrTimeout       = errors.New("timeout error")
	ErrNotFound      = errors.New("not found error")
)

func Validation(message string) error {
	return fmt.Errorf("VALIDATION_ERROR: %s: %w", message, ErrValidation)
}

func ValidationWithDetails(message, details string) error {
	return fmt.Errorf("VALIDATION_ERROR: %s (%s): %w", message, details, ErrValidation)
}

func Security(message string) error {
	return fmt.Errorf("SECURITY_ERROR: %s: %w", message, ErrSecurity)
}

func SecurityWithDetails(message, details string) error {
	return fmt.Errorf("SECURITY_ERROR: %s (%s): %w", message, details, ErrSecurity)
}

// Permission reports an OS permission failure, keeping cause in the chain.
func Permission(message string, cause error) error {
	return Join(fmt.Errorf("PERMISSION_ERROR: %s: %w", message, ErrPermission), cause)
}

func Configuration(message string) error {
	return fmt.Errorf("CONFIGURATION_ERROR: %s: %w", message, ErrConfiguration)
}

func ConfigurationWithCause(message string, cause error) error {
	return Join(fmt.Errorf("CONFIGURATION_ERROR: %s: %w", message, ErrConfiguration), cause)
}

func ExecutionWithCause(message string, cause error) error {
	return Join(fmt.Errorf("EXECUTION_ERROR: %s: %w", message, ErrExecution), cause)
}

func Timeout(message string) error {
	return fmt.Errorf("TIMEOUT_ERROR: %s: %w", message, ErrTimeout)
}

func NotFound(message string) error {
	return fmt.Errorf("NOT_FOUND_ERROR: %s: %w", message, ErrNotFound)
}
