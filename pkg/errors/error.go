// Package errors provides coded errors for the signal engine.
//
// Error codes are grouped by the layer that raises them:
//   - General errors (1-99)
//   - Validation errors (100-199): bad parameters, window requests larger than the series
//   - Data errors (200-299): bar loading and query failures
//   - Indicator errors (300-399): arithmetic degeneracy such as zero volume or zero variance
//   - Strategy errors (400-499): lookup, registration and evaluation failures
//   - Configuration errors (500-599)
//
// Usage:
//
//	err := errors.New(errors.ErrCodeDivideByZero, "vwap: total volume is zero")
//	err := errors.Wrapf(errors.ErrCodeStrategyEvaluation, cause, "%s failed", name)
//
//	if errors.HasCode(err, errors.ErrCodeDivideByZero) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with an error code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

// Wrap wraps an existing error with a new Error containing the given code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an existing error with a new Error containing the given code and formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the code of the outermost coded error in err's chain.
// Returns ErrCodeUnknown if the chain holds none.
func GetCode(err error) ErrorCode {
	for ; err != nil; err = errors.Unwrap(err) {
		if code, ok := codeOf(err); ok {
			return code
		}
	}

	return ErrCodeUnknown
}

// HasCode reports whether any coded error in err's chain carries code.
// A strategy failure wraps the indicator failure, so both codes are visible.
func HasCode(err error, code ErrorCode) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if c, ok := codeOf(err); ok && c == code {
			return true
		}
	}

	return false
}

func codeOf(err error) (ErrorCode, bool) {
	switch e := err.(type) {
	case *Error:
		return e.Code, true
	case *InsufficientDataError:
		return e.Code(), true
	default:
		return 0, false
	}
}

// IsDivideByZero reports whether err was caused by a degenerate denominator
// (empty price list, zero total volume or zero standard deviation).
func IsDivideByZero(err error) bool {
	return HasCode(err, ErrCodeDivideByZero)
}

// InsufficientDataError is returned when a window asks for more bars than
// the series holds.
type InsufficientDataError struct {
	Required int    // Minimum bars required
	Actual   int    // Bars available
	Message  string // Human-readable message
}

// NewInsufficientDataError creates a new InsufficientDataError.
func NewInsufficientDataError(required, actual int, message string) *InsufficientDataError {
	return &InsufficientDataError{
		Required: required,
		Actual:   actual,
		Message:  message,
	}
}

// NewInsufficientDataErrorf creates a new InsufficientDataError with a formatted message.
func NewInsufficientDataErrorf(required, actual int, format string, args ...any) *InsufficientDataError {
	return &InsufficientDataError{
		Required: required,
		Actual:   actual,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Code returns ErrCodeInsufficientData.
func (e *InsufficientDataError) Code() ErrorCode {
	return ErrCodeInsufficientData
}

// Error implements the error interface.
func (e *InsufficientDataError) Error() string {
	return e.Message
}

// IsInsufficientDataError checks if an error is an InsufficientDataError.
func IsInsufficientDataError(err error) bool {
	var insufficientErr *InsufficientDataError

	return errors.As(err, &insufficientErr)
}
