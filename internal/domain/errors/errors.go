package errors

import (
	"fmt"

	"restaurant/internal/errors"
)

// Kind classifies a failure so callers can report it without inspecting store errors.
type Kind string

const (
	KindConnection          Kind = "CONNECTION"
	KindConstraintViolation Kind = "CONSTRAINT_VIOLATION"
	KindInsufficientStock   Kind = "INSUFFICIENT_STOCK"
	KindInvalidTransition   Kind = "INVALID_TRANSITION"
	KindNotFound            Kind = "NOT_FOUND"
	KindValidation          Kind = "VALIDATION"
	KindTimeout             Kind = "TIMEOUT"
	KindInternal            Kind = "INTERNAL"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure category
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches another BaseError with the same error code. A target without details
// matches every value derived from it with WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode && (t.details == "" || t.details == e.details)
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the failure category
func (e *BaseError) Kind() Kind {
	return e.kind
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrConnection = NewBaseError(
		KindConnection,
		"STORE_UNAVAILABLE",
		"store is unreachable",
		"",
	)

	ErrConstraintViolation = NewBaseError(
		KindConstraintViolation,
		"CONSTRAINT_VIOLATION",
		"store constraint violated",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrValidationFailed = NewBaseError(
		KindValidation,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrTimeout = NewBaseError(
		KindTimeout,
		"TIMEOUT",
		"operation cancelled or timed out",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		KindInternal,
		"TRANSACTION_FAILED",
		"store transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// InsufficientStockError reports the first ingredient that cannot cover an order.
type InsufficientStockError struct {
	IngredientID int64
	Name         string
	Unit         string
	Required     float64
	Available    float64
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for ingredient %q (id %d): requires %g %s, have %g %s",
		e.Name, e.IngredientID, e.Required, e.Unit, e.Available, e.Unit)
}

// Kind returns the failure category
func (e *InsufficientStockError) Kind() Kind { return KindInsufficientStock }

// ErrorCode returns the business error code
func (e *InsufficientStockError) ErrorCode() string { return "INSUFFICIENT_STOCK" }

// Message returns the user-friendly error message
func (e *InsufficientStockError) Message() string { return "not enough ingredient stock" }

// Details returns detailed error information
func (e *InsufficientStockError) Details() string { return e.Error() }

// InvalidTransitionError is returned when an order status change is not allowed.
type InvalidTransitionError struct {
	From string
	To   string
}

// Error implements the error interface
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

// Kind returns the failure category
func (e *InvalidTransitionError) Kind() Kind { return KindInvalidTransition }

// ErrorCode returns the business error code
func (e *InvalidTransitionError) ErrorCode() string { return "INVALID_TRANSITION" }

// Message returns the user-friendly error message
func (e *InvalidTransitionError) Message() string { return "order status change not allowed" }

// Details returns detailed error information
func (e *InvalidTransitionError) Details() string { return e.Error() }

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the store error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the failure category
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}
