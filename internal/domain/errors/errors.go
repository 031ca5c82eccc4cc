// Package errors defines the application error taxonomy shared by the
// use case and delivery layers.
package errors

import (
	"net/http"

	"gestcondo/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
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
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrAdminNotFound = NewBaseError(
		http.StatusNotFound,
		"ADMIN_NOT_FOUND",
		"administrator not found",
		"",
	)

	ErrAdminAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ADMIN_ALREADY_EXISTS",
		"an administrator with this username already exists",
		"",
	)

	ErrMainAdminProtected = NewBaseError(
		http.StatusForbidden,
		"MAIN_ADMIN_PROTECTED",
		"the main administrator account cannot be deleted",
		"",
	)

	ErrResidentNotFound = NewBaseError(
		http.StatusNotFound,
		"RESIDENT_NOT_FOUND",
		"resident not found",
		"",
	)

	ErrResidentAlreadyExists = NewBaseError(
		http.StatusConflict,
		"RESIDENT_ALREADY_EXISTS",
		"a resident with this email already exists",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid username or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	// Condominium-related errors
	ErrCondominiumNotFound = NewBaseError(
		http.StatusNotFound,
		"CONDOMINIUM_NOT_FOUND",
		"condominium not found",
		"",
	)

	ErrCondominiumAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CONDOMINIUM_ALREADY_EXISTS",
		"a condominium with this name already exists",
		"",
	)

	ErrMembershipAlreadyExists = NewBaseError(
		http.StatusConflict,
		"MEMBERSHIP_ALREADY_EXISTS",
		"the resident already belongs to this condominium",
		"",
	)

	// Occurrence-related errors
	ErrOccurrenceNotFound = NewBaseError(
		http.StatusNotFound,
		"OCCURRENCE_NOT_FOUND",
		"occurrence not found",
		"",
	)

	ErrOccurrenceInvalidState = NewBaseError(
		http.StatusConflict,
		"OCCURRENCE_INVALID_STATE",
		"the occurrence is not in a state that allows this transition",
		"",
	)

	// Assembly-related errors
	ErrAssemblyNotFound = NewBaseError(
		http.StatusNotFound,
		"ASSEMBLY_NOT_FOUND",
		"assembly not found",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"notification not found",
		"",
	)

	ErrNoEligibleTargets = NewBaseError(
		http.StatusUnprocessableEntity,
		"NO_ELIGIBLE_TARGETS",
		"none of the requested condominiums are within your access scope",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

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

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
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

// Unwrap exposes the wrapped store error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
