// Package apperrors defines the typed errors the HTTP layer translates into
// ErrorResponse bodies.
package apperrors

import (
	"fmt"
	"net/http"
)

// ErrorType is the category reported in the errorType field.
type ErrorType string

const (
	Client  ErrorType = "Client"  // caller sent something wrong
	Service ErrorType = "Service" // a collaborator failed
	Unknown ErrorType = "Unknown" // anything not classified
)

// Error codes
const (
	CodeInvalidParameter   = "INVALID_PARAMETER"
	CodeResourceNotFound   = "RESOURCE_NOT_FOUND"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// ServiceError is an error that knows how it must be shown to the client.
type ServiceError struct {
	Code       string
	Type       ErrorType
	Message    string
	StatusCode int
}

// Error returns the message so logging a ServiceError shows what the client sees.
func (e *ServiceError) Error() string {
	return e.Message
}

// Is reports whether target is a ServiceError with the same code.
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewInvalidParameterError creates a 400 Client error.
func NewInvalidParameterError(format string, args ...any) *ServiceError {
	return &ServiceError{
		Code:       CodeInvalidParameter,
		Type:       Client,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: http.StatusBadRequest,
	}
}

// NewResourceNotFoundError creates a 404 Client error.
func NewResourceNotFoundError(format string, args ...any) *ServiceError {
	return &ServiceError{
		Code:       CodeResourceNotFound,
		Type:       Client,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: http.StatusNotFound,
	}
}

// NewInvalidCredentialsError creates a 401 Client error for failed logins.
func NewInvalidCredentialsError() *ServiceError {
	return &ServiceError{
		Code:       CodeInvalidCredentials,
		Type:       Client,
		Message:    "The username or password is invalid",
		StatusCode: http.StatusUnauthorized,
	}
}

// NewUnauthorizedError creates a 401 Client error for missing or bad tokens.
func NewUnauthorizedError() *ServiceError {
	return &ServiceError{
		Code:       CodeUnauthorized,
		Type:       Client,
		Message:    "Unauthorized",
		StatusCode: http.StatusUnauthorized,
	}
}

// NewInternalError creates the 500 error every unclassified failure is reported as.
// The cause is never exposed to the client.
func NewInternalError() *ServiceError {
	return &ServiceError{
		Code:       CodeInternalError,
		Type:       Unknown,
		Message:    "Internal server error",
		StatusCode: http.StatusInternalServerError,
	}
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidParameter   = &ServiceError{Code: CodeInvalidParameter}
	ErrResourceNotFound   = &ServiceError{Code: CodeResourceNotFound}
	ErrInvalidCredentials = &ServiceError{Code: CodeInvalidCredentials}
)
