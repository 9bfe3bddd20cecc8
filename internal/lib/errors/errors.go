package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"

	// Server errors (5xx)
	ErrCodeUpstreamError  ErrorCode = "UPSTREAM_ERROR"
	ErrCodeInternalError  ErrorCode = "INTERNAL_ERROR"
	ErrCodeServiceUnavail ErrorCode = "SERVICE_UNAVAILABLE"
)

// APIError represents a structured API error with code, message, and optional details
type APIError struct {
	Code       ErrorCode         `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	HTTPStatus int               `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %s (details: %v)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithDetail adds a single detail to the error
func (e *APIError) WithDetail(key, value string) *APIError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// NewValidationError creates a validation error
func NewValidationError(message string) *APIError {
	return &APIError{
		Code:       ErrCodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Code:       ErrCodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Code:       ErrCodeBadRequest,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewUpstreamError creates an error for a failed remote RPC call
func NewUpstreamError(operation string) *APIError {
	return &APIError{
		Code:    ErrCodeUpstreamError,
		Message: "Odoo request failed",
		Details: map[string]string{
			"operation": operation,
		},
		HTTPStatus: http.StatusBadGateway,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	if message == "" {
		message = "An internal error occurred"
	}
	return &APIError{
		Code:       ErrCodeInternalError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewServiceUnavailableError creates a service unavailable error
func NewServiceUnavailableError(service string) *APIError {
	return &APIError{
		Code:    ErrCodeServiceUnavail,
		Message: "Service temporarily unavailable",
		Details: map[string]string{
			"service": service,
		},
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

// WrapError wraps a standard error into an APIError
// If the error is already an APIError, it returns it as-is
func WrapError(err error, message string) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return NewInternalError(message).WithDetail("original_error", err.Error())
}
