package errors

import (
	"fmt"
	"net/http"
	"time"
)

// Violation describes a single invalid field in a request payload
type Violation struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// AppError is the application error type surfaced at the HTTP boundary
type AppError struct {
	Raw        error
	HTTPCode   int
	Code       ErrorCode
	Message    string
	Violations []Violation
	Timestamp  time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_INTERNAL,
		Message:   "Internal server error",
		Timestamp: time.Now(),
	}
}

// ErrHTTP wraps a client error raised by the router or a framework middleware
func ErrHTTP(status int, message string) AppError {
	code := ErrorCode_INVALID_ARGUMENT
	switch status {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		code = ErrorCode_NOT_FOUND
	case http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		code = ErrorCode_INVALID_PAYLOAD
	}
	return AppError{
		HTTPCode:  status,
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Validation Errors
func ErrValidation(err error, violations ...Violation) AppError {
	return AppError{
		Raw:        err,
		HTTPCode:   http.StatusBadRequest,
		Code:       ErrorCode_VALIDATION_FAILED,
		Message:    "Validation error",
		Violations: violations,
		Timestamp:  time.Now(),
	}
}

// Authentication Errors
func ErrMissingToken() AppError {
	return AppError{
		HTTPCode:  http.StatusUnauthorized,
		Code:      ErrorCode_AUTH_MISSING_TOKEN,
		Message:   "Missing or invalid authorization header",
		Timestamp: time.Now(),
	}
}

func ErrInvalidToken(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusUnauthorized,
		Code:      ErrorCode_AUTH_INVALID_TOKEN,
		Message:   "Invalid authentication token",
		Timestamp: time.Now(),
	}
}

func ErrNotAllowed() AppError {
	return AppError{
		HTTPCode:  http.StatusForbidden,
		Code:      ErrorCode_AUTH_NOT_ALLOWED,
		Message:   "User not authorized",
		Timestamp: time.Now(),
	}
}

// AI Errors
func ErrGenerationFailed(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_AI_GENERATION_FAILED,
		Message:   "Failed to generate MOM",
		Timestamp: time.Now(),
	}
}
