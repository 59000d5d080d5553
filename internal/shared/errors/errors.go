// Package errors provides application-level error types and utilities.
// Every error surfaced to API callers is an AppError carrying its HTTP status.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation           ErrorType = "validation_error"
	ErrorTypeNotFound             ErrorType = "not_found"
	ErrorTypeConflict             ErrorType = "conflict"
	ErrorTypeUnsupportedMediaType ErrorType = "unsupported_media_type"
	ErrorTypePayloadTooLarge      ErrorType = "payload_too_large"
	ErrorTypeStorage              ErrorType = "storage_error"
	ErrorTypeInternal             ErrorType = "internal_error"
	ErrorTypeBadRequest           ErrorType = "bad_request"
	ErrorTypeTooManyRequests      ErrorType = "too_many_requests"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewUnsupportedMediaTypeError is returned when an upload's declared content type
// is not allow-listed. Reported as 400 to match the upload contract.
func NewUnsupportedMediaTypeError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnsupportedMediaType, http.StatusBadRequest, message, details)
}

// NewPayloadTooLargeError is returned when an upload exceeds the size cap.
func NewPayloadTooLargeError(message string, details ...string) *AppError {
	return newAppError(ErrorTypePayloadTooLarge, http.StatusBadRequest, message, details)
}

// NewStorageError wraps filesystem or store I/O failures.
func NewStorageError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeStorage, http.StatusInternalServerError, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// NewTooManyRequestsError creates a new rate limit error
func NewTooManyRequestsError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeTooManyRequests, http.StatusTooManyRequests, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsUnsupportedMediaTypeError checks if the error is an unsupported media type error
func IsUnsupportedMediaTypeError(err error) bool {
	return isType(err, ErrorTypeUnsupportedMediaType)
}

// IsPayloadTooLargeError checks if the error is a payload too large error
func IsPayloadTooLargeError(err error) bool {
	return isType(err, ErrorTypePayloadTooLarge)
}

// IsStorageError checks if the error is a storage error
func IsStorageError(err error) bool {
	return isType(err, ErrorTypeStorage)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// PostgreSQL unique violation
	if strings.Contains(errStr, "unique constraint") || strings.Contains(errStr, "violates unique constraint") {
		return true
	}
	// SQLite unique violation
	return strings.Contains(errStr, "UNIQUE constraint failed")
}
