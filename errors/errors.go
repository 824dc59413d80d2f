package errors

import (
	"fmt"
)

// AppError is the unified application error type. Every AppError stands for
// a generic failure condition, see Status.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	return e.WithDetails(map[string]any{key: value})
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// newCode builds an AppError whose HTTP status and retryability come from
// the code table.
func newCode(code ErrorCode, message string, details map[string]any) *AppError {
	e := New(code, message, HTTPStatusFor(code))
	if len(details) > 0 {
		e.Details = details
	}
	return e
}

// --- Common Error Constructors ---

// ServiceUnavailable creates a new AppError for a service that is temporarily unavailable.
func ServiceUnavailable(service string) *AppError {
	return newCode(ErrCodeServiceUnavailable,
		fmt.Sprintf("The %s is temporarily unavailable. Please try again.", service),
		map[string]any{"service": service})
}

// ConnectionFailed creates a new AppError for a failed connection to a service.
func ConnectionFailed(service string) *AppError {
	return newCode(ErrCodeConnectionFailed,
		fmt.Sprintf("Unable to connect to %s. Please verify the service is running.", service),
		map[string]any{"service": service})
}

// Timeout creates a new AppError for a request that timed out.
func Timeout(operation string) *AppError {
	return newCode(ErrCodeTimeout, "The request took too long. Please try again.",
		map[string]any{"operation": operation})
}

// RateLimited creates a new AppError for too many requests.
func RateLimited() *AppError {
	return newCode(ErrCodeRateLimited, "Too many requests. Please wait a moment and try again.", nil)
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return newCode(ErrCodeNotFound, fmt.Sprintf("The requested %s was not found.", resource), details)
}

// FormatResourceError is NotFound for an id of any printable type.
func FormatResourceError(resource string, id any) *AppError {
	return NotFound(resource, fmt.Sprint(id))
}

// AlreadyExists creates a new AppError for a resource that already exists.
func AlreadyExists(resource string) *AppError {
	return newCode(ErrCodeAlreadyExists, fmt.Sprintf("A %s with these details already exists.", resource),
		map[string]any{"resource": resource})
}

// Conflict creates a new AppError for a conflict with the current state of the resource.
func Conflict(reason string) *AppError {
	return newCode(ErrCodeConflict, reason, nil)
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	e := newCode(ErrCodeInvalidInput, fmt.Sprintf("Invalid input: %s", reason), nil)
	e.Details = make(map[string]any)
	if field != "" {
		e.Details["field"] = field
	}
	return e
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return newCode(ErrCodeInvalidInput, message, nil)
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return newCode(ErrCodeMissingField, fmt.Sprintf("Missing required field: %s", field),
		map[string]any{"field": field})
}

// InvalidFormat creates a new AppError for an invalid field format.
func InvalidFormat(field, expectedFormat string) *AppError {
	return newCode(ErrCodeInvalidFormat, fmt.Sprintf("Invalid format for %s. Expected: %s", field, expectedFormat),
		map[string]any{"field": field, "expected_format": expectedFormat})
}

// Unauthorized creates a new AppError for unauthorized access.
func Unauthorized(reason string) *AppError {
	if reason == "" {
		reason = "Authentication required."
	}
	return newCode(ErrCodeUnauthorized, reason, nil)
}

// Forbidden creates a new AppError for forbidden access.
func Forbidden(reason string) *AppError {
	if reason == "" {
		reason = "You don't have permission to perform this action."
	}
	return newCode(ErrCodeForbidden, reason, nil)
}

// Internal creates a new AppError for an internal server error.
func Internal(cause error) *AppError {
	return newCode(ErrCodeInternal, "An unexpected error occurred. Please try again or contact support.", nil).
		WithCause(cause)
}

// IOFailure creates a new AppError for a failed read or write.
func IOFailure(cause error) *AppError {
	return newCode(ErrCodeIO, "An input/output error occurred. Please try again.", nil).
		WithCause(cause)
}

// ProtocolFailure creates a new AppError for a peer that answered outside
// the expected protocol.
func ProtocolFailure(peer string, cause error) *AppError {
	return newCode(ErrCodeProtocol,
		fmt.Sprintf("%s answered with an unexpected protocol.", peer),
		map[string]any{"peer": peer}).
		WithCause(cause)
}
