package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned to API clients
const (
	CodeInvalidInput          = "INVALID_INPUT"
	CodeValidationError       = "VALIDATION_ERROR"
	CodeNotFound              = "NOT_FOUND"
	CodeConflict              = "CONFLICT"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeNoToken               = "NO_TOKEN"
	CodeInvalidToken          = "INVALID_TOKEN"
	CodeUserExists            = "USER_EXISTS"
	CodeUserNotFound          = "USER_NOT_FOUND"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeLineAccountNotFound   = "LINE_ACCOUNT_NOT_FOUND"
	CodeTrackingCodeNotFound  = "TRACKING_CODE_NOT_FOUND"
	CodeSessionNotFound       = "SESSION_NOT_FOUND"
	CodeInvalidPeriod         = "INVALID_PERIOD"
	CodeInvalidSignature      = "INVALID_SIGNATURE"
	CodeInvalidInvestment     = "INVALID_INVESTMENT_AMOUNT"
	CodeRateLimitExceeded     = "RATE_LIMIT_EXCEEDED"
	CodeInternalError         = "INTERNAL_ERROR"
	CodeEmailServiceError     = "EMAIL_SERVICE_ERROR"
	CodeServiceUnavailable    = "SERVICE_UNAVAILABLE"
	CodeCodeGenerationFailure = "CODE_GENERATION_FAILED"
)

// FieldError describes one invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is an error with an HTTP status and a client-safe message
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    []FieldError
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NotFound creates a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// BadRequest creates a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Unauthorized creates a 401 error
func Unauthorized(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: code, Message: message}
}

// Forbidden creates a 403 error
func Forbidden(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: code, Message: message}
}

// Conflict creates a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// TooManyRequests creates a 429 error
func TooManyRequests(message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: CodeRateLimitExceeded, Message: message}
}

// ServiceUnavailable creates a 503 error that keeps the cause for logging
func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

// InternalError creates a sanitized 500 error - never exposes internal details
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
