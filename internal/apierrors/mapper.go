package apierrors

import (
	"errors"
	"strings"

	aiProcessor "ltrack-server/internal/ai/processor"
	authProcessor "ltrack-server/internal/auth/processor"
	lineProcessor "ltrack-server/internal/line/processor"
	"ltrack-server/internal/store"
	trackingProcessor "ltrack-server/internal/tracking/processor"
	webhookProcessor "ltrack-server/internal/webhooks/processor"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Auth
	case errors.Is(err, authProcessor.ErrEmailAlreadyExists):
		return Conflict(CodeUserExists, "User already exists with this email")

	case errors.Is(err, authProcessor.ErrInvalidCredentials):
		return Unauthorized(CodeInvalidCredentials, "Invalid email or password")

	case errors.Is(err, authProcessor.ErrUserNotFound):
		return Unauthorized(CodeUserNotFound, "User not found")

	case errors.Is(err, authProcessor.ErrExpiredToken),
		errors.Is(err, authProcessor.ErrInvalidJWTToken),
		errors.Is(err, authProcessor.ErrParseJWTToken):
		return Forbidden(CodeInvalidToken, "Invalid or expired token")

	// LINE accounts
	case errors.Is(err, lineProcessor.ErrLineAccountNotFound):
		return NotFound(CodeLineAccountNotFound, "LINE account not found")

	case errors.Is(err, lineProcessor.ErrInvalidPeriod):
		return BadRequest(CodeInvalidPeriod, "period must be one of: 1h, 24h, 7d, 30d")

	// Tracking
	case errors.Is(err, trackingProcessor.ErrTrackingCodeNotFound):
		return NotFound(CodeTrackingCodeNotFound, "Tracking code not found")

	case errors.Is(err, trackingProcessor.ErrLineAccountNotFound):
		return NotFound(CodeLineAccountNotFound, "LINE account not found")

	case errors.Is(err, trackingProcessor.ErrSessionNotFound):
		return NotFound(CodeSessionNotFound, "Session not found or expired")

	case errors.Is(err, trackingProcessor.ErrInvalidPeriod):
		return BadRequest(CodeInvalidPeriod, "period must be one of: 24h, 7d, 30d")

	case errors.Is(err, trackingProcessor.ErrCodeGenerationFailed):
		return &APIError{
			StatusCode: InternalError(err).StatusCode,
			Code:       CodeCodeGenerationFailure,
			Message:    "Could not allocate a unique tracking code. Please try again.",
			Err:        err,
		}

	// Webhooks
	case errors.Is(err, webhookProcessor.ErrLineAccountNotFound):
		return NotFound(CodeLineAccountNotFound, "LINE account not found")

	case errors.Is(err, webhookProcessor.ErrMissingSignature):
		return BadRequest(CodeInvalidSignature, "Missing LINE signature")

	case errors.Is(err, webhookProcessor.ErrInvalidSignature):
		return BadRequest(CodeInvalidSignature, "Invalid signature")

	case errors.Is(err, webhookProcessor.ErrInvalidPayload):
		return BadRequest(CodeInvalidInput, "Invalid webhook payload")

	// AI
	case errors.Is(err, aiProcessor.ErrInvalidInvestmentAmount):
		return BadRequest(CodeInvalidInvestment, "investmentAmount must be a positive number")

	// Store
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	case errors.Is(err, store.ErrConflict):
		return Conflict(CodeConflict, "Resource already exists")

	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError attempts to identify external service errors
// and map them to appropriate service-specific error responses.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service") {
		return ServiceUnavailable(
			CodeEmailServiceError,
			"Email service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	return InternalError(err)
}
