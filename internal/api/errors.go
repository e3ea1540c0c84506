package api

import (
	"errors"
	"net/http"

	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/service"
	"github.com/wordvault/wordvault-api/internal/service/auth"
	"github.com/wordvault/wordvault-api/internal/service/practice"
	"github.com/wordvault/wordvault-api/internal/service/review"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
//
// review.ErrReviewCooldown is deliberately absent: the cooldown no-op is a
// successful response with its own body, handled in the review handler.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, service.ErrWordNotFound),
		errors.Is(err, review.ErrWordNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, service.ErrTermExists):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrWordTermEmpty),
		errors.Is(err, domain.ErrInvalidReviewOutcome),
		errors.Is(err, review.ErrInvalidOutcome),
		errors.Is(err, review.ErrInvalidPostpone),
		errors.Is(err, practice.ErrInvalidLimit):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"

	case errors.Is(err, service.ErrWordNotFound),
		errors.Is(err, review.ErrWordNotFound):
		return "Word not found"

	case errors.Is(err, service.ErrTermExists):
		return "Term already exists"

	case errors.Is(err, domain.ErrWordTermEmpty):
		return "Term is required"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid word ID"

	case errors.Is(err, domain.ErrInvalidReviewOutcome),
		errors.Is(err, review.ErrInvalidOutcome):
		return "Invalid review outcome"

	case errors.Is(err, review.ErrInvalidPostpone):
		return "Postpone days must be at least 1"

	case errors.Is(err, practice.ErrInvalidLimit):
		return "Invalid practice limit"

	case errors.Is(err, domain.ErrValidation):
		return "Invalid request data"

	default:
		return "An unexpected error occurred"
	}
}
