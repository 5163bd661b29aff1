package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/taskpost-api/internal/api/shared"
	"github.com/phrazzld/taskpost-api/internal/domain"
	"github.com/phrazzld/taskpost-api/internal/service/auth"
	"github.com/phrazzld/taskpost-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Validation errors, including a taken email
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrEmailExists):
		return http.StatusUnprocessableEntity

	// Undecodable bodies
	case errors.Is(err, shared.ErrInvalidBody),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Authentication errors
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrRevokedToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

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
	case errors.Is(err, store.ErrEmailExists):
		return domain.MsgTaken("email")

	case errors.Is(err, domain.ErrValidation):
		return "The given data was invalid."

	case errors.Is(err, shared.ErrInvalidBody):
		return "Invalid request body"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	// Authentication errors
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrRevokedToken):
		return "Token revoked"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return "Unauthenticated."

	// Not found errors
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrPostNotFound):
		return "Post not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case store.IsNotFoundError(err):
		return "Resource not found"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for err. Validation errors keep their
// field detail; everything else gets a status code and a safe message, with
// the full error logged in redacted form. A non-empty message replaces the
// safe message for client errors only.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		shared.RespondWithValidationErrors(w, r, verr)
		return
	}

	status := MapErrorToStatusCode(err)
	if message == "" || status >= http.StatusInternalServerError {
		message = GetSafeErrorMessage(err)
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
