package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/calebmaier/taskline-api/internal/api/shared"
	"github.com/calebmaier/taskline-api/internal/domain"
	"github.com/calebmaier/taskline-api/internal/store"
	"github.com/go-playground/validator/v10"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrTitleRequired):
		return http.StatusBadRequest

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors: duplicate logical ID from racing creates
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Default: internal server error (store connectivity, unclassified)
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
	case errors.Is(err, domain.ErrInvalidID):
		return "invalid id"

	case errors.Is(err, domain.ErrTitleRequired):
		return "title required"

	case errors.Is(err, domain.ErrValidation):
		// ValidationError carries a field-level message that is safe to
		// show; it is built from our own field names, never raw input.
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return verr.Error()
		}
		return "invalid request"

	case errors.Is(err, store.ErrTaskNotFound):
		return "task not found"

	case store.IsNotFoundError(err):
		return "not found"

	case store.IsDuplicateError(err):
		return "task already exists"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError translates an internal error into an HTTP error response.
// The full error is logged for operators; the client only receives the safe
// message. An explicit userMessage overrides the derived one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}

// SanitizeValidationError maps a validator.ValidationErrors into a
// user-friendly message naming the offending field and rule, without
// echoing request content back to the caller.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s required", field)
		case "min":
			return fmt.Sprintf("%s must not be empty", field)
		default:
			return fmt.Sprintf("invalid %s", field)
		}
	}
	return "Validation error"
}
