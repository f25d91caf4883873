package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/accounts-api/internal/api/shared"
	"github.com/phrazzld/accounts-api/internal/domain"
	"github.com/phrazzld/accounts-api/internal/store"
)

// HTTP-level errors raised by the router and handlers.
var (
	// ErrUnsupportedMediaType is returned when a request body is not JSON.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrMethodNotAllowed is returned when a route exists but not for the request method.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrRouteNotFound is returned when no route matches the request path.
	ErrRouteNotFound = errors.New("route not found")
)

// Safe messages returned to clients.
const (
	msgUnexpected       = "An unexpected error occurred"
	msgInvalidRequest   = "Invalid request"
	msgInvalidAccount   = "Invalid account data"
	msgAccountNotFound  = "Account not found"
	msgResourceNotFound = "Resource not found"
	msgRouteNotFound    = "The requested URL was not found on the server."
	msgMethodNotAllowed = "The method is not allowed for the requested URL."
	msgUnsupportedMedia = "Content-Type must be application/json"
	jsonMediaType       = "application/json"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, ErrRouteNotFound):
		return http.StatusNotFound

	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed

	case errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	var validationErr *domain.ValidationError

	switch {
	// Validation errors carry a message written for clients
	case errors.As(err, &validationErr):
		return validationErr.Error()

	case errors.Is(err, domain.ErrValidation):
		return msgInvalidRequest

	case errors.Is(err, store.ErrInvalidEntity):
		return msgInvalidAccount

	case errors.Is(err, store.ErrAccountNotFound):
		return msgAccountNotFound

	case errors.Is(err, store.ErrNotFound):
		return msgResourceNotFound

	case errors.Is(err, ErrRouteNotFound):
		return msgRouteNotFound

	case errors.Is(err, ErrMethodNotAllowed):
		return msgMethodNotAllowed

	case errors.Is(err, ErrUnsupportedMediaType):
		return msgUnsupportedMedia

	default:
		return msgUnexpected
	}
}

// HandleAPIError writes the JSON error response for err and logs it: WARN for
// client errors, ERROR for everything that maps to 500. message overrides the
// safe default message when non-empty. It is the only place that chooses an
// error status.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)

	if message == "" || status == http.StatusInternalServerError {
		message = GetSafeErrorMessage(err)
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// respondWithError adapts HandleAPIError to middleware.ErrorResponder.
func respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	HandleAPIError(w, r, err, "")
}
