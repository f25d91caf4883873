package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/accounts-api/internal/api/shared"
	"github.com/phrazzld/accounts-api/internal/domain"
	"github.com/phrazzld/accounts-api/internal/store"
)

// accountIDParam is the chi path parameter holding an account ID.
const accountIDParam = "id"

// getPathID extracts an account ID from the URL path. Only decimal integers
// can name an account, so anything else is reported as a missing account.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not an integer", store.ErrAccountNotFound, raw)
	}

	return id, nil
}

// accountNotFoundMessage is the client message for a missing account.
func accountNotFoundMessage(r *http.Request) string {
	return fmt.Sprintf("Account with id [%s] could not be found.", chi.URLParam(r, accountIDParam))
}

// requireJSON fails with ErrUnsupportedMediaType unless the request declares
// an application/json body.
func requireJSON(r *http.Request) error {
	if shared.HasContentType(r, jsonMediaType) {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedMediaType, r.Header.Get("Content-Type"))
}

// decodeDocument reads the request body as a JSON object. Malformed,
// empty and oversized bodies are reported as validation errors.
func decodeDocument(w http.ResponseWriter, r *http.Request) (domain.Document, error) {
	var doc domain.Document
	if err := shared.DecodeJSON(w, r, &doc); err != nil {
		message := "request body must be a JSON object"

		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			message = "request body is too large"
		case errors.Is(err, shared.ErrEmptyBody):
			message = "request body is required"
		}

		return nil, fmt.Errorf("%w: %v", domain.NewValidationError("", message, domain.ErrInvalidFormat), err)
	}

	return doc, nil
}

// resourceURL builds an absolute URL for path on the host that served r.
func resourceURL(r *http.Request, path string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}

	return scheme + "://" + r.Host + path
}
