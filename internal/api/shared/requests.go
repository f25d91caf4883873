package shared

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
)

// MaxRequestBodyBytes caps the size of request bodies read by DecodeJSON.
const MaxRequestBodyBytes int64 = 1 << 20

// Errors returned by DecodeJSON besides json and body-size errors.
var (
	ErrEmptyBody    = errors.New("request body is empty")
	ErrTrailingData = errors.New("request body must contain a single JSON value")
)

// DecodeJSON decodes the request body into v. The body is limited to
// MaxRequestBodyBytes and must hold exactly one JSON value; anything but
// whitespace after it is rejected with ErrTrailingData.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	body := http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}

	err := dec.Decode(&struct{}{})
	if errors.Is(err, io.EOF) {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return err
	}
	return ErrTrailingData
}

// HasContentType reports whether the request's Content-Type header names the
// given media type. Parameters such as charset are ignored.
func HasContentType(r *http.Request, mediaType string) bool {
	header := r.Header.Get("Content-Type")
	if header == "" {
		return false
	}

	parsed, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}

	return strings.EqualFold(parsed, mediaType)
}
