package api

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/accounts-api/internal/api/shared"
	"github.com/phrazzld/accounts-api/internal/domain"
	"github.com/phrazzld/accounts-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathID(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		expectedID int64
		wantErr    bool
	}{
		{name: "valid id", value: "42", expectedID: 42},
		{name: "zero", value: "0", expectedID: 0},
		{name: "missing", value: "", wantErr: true},
		{name: "not a number", value: "abc", wantErr: true},
		{name: "overflow", value: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withURLParam(httptest.NewRequest(http.MethodGet, "/accounts/x", nil), "id", tt.value)

			id, err := getPathID(req, "id")

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, store.ErrAccountNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

func TestAccountNotFoundMessage(t *testing.T) {
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/accounts/7", nil), accountIDParam, "7")
	assert.Equal(t, "Account with id [7] could not be found.", accountNotFoundMessage(req))
}

func TestRequireJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/accounts", nil)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	assert.NoError(t, requireJSON(req))

	req.Header.Set("Content-Type", "text/plain")
	assert.ErrorIs(t, requireJSON(req), ErrUnsupportedMediaType)

	req.Header.Del("Content-Type")
	assert.ErrorIs(t, requireJSON(req), ErrUnsupportedMediaType)
}

func TestDecodeDocument(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		wantErr         bool
		expectedMessage string
	}{
		{name: "object", body: `{"name": "John"}`},
		{name: "malformed", body: `{"name": }`, wantErr: true, expectedMessage: "request body must be a JSON object"},
		{name: "array", body: `[]`, wantErr: true, expectedMessage: "request body must be a JSON object"},
		{name: "empty", body: ``, wantErr: true, expectedMessage: "request body is required"},
		{
			name:            "too large",
			body:            `{"name": "` + strings.Repeat("x", int(shared.MaxRequestBodyBytes)) + `"}`,
			wantErr:         true,
			expectedMessage: "request body is too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			doc, err := decodeDocument(w, req)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Equal(t, tt.expectedMessage, GetSafeErrorMessage(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "John", doc["name"])
		})
	}
}

func TestResourceURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/accounts", nil)
	req.Host = "api.example.com"
	assert.Equal(t, "http://api.example.com/accounts/1", resourceURL(req, "/accounts/1"))

	req.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https://api.example.com/accounts/1", resourceURL(req, "/accounts/1"))

	req.TLS = nil
	req.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://api.example.com/accounts/1", resourceURL(req, "/accounts/1"))
}
