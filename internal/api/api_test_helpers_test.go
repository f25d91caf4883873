package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/accounts-api/internal/config"
	"github.com/phrazzld/accounts-api/internal/platform/logger"
	"github.com/phrazzld/accounts-api/internal/store"
	"github.com/stretchr/testify/require"
)

// fixedNow is the clock used by handlers under test.
var fixedNow = time.Date(2024, 3, 15, 22, 30, 0, 0, time.UTC)

type testServer struct {
	handler http.Handler
	logs    *logger.TestLogBuffer
}

func newTestServer(t *testing.T, accountStore store.AccountStore) *testServer {
	t.Helper()

	capture := logger.NewLogCaptureContext(t)

	accountHandler := NewAccountHandler(accountStore, capture.Logger)
	accountHandler.now = func() time.Time { return fixedNow }

	router := NewRouter(RouterConfig{
		AccountHandler: accountHandler,
		ServiceHandler: NewServiceHandler(config.ServiceConfig{
			Name:    "Account REST API Service",
			Version: "1.0",
		}),
		Logger: capture.Logger,
	})

	return &testServer{handler: router, logs: capture.Buffer}
}

func (s *testServer) do(t *testing.T, method, path, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *testServer) doJSON(t *testing.T, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return s.do(t, method, path, "application/json", string(body))
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func accountPayload(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":         name,
		"email":        strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		"address":      "123 Elm Street",
		"phone_number": "555-1234",
		"date_joined":  "2023-01-01",
	}
}

func newRequest(method, path string, body io.Reader) *http.Request {
	return httptest.NewRequest(method, path, body)
}

func serve(s *testServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}
