package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/accounts-api/internal/api/shared"
	"github.com/phrazzld/accounts-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	capture := logger.NewLogCaptureContext(t)

	var gotTraceID string
	handler := NewTraceMiddleware(capture.Logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.NotEmpty(t, gotTraceID)
	assert.Equal(t, gotTraceID, w.Header().Get(TraceIDHeader))

	entries, err := capture.Buffer.GetLogEntries()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, entry := range entries {
		assert.Equal(t, gotTraceID, entry["trace_id"], "every request log entry carries the trace ID")
	}

	logger.AssertLogLevel(t, capture.Buffer, "request completed", "INFO")
	last := entries[len(entries)-1]
	assert.Equal(t, float64(http.StatusTeapot), last["status"])
}

func TestTraceMiddlewareReusesRequestID(t *testing.T) {
	capture := logger.NewLogCaptureContext(t)

	var gotTraceID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = shared.GetTraceID(r.Context())
	})
	handler := chimiddleware.RequestID(NewTraceMiddleware(capture.Logger)(inner))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "upstream-id")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "upstream-id", gotTraceID)
	assert.Equal(t, "upstream-id", w.Header().Get(TraceIDHeader))
}
