package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/accounts-api/internal/platform/logger"
)

// ErrPanic wraps values recovered from a panicking handler.
var ErrPanic = errors.New("handler panicked")

// ErrorResponder writes an error response for err.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, err error)

// Recoverer converts handler panics into errors passed to respond, so that a
// panic produces the same response shape as any other unhandled error.
// http.ErrAbortHandler is re-raised.
func Recoverer(respond ErrorResponder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity
					panic(rec)
				}

				logger.FromContextOrDefault(r.Context(), slog.Default()).Error("recovered from panic",
					slog.String("panic", fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())))

				respond(w, r, fmt.Errorf("%w: %v", ErrPanic, rec))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
