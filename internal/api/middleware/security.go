package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// Security header values sent with every response.
const (
	FrameOptions          = "SAMEORIGIN"
	ContentTypeOptions    = "nosniff"
	ContentSecurityPolicy = "default-src 'self'; object-src 'none'"
	ReferrerPolicy        = "strict-origin-when-cross-origin"
	AllowOriginAll        = "*"
)

// SecurityHeaders sets the browser hardening headers and a permissive
// Access-Control-Allow-Origin on every response, errors included. Headers are
// written before the next handler runs so they survive early error returns.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Frame-Options", FrameOptions)
		h.Set("X-Content-Type-Options", ContentTypeOptions)
		h.Set("Content-Security-Policy", ContentSecurityPolicy)
		h.Set("Referrer-Policy", ReferrerPolicy)
		h.Set("Access-Control-Allow-Origin", AllowOriginAll)

		next.ServeHTTP(w, r)
	})
}

// CORS answers preflight requests for the account API from any origin.
func CORS() func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{AllowOriginAll},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Location", TraceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})
	return c.Handler
}
