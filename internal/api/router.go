package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/accounts-api/internal/api/middleware"
)

const (
	accountsPath       = "/accounts"
	accountPathPattern = accountsPath + "/{" + accountIDParam + "}"
)

// RouterConfig holds the handlers and logger wired into the router.
type RouterConfig struct {
	AccountHandler *AccountHandler
	ServiceHandler *ServiceHandler
	Logger         *slog.Logger
}

// NewRouter builds the HTTP routing tree with the standard middleware chain.
//
// Every response, including 404 and 405 errors, recovered panics and CORS
// preflights, passes through SecurityHeaders.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.NewTraceMiddleware(cfg.Logger))
	r.Use(middleware.Recoverer(respondWithError))
	r.Use(middleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		HandleAPIError(w, r, ErrRouteNotFound, "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		HandleAPIError(w, r, ErrMethodNotAllowed, "")
	})

	r.Get("/", cfg.ServiceHandler.Index)
	r.Get("/health", cfg.ServiceHandler.Health)

	r.Post(accountsPath, cfg.AccountHandler.CreateAccount)
	r.Get(accountsPath, cfg.AccountHandler.ListAccounts)
	r.Get(accountPathPattern, cfg.AccountHandler.GetAccount)
	r.Put(accountPathPattern, cfg.AccountHandler.UpdateAccount)
	r.Delete(accountPathPattern, cfg.AccountHandler.DeleteAccount)

	return r
}
