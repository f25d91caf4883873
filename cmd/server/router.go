package main

import (
	"net/http"

	"github.com/phrazzld/accounts-api/internal/api"
)

// setupRouter creates the HTTP handler tree from the application dependencies.
func (app *application) setupRouter() http.Handler {
	return api.NewRouter(api.RouterConfig{
		AccountHandler: api.NewAccountHandler(app.accountStore, app.logger),
		ServiceHandler: api.NewServiceHandler(app.config.Service),
		Logger:         app.logger,
	})
}
