package api

import (
	"net/http"

	"github.com/phrazzld/accounts-api/internal/api/shared"
	"github.com/phrazzld/accounts-api/internal/config"
)

// IndexResponse describes the service at the root URL.
type IndexResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Paths   string `json:"paths"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// ServiceHandler serves the root and health endpoints.
type ServiceHandler struct {
	info config.ServiceConfig
}

// NewServiceHandler creates a new ServiceHandler
func NewServiceHandler(info config.ServiceConfig) *ServiceHandler {
	return &ServiceHandler{info: info}
}

// Index handles GET / requests.
func (h *ServiceHandler) Index(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, IndexResponse{
		Name:    h.info.Name,
		Version: h.info.Version,
		Paths:   accountsPath,
	})
}

// Health handles GET /health requests. It does not touch the database.
func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "OK"})
}
