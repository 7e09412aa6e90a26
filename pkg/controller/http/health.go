package http

import (
	"net/http"

	"github.com/m-mizutani/tempbridge/pkg/domain/interfaces"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	convertUC interfaces.ConvertUseCase
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(convertUC interfaces.ConvertUseCase) *HealthHandler {
	return &HealthHandler{
		convertUC: convertUC,
	}
}

// Handle responds with the current health status. The remote service is
// probed on every request and the response is always HTTP 200; an
// unreachable service shows up as soap_service_available=false.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	status := h.convertUC.CheckHealth(r.Context())
	writeJSON(r.Context(), w, http.StatusOK, status)
}
