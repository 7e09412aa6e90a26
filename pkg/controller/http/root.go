package http

import (
	"net/http"

	"github.com/m-mizutani/tempbridge/pkg/domain/types"
)

// handleRoot responds with a service and endpoint summary
func handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"message":     "Temperature Conversion API",
		"description": "REST gateway for the W3Schools SOAP temperature conversion service",
		"version":     types.Version,
		"endpoints": map[string]string{
			"health":                "/health",
			"fahrenheit_to_celsius": "/convert/ftc",
			"celsius_to_fahrenheit": "/convert/ctf",
			"batch_conversion":      "/convert/batch",
		},
	})
}

// handleNotFound responds with a JSON 404 for unmatched routes
func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusNotFound, map[string]string{
		"error": "endpoint not found",
	})
}
