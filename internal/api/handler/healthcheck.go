package handler

import (
	"net/http"

	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
)

func HealthcheckHandler(app config.App) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "healthy",
			"service": "AI Business System Backend",
			"version": app.Version,
		})
	})
}

func RootHandler(app config.App) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"message":     "AI Business System API",
			"description": "Backend for intelligent business management",
			"docs":        "/docs",
			"health":      "/health",
			"version":     app.Version,
		})
	})
}

// NotFound responde no formato padrão de erro da API
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Not Found", nil)
	})
}
