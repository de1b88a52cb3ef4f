package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/scheduler"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/advertising"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/brandasset"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/socialmedia"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
	"github.com/vfg2006/business-dashboard-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// erros cuja mensagem já é o texto de 404 exibido ao cliente
var notFoundErrors = []error{
	socialmedia.ErrPostNotFound,
	advertising.ErrCampaignNotFound,
	brandasset.ErrAssetNotFound,
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("API: erro ao codificar resposta")
	}
}

// writeError converte o erro do serviço no status HTTP; action completa "Error <action>: <err>"
func writeError(w http.ResponseWriter, r *http.Request, err error, action string) {
	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"path":  r.URL.Path,
		"error": err.Error(),
	})

	if validationErr, ok := domain.AsValidationError(err); ok {
		logger.Warn("API: requisição inválida")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Message, nil)
		return
	}

	if errors.Is(err, brandasset.ErrNoFile) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
		return
	}

	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, target.Error(), nil)
			return
		}
	}

	if errors.Is(err, scheduler.ErrJobNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Job not found", nil)
		return
	}

	if errors.Is(err, scheduler.ErrQueueFull) {
		logger.Warn("API: fila de jobs cheia")
		apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Job queue is full, try again later", nil)
		return
	}

	logger.Error("API: erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fmt.Sprintf("Error %s: %s", action, err.Error()), nil)
}

// logCreated registra o autor do recurso criado; sem usuário no contexto vale o de demonstração
func logCreated(r *http.Request, kind, id string) {
	principal, ok := middleware.UserFromContext(r.Context())
	if !ok {
		principal = domain.DemoPrincipal
	}

	log.ForContext(r.Context()).WithFields(log.Fields{
		"kind":        kind,
		"resource_id": id,
		"user_id":     principal.UserID,
		"user_email":  principal.Email,
	}).Info("API: recurso criado")
}

// decodeBody lê o corpo JSON; corpo malformado vira erro de validação
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("Invalid request body: %s", err.Error())
	}
	return nil
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError("Invalid value for '%s': must be an integer", key)
	}
	return value, nil
}

func queryString(r *http.Request, key, fallback string) string {
	if value := r.URL.Query().Get(key); value != "" {
		return value
	}
	return fallback
}

func optionalQuery(r *http.Request, key string) *string {
	if !r.URL.Query().Has(key) {
		return nil
	}
	value := r.URL.Query().Get(key)
	return &value
}
