package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/automation"
)

func AutomationRules(service *automation.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Rules())
	})
}

func CreateAutomationRule(service *automation.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var draft domain.RuleDraft
		if err := decodeBody(r, &draft); err != nil {
			writeError(w, r, err, "creating automation rule")
			return
		}

		result, err := service.CreateRule(r.Context(), draft)
		if err != nil {
			writeError(w, r, err, "creating automation rule")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func N8NWorkflows(service *automation.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Workflows(r.Context()))
	})
}

func TriggerAutomationRule(service *automation.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ruleID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		result, err := service.Trigger(r.Context(), ruleID)
		if err != nil {
			writeError(w, r, err, "triggering automation")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func ExecutionHistory(service *automation.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", 50)
		if err != nil {
			writeError(w, r, err, "fetching execution history")
			return
		}

		writeJSON(w, http.StatusOK, service.ExecutionHistory(limit))
	})
}

func AutomationMetrics(service *automation.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Metrics())
	})
}
