package handler

import (
	"net/http"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/cashflow"
)

func ListCashFlowEntries(service *cashflow.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days, err := queryInt(r, "days", 30)
		if err != nil {
			writeError(w, r, err, "fetching cash flow entries")
			return
		}
		limit, err := queryInt(r, "limit", 100)
		if err != nil {
			writeError(w, r, err, "fetching cash flow entries")
			return
		}

		result, err := service.Entries(r.Context(), cashflow.EntryQuery{
			Days:     days,
			Type:     optionalQuery(r, "transaction_type"),
			Category: optionalQuery(r, "category"),
			Limit:    limit,
		})
		if err != nil {
			writeError(w, r, err, "fetching cash flow entries")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func CreateCashFlowEntry(service *cashflow.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var draft domain.CashFlowDraft
		if err := decodeBody(r, &draft); err != nil {
			writeError(w, r, err, "creating cash flow entry")
			return
		}

		entry, err := service.CreateEntry(r.Context(), draft)
		if err != nil {
			writeError(w, r, err, "creating cash flow entry")
			return
		}
		logCreated(r, "cash_flow_entry", entry.ID)

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cash flow entry created successfully",
			"entry":   entry,
		})
	})
}

func CashFlowSummary(service *cashflow.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days, err := queryInt(r, "days", 30)
		if err != nil {
			writeError(w, r, err, "generating cash flow summary")
			return
		}

		writeJSON(w, http.StatusOK, service.Summary(r.Context(), days))
	})
}

func CashFlowCategories() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, cashflow.Categories())
	})
}

func CashFlowForecast(service *cashflow.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		months, err := queryInt(r, "months", 6)
		if err != nil {
			writeError(w, r, err, "generating cash flow forecast")
			return
		}

		forecast, err := service.Forecast(r.Context(), months)
		if err != nil {
			writeError(w, r, err, "generating cash flow forecast")
			return
		}

		writeJSON(w, http.StatusOK, forecast)
	})
}

func BudgetAnalysis(service *cashflow.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days, err := queryInt(r, "days", 30)
		if err != nil {
			writeError(w, r, err, "analyzing budget")
			return
		}

		writeJSON(w, http.StatusOK, service.BudgetAnalysis(r.Context(), days))
	})
}
