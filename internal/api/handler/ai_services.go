package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/insighting"
)

type strategyRequest struct {
	BusinessData map[string]any `json:"business_data"`
	MarketData   map[string]any `json:"market_data"`
}

type competitorAnalysisRequest struct {
	CompetitorData  []map[string]any `json:"competitor_data"`
	OwnBusinessData map[string]any   `json:"own_business_data"`
}

type roiForecastRequest struct {
	HistoricalData     []map[string]any `json:"historical_data"`
	PlannedInvestments []map[string]any `json:"planned_investments"`
	MarketConditions   map[string]any   `json:"market_conditions"`
}

func GenerateStrategy(service *insighting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req strategyRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err, "generating strategy")
			return
		}

		result, err := service.GenerateStrategy(r.Context(), req.BusinessData, req.MarketData)
		if err != nil {
			writeError(w, r, err, "generating strategy")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"strategy_insights": result.Strategies,
			"generated_at":      result.GeneratedAt,
			"input_data": map[string]any{
				"business_data": req.BusinessData,
				"market_data":   req.MarketData,
			},
		})
	})
}

func AnalyzeCompetitors(service *insighting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req competitorAnalysisRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err, "analyzing competitors")
			return
		}

		analysis, err := service.AnalyzeCompetitors(r.Context(), req.CompetitorData, req.OwnBusinessData)
		if err != nil {
			writeError(w, r, err, "analyzing competitors")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"analysis":             analysis,
			"competitors_analyzed": len(req.CompetitorData),
			"generated_at":         time.Now().UTC(),
		})
	})
}

func ForecastROI(service *insighting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req roiForecastRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err, "forecasting ROI")
			return
		}

		forecast, err := service.ForecastROI(r.Context(), req.HistoricalData, req.PlannedInvestments, req.MarketConditions)
		if err != nil {
			writeError(w, r, err, "forecasting ROI")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"forecast":               forecast,
			"data_points_analyzed":   len(req.HistoricalData),
			"investments_considered": len(req.PlannedInvestments),
			"generated_at":           time.Now().UTC(),
		})
	})
}

func InsightsByType(service *insighting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		insightType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		limit, err := queryInt(r, "limit", 10)
		if err != nil {
			writeError(w, r, err, "fetching insights")
			return
		}

		insights, err := service.InsightsByType(r.Context(), insightType, limit)
		if err != nil {
			writeError(w, r, err, "fetching insights")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"insights":        insights,
			"type":            insightType,
			"count":           len(insights),
			"available_types": domain.InsightTypes,
		})
	})
}
