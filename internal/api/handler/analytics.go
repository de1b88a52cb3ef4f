package handler

import (
	"net/http"

	"github.com/vfg2006/business-dashboard-api/internal/usecases/analytics"
)

// daysReport adapta os relatórios de analytics que recebem apenas o período
func daysReport(action string, report func(r *http.Request, days int) map[string]any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days, err := queryInt(r, "days", 30)
		if err != nil {
			writeError(w, r, err, action)
			return
		}

		writeJSON(w, http.StatusOK, report(r, days))
	})
}

func RevenueAnalytics(service *analytics.Service) http.Handler {
	return daysReport("fetching revenue analytics", func(r *http.Request, days int) map[string]any {
		return service.Revenue(r.Context(), days)
	})
}

func SocialPerformance(service *analytics.Service) http.Handler {
	return daysReport("fetching social performance", func(r *http.Request, days int) map[string]any {
		return service.SocialPerformance(r.Context(), days)
	})
}

func AdPerformance(service *analytics.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.AdPerformance(r.Context()))
	})
}

func ROIAnalysis(service *analytics.Service) http.Handler {
	return daysReport("fetching ROI analysis", func(r *http.Request, days int) map[string]any {
		return service.ROIAnalysis(r.Context(), days)
	})
}

func DashboardSummary(service *analytics.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.DashboardSummary(r.Context()))
	})
}
