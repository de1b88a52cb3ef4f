package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/business-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

func DashboardMetrics(service *dashboard.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days, err := queryInt(r, "days", 30)
		if err != nil {
			writeError(w, r, err, "fetching dashboard metrics")
			return
		}

		writeJSON(w, http.StatusOK, service.Metrics(r.Context(), days))
	})
}

func DashboardInsights(service *dashboard.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		insights, err := service.Insights(r.Context())
		if err != nil {
			writeError(w, r, err, "fetching AI insights")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"insights":     insights,
			"total_count":  len(insights),
			"last_updated": time.Now().UTC(),
		})
	})
}

func SystemStatus(service *dashboard.Service, generator *insighting.Generator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.SystemStatus(r.Context(), generator.Configured()))
	})
}

func RefreshInsights(service *dashboard.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		job, err := service.RefreshInsights(r.Context())
		if err != nil {
			writeError(w, r, err, "refreshing AI insights")
			return
		}

		log.ForContext(r.Context()).WithField("job_id", job.ID).Info("Dashboard: refresh solicitado")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "AI insights refresh started",
			"status":  "queued",
			"job_id":  job.ID,
		})
	})
}

func RecentActivity(service *dashboard.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", 20)
		if err != nil {
			writeError(w, r, err, "fetching recent activity")
			return
		}

		writeJSON(w, http.StatusOK, service.RecentActivity(r.Context(), limit))
	})
}
