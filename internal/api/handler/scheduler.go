package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/business-dashboard-api/internal/scheduler"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

// GetJob retorna o registro do job com status e resultado
func GetJob(queue scheduler.Enqueuer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		job, err := queue.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err, "fetching job")
			return
		}

		writeJSON(w, http.StatusOK, job)
	})
}

// RunInsightRefresh dispara manualmente a atualização periódica de insights
func RunInsightRefresh(service *scheduler.InsightRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("Scheduler: execução manual solicitada")

		job, err := service.TriggerManualSync(r.Context())
		if err != nil {
			writeError(w, r, err, "running insight refresh")
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Insight refresh started",
			"job_id":  job.ID,
			"status":  job.Status,
		})
	})
}

func SchedulerStatus(service *scheduler.InsightRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetStatus())
	})
}
