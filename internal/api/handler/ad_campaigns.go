package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/advertising"
)

func ListCampaigns(service *advertising.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", 50)
		if err != nil {
			writeError(w, r, err, "fetching campaigns")
			return
		}

		writeJSON(w, http.StatusOK, service.ListCampaigns(r.Context(), advertising.CampaignQuery{
			Platform: optionalQuery(r, "platform"),
			Status:   optionalQuery(r, "status"),
			Limit:    limit,
		}))
	})
}

func CreateCampaign(service *advertising.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var draft domain.CampaignDraft
		if err := decodeBody(r, &draft); err != nil {
			writeError(w, r, err, "creating campaign")
			return
		}

		campaign, err := service.CreateCampaign(r.Context(), draft)
		if err != nil {
			writeError(w, r, err, "creating campaign")
			return
		}
		logCreated(r, "ad_campaign", campaign.ID)

		writeJSON(w, http.StatusOK, map[string]any{
			"message":  "Campaign created successfully",
			"campaign": campaign,
		})
	})
}

func GetCampaign(service *advertising.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		details, err := service.CampaignDetails(r.Context(), id)
		if err != nil {
			writeError(w, r, err, "fetching campaign")
			return
		}

		writeJSON(w, http.StatusOK, details)
	})
}

func UpdateCampaign(service *advertising.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var update domain.CampaignUpdate
		if err := decodeBody(r, &update); err != nil {
			writeError(w, r, err, "updating campaign")
			return
		}

		result, err := service.UpdateCampaign(r.Context(), id, update)
		if err != nil {
			writeError(w, r, err, "updating campaign")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message":         "Campaign updated successfully",
			"campaign_id":     id,
			"campaign":        result.Campaign,
			"updates_applied": result.Applied,
			"updated_at":      result.UpdatedAt,
		})
	})
}

func OptimizeCampaign(service *advertising.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		job, err := service.OptimizeCampaign(r.Context(), id)
		if err != nil {
			writeError(w, r, err, "optimizing campaign")
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message":              "Campaign optimization started",
			"campaign_id":          id,
			"status":               "queued",
			"job_id":               job.ID,
			"estimated_completion": "2-3 minutes",
		})
	})
}

func CampaignPerformance(service *advertising.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days, err := queryInt(r, "days", 30)
		if err != nil {
			writeError(w, r, err, "fetching performance analytics")
			return
		}

		writeJSON(w, http.StatusOK, service.PerformanceAnalytics(r.Context(), days))
	})
}

func GenerateAdCreative(service *advertising.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req advertising.CreativeRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err, "generating ad creative")
			return
		}

		creative, err := service.GenerateCreative(r.Context(), req)
		if err != nil {
			writeError(w, r, err, "generating ad creative")
			return
		}

		writeJSON(w, http.StatusOK, creative)
	})
}

func BudgetRecommendations() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		audienceSize, err := queryInt(r, "target_audience_size", 100000)
		if err != nil {
			writeError(w, r, err, "generating budget recommendations")
			return
		}

		writeJSON(w, http.StatusOK, advertising.BudgetRecommendations(advertising.BudgetQuery{
			CampaignObjective:  queryString(r, "campaign_objective", "conversion"),
			TargetAudienceSize: audienceSize,
			CompetitionLevel:   queryString(r, "competition_level", "medium"),
		}))
	})
}
