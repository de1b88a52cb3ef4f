package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/socialmedia"
)

type contentGenerationRequest struct {
	Prompt          string `json:"prompt"`
	Platform        string `json:"platform"`
	Tone            string `json:"tone"`
	IncludeHashtags *bool  `json:"include_hashtags"`
}

func ListPosts(service *socialmedia.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", 50)
		if err != nil {
			writeError(w, r, err, "fetching posts")
			return
		}

		writeJSON(w, http.StatusOK, service.ListPosts(r.Context(), socialmedia.PostQuery{
			Platform: optionalQuery(r, "platform"),
			Status:   optionalQuery(r, "status"),
			Limit:    limit,
		}))
	})
}

func CreatePost(service *socialmedia.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var draft domain.PostDraft
		if err := decodeBody(r, &draft); err != nil {
			writeError(w, r, err, "creating post")
			return
		}

		post, err := service.SchedulePost(r.Context(), draft)
		if err != nil {
			writeError(w, r, err, "creating post")
			return
		}
		logCreated(r, "social_post", post.ID)

		writeJSON(w, http.StatusOK, map[string]any{
			"message":        "Post scheduled successfully",
			"post":           post,
			"scheduled_time": draft.ScheduledTime,
		})
	})
}

func GenerateContent(service *socialmedia.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req contentGenerationRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err, "generating content")
			return
		}

		if req.Tone == "" {
			req.Tone = "professional"
		}
		includeHashtags := req.IncludeHashtags == nil || *req.IncludeHashtags

		content, err := service.GenerateContent(r.Context(), reporting.ContentRequest{
			Prompt:   req.Prompt,
			Platform: req.Platform,
			Tone:     req.Tone,
		}, includeHashtags)
		if err != nil {
			writeError(w, r, err, "generating content")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"generated_content": content,
			"usage_info": map[string]any{
				"prompt":           req.Prompt,
				"platform":         req.Platform,
				"tone":             req.Tone,
				"include_hashtags": includeHashtags,
			},
		})
	})
}

func OptimalTimes(service *socialmedia.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		platform := httprouter.ParamsFromContext(r.Context()).ByName("platform")

		result := service.OptimalTimes(r.Context(), platform)

		writeJSON(w, http.StatusOK, map[string]any{
			"platform":          result.Platform,
			"optimal_times":     result.Times,
			"audience_insights": result.Audience,
			"analysis_based_on": map[string]any{
				"historical_posts": result.HistoricalPosts,
				"audience_size":    result.Audience.Size,
			},
		})
	})
}

func UpdateEngagement(service *socialmedia.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var engagement domain.Engagement
		if err := decodeBody(r, &engagement); err != nil {
			writeError(w, r, err, "updating engagement")
			return
		}

		if _, err := service.UpdateEngagement(r.Context(), id, engagement); err != nil {
			writeError(w, r, err, "updating engagement")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message":            "Engagement updated successfully",
			"post_id":            id,
			"updated_engagement": engagement,
		})
	})
}

func EngagementAnalytics(service *socialmedia.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days, err := queryInt(r, "days", 30)
		if err != nil {
			writeError(w, r, err, "fetching engagement analytics")
			return
		}

		writeJSON(w, http.StatusOK, service.EngagementAnalytics(r.Context(), days))
	})
}

func BulkSchedule(service *socialmedia.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var drafts []domain.PostDraft
		if err := decodeBody(r, &drafts); err != nil {
			writeError(w, r, err, "in bulk scheduling")
			return
		}

		result, err := service.BulkSchedule(r.Context(), drafts)
		if err != nil {
			writeError(w, r, err, "in bulk scheduling")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message":         fmt.Sprintf("Bulk scheduling completed. %d posts scheduled.", len(result.Scheduled)),
			"scheduled_posts": len(result.Scheduled),
			"total_posts":     result.Total,
			"errors":          result.Errors,
			"posts":           result.Scheduled,
		})
	})
}

func ContentSuggestions(service *socialmedia.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		platform := r.URL.Query().Get("platform")
		if platform == "" {
			writeError(w, r, domain.NewValidationError("platform is required"), "generating suggestions")
			return
		}
		industry := queryString(r, "industry", "technology")
		tone := queryString(r, "tone", "professional")

		suggestions := service.ContentSuggestions(r.Context(), platform, industry, tone)

		writeJSON(w, http.StatusOK, map[string]any{
			"platform":          platform,
			"industry":          industry,
			"tone":              tone,
			"suggestions":       suggestions,
			"total_suggestions": len(suggestions),
			"generated_at":      time.Now().UTC(),
		})
	})
}
