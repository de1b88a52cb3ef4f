package automation

import (
	"time"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

func timestamp(value string) *time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return &t
}

func catalogRules() []domain.AutomationRule {
	schedule := "0 9 * * 1-5"

	return []domain.AutomationRule{
		{
			ID:          "1",
			Name:        "Auto-post daily tips",
			Description: "Posts AI-generated business tips to LinkedIn every weekday at 9:00 AM",
			TriggerType: domain.TriggerSchedule,
			Schedule:    &schedule,
			Actions: []map[string]any{
				{"type": "generate_content", "platform": "linkedin"},
				{"type": "post_content", "platform": "linkedin"},
			},
			Enabled:     true,
			Status:      "active",
			LastRun:     timestamp("2024-01-15T09:00:00Z"),
			NextRun:     timestamp("2024-01-16T09:00:00Z"),
			SuccessRate: 95.5,
		},
		{
			ID:          "2",
			Name:        "Engagement response",
			Description: "Automatically likes and responds to comments on Instagram posts",
			TriggerType: domain.TriggerWebhook,
			Actions: []map[string]any{
				{"type": "like_comment"},
				{"type": "generate_response"},
				{"type": "post_response"},
			},
			Enabled:     true,
			Status:      "active",
			LastRun:     timestamp("2024-01-15T14:30:00Z"),
			SuccessRate: 87.2,
		},
		{
			ID:          "3",
			Name:        "Cross-platform sharing",
			Description: "Automatically shares Instagram posts to Facebook and Twitter",
			TriggerType: domain.TriggerEvent,
			Actions: []map[string]any{
				{"type": "adapt_content", "platforms": []string{"facebook", "twitter"}},
				{"type": "schedule_posts"},
			},
			Enabled:     false,
			Status:      "paused",
			LastRun:     timestamp("2024-01-10T16:20:00Z"),
			SuccessRate: 76.8,
		},
	}
}
