package brandasset

import (
	"fmt"

	"github.com/vfg2006/business-dashboard-api/internal/usecases/aggregating"
)

type Collection struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AssetCount  int    `json:"asset_count"`
	CoverImage  string `json:"cover_image"`
	CreatedAt   string `json:"created_at"`
}

var collections = []Collection{
	{"logos", "Brand Logos", "All logo variations and formats", 8, "/assets/logo-primary.svg", "2024-01-01T10:00:00Z"},
	{"social", "Social Media Assets", "Graphics and templates for social platforms", 15, "/assets/social-template.jpg", "2024-01-05T14:30:00Z"},
	{"presentations", "Presentation Templates", "PowerPoint and Keynote templates", 6, "/assets/presentation-template.jpg", "2024-01-08T09:20:00Z"},
}

func Collections() map[string]any {
	return map[string]any{
		"collections":                 collections,
		"total_collections":           len(collections),
		"total_assets_in_collections": aggregating.Sum(collections, func(c Collection) int { return c.AssetCount }),
	}
}

type assetUsage struct {
	Name      string `json:"name"`
	Downloads int    `json:"downloads"`
	Views     int    `json:"views"`
}

// UsageAnalytics expõe o resumo de uso dos ativos; não há rastreamento de downloads
func UsageAnalytics(days int) map[string]any {
	return map[string]any{
		"period": fmt.Sprintf("Last %d days", days),
		"overview": map[string]any{
			"total_downloads":     234,
			"total_views":         1456,
			"active_assets":       18,
			"most_popular_format": "PNG",
		},
		"top_assets": []assetUsage{
			{Name: "Company Logo", Downloads: 45, Views: 234},
			{Name: "Social Media Template", Downloads: 32, Views: 187},
			{Name: "Email Header", Downloads: 28, Views: 156},
		},
		"format_usage": map[string]int{
			"PNG": 35,
			"SVG": 28,
			"JPG": 22,
			"PDF": 15,
		},
		"daily_usage": []map[string]any{
			{"date": "2024-01-15", "downloads": 12, "views": 67},
			{"date": "2024-01-14", "downloads": 8, "views": 45},
			{"date": "2024-01-13", "downloads": 15, "views": 89},
		},
	}
}
