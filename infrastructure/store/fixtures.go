package store

import (
	"time"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

// Fixtures fornece os registros de demonstração usados quando o banco
// não está configurado ou a consulta falha
type Fixtures interface {
	BusinessMetrics(now time.Time) []domain.BusinessMetric
	SocialPosts(now time.Time) []domain.SocialPost
	AdCampaigns(now time.Time) []domain.AdCampaign
	CashFlow(now time.Time) []domain.CashFlowEntry
	BrandAssets(now time.Time) []domain.BrandAsset
	AIInsights(now time.Time) []domain.AIInsight
}

type demoFixtures struct{}

// DemoFixtures retorna o conjunto padrão de dados de demonstração
func DemoFixtures() Fixtures {
	return demoFixtures{}
}

func (demoFixtures) BusinessMetrics(now time.Time) []domain.BusinessMetric {
	yesterday := now.AddDate(0, 0, -1)
	return []domain.BusinessMetric{
		{ID: "1", Date: now, Revenue: 45420, Expenses: 33080, Profit: 12340, ROI: 2.8, CreatedAt: now},
		{ID: "2", Date: yesterday, Revenue: 42350, Expenses: 31200, Profit: 11150, ROI: 2.6, CreatedAt: yesterday},
	}
}

func (demoFixtures) SocialPosts(now time.Time) []domain.SocialPost {
	return []domain.SocialPost{
		{
			ID:            "1",
			Platform:      domain.PlatformInstagram,
			Content:       "Just launched our new AI-powered business analytics dashboard! 🚀",
			Hashtags:      []string{},
			ScheduledTime: &now,
			PostedTime:    &now,
			Status:        domain.PostStatusPosted,
			Engagement:    domain.Engagement{Likes: 245, Comments: 32, Shares: 18, Reach: 3420},
			CreatedAt:     now,
		},
	}
}

func (demoFixtures) AdCampaigns(now time.Time) []domain.AdCampaign {
	return []domain.AdCampaign{
		{
			ID:          "1",
			Name:        "AI Business Tool Launch",
			Platform:    domain.PlatformFacebook,
			Budget:      1000,
			Spent:       750,
			Clicks:      1250,
			Impressions: 45000,
			Conversions: 78,
			CTR:         2.8,
			CPC:         0.60,
			ROAS:        3.2,
			Status:      domain.CampaignStatusActive,
			CreatedAt:   now,
		},
	}
}

func (demoFixtures) CashFlow(time.Time) []domain.CashFlowEntry {
	return []domain.CashFlowEntry{}
}

func (demoFixtures) BrandAssets(time.Time) []domain.BrandAsset {
	return []domain.BrandAsset{
		{
			ID:          "1",
			Name:        "Company Logo - Primary",
			Type:        domain.AssetLogo,
			URL:         "/assets/logo-primary.svg",
			Tags:        []string{"logo", "primary", "svg", "brand"},
			Description: text("Main company logo for all official communications"),
			FileSize:    "12KB",
			UsageCount:  45,
			Status:      domain.AssetStatusActive,
			Metadata:    map[string]any{"dimensions": "500x200"},
			CreatedAt:   at("2024-01-01T10:00:00Z"),
			LastUsed:    atPtr("2024-01-15T14:30:00Z"),
		},
		{
			ID:          "2",
			Name:        "Hero Background",
			Type:        domain.AssetImage,
			URL:         "/assets/hero-bg.jpg",
			Tags:        []string{"background", "hero", "website", "gradient"},
			Description: text("Gradient background for website hero sections"),
			FileSize:    "1.2MB",
			UsageCount:  23,
			Status:      domain.AssetStatusActive,
			Metadata:    map[string]any{"dimensions": "1920x1080"},
			CreatedAt:   at("2024-01-05T11:20:00Z"),
			LastUsed:    atPtr("2024-01-14T16:45:00Z"),
		},
		{
			ID:          "3",
			Name:        "Product Demo Video",
			Type:        domain.AssetVideo,
			URL:         "/assets/product-demo.mp4",
			Tags:        []string{"demo", "product", "video", "marketing"},
			Description: text("2-minute product demonstration video"),
			FileSize:    "45MB",
			UsageCount:  18,
			Status:      domain.AssetStatusActive,
			Metadata:    map[string]any{"duration": "2:15"},
			CreatedAt:   at("2024-01-10T14:00:00Z"),
			LastUsed:    atPtr("2024-01-15T09:30:00Z"),
		},
		{
			ID:          "4",
			Name:        "Brand Guidelines",
			Type:        domain.AssetDocument,
			URL:         "/assets/brand-guidelines.pdf",
			Tags:        []string{"guidelines", "brand", "documentation", "pdf"},
			Description: text("Complete brand identity and usage guidelines"),
			FileSize:    "2.8MB",
			UsageCount:  8,
			Status:      domain.AssetStatusActive,
			Metadata:    map[string]any{"pages": 24},
			CreatedAt:   at("2024-01-02T09:15:00Z"),
			LastUsed:    atPtr("2024-01-12T11:20:00Z"),
		},
		{
			ID:          "5",
			Name:        "Social Media Icons",
			Type:        domain.AssetImage,
			URL:         "/assets/social-icons.png",
			Tags:        []string{"social", "icons", "website", "footer"},
			Description: text("Social media platform icons for website footer"),
			FileSize:    "45KB",
			UsageCount:  31,
			Status:      domain.AssetStatusActive,
			Metadata:    map[string]any{"dimensions": "400x50"},
			CreatedAt:   at("2024-01-08T16:30:00Z"),
			LastUsed:    atPtr("2024-01-15T12:00:00Z"),
		},
	}
}

func (demoFixtures) AIInsights(time.Time) []domain.AIInsight {
	return []domain.AIInsight{}
}

func text(s string) *string {
	return &s
}

func at(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func atPtr(value string) *time.Time {
	t := at(value)
	return &t
}
