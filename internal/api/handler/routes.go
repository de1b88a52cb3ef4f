package handler

import (
	"net/http"

	"github.com/vfg2006/business-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/scheduler"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/advertising"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/analytics"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/automation"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/brandasset"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/cashflow"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/socialmedia"
)

func Healthcheck(app config.App, metricsHandler http.Handler) []router.Route {
	routes := []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(app),
		},
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(app),
		},
	}

	if metricsHandler != nil {
		routes = append(routes, router.Route{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		})
	}

	return routes
}

// Uploads serve os arquivos do armazenamento local; com S3 as URLs apontam para o bucket
func Uploads(cfg config.Storage) []router.Route {
	if cfg.S3Enabled() {
		return nil
	}

	return []router.Route{
		{
			Path:    "/uploads/*filepath",
			Method:  http.MethodGet,
			Handler: http.StripPrefix("/uploads", http.FileServer(http.Dir(cfg.LocalDir))),
		},
	}
}

func Dashboard(service *dashboard.Service, generator *insighting.Generator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dashboard/metrics",
			Method:  http.MethodGet,
			Handler: DashboardMetrics(service),
		},
		{
			Path:    "/api/dashboard/insights",
			Method:  http.MethodGet,
			Handler: DashboardInsights(service),
		},
		{
			Path:    "/api/dashboard/system-status",
			Method:  http.MethodGet,
			Handler: SystemStatus(service, generator),
		},
		{
			Path:    "/api/dashboard/refresh-insights",
			Method:  http.MethodPost,
			Handler: RefreshInsights(service),
		},
		{
			Path:    "/api/dashboard/recent-activity",
			Method:  http.MethodGet,
			Handler: RecentActivity(service),
		},
	}
}

func SocialMedia(service *socialmedia.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/api/social-media/posts",
			Method:  http.MethodGet,
			Handler: ListPosts(service),
		},
		{
			Path:    "/api/social-media/posts",
			Method:  http.MethodPost,
			Handler: CreatePost(service),
		},
		{
			Path:    "/api/social-media/generate-content",
			Method:  http.MethodPost,
			Handler: GenerateContent(service),
		},
		{
			Path:    "/api/social-media/optimal-times/:platform",
			Method:  http.MethodGet,
			Handler: OptimalTimes(service),
		},
		{
			Path:    "/api/social-media/posts/:id/engagement",
			Method:  http.MethodPut,
			Handler: UpdateEngagement(service),
		},
		{
			Path:    "/api/social-media/analytics/engagement",
			Method:  http.MethodGet,
			Handler: EngagementAnalytics(service),
		},
		{
			Path:    "/api/social-media/bulk-schedule",
			Method:  http.MethodPost,
			Handler: BulkSchedule(service),
		},
		{
			Path:    "/api/social-media/content-suggestions",
			Method:  http.MethodGet,
			Handler: ContentSuggestions(service),
		},
	}
}

func AIServices(service *insighting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/api/ai/generate-strategy",
			Method:  http.MethodPost,
			Handler: GenerateStrategy(service),
		},
		{
			Path:    "/api/ai/analyze-competitors",
			Method:  http.MethodPost,
			Handler: AnalyzeCompetitors(service),
		},
		{
			Path:    "/api/ai/forecast-roi",
			Method:  http.MethodPost,
			Handler: ForecastROI(service),
		},
		{
			Path:    "/api/ai/insights/:type",
			Method:  http.MethodGet,
			Handler: InsightsByType(service),
		},
	}
}

func Analytics(service *analytics.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/api/analytics/revenue",
			Method:  http.MethodGet,
			Handler: RevenueAnalytics(service),
		},
		{
			Path:    "/api/analytics/social-performance",
			Method:  http.MethodGet,
			Handler: SocialPerformance(service),
		},
		{
			Path:    "/api/analytics/ad-performance",
			Method:  http.MethodGet,
			Handler: AdPerformance(service),
		},
		{
			Path:    "/api/analytics/roi-analysis",
			Method:  http.MethodGet,
			Handler: ROIAnalysis(service),
		},
		{
			Path:    "/api/analytics/dashboard-summary",
			Method:  http.MethodGet,
			Handler: DashboardSummary(service),
		},
	}
}

func Automation(service *automation.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/api/automation/rules",
			Method:  http.MethodGet,
			Handler: AutomationRules(service),
		},
		{
			Path:    "/api/automation/rules",
			Method:  http.MethodPost,
			Handler: CreateAutomationRule(service),
		},
		{
			Path:    "/api/automation/workflows/n8n",
			Method:  http.MethodGet,
			Handler: N8NWorkflows(service),
		},
		{
			Path:    "/api/automation/trigger/:id",
			Method:  http.MethodPost,
			Handler: TriggerAutomationRule(service),
		},
		{
			Path:    "/api/automation/execution-history",
			Method:  http.MethodGet,
			Handler: ExecutionHistory(service),
		},
		{
			Path:    "/api/automation/metrics",
			Method:  http.MethodGet,
			Handler: AutomationMetrics(service),
		},
	}
}

func BrandAssets(service *brandasset.Service, maxUploadMB int64) []router.Route {
	return []router.Route{
		{
			Path:    "/api/brand-assets/assets",
			Method:  http.MethodGet,
			Handler: ListAssets(service),
		},
		{
			Path:    "/api/brand-assets/assets",
			Method:  http.MethodPost,
			Handler: CreateAsset(service),
		},
		{
			Path:    "/api/brand-assets/assets/upload",
			Method:  http.MethodPost,
			Handler: UploadAsset(service, maxUploadMB),
		},
		{
			Path:    "/api/brand-assets/assets/:id",
			Method:  http.MethodGet,
			Handler: GetAsset(service),
		},
		{
			Path:    "/api/brand-assets/assets/:id",
			Method:  http.MethodPut,
			Handler: UpdateAsset(service),
		},
		{
			Path:    "/api/brand-assets/assets/:id",
			Method:  http.MethodDelete,
			Handler: DeleteAsset(service),
		},
		{
			Path:    "/api/brand-assets/collections",
			Method:  http.MethodGet,
			Handler: AssetCollections(),
		},
		{
			Path:    "/api/brand-assets/usage-analytics",
			Method:  http.MethodGet,
			Handler: AssetUsageAnalytics(),
		},
	}
}

func CashFlow(service *cashflow.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cash-flow/entries",
			Method:  http.MethodGet,
			Handler: ListCashFlowEntries(service),
		},
		{
			Path:    "/api/cash-flow/entries",
			Method:  http.MethodPost,
			Handler: CreateCashFlowEntry(service),
		},
		{
			Path:    "/api/cash-flow/summary",
			Method:  http.MethodGet,
			Handler: CashFlowSummary(service),
		},
		{
			Path:    "/api/cash-flow/categories",
			Method:  http.MethodGet,
			Handler: CashFlowCategories(),
		},
		{
			Path:    "/api/cash-flow/forecast",
			Method:  http.MethodGet,
			Handler: CashFlowForecast(service),
		},
		{
			Path:    "/api/cash-flow/budget-analysis",
			Method:  http.MethodGet,
			Handler: BudgetAnalysis(service),
		},
	}
}

func AdCampaigns(service *advertising.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/api/ad-campaigns/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/api/ad-campaigns/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/api/ad-campaigns/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(service),
		},
		{
			Path:    "/api/ad-campaigns/campaigns/:id",
			Method:  http.MethodPut,
			Handler: UpdateCampaign(service),
		},
		{
			Path:    "/api/ad-campaigns/campaigns/:id/optimize",
			Method:  http.MethodPost,
			Handler: OptimizeCampaign(service),
		},
		{
			Path:    "/api/ad-campaigns/performance-analytics",
			Method:  http.MethodGet,
			Handler: CampaignPerformance(service),
		},
		{
			Path:    "/api/ad-campaigns/generate-ad-creative",
			Method:  http.MethodPost,
			Handler: GenerateAdCreative(service),
		},
		{
			Path:    "/api/ad-campaigns/budget-recommendations",
			Method:  http.MethodGet,
			Handler: BudgetRecommendations(),
		},
	}
}

func Jobs(queue scheduler.Enqueuer, refresh *scheduler.InsightRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/jobs/:id",
			Method:  http.MethodGet,
			Handler: GetJob(queue),
		},
		{
			Path:    "/api/scheduler/status",
			Method:  http.MethodGet,
			Handler: SchedulerStatus(refresh),
		},
		{
			Path:    "/api/scheduler/run",
			Method:  http.MethodPost,
			Handler: RunInsightRefresh(refresh),
		},
	}
}
