// Package dashboard monta a visão geral do negócio a partir de todas as áreas.
package dashboard

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/scheduler"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

const (
	growthRate         = 15.5
	recentPostsLimit   = 10
	activityPosts      = 5
	activityMetricDays = 7
	activityInsights   = 5
	descriptionPreview = 100
)

// Records é o acesso aos registros usado pelo painel
type Records interface {
	Configured() bool
	BusinessMetrics(ctx context.Context, filter domain.MetricFilter) []domain.BusinessMetric
	SocialPosts(ctx context.Context, filter domain.PostFilter) []domain.SocialPost
	AdCampaigns(ctx context.Context, filter domain.CampaignFilter) []domain.AdCampaign
	CashFlow(ctx context.Context, filter domain.CashFlowFilter) []domain.CashFlowEntry
	AIInsights(ctx context.Context, filter domain.InsightFilter) []domain.AIInsight
}

type Service struct {
	records  Records
	insights *insighting.Service
	queue    scheduler.Enqueuer
	now      func() time.Time
}

func NewService(records Records, insights *insighting.Service, queue scheduler.Enqueuer) *Service {
	return &Service{
		records:  records,
		insights: insights,
		queue:    queue,
		now:      time.Now,
	}
}

type Overview struct {
	Revenue     float64   `json:"revenue"`
	Profit      float64   `json:"profit"`
	ROI         float64   `json:"roi"`
	GrowthRate  float64   `json:"growth_rate"`
	LastUpdated time.Time `json:"last_updated"`
}

type SocialOverview struct {
	TotalReach     int     `json:"total_reach"`
	AvgEngagement  float64 `json:"avg_engagement"`
	TotalPosts     int     `json:"total_posts"`
	ScheduledPosts int     `json:"scheduled_posts"`
}

type AdvertisingOverview struct {
	ActiveCampaigns int     `json:"active_campaigns"`
	TotalSpend      float64 `json:"total_spend"`
	Conversions     int     `json:"conversions"`
	AvgROAS         float64 `json:"avg_roas"`
}

type CashFlowOverview struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	NetFlow  float64 `json:"net_flow"`
	BurnRate float64 `json:"burn_rate"`
}

type Metrics struct {
	Overview    Overview            `json:"overview"`
	SocialMedia SocialOverview      `json:"social_media"`
	Advertising AdvertisingOverview `json:"advertising"`
	CashFlow    CashFlowOverview    `json:"cash_flow"`
	Period      string              `json:"period"`
}

// Metrics reúne os indicadores principais; as quatro leituras são feitas em paralelo
func (s *Service) Metrics(ctx context.Context, days int) Metrics {
	now := s.now()

	var (
		metrics   []domain.BusinessMetric
		posts     []domain.SocialPost
		campaigns []domain.AdCampaign
		entries   []domain.CashFlowEntry
		wg        sync.WaitGroup
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		metrics = s.records.BusinessMetrics(ctx, domain.MetricsForLastDays(days, now))
	}()
	go func() {
		defer wg.Done()
		posts = s.records.SocialPosts(ctx, domain.PostFilter{Limit: recentPostsLimit})
	}()
	go func() {
		defer wg.Done()
		campaigns = s.records.AdCampaigns(ctx, domain.CampaignFilter{})
	}()
	go func() {
		defer wg.Done()
		entries = s.records.CashFlow(ctx, domain.CashFlowFilter{Since: now.AddDate(0, 0, -days)})
	}()
	wg.Wait()

	posted := aggregating.Filter(posts, domain.SocialPost.IsPosted)
	spend := aggregating.Sum(campaigns, func(c domain.AdCampaign) float64 { return c.Spent })
	attributed := aggregating.Sum(campaigns, domain.AdCampaign.AttributedRevenue)
	income := aggregating.Sum(aggregating.Filter(entries, domain.CashFlowEntry.IsIncome), amount)
	expenses := aggregating.Sum(aggregating.Filter(entries, domain.CashFlowEntry.IsExpense), amount)

	return Metrics{
		Overview: Overview{
			Revenue:     aggregating.Sum(metrics, func(m domain.BusinessMetric) float64 { return m.Revenue }),
			Profit:      aggregating.Sum(metrics, func(m domain.BusinessMetric) float64 { return m.Profit }),
			ROI:         utils.RoundWithTwoDecimalPlace(aggregating.Mean(metrics, func(m domain.BusinessMetric) float64 { return m.ROI })),
			GrowthRate:  growthRate,
			LastUpdated: now,
		},
		SocialMedia: SocialOverview{
			TotalReach: aggregating.Sum(posted, func(p domain.SocialPost) int { return p.Engagement.Reach }),
			AvgEngagement: utils.RoundWithOneDecimalPlace(aggregating.Mean(posted, func(p domain.SocialPost) int {
				return p.Engagement.Interactions()
			})),
			TotalPosts:     len(posts),
			ScheduledPosts: aggregating.Count(posts, func(p domain.SocialPost) bool { return p.Status == domain.PostStatusScheduled }),
		},
		Advertising: AdvertisingOverview{
			ActiveCampaigns: aggregating.Count(campaigns, domain.AdCampaign.IsActive),
			TotalSpend:      spend,
			Conversions:     aggregating.Sum(campaigns, func(c domain.AdCampaign) int { return c.Conversions }),
			AvgROAS:         utils.RoundWithTwoDecimalPlace(weightedROAS(campaigns, spend, attributed)),
		},
		CashFlow: CashFlowOverview{
			Income:   income,
			Expenses: expenses,
			NetFlow:  income - expenses,
			BurnRate: expenses / float64(max(days, 1)) * 30,
		},
		Period: fmt.Sprintf("Last %d days", days),
	}
}

func amount(e domain.CashFlowEntry) float64 {
	return e.Amount
}

// weightedROAS é a receita atribuída total sobre o gasto total; sem gasto usa a média simples
func weightedROAS(campaigns []domain.AdCampaign, spend, attributed float64) float64 {
	if spend > 0 {
		return attributed / spend
	}
	return aggregating.Mean(campaigns, func(c domain.AdCampaign) float64 { return c.ROAS })
}

// Insights retorna os últimos insights, gerando estratégias se ainda não houver nenhum
func (s *Service) Insights(ctx context.Context) ([]domain.AIInsight, error) {
	return s.insights.DashboardInsights(ctx)
}

// SystemStatus descreve a saúde dos componentes
func (s *Service) SystemStatus(ctx context.Context, aiConfigured bool) map[string]any {
	now := s.now()

	database := "offline"
	if s.records.Configured() {
		database = "online"
	}
	ai := "offline"
	if aiConfigured {
		ai = "online"
	}

	return map[string]any{
		"status": map[string]any{
			"database":          database,
			"ai_services":       ai,
			"social_media_apis": "online",
			"automation":        "syncing",
			"job_queue_depth":   s.queue.Depth(),
			"last_check":        now,
		},
		"api_status": map[string]string{
			"openai":    "operational",
			"supabase":  "operational",
			"facebook":  "operational",
			"instagram": "operational",
			"twitter":   "operational",
			"linkedin":  "operational",
		},
		"metrics": map[string]any{
			"uptime":                "99.9%",
			"response_time":         "120ms",
			"requests_today":        1247,
			"ai_requests_remaining": 8753,
			"storage_used":          "2.3GB",
			"storage_limit":         "100GB",
		},
		"overall_health": "healthy",
	}
}

// RefreshInsights enfileira a geração de novos insights em segundo plano
func (s *Service) RefreshInsights(ctx context.Context) (*domain.Job, error) {
	job, err := s.queue.Submit(ctx, domain.JobInsightRefresh, map[string]string{
		"trigger":     "api",
		"data_source": insighting.SourceRefresh,
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithField("job_id", job.ID).Info("Dashboard: atualização de insights enfileirada")
	return job, nil
}

type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
	Platform    string    `json:"platform,omitempty"`
	Confidence  *float64  `json:"confidence,omitempty"`
}

type ActivityFeed struct {
	Activities  []Activity `json:"activities"`
	TotalCount  int        `json:"total_count"`
	LastUpdated time.Time  `json:"last_updated"`
}

// RecentActivity junta publicações, métricas e insights recentes em ordem decrescente de data
func (s *Service) RecentActivity(ctx context.Context, limit int) ActivityFeed {
	now := s.now()

	var (
		posts    []domain.SocialPost
		metrics  []domain.BusinessMetric
		insights []domain.AIInsight
		wg       sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		posts = s.records.SocialPosts(ctx, domain.PostFilter{Limit: activityPosts})
	}()
	go func() {
		defer wg.Done()
		metrics = s.records.BusinessMetrics(ctx, domain.MetricsForLastDays(activityMetricDays, now))
	}()
	go func() {
		defer wg.Done()
		insights = s.records.AIInsights(ctx, domain.InsightFilter{Limit: activityInsights})
	}()
	wg.Wait()

	activities := make([]Activity, 0, len(posts)+len(metrics)+len(insights))
	for _, post := range posts {
		activities = append(activities, Activity{
			ID:          "social_" + post.ID,
			Type:        "social_media",
			Title:       fmt.Sprintf("Post %s on %s", post.Status, post.Platform.Title()),
			Description: reporting.Preview(post.Content, descriptionPreview),
			Timestamp:   post.CreatedAt,
			Status:      string(post.Status),
			Platform:    string(post.Platform),
		})
	}
	for _, metric := range metrics {
		activities = append(activities, Activity{
			ID:          "metric_" + metric.ID,
			Type:        "business_metric",
			Title:       "Business metrics updated",
			Description: fmt.Sprintf("Revenue: $%s, ROI: %gx", utils.FormatThousands(metric.Revenue), metric.ROI),
			Timestamp:   metric.CreatedAt,
			Status:      "updated",
		})
	}
	for _, insight := range insights {
		confidence := insight.Confidence
		title := insight.Title
		if title == "" {
			title = "AI Insight"
		}
		activities = append(activities, Activity{
			ID:          "insight_" + insight.ID,
			Type:        "ai_insight",
			Title:       title,
			Description: reporting.Preview(insight.Content, descriptionPreview),
			Timestamp:   insight.CreatedAt,
			Status:      "generated",
			Confidence:  &confidence,
		})
	}

	slices.SortStableFunc(activities, func(a, b Activity) int {
		return cmp.Compare(b.Timestamp.UnixNano(), a.Timestamp.UnixNano())
	})

	return ActivityFeed{
		Activities:  aggregating.Limit(activities, limit),
		TotalCount:  len(activities),
		LastUpdated: now,
	}
}
