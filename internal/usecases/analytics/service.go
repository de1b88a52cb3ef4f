// Package analytics calcula os relatórios de receita, redes sociais, anúncios e ROI.
package analytics

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

const (
	// valor médio de pedido usado para estimar a receita dos anúncios
	avgOrderValue = 150

	roiTrendPoints     = 6
	socialPostsWindow  = 200
	socialTopPosts     = 10
	summaryPostsWindow = 50
	topCampaigns       = 5
)

// plataformas consideradas no relatório de redes sociais
var socialPlatforms = []domain.Platform{
	domain.PlatformInstagram,
	domain.PlatformLinkedIn,
	domain.PlatformTwitter,
	domain.PlatformFacebook,
}

type Records interface {
	BusinessMetrics(ctx context.Context, filter domain.MetricFilter) []domain.BusinessMetric
	SocialPosts(ctx context.Context, filter domain.PostFilter) []domain.SocialPost
	AdCampaigns(ctx context.Context, filter domain.CampaignFilter) []domain.AdCampaign
	CashFlow(ctx context.Context, filter domain.CashFlowFilter) []domain.CashFlowEntry
}

type Service struct {
	records Records
	now     func() time.Time
}

func NewService(records Records) *Service {
	return &Service{
		records: records,
		now:     time.Now,
	}
}

func revenue(m domain.BusinessMetric) float64 { return m.Revenue }
func profit(m domain.BusinessMetric) float64 { return m.Profit }
func expenses(m domain.BusinessMetric) float64 { return m.Expenses }

func interactions(p domain.SocialPost) float64 { return float64(p.Engagement.Interactions()) }

type DailyRevenue struct {
	Date     time.Time `json:"date"`
	Revenue  float64   `json:"revenue"`
	Profit   float64   `json:"profit"`
	Expenses float64   `json:"expenses"`
}

// newestFirst ordena as métricas da mais recente para a mais antiga
func newestFirst(metrics []domain.BusinessMetric) []domain.BusinessMetric {
	sorted := slices.Clone(metrics)
	slices.SortStableFunc(sorted, func(a, b domain.BusinessMetric) int {
		return b.Date.Compare(a.Date)
	})
	return sorted
}

// Revenue resume a receita do período. O crescimento compara a metade mais recente
// dos registros com a metade mais antiga.
func (s *Service) Revenue(ctx context.Context, days int) map[string]any {
	metrics := newestFirst(s.records.BusinessMetrics(ctx, domain.MetricsForLastDays(days, s.now())))

	daily := make([]DailyRevenue, len(metrics))
	for i, m := range metrics {
		daily[i] = DailyRevenue{Date: m.Date, Revenue: m.Revenue, Profit: m.Profit, Expenses: m.Expenses}
	}

	totalRevenue := aggregating.Sum(metrics, revenue)
	totalProfit := aggregating.Sum(metrics, profit)

	var growth float64
	if len(metrics) >= 2 {
		half := len(metrics) / 2
		recent := aggregating.Sum(metrics[:half], revenue)
		earlier := aggregating.Sum(metrics[half:], revenue)
		growth = aggregating.Percent(recent-earlier, earlier)
	}

	trend := "decreasing"
	if growth > 0 {
		trend = "increasing"
	}

	return map[string]any{
		"period": fmt.Sprintf("Last %d days", days),
		"summary": map[string]any{
			"total_revenue":  totalRevenue,
			"total_profit":   totalProfit,
			"total_expenses": aggregating.Sum(metrics, expenses),
			"profit_margin":  utils.RoundWithTwoDecimalPlace(aggregating.Percent(totalProfit, totalRevenue)),
			"growth_rate":    utils.RoundWithTwoDecimalPlace(growth),
		},
		"daily_data": daily,
		"trends": map[string]any{
			"revenue_trend":     trend,
			"avg_daily_revenue": utils.RoundWithTwoDecimalPlace(aggregating.Rate(totalRevenue, float64(days))),
			"best_day":          aggregating.MaxBy(daily, func(d DailyRevenue) float64 { return d.Revenue }),
		},
	}
}

type SocialPlatformPerformance struct {
	Posts           int                `json:"posts"`
	TotalEngagement int                `json:"total_engagement"`
	TotalReach      int                `json:"total_reach"`
	AvgEngagement   float64            `json:"avg_engagement"`
	EngagementRate  float64            `json:"engagement_rate"`
	TopPost         *domain.SocialPost `json:"top_post"`
}

// SocialPerformance analisa as publicações feitas no período por rede
func (s *Service) SocialPerformance(ctx context.Context, days int) map[string]any {
	since := s.now().AddDate(0, 0, -days)
	posted := domain.PostStatusPosted
	posts := s.records.SocialPosts(ctx, domain.PostFilter{Status: &posted, Since: &since, Limit: socialPostsWindow})

	performance := make(map[string]SocialPlatformPerformance)
	byPlatform := aggregating.GroupBy(posts, func(p domain.SocialPost) domain.Platform { return p.Platform })
	for _, platform := range socialPlatforms {
		group := byPlatform[platform]
		if len(group) == 0 {
			continue
		}

		engagement := aggregating.Sum(group, func(p domain.SocialPost) int { return p.Engagement.Interactions() })
		reach := aggregating.Sum(group, func(p domain.SocialPost) int { return p.Engagement.Reach })

		performance[string(platform)] = SocialPlatformPerformance{
			Posts:           len(group),
			TotalEngagement: engagement,
			TotalReach:      reach,
			AvgEngagement:   utils.RoundWithOneDecimalPlace(aggregating.Rate(float64(engagement), float64(len(group)))),
			EngagementRate:  utils.RoundWithTwoDecimalPlace(aggregating.Percent(float64(engagement), float64(reach))),
			TopPost:         aggregating.MaxBy(group, interactions),
		}
	}

	return map[string]any{
		"period": fmt.Sprintf("Last %d days", days),
		"overview": map[string]any{
			"total_posts":     len(posts),
			"total_platforms": len(performance),
			"avg_daily_posts": utils.RoundWithOneDecimalPlace(aggregating.Rate(float64(len(posts)), float64(days))),
		},
		"platform_performance": performance,
		"top_performers":       aggregating.TopN(posts, socialTopPosts, interactions),
	}
}

type PlatformTotals struct {
	Campaigns   int     `json:"campaigns"`
	Spend       float64 `json:"spend"`
	Conversions int     `json:"conversions"`
	Clicks      int     `json:"clicks"`
	Impressions int     `json:"impressions"`
}

// AdPerformance consolida todas as campanhas por rede
func (s *Service) AdPerformance(ctx context.Context) map[string]any {
	campaigns := s.records.AdCampaigns(ctx, domain.CampaignFilter{})

	spend := aggregating.Sum(campaigns, func(c domain.AdCampaign) float64 { return c.Spent })
	conversions := aggregating.Sum(campaigns, func(c domain.AdCampaign) int { return c.Conversions })
	clicks := aggregating.Sum(campaigns, func(c domain.AdCampaign) int { return c.Clicks })
	impressions := aggregating.Sum(campaigns, func(c domain.AdCampaign) int { return c.Impressions })

	breakdown := make(map[string]PlatformTotals)
	for platform, group := range aggregating.GroupBy(campaigns, func(c domain.AdCampaign) string {
		return cmp.Or(string(c.Platform), "unknown")
	}) {
		breakdown[platform] = PlatformTotals{
			Campaigns:   len(group),
			Spend:       aggregating.Sum(group, func(c domain.AdCampaign) float64 { return c.Spent }),
			Conversions: aggregating.Sum(group, func(c domain.AdCampaign) int { return c.Conversions }),
			Clicks:      aggregating.Sum(group, func(c domain.AdCampaign) int { return c.Clicks }),
			Impressions: aggregating.Sum(group, func(c domain.AdCampaign) int { return c.Impressions }),
		}
	}

	platforms := aggregating.SortedKeys(breakdown)
	strongest := aggregating.MaxBy(platforms, func(p string) float64 { return float64(breakdown[p].Conversions) })
	priciest := aggregating.MaxBy(platforms, func(p string) float64 { return breakdown[p].Spend })

	return map[string]any{
		"overview": map[string]any{
			"total_campaigns":     len(campaigns),
			"active_campaigns":    aggregating.Count(campaigns, domain.AdCampaign.IsActive),
			"total_spend":         spend,
			"total_conversions":   conversions,
			"avg_cpc":             utils.RoundWithTwoDecimalPlace(aggregating.Rate(spend, float64(clicks))),
			"avg_ctr":             utils.RoundWithTwoDecimalPlace(aggregating.Percent(float64(clicks), float64(impressions))),
			"avg_conversion_rate": utils.RoundWithTwoDecimalPlace(aggregating.Percent(float64(conversions), float64(clicks))),
		},
		"platform_breakdown": breakdown,
		"top_campaigns":      aggregating.TopN(campaigns, topCampaigns, func(c domain.AdCampaign) float64 { return c.ROAS }),
		"performance_trends": map[string]any{
			"best_performing_platform": deref(strongest),
			"most_expensive_platform":  deref(priciest),
		},
	}
}

func deref(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

type ROIPoint struct {
	Date       time.Time `json:"date"`
	ROI        float64   `json:"roi"`
	Revenue    float64   `json:"revenue"`
	Investment float64   `json:"investment"`
}

// ROIAnalysis cruza receita, despesas de caixa e campanhas; as três leituras são paralelas
func (s *Service) ROIAnalysis(ctx context.Context, days int) map[string]any {
	now := s.now()

	var (
		metrics   []domain.BusinessMetric
		campaigns []domain.AdCampaign
		entries   []domain.CashFlowEntry
		wg        sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		metrics = s.records.BusinessMetrics(ctx, domain.MetricsForLastDays(days, now))
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

	totalRevenue := aggregating.Sum(metrics, revenue)
	investment := aggregating.Sum(aggregating.Filter(entries, domain.CashFlowEntry.IsExpense), func(e domain.CashFlowEntry) float64 {
		return e.Amount
	})
	overall := aggregating.Rate(totalRevenue-investment, investment)

	adSpend := aggregating.Sum(campaigns, func(c domain.AdCampaign) float64 { return c.Spent })
	adConversions := aggregating.Sum(campaigns, func(c domain.AdCampaign) int { return c.Conversions })
	adRevenue := float64(adConversions * avgOrderValue)

	// os seis registros mais recentes em ordem cronológica
	recent := aggregating.Limit(newestFirst(metrics), roiTrendPoints)
	slices.Reverse(recent)

	trend := make([]ROIPoint, len(recent))
	for i, m := range recent {
		trend[i] = ROIPoint{
			Date:       m.Date,
			ROI:        utils.RoundWithThreeDecimalPlace(aggregating.Rate(m.Revenue-m.Expenses, m.Expenses)),
			Revenue:    m.Revenue,
			Investment: m.Expenses,
		}
	}

	direction := "declining"
	if len(trend) >= 2 && trend[len(trend)-1].ROI > trend[0].ROI {
		direction = "improving"
	}

	return map[string]any{
		"period": fmt.Sprintf("Last %d days", days),
		"overall_roi": map[string]any{
			"roi_ratio":        utils.RoundWithThreeDecimalPlace(overall),
			"roi_percentage":   utils.RoundWithTwoDecimalPlace(overall * 100),
			"total_revenue":    totalRevenue,
			"total_investment": investment,
			"net_profit":       totalRevenue - investment,
		},
		"advertising_roi": map[string]any{
			"ad_roi":            utils.RoundWithThreeDecimalPlace(aggregating.Rate(adRevenue-adSpend, adSpend)),
			"ad_spend":          adSpend,
			"ad_revenue":        adRevenue,
			"conversion_value":  avgOrderValue,
			"total_conversions": adConversions,
		},
		"trends": trend,
		"insights": map[string]any{
			"best_month":            aggregating.MaxBy(trend, func(p ROIPoint) float64 { return p.ROI }),
			"roi_trend":             direction,
			"investment_efficiency": utils.RoundWithTwoDecimalPlace(aggregating.Rate(totalRevenue, investment)),
		},
	}
}

// DashboardSummary alimenta os widgets do painel; as três leituras são paralelas
func (s *Service) DashboardSummary(ctx context.Context) map[string]any {
	now := s.now()

	var (
		metrics   []domain.BusinessMetric
		posts     []domain.SocialPost
		campaigns []domain.AdCampaign
		wg        sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		metrics = s.records.BusinessMetrics(ctx, domain.MetricsForLastDays(30, now))
	}()
	go func() {
		defer wg.Done()
		posts = s.records.SocialPosts(ctx, domain.PostFilter{Limit: summaryPostsWindow})
	}()
	go func() {
		defer wg.Done()
		campaigns = s.records.AdCampaigns(ctx, domain.CampaignFilter{})
	}()
	wg.Wait()

	posted := aggregating.Filter(posts, domain.SocialPost.IsPosted)

	return map[string]any{
		"key_metrics": map[string]any{
			"revenue":          aggregating.Sum(metrics, revenue),
			"social_reach":     aggregating.Sum(posted, func(p domain.SocialPost) int { return p.Engagement.Reach }),
			"active_campaigns": aggregating.Count(campaigns, domain.AdCampaign.IsActive),
			"content_pieces":   len(posted),
		},
		"quick_stats": map[string]string{
			"revenue_growth":       "+15.5%",
			"engagement_rate":      "8.3%",
			"roi_improvement":      "+12.1%",
			"campaign_performance": "Above average",
		},
		"last_updated": now,
	}
}
