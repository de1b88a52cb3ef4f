package advertising

import (
	"context"
	"fmt"
	"maps"
	"strings"
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
	topPerformers       = 5
	underperformers     = 3
	lowROASThreshold    = 2.0
	suggestedDailySpend = 95
)

// CampaignStore é o acesso às campanhas usado pelo serviço
type CampaignStore interface {
	AdCampaigns(ctx context.Context, filter domain.CampaignFilter) []domain.AdCampaign
	AdCampaign(ctx context.Context, id string) (*domain.AdCampaign, bool)
	CreateAdCampaign(ctx context.Context, campaign *domain.AdCampaign) *domain.AdCampaign
	UpdateAdCampaign(ctx context.Context, id string, update domain.CampaignUpdate) (*domain.AdCampaign, bool)
}

type Service struct {
	store     CampaignStore
	generator *insighting.Generator
	queue     scheduler.Enqueuer
	now       func() time.Time
}

func NewService(store CampaignStore, generator *insighting.Generator, queue scheduler.Enqueuer) *Service {
	return &Service{
		store:     store,
		generator: generator,
		queue:     queue,
		now:       time.Now,
	}
}

type CampaignQuery struct {
	Platform *string
	Status   *string
	Limit    int
}

type PlatformSummary struct {
	Count       int     `json:"count"`
	Spend       float64 `json:"spend"`
	Conversions int     `json:"conversions"`
	AvgROAS     float64 `json:"avg_roas"`
}

// ListCampaigns lista as campanhas com totais e o resumo por rede
func (s *Service) ListCampaigns(ctx context.Context, q CampaignQuery) map[string]any {
	filter := domain.CampaignFilter{Platform: q.Platform, Limit: q.Limit}
	if q.Status != nil {
		status := domain.CampaignStatus(*q.Status)
		filter.Status = &status
	}

	campaigns := s.store.AdCampaigns(ctx, filter)
	totals := totalsOf(campaigns)

	env := reporting.NewEnvelope().
		AddSummary("total_campaigns", len(campaigns)).
		AddSummary("total_spend", utils.RoundWithTwoDecimalPlace(totals.spend)).
		AddSummary("total_conversions", totals.conversions).
		AddSummary("avg_cpc", utils.RoundWithTwoDecimalPlace(aggregating.Rate(totals.spend, float64(totals.clicks)))).
		AddSummary("avg_ctr", utils.RoundWithTwoDecimalPlace(aggregating.Percent(float64(totals.clicks), float64(totals.impressions)))).
		AddSummary("avg_roas", utils.RoundWithTwoDecimalPlace(totals.roas(campaigns))).
		Filter("platform", reporting.Optional(q.Platform)).
		Filter("status", reporting.Optional(q.Status)).
		Filter("limit", q.Limit)

	for platform, group := range aggregating.GroupBy(campaigns, platformOf) {
		t := totalsOf(group)
		env.AddBreakdown(platform, PlatformSummary{
			Count:       len(group),
			Spend:       t.spend,
			Conversions: t.conversions,
			AvgROAS:     utils.RoundWithTwoDecimalPlace(t.roas(group)),
		})
	}

	return env.Body("summary", "platform_breakdown", map[string]any{"campaigns": campaigns})
}

func platformOf(c domain.AdCampaign) string {
	if c.Platform == "" {
		return "unknown"
	}
	return string(c.Platform)
}

type totals struct {
	spend       float64
	attributed  float64
	clicks      int
	impressions int
	conversions int
}

func totalsOf(campaigns []domain.AdCampaign) totals {
	return totals{
		spend:       aggregating.Sum(campaigns, func(c domain.AdCampaign) float64 { return c.Spent }),
		attributed:  aggregating.Sum(campaigns, domain.AdCampaign.AttributedRevenue),
		clicks:      aggregating.Sum(campaigns, func(c domain.AdCampaign) int { return c.Clicks }),
		impressions: aggregating.Sum(campaigns, func(c domain.AdCampaign) int { return c.Impressions }),
		conversions: aggregating.Sum(campaigns, func(c domain.AdCampaign) int { return c.Conversions }),
	}
}

// roas é ponderado pelo gasto; sem gasto algum cai para a média simples das campanhas
func (t totals) roas(campaigns []domain.AdCampaign) float64 {
	if t.spend > 0 {
		return t.attributed / t.spend
	}
	return aggregating.Mean(campaigns, func(c domain.AdCampaign) float64 { return c.ROAS })
}

// CreateCampaign valida e grava a campanha em draft
func (s *Service) CreateCampaign(ctx context.Context, draft domain.CampaignDraft) (*domain.AdCampaign, error) {
	campaign, err := domain.NewAdCampaign(draft)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"platform": string(campaign.Platform),
		"budget":   campaign.Budget,
	}).Info("Campanhas: campanha criada")

	return s.store.CreateAdCampaign(ctx, campaign), nil
}

// CampaignDetails é a campanha acrescida dos indicadores de execução do orçamento
type CampaignDetails struct {
	domain.AdCampaign
	BudgetUtilization float64 `json:"budget_utilization"`
	RemainingBudget   float64 `json:"remaining_budget"`
	DaysRunning       int     `json:"days_running"`
	AvgDailySpend     float64 `json:"avg_daily_spend"`
}

func (s *Service) CampaignDetails(ctx context.Context, id string) (*CampaignDetails, error) {
	campaign, found := s.store.AdCampaign(ctx, id)
	if !found {
		return nil, ErrCampaignNotFound
	}

	start := campaign.CreatedAt
	if campaign.StartDate != nil {
		start = *campaign.StartDate
	}
	days := max(utils.DaysBetween(start, s.now()), 0)

	return &CampaignDetails{
		AdCampaign:        *campaign,
		BudgetUtilization: utils.RoundWithOneDecimalPlace(aggregating.Percent(campaign.Spent, campaign.Budget)),
		RemainingBudget:   utils.RoundWithTwoDecimalPlace(campaign.Budget - campaign.Spent),
		DaysRunning:       days,
		AvgDailySpend:     utils.RoundWithTwoDecimalPlace(campaign.Spent/float64(max(days, 1))),
	}, nil
}

type UpdateResult struct {
	Campaign  *domain.AdCampaign
	Applied   map[string]any
	UpdatedAt time.Time
}

// UpdateCampaign valida e aplica orçamento, status e público
func (s *Service) UpdateCampaign(ctx context.Context, id string, update domain.CampaignUpdate) (*UpdateResult, error) {
	changes, err := update.Changes()
	if err != nil {
		return nil, err
	}

	campaign, found := s.store.UpdateAdCampaign(ctx, id, update)
	if !found {
		return nil, ErrCampaignNotFound
	}

	return &UpdateResult{Campaign: campaign, Applied: changes, UpdatedAt: s.now()}, nil
}

// OptimizeCampaign enfileira a otimização; o resultado fica disponível no job
func (s *Service) OptimizeCampaign(ctx context.Context, id string) (*domain.Job, error) {
	if _, found := s.store.AdCampaign(ctx, id); !found {
		return nil, ErrCampaignNotFound
	}

	return s.queue.Submit(ctx, domain.JobCampaignOptimization, map[string]string{"campaign_id": id})
}

// Optimize é o handler do job de otimização de campanha
func (s *Service) Optimize(ctx context.Context, job *domain.Job) (any, error) {
	id := job.Params["campaign_id"]

	campaign, found := s.store.AdCampaign(ctx, id)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrCampaignNotFound, id)
	}

	log.ForContext(ctx).WithField("campaign_id", id).Info("Campanhas: otimização concluída")

	return map[string]any{
		"campaign_id": id,
		"current_performance": map[string]any{
			"ctr":         campaign.CTR,
			"cpc":         campaign.CPC,
			"roas":        campaign.ROAS,
			"conversions": campaign.Conversions,
		},
		"bid_adjustments": []map[string]string{
			{"action": "increase_bid", "audience_segment": "25-35 business owners", "adjustment": "+15%"},
			{"action": "decrease_bid", "audience_segment": "mobile users", "adjustment": "-10%"},
		},
		"targeting_suggestions": []string{
			"Add 'startup founders' to interests",
			"Exclude users who visited pricing page but didn't convert",
			"Expand to include 'small business' keyword",
		},
		"creative_recommendations": []string{
			"Test video creative with customer testimonials",
			"A/B test headline: 'Transform Your Business with AI'",
			"Add urgency element: 'Limited time offer'",
		},
		"budget_allocation": map[string]any{
			"suggested_daily_budget": suggestedDailySpend,
			"reasoning":              "Increase budget during peak performance hours (2-4 PM)",
		},
		"expected_improvements": map[string]string{
			"ctr_improvement":  "+12%",
			"cpc_reduction":    "-8%",
			"roas_improvement": "+18%",
		},
	}, nil
}

type PlatformPerformance struct {
	Campaigns      int     `json:"campaigns"`
	Spend          float64 `json:"spend"`
	Conversions    int     `json:"conversions"`
	Clicks         int     `json:"clicks"`
	Impressions    int     `json:"impressions"`
	AvgCPC         float64 `json:"avg_cpc"`
	AvgCTR         float64 `json:"avg_ctr"`
	ConversionRate float64 `json:"conversion_rate"`
	AvgROAS        float64 `json:"avg_roas"`
}

type BudgetUsage struct {
	CampaignName       string  `json:"campaign_name"`
	Budget             float64 `json:"budget"`
	Spent              float64 `json:"spent"`
	Remaining          float64 `json:"remaining"`
	UtilizationPercent float64 `json:"utilization_percent"`
	PerformanceScore   float64 `json:"performance_score"`
}

// PerformanceAnalytics compara as campanhas criadas no período por rede, com os extremos de ROAS
func (s *Service) PerformanceAnalytics(ctx context.Context, days int) map[string]any {
	since := s.now().AddDate(0, 0, -days)
	campaigns := s.store.AdCampaigns(ctx, domain.CampaignFilter{Since: &since})
	t := totalsOf(campaigns)

	performance := make(map[string]PlatformPerformance)
	for platform, group := range aggregating.GroupBy(campaigns, platformOf) {
		g := totalsOf(group)
		performance[platform] = PlatformPerformance{
			Campaigns:      len(group),
			Spend:          g.spend,
			Conversions:    g.conversions,
			Clicks:         g.clicks,
			Impressions:    g.impressions,
			AvgCPC:         utils.RoundWithTwoDecimalPlace(aggregating.Rate(g.spend, float64(g.clicks))),
			AvgCTR:         utils.RoundWithTwoDecimalPlace(aggregating.Percent(float64(g.clicks), float64(g.impressions))),
			ConversionRate: utils.RoundWithTwoDecimalPlace(aggregating.Percent(float64(g.conversions), float64(g.clicks))),
			AvgROAS:        utils.RoundWithTwoDecimalPlace(g.roas(group)),
		}
	}

	roas := func(c domain.AdCampaign) float64 { return c.ROAS }

	usage := make([]BudgetUsage, 0, len(campaigns))
	for _, c := range campaigns {
		var utilization float64
		if c.Budget > 0 {
			utilization = c.Spent / c.Budget * 100
		}
		usage = append(usage, BudgetUsage{
			CampaignName:       c.Name,
			Budget:             c.Budget,
			Spent:              c.Spent,
			Remaining:          c.Budget - c.Spent,
			UtilizationPercent: utils.RoundWithOneDecimalPlace(utilization),
			PerformanceScore:   c.ROAS,
		})
	}

	return map[string]any{
		"period": fmt.Sprintf("Last %d days", days),
		"overview": map[string]any{
			"total_campaigns":         len(campaigns),
			"total_spend":             utils.RoundWithTwoDecimalPlace(t.spend),
			"total_conversions":       t.conversions,
			"total_clicks":            t.clicks,
			"total_impressions":       t.impressions,
			"overall_cpc":             utils.RoundWithTwoDecimalPlace(aggregating.Rate(t.spend, float64(t.clicks))),
			"overall_ctr":             utils.RoundWithTwoDecimalPlace(aggregating.Percent(float64(t.clicks), float64(t.impressions))),
			"overall_conversion_rate": utils.RoundWithTwoDecimalPlace(aggregating.Percent(float64(t.conversions), float64(t.clicks))),
		},
		"platform_performance": performance,
		"top_performers":       aggregating.TopN(campaigns, topPerformers, roas),
		"underperformers":      aggregating.BottomN(campaigns, underperformers, roas),
		"budget_analysis":      aggregating.TopN(usage, len(usage), func(u BudgetUsage) float64 { return u.PerformanceScore }),
		"insights": map[string]any{
			"best_performing_platform": bestPlatform(performance, func(p PlatformPerformance) float64 { return p.AvgROAS }),
			"most_cost_effective":      bestPlatform(performance, func(p PlatformPerformance) float64 { return p.ConversionRate }),
			"optimization_opportunities": aggregating.Count(campaigns, func(c domain.AdCampaign) bool {
				return c.ROAS < lowROASThreshold
			}),
		},
	}
}

// bestPlatform percorre as redes em ordem alfabética para que empates sejam determinísticos
func bestPlatform(performance map[string]PlatformPerformance, score func(PlatformPerformance) float64) any {
	names := aggregating.SortedKeys(performance)
	best := aggregating.MaxBy(names, func(name string) float64 { return score(performance[name]) })
	if best == nil {
		return nil
	}
	return *best
}

var platformSpecs = map[domain.Platform]map[string]any{
	domain.PlatformFacebook: {
		"image_ratio":    "1.91:1",
		"video_length":   "15-60 seconds",
		"text_limit":     125,
		"headline_limit": 40,
	},
	domain.PlatformInstagram: {
		"image_ratio":   "1:1 or 4:5",
		"video_length":  "15-30 seconds",
		"text_limit":    125,
		"hashtag_limit": 30,
	},
	domain.PlatformGoogle: {
		"headline_limit":    30,
		"description_limit": 90,
		"extensions":        "sitelinks, callouts",
	},
	domain.PlatformLinkedIn: {
		"image_ratio":       "1.91:1",
		"text_limit":        150,
		"professional_tone": true,
	},
}

const defaultAdDescription = "Boost productivity and grow your business with our intelligent automation platform. Join thousands of entrepreneurs who are scaling faster with AI."

type CreativeRequest struct {
	ProductDescription string `json:"product_description"`
	TargetAudience     string `json:"target_audience"`
	Platform           string `json:"platform"`
	CampaignObjective  string `json:"campaign_objective"`
}

type CreativeVariation struct {
	Type           string `json:"type"`
	Content        string `json:"content"`
	CharacterCount int    `json:"character_count"`
}

func variation(kind, content string) CreativeVariation {
	return CreativeVariation{Type: kind, Content: content, CharacterCount: len([]rune(content))}
}

// GenerateCreative gera as variações de anúncio com a descrição escrita pela IA
func (s *Service) GenerateCreative(ctx context.Context, req CreativeRequest) (map[string]any, error) {
	platform, err := domain.ParseCreativePlatform(req.Platform)
	if err != nil {
		return nil, err
	}
	if req.CampaignObjective == "" {
		req.CampaignObjective = "conversion"
	}

	adCopy := s.generator.SocialContent(ctx, reporting.ContentRequest{
		Prompt:   fmt.Sprintf("Write ad copy for %s targeting %s", req.ProductDescription, req.TargetAudience),
		Platform: string(platform),
		Tone:     "persuasive",
	}, false)

	description := adCopy.Content
	if adCopy.Error != "" || strings.TrimSpace(description) == "" {
		description = defaultAdDescription
	}

	specs := map[string]any{}
	if spec, ok := platformSpecs[platform]; ok {
		specs = maps.Clone(spec)
	}

	return map[string]any{
		"creative_variations": []CreativeVariation{
			variation("headline_primary", "Transform Your Business with AI-Powered Automation"),
			variation("headline_secondary", "Save 20+ Hours Weekly with Smart Business Tools"),
			variation("description", description),
			variation("call_to_action", "Start Free Trial"),
		},
		"platform_specifications": specs,
		"targeting_suggestions": []string{
			"Age: 25-54",
			"Interests: " + strings.ToLower(req.TargetAudience),
			"Behaviors: Business decision makers",
			"Custom audiences: Website visitors, email subscribers",
		},
		"optimization_tips": []string{
			"Test multiple headline variations",
			"Use high-contrast, eye-catching visuals",
			"Include social proof or testimonials",
			"Create urgency with limited-time offers",
			fmt.Sprintf("Optimize for %s objective", req.CampaignObjective),
		},
		"generated_at":     s.now(),
		"input_parameters": req,
	}, nil
}
