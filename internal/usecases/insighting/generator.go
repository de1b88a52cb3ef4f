package insighting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/llm"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

var platformInstructions = map[domain.Platform]string{
	domain.PlatformInstagram: "Generate visually appealing content with emojis and relevant hashtags. Keep it engaging and authentic.",
	domain.PlatformLinkedIn:  "Create professional, business-focused content that provides value. Include industry insights.",
	domain.PlatformTwitter:   "Write concise, punchy content under 280 characters. Make it shareable and trending-worthy.",
	domain.PlatformFacebook:  "Create engaging, community-focused content that encourages interaction and sharing.",
}

var defaultPostingTimes = map[domain.Platform][]string{
	domain.PlatformInstagram: {"10:00", "14:00", "19:00"},
	domain.PlatformLinkedIn:  {"08:00", "12:00", "17:00"},
	domain.PlatformTwitter:   {"09:00", "13:00", "18:00"},
	domain.PlatformFacebook:  {"10:00", "15:00", "20:00"},
}

var bestDays = []string{"Tuesday", "Wednesday", "Thursday"}

const (
	roiFallbackBase       = 1.0
	roiFallbackGrowth     = 0.05
	roiFallbackConfidence = 0.7
	roiForecastMonths     = 6
	maxCompetitorsSent    = 5
	maxHistoricalPeriods  = 12
)

// Gerador de textos e análises sobre o modelo de linguagem. Toda falha do modelo
// é absorvida aqui e convertida em conteúdo de fallback.
type Generator struct {
	llm llm.Integrator
	now func() time.Time
}

func NewGenerator(integrator llm.Integrator) *Generator {
	return &Generator{llm: integrator, now: time.Now}
}

// Configured indica se existe um provedor de IA configurado
func (g *Generator) Configured() bool {
	return g.llm.Configured()
}

// SocialContent gera o texto de uma publicação
func (g *Generator) SocialContent(ctx context.Context, req reporting.ContentRequest, includeHashtags bool) reporting.SocialContent {
	system := fmt.Sprintf(`You are a social media expert creating content for %s.
%s
Tone: %s
Include hashtags: %t

Return JSON with: title, content, hashtags (array), platform, tone, estimated_engagement (1-10)`,
		req.Platform, platformInstructions[domain.Platform(req.Platform)], req.Tone, includeHashtags)

	raw, err := g.llm.Generate(ctx, system, req.Prompt, 0.7, 500)
	if err != nil {
		log.ForContext(ctx).WithError(wrapGeneration(err, "conteúdo social")).Warn("AI: usando conteúdo de fallback")
		return reporting.ErrorContent(req, g.now())
	}

	return reporting.ResolveContent(req, raw, g.now())
}

// Audience é o perfil de audiência usado na análise de horários
type Audience struct {
	Size        int      `json:"size"`
	Timezone    string   `json:"timezone"`
	AgeGroup    string   `json:"age_group"`
	ActiveHours []string `json:"active_hours"`
}

type PostingTimes struct {
	RecommendedTimes []string  `json:"recommended_times"`
	BestDays         []string  `json:"best_days"`
	Reasoning        string    `json:"reasoning"`
	Confidence       float64   `json:"confidence"`
	AnalyzedAt       time.Time `json:"analyzed_at"`
	Error            string    `json:"error,omitempty"`
}

// OptimalPostingTimes recomenda horários a partir da audiência e das publicações já feitas
func (g *Generator) OptimalPostingTimes(ctx context.Context, platform domain.Platform, audience Audience, history []domain.SocialPost) PostingTimes {
	summary := map[string]any{
		"platform":         platform,
		"audience_size":    audience.Size,
		"primary_timezone": audience.Timezone,
		"age_group":        audience.AgeGroup,
		"recent_posts":     len(history),
		"avg_engagement": aggregating.Rate(
			float64(aggregating.Sum(history, func(p domain.SocialPost) int { return p.Engagement.Interactions() })),
			float64(len(history)),
		),
	}

	system := `You are a social media analytics expert. Analyze the data and recommend optimal posting times.
Consider audience behavior, platform algorithms, and historical performance.
Return JSON with: recommended_times (array of HH:MM), best_days (array), reasoning, confidence (0-1)`

	raw, err := g.llm.Generate(ctx, system, "Analyze this data: "+utils.CompactJson(summary), 0.3, 400)
	if err != nil {
		log.ForContext(ctx).WithError(wrapGeneration(err, "horários")).Warn("AI: usando horários padrão")
		return PostingTimes{
			RecommendedTimes: postingTimesFor(platform),
			BestDays:         append([]string(nil), bestDays...),
			Reasoning:        "General best practices for social media posting",
			Confidence:       0.6,
			AnalyzedAt:       g.now(),
			Error:            "Fallback due to API error",
		}
	}

	parsed, err := reporting.ParseGenerated[PostingTimes](raw)
	if err != nil {
		return PostingTimes{
			RecommendedTimes: postingTimesFor(platform),
			BestDays:         append([]string(nil), bestDays...),
			Reasoning:        "Based on general platform best practices and audience behavior patterns",
			Confidence:       0.7,
			AnalyzedAt:       g.now(),
		}
	}

	parsed.AnalyzedAt = g.now()
	return parsed
}

func postingTimesFor(platform domain.Platform) []string {
	if times, ok := defaultPostingTimes[platform]; ok {
		return append([]string(nil), times...)
	}
	return []string{"10:00", "14:00", "18:00"}
}

// BusinessContext e MarketContext são os dados enviados ao modelo para gerar estratégias
type BusinessContext struct {
	Revenue     float64 `json:"revenue"`
	GrowthRate  float64 `json:"growth_rate"`
	Industry    string  `json:"industry"`
	CompanySize string  `json:"company_size"`
}

type MarketContext struct {
	Trends      []string `json:"trends"`
	Competition string   `json:"competition"`
}

// DefaultBusinessContext é o contexto usado quando não há dados informados pelo cliente
func DefaultBusinessContext(revenue float64) (BusinessContext, MarketContext) {
	return BusinessContext{
			Revenue:     revenue,
			GrowthRate:  15.5,
			Industry:    "technology",
			CompanySize: "small",
		}, MarketContext{
			Trends:      []string{"AI adoption", "Remote work", "Digital transformation"},
			Competition: "medium",
		}
}

// BusinessContextFrom lê o contexto de um payload livre, com os mesmos padrões do modelo
func BusinessContextFrom(business, market map[string]any) (BusinessContext, MarketContext) {
	bc := BusinessContext{Industry: "technology", CompanySize: "small"}
	mc := MarketContext{Trends: []string{}, Competition: "medium"}

	if v, ok := business["revenue"].(float64); ok {
		bc.Revenue = v
	}
	if v, ok := business["growth_rate"].(float64); ok {
		bc.GrowthRate = v
	}
	if v, ok := business["industry"].(string); ok && v != "" {
		bc.Industry = v
	}
	if v, ok := business["company_size"].(string); ok && v != "" {
		bc.CompanySize = v
	}
	if v, ok := market["trends"].([]any); ok {
		for _, trend := range v {
			if s, ok := trend.(string); ok {
				mc.Trends = append(mc.Trends, s)
			}
		}
	}
	if v, ok := market["competition"].(string); ok && v != "" {
		mc.Competition = v
	}

	return bc, mc
}

type Strategy struct {
	Category       string    `json:"category"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ActionItems    []string  `json:"action_items"`
	Priority       string    `json:"priority"`
	ExpectedImpact string    `json:"expected_impact"`
	Timeline       string    `json:"timeline"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// BusinessStrategy gera recomendações estratégicas. Falha na chamada resulta em lista vazia;
// resposta fora do formato resulta nas duas estratégias padrão.
func (g *Generator) BusinessStrategy(ctx context.Context, business BusinessContext, market MarketContext) []Strategy {
	data := map[string]any{
		"revenue":           business.Revenue,
		"growth_rate":       business.GrowthRate,
		"industry":          business.Industry,
		"company_size":      business.CompanySize,
		"market_trends":     market.Trends,
		"competition_level": market.Competition,
	}

	system := `You are a business strategy consultant. Analyze the business and market data to provide actionable strategic recommendations.
Return an array of JSON objects with: category, title, description, action_items (array), priority (high/medium/low), expected_impact, timeline`

	raw, err := g.llm.Generate(ctx, system, "Provide strategic recommendations for this business: "+utils.CompactJson(data), 0.5, 1000)
	if err != nil {
		log.ForContext(ctx).WithError(wrapGeneration(err, "estratégia")).Warn("AI: nenhuma estratégia gerada")
		return []Strategy{}
	}

	now := g.now()
	strategies, err := reporting.ParseGenerated[[]Strategy](raw)
	if err != nil {
		return fallbackStrategies(now)
	}

	for i := range strategies {
		strategies[i].GeneratedAt = now
	}
	return strategies
}

func fallbackStrategies(now time.Time) []Strategy {
	return []Strategy{
		{
			Category:    "growth",
			Title:       "Digital Marketing Optimization",
			Description: "Enhance online presence and customer acquisition through improved digital marketing strategies",
			ActionItems: []string{
				"Implement SEO best practices",
				"Expand social media presence",
				"Launch targeted ad campaigns",
				"Create valuable content marketing",
			},
			Priority:       "high",
			ExpectedImpact: "25-40% increase in leads and brand awareness",
			Timeline:       "3-6 months",
			GeneratedAt:    now,
		},
		{
			Category:    "efficiency",
			Title:       "Process Automation",
			Description: "Automate repetitive tasks to improve efficiency and reduce costs",
			ActionItems: []string{
				"Identify manual processes",
				"Implement automation tools",
				"Train team on new systems",
				"Monitor and optimize workflows",
			},
			Priority:       "medium",
			ExpectedImpact: "15-25% reduction in operational costs",
			Timeline:       "2-4 months",
			GeneratedAt:    now,
		},
	}
}

type CompetitorAnalysis struct {
	MarketPosition       string    `json:"market_position,omitempty"`
	KeyCompetitors       []string  `json:"key_competitors,omitempty"`
	Opportunities        []string  `json:"opportunities,omitempty"`
	Threats              []string  `json:"threats,omitempty"`
	Recommendations      []string  `json:"recommendations,omitempty"`
	CompetitiveAdvantage string    `json:"competitive_advantage,omitempty"`
	Error                string    `json:"error,omitempty"`
	AnalyzedAt           time.Time `json:"analyzed_at"`
}

// AnalyzeCompetitors envia ao modelo no máximo cinco concorrentes
func (g *Generator) AnalyzeCompetitors(ctx context.Context, competitors []map[string]any, own map[string]any) CompetitorAnalysis {
	landscape := map[string]any{
		"own_business": map[string]any{
			"revenue":      valueOr(own, "revenue", 0),
			"market_share": valueOr(own, "market_share", 0),
			"strengths":    valueOr(own, "strengths", []any{}),
			"products":     valueOr(own, "products", []any{}),
		},
		"competitors": aggregating.Limit(competitors, maxCompetitorsSent),
	}

	system := `You are a competitive intelligence analyst. Analyze the competitive landscape and provide strategic insights.
Return JSON with: market_position, key_competitors (array), opportunities (array), threats (array), recommendations (array), competitive_advantage`

	raw, err := g.llm.Generate(ctx, system, "Analyze this competitive landscape: "+utils.CompactJson(landscape), 0.4, 800)
	if err != nil {
		log.ForContext(ctx).WithError(wrapGeneration(err, "concorrentes")).Warn("AI: análise de concorrentes indisponível")
		return CompetitorAnalysis{Error: "Analysis unavailable", AnalyzedAt: g.now()}
	}

	analysis, err := reporting.ParseGenerated[CompetitorAnalysis](raw)
	if err != nil {
		names := make([]string, 0, 3)
		for _, competitor := range aggregating.Limit(competitors, 3) {
			name, ok := competitor["name"].(string)
			if !ok {
				name = "Unknown"
			}
			names = append(names, name)
		}

		return CompetitorAnalysis{
			MarketPosition: "Competitive player with growth potential",
			KeyCompetitors: names,
			Opportunities: []string{
				"Underserved market segments",
				"Technology innovation gaps",
				"Customer service differentiation",
			},
			Threats: []string{
				"Increased competition",
				"Price pressure",
				"Market saturation",
			},
			Recommendations: []string{
				"Focus on unique value proposition",
				"Invest in customer relationships",
				"Leverage technology for competitive advantage",
			},
			CompetitiveAdvantage: "Agility and customer-focused approach",
			AnalyzedAt:           g.now(),
		}
	}

	analysis.Error = ""
	analysis.AnalyzedAt = g.now()
	return analysis
}

type ROIForecast struct {
	MonthlyForecast []float64 `json:"monthly_forecast,omitempty"`
	ConfidenceLevel *float64  `json:"confidence_level,omitempty"`
	KeyFactors      []string  `json:"key_factors,omitempty"`
	RiskAssessment  string    `json:"risk_assessment,omitempty"`
	Recommendations []string  `json:"recommendations,omitempty"`
	Error           string    `json:"error,omitempty"`
	ForecastedAt    time.Time `json:"forecasted_at"`
}

// Confidence retorna a confiança informada pelo modelo, 0.7 quando ausente, limitada a [0,1]
func (f ROIForecast) Confidence() float64 {
	if f.ConfidenceLevel == nil {
		return roiFallbackConfidence
	}
	return min(max(*f.ConfidenceLevel, 0), 1)
}

// ForecastROI projeta o ROI dos próximos seis meses
func (g *Generator) ForecastROI(ctx context.Context, historical, investments []map[string]any, conditions map[string]any) ROIForecast {
	var currentRevenue any = 0
	if len(historical) > 0 {
		currentRevenue = valueOr(historical[len(historical)-1], "revenue", 0)
	}

	recent := historical
	if len(recent) > maxHistoricalPeriods {
		recent = recent[len(recent)-maxHistoricalPeriods:]
	}

	data := map[string]any{
		"historical_performance": recent,
		"planned_investments":    investments,
		"market_conditions":      conditions,
		"current_revenue":        currentRevenue,
	}

	system := `You are a financial analyst. Analyze the data and forecast ROI for the next 6 months.
Return JSON with: monthly_forecast (array of 6 numbers), confidence_level (0-1), key_factors (array), risk_assessment, recommendations (array)`

	raw, err := g.llm.Generate(ctx, system, "Forecast ROI based on this data: "+utils.CompactJson(data), 0.3, 600)
	if err != nil {
		log.ForContext(ctx).WithError(wrapGeneration(err, "ROI")).Warn("AI: previsão de ROI indisponível")
		return ROIForecast{Error: "Forecast unavailable", ForecastedAt: g.now()}
	}

	forecast, err := reporting.ParseGenerated[ROIForecast](raw)
	if err != nil {
		confidence := roiFallbackConfidence
		return ROIForecast{
			MonthlyForecast: forecasting.ROIForecast(roiFallbackBase, roiFallbackGrowth, roiForecastMonths),
			ConfidenceLevel: &confidence,
			KeyFactors: []string{
				"Market conditions",
				"Investment strategy",
				"Competitive landscape",
				"Economic trends",
			},
			RiskAssessment: "Medium - subject to market volatility",
			Recommendations: []string{
				"Monitor key performance indicators",
				"Adjust strategy based on market feedback",
				"Diversify investment portfolio",
			},
			ForecastedAt: g.now(),
		}
	}

	forecast.Error = ""
	forecast.ForecastedAt = g.now()
	return forecast
}

func valueOr(m map[string]any, key string, fallback any) any {
	if v, ok := m[key]; ok && v != nil {
		return v
	}
	return fallback
}
