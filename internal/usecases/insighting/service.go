package insighting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

const (
	strategyConfidence   = 0.85
	competitorConfidence = 0.80
	dashboardInsights    = 10
	refreshWindowDays    = 30

	SourceGenerated      = "ai_generated"
	SourceRefresh        = "ai_generated_refresh"
	SourceStrategy       = "ai_strategy_generator"
	SourceCompetitor     = "competitor_analysis"
	SourceROIForecasting = "roi_forecasting"
)

// InsightStore é o acesso aos registros usado pelos insights
type InsightStore interface {
	AIInsights(ctx context.Context, filter domain.InsightFilter) []domain.AIInsight
	SaveAIInsight(ctx context.Context, insight *domain.AIInsight) *domain.AIInsight
	BusinessMetrics(ctx context.Context, filter domain.MetricFilter) []domain.BusinessMetric
}

type Service struct {
	store     InsightStore
	generator *Generator
	now       func() time.Time
}

func NewService(store InsightStore, generator *Generator) *Service {
	return &Service{
		store:     store,
		generator: generator,
		now:       time.Now,
	}
}

func (s *Service) Generator() *Generator {
	return s.generator
}

type StrategyResult struct {
	Strategies  []Strategy
	GeneratedAt time.Time
}

// GenerateStrategy gera e grava cada estratégia como insight
func (s *Service) GenerateStrategy(ctx context.Context, business, market map[string]any) (*StrategyResult, error) {
	bc, mc := BusinessContextFrom(business, market)

	strategies := s.generator.BusinessStrategy(ctx, bc, mc)
	if err := s.saveStrategies(ctx, strategies, SourceStrategy); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerateStrategy, err)
	}

	return &StrategyResult{Strategies: strategies, GeneratedAt: s.now()}, nil
}

func (s *Service) saveStrategies(ctx context.Context, strategies []Strategy, source string) error {
	for _, strategy := range strategies {
		title := strategy.Title
		if title == "" {
			title = "Business Strategy"
		}
		if err := s.save(ctx, domain.InsightStrategy, title, strategy.Description, strategyConfidence, source); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) save(ctx context.Context, insightType domain.InsightType, title, content string, confidence float64, source string) error {
	insight, err := domain.NewAIInsight(insightType, title, content, confidence, source)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSaveInsight, err)
	}
	s.store.SaveAIInsight(ctx, insight)
	return nil
}

// AnalyzeCompetitors gera a análise e grava um insight de concorrência
func (s *Service) AnalyzeCompetitors(ctx context.Context, competitors []map[string]any, own map[string]any) (CompetitorAnalysis, error) {
	analysis := s.generator.AnalyzeCompetitors(ctx, competitors, own)

	position := analysis.MarketPosition
	if position == "" {
		position = "Unknown"
	}

	if err := s.save(ctx, domain.InsightCompetitor, "Competitive Analysis", "Market position: "+position, competitorConfidence, SourceCompetitor); err != nil {
		return CompetitorAnalysis{}, fmt.Errorf("%w: %w", ErrAnalyzeCompetitors, err)
	}

	return analysis, nil
}

// ForecastROI gera a previsão e grava um insight com a confiança informada
func (s *Service) ForecastROI(ctx context.Context, historical, investments []map[string]any, conditions map[string]any) (ROIForecast, error) {
	forecast := s.generator.ForecastROI(ctx, historical, investments, conditions)
	confidence := forecast.Confidence()

	content := fmt.Sprintf("6-month forecast with %.1f%% confidence", confidence*100)
	if err := s.save(ctx, domain.InsightForecast, "ROI Forecast", content, confidence, SourceROIForecasting); err != nil {
		return ROIForecast{}, fmt.Errorf("%w: %w", ErrForecastROI, err)
	}

	return forecast, nil
}

// InsightsByType valida o tipo e lista os insights mais recentes
func (s *Service) InsightsByType(ctx context.Context, insightType string, limit int) ([]domain.AIInsight, error) {
	t, err := domain.ParseInsightType(insightType)
	if err != nil {
		return nil, err
	}

	return s.store.AIInsights(ctx, domain.InsightFilter{Type: &t, Limit: limit}), nil
}

// DashboardInsights retorna os últimos insights; sem nenhum gravado, gera estratégias
// a partir do contexto padrão e relê
func (s *Service) DashboardInsights(ctx context.Context) ([]domain.AIInsight, error) {
	filter := domain.InsightFilter{Limit: dashboardInsights}

	insights := s.store.AIInsights(ctx, filter)
	if len(insights) > 0 {
		return insights, nil
	}

	bc, mc := DefaultBusinessContext(45420)
	strategies := s.generator.BusinessStrategy(ctx, bc, mc)
	if err := s.saveStrategies(ctx, strategies, SourceGenerated); err != nil {
		return nil, err
	}

	return s.store.AIInsights(ctx, filter), nil
}

// Refresh gera novas estratégias a partir da receita dos últimos 30 dias.
// É o handler do job de atualização de insights.
func (s *Service) Refresh(ctx context.Context, job *domain.Job) (any, error) {
	metrics := s.store.BusinessMetrics(ctx, domain.MetricsForLastDays(refreshWindowDays, s.now()))
	if len(metrics) == 0 {
		log.ForContext(ctx).Info("Insights: sem métricas recentes, atualização ignorada")
		return map[string]any{"insights_generated": 0, "reason": "no recent business metrics"}, nil
	}

	revenue := aggregating.Sum(metrics, func(m domain.BusinessMetric) float64 { return m.Revenue })
	bc, mc := DefaultBusinessContext(revenue)

	source := SourceRefresh
	if job != nil && job.Params["data_source"] != "" {
		source = job.Params["data_source"]
	}

	strategies := s.generator.BusinessStrategy(ctx, bc, mc)
	if err := s.saveStrategies(ctx, strategies, source); err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithField("insights", len(strategies)).Info("Insights: atualização concluída")

	return map[string]any{
		"insights_generated": len(strategies),
		"revenue_considered": revenue,
		"data_source":        source,
	}, nil
}
