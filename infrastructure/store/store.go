// Package store centraliza o acesso aos registros, usando o PostgreSQL quando
// configurado e os dados de demonstração quando o banco não responde
package store

import (
	"context"
	"time"

	"github.com/vfg2006/business-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

const (
	kindBusinessMetrics = "business_metrics"
	kindSocialPosts     = "social_media_posts"
	kindAdCampaigns     = "ad_campaigns"
	kindCashFlow        = "cash_flow"
	kindBrandAssets     = "brand_assets"
	kindAIInsights      = "ai_insights"
)

// Repositories agrupa os repositórios por tabela; todos nil quando o banco não está configurado
type Repositories struct {
	Metrics   repository.BusinessMetricRepository
	Posts     repository.SocialPostRepository
	Campaigns repository.AdCampaignRepository
	CashFlow  repository.CashFlowRepository
	Assets    repository.BrandAssetRepository
	Insights  repository.AIInsightRepository
}

// Configured indica se existe um banco por trás dos repositórios
func (r Repositories) Configured() bool {
	return r.Metrics != nil
}

type Store struct {
	repos    Repositories
	fixtures Fixtures
	now      func() time.Time
}

func New(repos Repositories, fixtures Fixtures) *Store {
	if fixtures == nil {
		fixtures = DemoFixtures()
	}

	return &Store{
		repos:    repos,
		fixtures: fixtures,
		now:      time.Now,
	}
}

func (s *Store) Configured() bool {
	return s.repos.Configured()
}

// fetch executa a consulta e cai para os dados de demonstração quando ela
// não existe ou falha; nunca retorna erro
func fetch[T any](ctx context.Context, kind string, query func(context.Context) ([]T, error), fallback func() []T) []T {
	if query == nil {
		return fallback()
	}

	records, err := query(ctx)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"kind":  kind,
			"error": err.Error(),
		}).Warn("Store: falha na consulta, usando dados de demonstração")
		return fallback()
	}

	return records
}

// insert grava o registro e o devolve inalterado em caso de falha
func insert[T any](ctx context.Context, kind string, write func(context.Context, *T) error, record *T) *T {
	if write == nil {
		return record
	}

	if err := write(ctx, record); err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"kind":  kind,
			"error": err.Error(),
		}).Warn("Store: falha ao gravar registro")
	}

	return record
}

// matching aplica aos dados de demonstração o mesmo filtro que o SQL aplica
func matching[T any](records []T, match func(T) bool, limit int) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if match(r) {
			out = append(out, r)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func (s *Store) BusinessMetrics(ctx context.Context, filter domain.MetricFilter) []domain.BusinessMetric {
	var query func(context.Context) ([]domain.BusinessMetric, error)
	if s.repos.Metrics != nil {
		query = func(ctx context.Context) ([]domain.BusinessMetric, error) {
			return s.repos.Metrics.List(ctx, filter)
		}
	}

	return fetch(ctx, kindBusinessMetrics, query, func() []domain.BusinessMetric {
		return matching(s.fixtures.BusinessMetrics(s.now()), filter.Match, 0)
	})
}

func (s *Store) AddBusinessMetric(ctx context.Context, metric *domain.BusinessMetric) *domain.BusinessMetric {
	var write func(context.Context, *domain.BusinessMetric) error
	if s.repos.Metrics != nil {
		write = s.repos.Metrics.Insert
	}
	return insert(ctx, kindBusinessMetrics, write, metric)
}

func (s *Store) SocialPosts(ctx context.Context, filter domain.PostFilter) []domain.SocialPost {
	var query func(context.Context) ([]domain.SocialPost, error)
	if s.repos.Posts != nil {
		query = func(ctx context.Context) ([]domain.SocialPost, error) {
			return s.repos.Posts.List(ctx, filter)
		}
	}

	return fetch(ctx, kindSocialPosts, query, func() []domain.SocialPost {
		return matching(s.fixtures.SocialPosts(s.now()), filter.Match, filter.Limit)
	})
}

func (s *Store) SchedulePost(ctx context.Context, post *domain.SocialPost) *domain.SocialPost {
	var write func(context.Context, *domain.SocialPost) error
	if s.repos.Posts != nil {
		write = s.repos.Posts.Insert
	}
	return insert(ctx, kindSocialPosts, write, post)
}

// UpdatePostEngagement retorna found=false quando o banco não está configurado,
// falha ou não encontra a publicação
func (s *Store) UpdatePostEngagement(ctx context.Context, id string, engagement domain.Engagement) (*domain.SocialPost, bool) {
	if s.repos.Posts == nil {
		return nil, false
	}

	post, err := s.repos.Posts.UpdateEngagement(ctx, id, engagement)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"kind":  kindSocialPosts,
			"error": err.Error(),
		}).Warn("Store: falha ao atualizar engajamento")
		return nil, false
	}

	return post, post != nil
}

func (s *Store) AdCampaigns(ctx context.Context, filter domain.CampaignFilter) []domain.AdCampaign {
	var query func(context.Context) ([]domain.AdCampaign, error)
	if s.repos.Campaigns != nil {
		query = func(ctx context.Context) ([]domain.AdCampaign, error) {
			return s.repos.Campaigns.List(ctx, filter)
		}
	}

	return fetch(ctx, kindAdCampaigns, query, func() []domain.AdCampaign {
		return matching(s.fixtures.AdCampaigns(s.now()), filter.Match, filter.Limit)
	})
}

func (s *Store) AdCampaign(ctx context.Context, id string) (*domain.AdCampaign, bool) {
	if s.repos.Campaigns != nil {
		campaign, err := s.repos.Campaigns.GetByID(ctx, id)
		if err == nil {
			return campaign, campaign != nil
		}
		log.ForContext(ctx).WithFields(log.Fields{
			"kind":  kindAdCampaigns,
			"error": err.Error(),
		}).Warn("Store: falha ao buscar campanha, usando dados de demonstração")
	}

	return findByID(s.fixtures.AdCampaigns(s.now()), id, func(c domain.AdCampaign) string { return c.ID })
}

func (s *Store) CreateAdCampaign(ctx context.Context, campaign *domain.AdCampaign) *domain.AdCampaign {
	var write func(context.Context, *domain.AdCampaign) error
	if s.repos.Campaigns != nil {
		write = s.repos.Campaigns.Insert
	}
	return insert(ctx, kindAdCampaigns, write, campaign)
}

// UpdateAdCampaign aplica uma atualização já validada; sem banco ela é
// aplicada sobre a campanha de demonstração correspondente
func (s *Store) UpdateAdCampaign(ctx context.Context, id string, update domain.CampaignUpdate) (*domain.AdCampaign, bool) {
	changes, err := update.Changes()
	if err != nil {
		return nil, false
	}

	if s.repos.Campaigns == nil {
		campaign, found := findByID(s.fixtures.AdCampaigns(s.now()), id, func(c domain.AdCampaign) string { return c.ID })
		if !found {
			return nil, false
		}
		campaign.Apply(update)
		return campaign, true
	}

	campaign, err := s.repos.Campaigns.Update(ctx, id, changes)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"kind":  kindAdCampaigns,
			"error": err.Error(),
		}).Warn("Store: falha ao atualizar campanha")
		return nil, false
	}

	return campaign, campaign != nil
}

func (s *Store) CashFlow(ctx context.Context, filter domain.CashFlowFilter) []domain.CashFlowEntry {
	var query func(context.Context) ([]domain.CashFlowEntry, error)
	if s.repos.CashFlow != nil {
		query = func(ctx context.Context) ([]domain.CashFlowEntry, error) {
			return s.repos.CashFlow.List(ctx, filter)
		}
	}

	return fetch(ctx, kindCashFlow, query, func() []domain.CashFlowEntry {
		return matching(s.fixtures.CashFlow(s.now()), filter.Match, filter.Limit)
	})
}

func (s *Store) AddCashFlowEntry(ctx context.Context, entry *domain.CashFlowEntry) *domain.CashFlowEntry {
	var write func(context.Context, *domain.CashFlowEntry) error
	if s.repos.CashFlow != nil {
		write = s.repos.CashFlow.Insert
	}
	return insert(ctx, kindCashFlow, write, entry)
}

func (s *Store) BrandAssets(ctx context.Context, filter domain.AssetFilter) []domain.BrandAsset {
	var query func(context.Context) ([]domain.BrandAsset, error)
	if s.repos.Assets != nil {
		query = func(ctx context.Context) ([]domain.BrandAsset, error) {
			return s.repos.Assets.List(ctx, filter)
		}
	}

	return fetch(ctx, kindBrandAssets, query, func() []domain.BrandAsset {
		return matching(s.fixtures.BrandAssets(s.now()), filter.Match, filter.Limit)
	})
}

func (s *Store) BrandAsset(ctx context.Context, id string) (*domain.BrandAsset, bool) {
	if s.repos.Assets != nil {
		asset, err := s.repos.Assets.GetByID(ctx, id)
		if err == nil {
			if asset == nil || asset.Status == domain.AssetStatusDeleted {
				return nil, false
			}
			return asset, true
		}
		log.ForContext(ctx).WithFields(log.Fields{
			"kind":  kindBrandAssets,
			"error": err.Error(),
		}).Warn("Store: falha ao buscar ativo, usando dados de demonstração")
	}

	return findByID(s.fixtures.BrandAssets(s.now()), id, func(a domain.BrandAsset) string { return a.ID })
}

func (s *Store) AddBrandAsset(ctx context.Context, asset *domain.BrandAsset) *domain.BrandAsset {
	var write func(context.Context, *domain.BrandAsset) error
	if s.repos.Assets != nil {
		write = s.repos.Assets.Insert
	}
	return insert(ctx, kindBrandAssets, write, asset)
}

// UpdateBrandAsset grava o ativo alterado; sem banco a alteração só existe na resposta
func (s *Store) UpdateBrandAsset(ctx context.Context, asset *domain.BrandAsset) (*domain.BrandAsset, bool) {
	if s.repos.Assets == nil {
		_, found := findByID(s.fixtures.BrandAssets(s.now()), asset.ID, func(a domain.BrandAsset) string { return a.ID })
		return asset, found
	}

	found, err := s.repos.Assets.Update(ctx, asset)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"kind":  kindBrandAssets,
			"error": err.Error(),
		}).Warn("Store: falha ao atualizar ativo")
		return nil, false
	}
	if !found {
		return nil, false
	}

	return asset, true
}

func (s *Store) AIInsights(ctx context.Context, filter domain.InsightFilter) []domain.AIInsight {
	var query func(context.Context) ([]domain.AIInsight, error)
	if s.repos.Insights != nil {
		query = func(ctx context.Context) ([]domain.AIInsight, error) {
			return s.repos.Insights.List(ctx, filter)
		}
	}

	return fetch(ctx, kindAIInsights, query, func() []domain.AIInsight {
		return matching(s.fixtures.AIInsights(s.now()), filter.Match, filter.Limit)
	})
}

func (s *Store) SaveAIInsight(ctx context.Context, insight *domain.AIInsight) *domain.AIInsight {
	var write func(context.Context, *domain.AIInsight) error
	if s.repos.Insights != nil {
		write = s.repos.Insights.Insert
	}
	return insert(ctx, kindAIInsights, write, insight)
}

func findByID[T any](records []T, id string, key func(T) string) (*T, bool) {
	for i := range records {
		if key(records[i]) == id {
			return &records[i], true
		}
	}
	return nil, false
}
