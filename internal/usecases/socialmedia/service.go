package socialmedia

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

const (
	historyLimit   = 100
	analyticsLimit = 200
	topPosts       = 5
)

// PostStore é o acesso às publicações usado pelo serviço
type PostStore interface {
	SocialPosts(ctx context.Context, filter domain.PostFilter) []domain.SocialPost
	SchedulePost(ctx context.Context, post *domain.SocialPost) *domain.SocialPost
	UpdatePostEngagement(ctx context.Context, id string, engagement domain.Engagement) (*domain.SocialPost, bool)
}

type Service struct {
	store     PostStore
	generator *insighting.Generator
	now       func() time.Time
}

func NewService(store PostStore, generator *insighting.Generator) *Service {
	return &Service{
		store:     store,
		generator: generator,
		now:       time.Now,
	}
}

// PostQuery são os filtros de listagem
type PostQuery struct {
	Platform *string
	Status   *string
	Limit    int
}

// ListPosts lista as publicações com o resumo de desempenho das já publicadas
func (s *Service) ListPosts(ctx context.Context, q PostQuery) map[string]any {
	filter := domain.PostFilter{Limit: q.Limit}
	if q.Platform != nil {
		p := domain.Platform(*q.Platform)
		filter.Platform = &p
	}
	if q.Status != nil {
		st := domain.PostStatus(*q.Status)
		filter.Status = &st
	}

	posts := s.store.SocialPosts(ctx, filter)
	posted := aggregating.Filter(posts, domain.SocialPost.IsPosted)

	totalEngagement := aggregating.Sum(posted, interactions)

	return reporting.NewEnvelope().
		AddSummary("total_posts", len(posts)).
		AddSummary("total_reach", aggregating.Sum(posted, reach)).
		AddSummary("total_engagement", totalEngagement).
		AddSummary("avg_engagement", utils.RoundWithOneDecimalPlace(aggregating.Rate(float64(totalEngagement), float64(len(posted))))).
		AddSummary("posted", len(posted)).
		AddSummary("scheduled", countStatus(posts, domain.PostStatusScheduled)).
		AddSummary("draft", countStatus(posts, domain.PostStatusDraft)).
		Filter("platform", reporting.Optional(q.Platform)).
		Filter("status", reporting.Optional(q.Status)).
		Filter("limit", q.Limit).
		Body("analytics", "", map[string]any{"posts": posts})
}

func interactions(p domain.SocialPost) int {
	return p.Engagement.Interactions()
}

func reach(p domain.SocialPost) int {
	return p.Engagement.Reach
}

func countStatus(posts []domain.SocialPost, status domain.PostStatus) int {
	return aggregating.Count(posts, func(p domain.SocialPost) bool { return p.Status == status })
}

// SchedulePost valida e agenda uma publicação; o horário precisa estar no futuro
func (s *Service) SchedulePost(ctx context.Context, draft domain.PostDraft) (*domain.SocialPost, error) {
	post, err := domain.NewScheduledPost(draft, s.now())
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithField("platform", string(post.Platform)).Info("Social: publicação agendada")

	return s.store.SchedulePost(ctx, post), nil
}

type BulkResult struct {
	Scheduled []domain.SocialPost
	Errors    []string
	Total     int
}

// BulkSchedule rejeita lotes acima de 50 itens antes de processar qualquer um;
// dentro do lote cada falha vira uma mensagem e os demais itens seguem
func (s *Service) BulkSchedule(ctx context.Context, drafts []domain.PostDraft) (*BulkResult, error) {
	if len(drafts) > MaxBulkPosts {
		return nil, domain.NewValidationError("%s", ErrTooManyPosts.Error())
	}

	result := &BulkResult{
		Scheduled: make([]domain.SocialPost, 0, len(drafts)),
		Errors:    []string{},
		Total:     len(drafts),
	}

	for i, draft := range drafts {
		if _, err := domain.ParseSocialPlatform(draft.Platform); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Post %d: Invalid platform '%s'", i+1, draft.Platform))
			continue
		}

		// Horários no passado são aceitos no lote
		post, err := domain.NewScheduledPost(draft, time.Time{})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Post %d: %s", i+1, err.Error()))
			continue
		}

		result.Scheduled = append(result.Scheduled, *s.store.SchedulePost(ctx, post))
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"scheduled": len(result.Scheduled),
		"errors":    len(result.Errors),
	}).Info("Social: agendamento em lote concluído")

	return result, nil
}

// UpdateEngagement substitui os contadores de uma publicação existente
func (s *Service) UpdateEngagement(ctx context.Context, id string, engagement domain.Engagement) (*domain.SocialPost, error) {
	if err := engagement.Validate(); err != nil {
		return nil, err
	}

	post, found := s.store.UpdatePostEngagement(ctx, id, engagement)
	if !found {
		return nil, ErrPostNotFound
	}

	return post, nil
}

// GenerateContent valida a rede e gera o conteúdo pela política de fallback
func (s *Service) GenerateContent(ctx context.Context, req reporting.ContentRequest, includeHashtags bool) (reporting.SocialContent, error) {
	if _, err := domain.ParseSocialPlatform(req.Platform); err != nil {
		return reporting.SocialContent{}, err
	}

	return s.generator.SocialContent(ctx, req, includeHashtags), nil
}

// mockAudience representa a audiência enquanto não há integração com as redes
var mockAudience = insighting.Audience{
	Size:        12500,
	Timezone:    "UTC",
	AgeGroup:    "25-45",
	ActiveHours: []string{"08:00-10:00", "12:00-14:00", "18:00-21:00"},
}

type OptimalTimes struct {
	Platform        string
	Times           insighting.PostingTimes
	Audience        insighting.Audience
	HistoricalPosts int
}

// OptimalTimes recomenda horários com base nas publicações já feitas na rede
func (s *Service) OptimalTimes(ctx context.Context, platform string) OptimalTimes {
	p := domain.Platform(platform)
	posted := domain.PostStatusPosted

	history := s.store.SocialPosts(ctx, domain.PostFilter{Platform: &p, Status: &posted, Limit: historyLimit})

	return OptimalTimes{
		Platform:        platform,
		Times:           s.generator.OptimalPostingTimes(ctx, p, mockAudience, history),
		Audience:        mockAudience,
		HistoricalPosts: len(history),
	}
}

type PlatformEngagement struct {
	PostsCount     int     `json:"posts_count"`
	TotalLikes     int     `json:"total_likes"`
	TotalComments  int     `json:"total_comments"`
	TotalShares    int     `json:"total_shares"`
	TotalReach     int     `json:"total_reach"`
	AvgEngagement  float64 `json:"avg_engagement"`
	EngagementRate float64 `json:"engagement_rate"`
}

// EngagementAnalytics consolida as publicações feitas nos últimos dias, por rede e no total
func (s *Service) EngagementAnalytics(ctx context.Context, days int) map[string]any {
	since := s.now().AddDate(0, 0, -days)
	posted := domain.PostStatusPosted

	recent := s.store.SocialPosts(ctx, domain.PostFilter{Status: &posted, Since: &since, Limit: analyticsLimit})

	byPlatform := aggregating.GroupBy(recent, func(p domain.SocialPost) domain.Platform { return p.Platform })
	platforms := make(map[string]PlatformEngagement)
	for _, platform := range domain.SocialPlatforms {
		posts := byPlatform[platform]
		if len(posts) == 0 {
			continue
		}

		pe := PlatformEngagement{
			PostsCount:    len(posts),
			TotalLikes:    aggregating.Sum(posts, func(p domain.SocialPost) int { return p.Engagement.Likes }),
			TotalComments: aggregating.Sum(posts, func(p domain.SocialPost) int { return p.Engagement.Comments }),
			TotalShares:   aggregating.Sum(posts, func(p domain.SocialPost) int { return p.Engagement.Shares }),
			TotalReach:    aggregating.Sum(posts, reach),
		}
		engagement := float64(pe.TotalLikes + pe.TotalComments + pe.TotalShares)
		pe.AvgEngagement = utils.RoundWithOneDecimalPlace(engagement / float64(len(posts)))
		pe.EngagementRate = utils.RoundWithTwoDecimalPlace(aggregating.Percent(engagement, float64(pe.TotalReach)))

		platforms[string(platform)] = pe
	}

	totalEngagement := float64(aggregating.Sum(recent, interactions))
	totalReach := float64(aggregating.Sum(recent, reach))

	return map[string]any{
		"period": fmt.Sprintf("Last %d days", days),
		"overall": map[string]any{
			"total_posts":             len(recent),
			"total_engagement":        int(totalEngagement),
			"total_reach":             int(totalReach),
			"avg_engagement_per_post": utils.RoundWithOneDecimalPlace(aggregating.Rate(totalEngagement, float64(len(recent)))),
			"overall_engagement_rate": utils.RoundWithTwoDecimalPlace(aggregating.Percent(totalEngagement, totalReach)),
		},
		"by_platform": platforms,
		"top_performing_posts": aggregating.TopN(recent, topPosts, func(p domain.SocialPost) float64 {
			return float64(p.Engagement.Interactions())
		}),
	}
}

var suggestionPrompts = []string{
	"Create engaging %s content about business growth and innovation",
	"Write about the latest trends in %s and their business impact",
	"Share a tip for %s professionals to improve their workflow",
	"Discuss the future of %s and emerging opportunities",
	"Create motivational content for %s entrepreneurs",
}

// ContentSuggestions gera um conteúdo para cada um dos cinco temas do setor
func (s *Service) ContentSuggestions(ctx context.Context, platform, industry, tone string) []reporting.SocialContent {
	suggestions := make([]reporting.SocialContent, 0, len(suggestionPrompts))
	for _, template := range suggestionPrompts {
		req := reporting.ContentRequest{
			Prompt:   fmt.Sprintf(template, industry),
			Platform: platform,
			Tone:     tone,
		}
		suggestions = append(suggestions, s.generator.SocialContent(ctx, req, true))
	}
	return suggestions
}
