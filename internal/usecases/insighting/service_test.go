package insighting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/business-dashboard-api/infrastructure/store"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

type fakeIntegrator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeIntegrator) Generate(_ context.Context, _, prompt string, _ float64, _ int) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeIntegrator) Configured() bool { return f.err == nil }

func (f *fakeIntegrator) Provider() string { return "fake" }

// recordingStore guarda os insights gravados em memória
type recordingStore struct {
	saved []domain.AIInsight
}

func (r *recordingStore) AIInsights(_ context.Context, filter domain.InsightFilter) []domain.AIInsight {
	out := []domain.AIInsight{}
	for _, i := range r.saved {
		if filter.Match(i) {
			out = append(out, i)
		}
	}
	return out
}

func (r *recordingStore) SaveAIInsight(_ context.Context, insight *domain.AIInsight) *domain.AIInsight {
	r.saved = append(r.saved, *insight)
	return insight
}

func (r *recordingStore) BusinessMetrics(ctx context.Context, filter domain.MetricFilter) []domain.BusinessMetric {
	return store.New(store.Repositories{}, nil).BusinessMetrics(ctx, filter)
}

func TestGenerator_BusinessStrategy(t *testing.T) {
	bc, mc := DefaultBusinessContext(45420)

	tests := []struct {
		name     string
		llm      *fakeIntegrator
		validate func(t *testing.T, strategies []Strategy)
	}{
		{
			name: "Resposta em JSON",
			llm:  &fakeIntegrator{reply: `[{"category":"growth","title":"Expand","description":"Go wide","priority":"high"}]`},
			validate: func(t *testing.T, strategies []Strategy) {
				require.Len(t, strategies, 1)
				assert.Equal(t, "Expand", strategies[0].Title)
				assert.False(t, strategies[0].GeneratedAt.IsZero())
			},
		},
		{
			name: "Texto livre usa as estratégias padrão",
			llm:  &fakeIntegrator{reply: "I recommend growing."},
			validate: func(t *testing.T, strategies []Strategy) {
				require.Len(t, strategies, 2)
				assert.Equal(t, "Digital Marketing Optimization", strategies[0].Title)
				assert.Equal(t, "Process Automation", strategies[1].Title)
			},
		},
		{
			name: "Falha na chamada resulta em lista vazia",
			llm:  &fakeIntegrator{err: errors.New("timeout")},
			validate: func(t *testing.T, strategies []Strategy) {
				assert.Empty(t, strategies)
				assert.NotNil(t, strategies)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, NewGenerator(tt.llm).BusinessStrategy(context.Background(), bc, mc))
		})
	}

	llm := &fakeIntegrator{reply: "[]"}
	NewGenerator(llm).BusinessStrategy(context.Background(), bc, mc)
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], `"competition_level":"medium"`)
}

func TestGenerator_OptimalPostingTimes(t *testing.T) {
	audience := Audience{Size: 12500, Timezone: "UTC", AgeGroup: "25-45"}

	parseFailure := NewGenerator(&fakeIntegrator{reply: "not json"}).
		OptimalPostingTimes(context.Background(), domain.PlatformLinkedIn, audience, nil)
	assert.Equal(t, []string{"08:00", "12:00", "17:00"}, parseFailure.RecommendedTimes)
	assert.Equal(t, 0.7, parseFailure.Confidence)
	assert.Empty(t, parseFailure.Error)

	apiFailure := NewGenerator(&fakeIntegrator{err: errors.New("down")}).
		OptimalPostingTimes(context.Background(), domain.PlatformInstagram, audience, nil)
	assert.Equal(t, []string{"10:00", "14:00", "19:00"}, apiFailure.RecommendedTimes)
	assert.Equal(t, []string{"Tuesday", "Wednesday", "Thursday"}, apiFailure.BestDays)
	assert.Equal(t, 0.6, apiFailure.Confidence)
	assert.Equal(t, "Fallback due to API error", apiFailure.Error)

	unknown := postingTimesFor("tiktok")
	assert.Equal(t, []string{"10:00", "14:00", "18:00"}, unknown)
}

func TestGenerator_SocialContent(t *testing.T) {
	req := reporting.ContentRequest{Prompt: "Launch", Platform: "twitter", Tone: "casual"}

	content := NewGenerator(&fakeIntegrator{err: errors.New("down")}).SocialContent(context.Background(), req, true)
	assert.Equal(t, "AI-Powered Business Growth", content.Title)
	assert.Equal(t, "twitter", content.Platform)
}

func TestGenerator_ROIForecastFallback(t *testing.T) {
	forecast := NewGenerator(&fakeIntegrator{reply: "the ROI will grow"}).
		ForecastROI(context.Background(), nil, nil, nil)

	assert.Equal(t, []float64{1.05, 1.1, 1.16, 1.22, 1.28, 1.34}, forecast.MonthlyForecast)
	assert.Equal(t, 0.7, forecast.Confidence())

	unavailable := NewGenerator(&fakeIntegrator{err: errors.New("down")}).
		ForecastROI(context.Background(), nil, nil, nil)
	assert.Equal(t, "Forecast unavailable", unavailable.Error)
	assert.Equal(t, 0.7, unavailable.Confidence())
}

func TestService_SavesInsights(t *testing.T) {
	ctx := context.Background()

	t.Run("estratégias gravadas com confiança 0.85", func(t *testing.T) {
		records := &recordingStore{}
		svc := NewService(records, NewGenerator(&fakeIntegrator{reply: "prose"}))

		result, err := svc.GenerateStrategy(ctx, map[string]any{"revenue": 1000.0}, map[string]any{})
		require.NoError(t, err)
		assert.Len(t, result.Strategies, 2)

		require.Len(t, records.saved, 2)
		assert.Equal(t, domain.InsightStrategy, records.saved[0].Type)
		assert.Equal(t, 0.85, records.saved[0].Confidence)
		assert.Equal(t, SourceStrategy, records.saved[0].DataSource)
	})

	t.Run("concorrentes sem posição conhecida", func(t *testing.T) {
		records := &recordingStore{}
		svc := NewService(records, NewGenerator(&fakeIntegrator{err: errors.New("down")}))

		analysis, err := svc.AnalyzeCompetitors(ctx, []map[string]any{{"name": "Acme"}}, map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, "Analysis unavailable", analysis.Error)

		require.Len(t, records.saved, 1)
		assert.Equal(t, "Market position: Unknown", records.saved[0].Content)
		assert.Equal(t, 0.80, records.saved[0].Confidence)
	})

	t.Run("previsão de ROI", func(t *testing.T) {
		records := &recordingStore{}
		svc := NewService(records, NewGenerator(&fakeIntegrator{reply: `{"monthly_forecast":[1,2],"confidence_level":0.9}`}))

		forecast, err := svc.ForecastROI(ctx, nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2}, forecast.MonthlyForecast)

		require.Len(t, records.saved, 1)
		assert.Equal(t, "6-month forecast with 90.0% confidence", records.saved[0].Content)
		assert.Equal(t, 0.9, records.saved[0].Confidence)
	})

	t.Run("tipo de insight inválido", func(t *testing.T) {
		svc := NewService(&recordingStore{}, NewGenerator(&fakeIntegrator{}))

		_, err := svc.InsightsByType(ctx, "weather", 10)
		validationErr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "Invalid insight type. Must be one of: ['strategy', 'competitor', 'forecast', 'timing', 'content']", validationErr.Message)
	})
}

func TestService_DashboardInsightsAndRefresh(t *testing.T) {
	ctx := context.Background()
	records := &recordingStore{}
	svc := NewService(records, NewGenerator(&fakeIntegrator{reply: "prose"}))

	insights, err := svc.DashboardInsights(ctx)
	require.NoError(t, err)
	require.Len(t, insights, 2)
	assert.Equal(t, SourceGenerated, insights[0].DataSource)

	// Com insights gravados não há nova geração
	again, err := svc.DashboardInsights(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 2)

	result, err := svc.Refresh(ctx, domain.NewJob(domain.JobInsightRefresh, map[string]string{"data_source": SourceRefresh}))
	require.NoError(t, err)

	summary := result.(map[string]any)
	assert.Equal(t, 2, summary["insights_generated"])
	assert.Equal(t, 87770.0, summary["revenue_considered"])
	assert.Len(t, records.saved, 4)
	assert.Equal(t, SourceRefresh, records.saved[3].DataSource)
}
