package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/business-dashboard-api/infrastructure/jobstore"
	"github.com/vfg2006/business-dashboard-api/infrastructure/store"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/scheduler"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

type offlineLLM struct{}

func (offlineLLM) Generate(context.Context, string, string, float64, int) (string, error) {
	return "", errors.New("offline")
}
func (offlineLLM) Configured() bool { return false }
func (offlineLLM) Provider() string { return "none" }

func newService(t *testing.T) (*Service, *scheduler.JobQueue) {
	t.Helper()

	records := store.New(store.Repositories{}, nil)
	insights := insighting.NewService(records, insighting.NewGenerator(offlineLLM{}))

	queue := scheduler.NewJobQueue(config.Jobs{Workers: 1, QueueSize: 2}, jobstore.NewMemoryStore(time.Hour), nil)
	queue.Register(domain.JobInsightRefresh, insights.Refresh)

	return NewService(records, insights, queue), queue
}

func TestService_Metrics(t *testing.T) {
	svc, _ := newService(t)

	metrics := svc.Metrics(context.Background(), 30)

	assert.Equal(t, 87770.0, metrics.Overview.Revenue)
	assert.Equal(t, 23490.0, metrics.Overview.Profit)
	assert.Equal(t, 2.7, metrics.Overview.ROI)
	assert.Equal(t, 15.5, metrics.Overview.GrowthRate)

	assert.Equal(t, 3420, metrics.SocialMedia.TotalReach)
	assert.Equal(t, 295.0, metrics.SocialMedia.AvgEngagement)
	assert.Equal(t, 1, metrics.SocialMedia.TotalPosts)

	assert.Equal(t, 1, metrics.Advertising.ActiveCampaigns)
	assert.Equal(t, 750.0, metrics.Advertising.TotalSpend)
	assert.Equal(t, 78, metrics.Advertising.Conversions)
	assert.Equal(t, 3.2, metrics.Advertising.AvgROAS)

	assert.Equal(t, CashFlowOverview{}, metrics.CashFlow)
	assert.Equal(t, "Last 30 days", metrics.Period)
}

func TestService_RefreshInsights(t *testing.T) {
	svc, queue := newService(t)
	ctx := context.Background()

	job, err := svc.RefreshInsights(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.JobQueued, job.Status)
	assert.Equal(t, insighting.SourceRefresh, job.Params["data_source"])

	stored, err := queue.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, stored.ID)

	status := svc.SystemStatus(ctx, false)
	components := status["status"].(map[string]any)
	assert.Equal(t, "offline", components["database"])
	assert.Equal(t, "offline", components["ai_services"])
	assert.Equal(t, 1, components["job_queue_depth"])
	assert.Equal(t, "healthy", status["overall_health"])
}

func TestService_RecentActivity(t *testing.T) {
	svc, _ := newService(t)

	feed := svc.RecentActivity(context.Background(), 20)

	require.Equal(t, 3, feed.TotalCount)
	require.Len(t, feed.Activities, 3)

	for i := 1; i < len(feed.Activities); i++ {
		assert.False(t, feed.Activities[i].Timestamp.After(feed.Activities[i-1].Timestamp))
	}

	var metric *Activity
	for i := range feed.Activities {
		if feed.Activities[i].ID == "metric_1" {
			metric = &feed.Activities[i]
		}
	}
	require.NotNil(t, metric)
	assert.Equal(t, "Revenue: $45,420, ROI: 2.8x", metric.Description)

	limited := svc.RecentActivity(context.Background(), 1)
	assert.Len(t, limited.Activities, 1)
	assert.Equal(t, 3, limited.TotalCount)
}
