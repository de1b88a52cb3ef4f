package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/business-dashboard-api/infrastructure/store"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func newService() *Service {
	return NewService(store.New(store.Repositories{}, nil))
}

func TestService_Revenue(t *testing.T) {
	body := newService().Revenue(context.Background(), 30)

	summary := body["summary"].(map[string]any)
	assert.Equal(t, 87770.0, summary["total_revenue"])
	assert.Equal(t, 23490.0, summary["total_profit"])
	assert.Equal(t, 64280.0, summary["total_expenses"])
	assert.Equal(t, 26.76, summary["profit_margin"])
	assert.Equal(t, 7.25, summary["growth_rate"])

	daily := body["daily_data"].([]DailyRevenue)
	require.Len(t, daily, 2)
	assert.Equal(t, 45420.0, daily[0].Revenue)

	trends := body["trends"].(map[string]any)
	assert.Equal(t, "increasing", trends["revenue_trend"])
	assert.Equal(t, 2925.67, trends["avg_daily_revenue"])
	assert.Equal(t, 45420.0, trends["best_day"].(*DailyRevenue).Revenue)
}

func TestService_SocialPerformance(t *testing.T) {
	body := newService().SocialPerformance(context.Background(), 30)

	overview := body["overview"].(map[string]any)
	assert.Equal(t, 1, overview["total_posts"])
	assert.Equal(t, 1, overview["total_platforms"])

	performance := body["platform_performance"].(map[string]SocialPlatformPerformance)
	require.Contains(t, performance, "instagram")
	instagram := performance["instagram"]
	assert.Equal(t, 295, instagram.TotalEngagement)
	assert.Equal(t, 3420, instagram.TotalReach)
	assert.Equal(t, 8.63, instagram.EngagementRate)
	assert.Equal(t, "1", instagram.TopPost.ID)
	assert.NotContains(t, performance, "twitter")
}

func TestService_AdPerformance(t *testing.T) {
	body := newService().AdPerformance(context.Background())

	overview := body["overview"].(map[string]any)
	assert.Equal(t, 1, overview["active_campaigns"])
	assert.Equal(t, 0.6, overview["avg_cpc"])
	assert.Equal(t, 2.78, overview["avg_ctr"])
	assert.Equal(t, 6.24, overview["avg_conversion_rate"])

	trends := body["performance_trends"].(map[string]any)
	assert.Equal(t, "facebook", trends["best_performing_platform"])
	assert.Equal(t, "facebook", trends["most_expensive_platform"])
}

func TestService_ROIAnalysis(t *testing.T) {
	body := newService().ROIAnalysis(context.Background(), 30)

	advertising := body["advertising_roi"].(map[string]any)
	assert.Equal(t, 11700.0, advertising["ad_revenue"])
	assert.Equal(t, 14.6, advertising["ad_roi"])
	assert.Equal(t, 150, advertising["conversion_value"])

	overall := body["overall_roi"].(map[string]any)
	assert.Equal(t, 87770.0, overall["total_revenue"])
	assert.Equal(t, 0.0, overall["total_investment"])

	trend := body["trends"].([]ROIPoint)
	require.Len(t, trend, 2)
	assert.Equal(t, 0.357, trend[0].ROI)
	assert.Equal(t, 0.373, trend[1].ROI)

	insights := body["insights"].(map[string]any)
	assert.Equal(t, "improving", insights["roi_trend"])
	assert.Equal(t, 45420.0, insights["best_month"].(*ROIPoint).Revenue)
}

func TestService_DashboardSummary(t *testing.T) {
	body := newService().DashboardSummary(context.Background())

	metrics := body["key_metrics"].(map[string]any)
	assert.Equal(t, 87770.0, metrics["revenue"])
	assert.Equal(t, 3420, metrics["social_reach"])
	assert.Equal(t, 1, metrics["active_campaigns"])
	assert.Equal(t, 1, metrics["content_pieces"])
}
