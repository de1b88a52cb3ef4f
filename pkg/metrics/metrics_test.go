package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordRequest(http.MethodGet, "/api/dashboard/metrics", http.StatusOK, 20*time.Millisecond)
	m.RecordRequest(http.MethodGet, "/api/dashboard/metrics", http.StatusOK, 30*time.Millisecond)
	m.RecordJob("insight_refresh", "succeeded")
	m.RecordLLMRequest("openai", errors.New("timeout"), time.Second)
	m.SetQueueDepth(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/dashboard/metrics", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Jobs.WithLabelValues("insight_refresh", "succeeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LLMRequests.WithLabelValues("openai", "error")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.JobQueueDepth))
}

func TestMetrics_Handler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.RecordJob("campaign_optimization", "queued")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "business_dashboard_jobs_total")
}
