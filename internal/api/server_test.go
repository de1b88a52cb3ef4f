package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/llm"
	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/n8n"
	"github.com/vfg2006/business-dashboard-api/infrastructure/jobstore"
	"github.com/vfg2006/business-dashboard-api/infrastructure/storage"
	"github.com/vfg2006/business-dashboard-api/infrastructure/store"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/scheduler"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/advertising"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/analytics"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/automation"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/brandasset"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/cashflow"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/socialmedia"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
	"github.com/vfg2006/business-dashboard-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	log.SetupTestLogger()
}

// newTestHandler monta a API em modo demonstração: sem banco, sem LLM e com a fila parada
func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		App:     config.App{Name: "AI Business System", Version: "1.0.0", Env: "test"},
		Storage: config.Storage{LocalDir: t.TempDir(), MaxUploadMB: 1},
		Jobs:    config.Jobs{Workers: 1, QueueSize: 10},
		Cors:    config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	m := metrics.New(prometheus.NewRegistry())
	records := store.New(store.Repositories{}, nil)
	generator := insighting.NewGenerator(llm.New(cfg.AI, llmclient.NewUnconfiguredClient(), m))

	uploader, err := storage.New(cfg.Storage)
	require.NoError(t, err)

	queue := scheduler.NewJobQueue(cfg.Jobs, jobstore.NewMemoryStore(time.Hour), m)
	insights := insighting.NewService(records, generator)
	ads := advertising.NewService(records, generator, queue)
	queue.Register(domain.JobInsightRefresh, insights.Refresh)
	queue.Register(domain.JobCampaignOptimization, ads.Optimize)

	return NewHandler(cfg, Services{
		Dashboard:      dashboard.NewService(records, insights, queue),
		Insights:       insights,
		SocialMedia:    socialmedia.NewService(records, generator),
		Analytics:      analytics.NewService(records),
		Automation:     automation.NewService(n8n.New(nil)),
		BrandAssets:    brandasset.NewService(records, uploader),
		CashFlow:       cashflow.NewService(records, cfg.Forecast),
		Advertising:    ads,
		Queue:          queue,
		InsightRefresh: scheduler.NewInsightRefreshService(queue, cfg),
	}, m)
}

func doRequest(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer demo-token")
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestNewHandler_PublicRoutes(t *testing.T) {
	handler := newTestHandler(t)

	t.Run("health dispensa token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "AI Business System Backend", body["service"])
		assert.Equal(t, "1.0.0", body["version"])
	})

	t.Run("rota raiz aponta para health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/health", decode(t, rec)["health"])
	})

	t.Run("rota /api sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/metrics", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authorization header is required", decode(t, rec)["message"])
	})

	t.Run("métricas do prometheus registram a rota", func(t *testing.T) {
		doRequest(handler, http.MethodGet, "/api/cash-flow/categories", "")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/api/cash-flow/categories")
	})
}

func TestNewHandler_Endpoints(t *testing.T) {
	handler := newTestHandler(t)

	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		expectedCode int
		validate     func(t *testing.T, body map[string]any)
	}{
		{
			name:         "receita agrega as métricas de demonstração",
			method:       http.MethodGet,
			path:         "/api/analytics/revenue?days=30",
			expectedCode: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				summary := body["summary"].(map[string]any)
				assert.Equal(t, 87770.0, summary["total_revenue"])
			},
		},
		{
			name:         "parâmetro inteiro inválido",
			method:       http.MethodGet,
			path:         "/api/analytics/revenue?days=abc",
			expectedCode: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Invalid value for 'days': must be an integer", body["message"])
			},
		},
		{
			name:         "campanha com orçamento negativo",
			method:       http.MethodPost,
			path:         "/api/ad-campaigns/campaigns",
			body:         `{"name":"Lançamento","platform":"facebook","budget":-5,"target_audience":"pmes","campaign_type":"conversion","start_date":"2026-11-01"}`,
			expectedCode: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Budget must be positive", body["message"])
			},
		},
		{
			name:         "publicação agendada no passado",
			method:       http.MethodPost,
			path:         "/api/social-media/posts",
			body:         `{"platform":"instagram","content":"Novidade","scheduled_time":"2020-01-01T10:00:00"}`,
			expectedCode: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Scheduled time must be in the future", body["message"])
			},
		},
		{
			name:         "corpo JSON malformado",
			method:       http.MethodPost,
			path:         "/api/social-media/posts",
			body:         `{"platform":`,
			expectedCode: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.True(t, strings.HasPrefix(body["message"].(string), "Invalid request body"))
			},
		},
		{
			name:         "previsão de caixa sem histórico",
			method:       http.MethodGet,
			path:         "/api/cash-flow/forecast?months=3",
			expectedCode: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "No historical data available", body["methodology"])
				projections := body["monthly_projections"].([]any)
				require.Len(t, projections, 3)
				assert.Equal(t, 0.3, projections[0].(map[string]any)["confidence"])
			},
		},
		{
			name:         "previsão de caixa com horizonte excessivo",
			method:       http.MethodGet,
			path:         "/api/cash-flow/forecast?months=10000000000",
			expectedCode: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "months must be between 1 and 60", body["message"])
			},
		},
		{
			name:         "job inexistente",
			method:       http.MethodGet,
			path:         "/api/jobs/nao-existe",
			expectedCode: http.StatusNotFound,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Job not found", body["message"])
			},
		},
		{
			name:         "ativo inexistente",
			method:       http.MethodGet,
			path:         "/api/brand-assets/assets/nao-existe",
			expectedCode: http.StatusNotFound,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Asset not found", body["message"])
			},
		},
		{
			name:         "campanha inexistente",
			method:       http.MethodGet,
			path:         "/api/ad-campaigns/campaigns/nao-existe",
			expectedCode: http.StatusNotFound,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Campaign not found", body["message"])
			},
		},
		{
			name:         "sugestões exigem plataforma",
			method:       http.MethodGet,
			path:         "/api/social-media/content-suggestions",
			expectedCode: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "platform is required", body["message"])
			},
		},
		{
			name:         "rota desconhecida",
			method:       http.MethodGet,
			path:         "/api/nao-existe",
			expectedCode: http.StatusNotFound,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Not Found", body["message"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(handler, tt.method, tt.path, tt.body)

			require.Equal(t, tt.expectedCode, rec.Code, rec.Body.String())
			if tt.validate != nil {
				tt.validate(t, decode(t, rec))
			}
		})
	}
}

func TestNewHandler_BulkScheduleLimit(t *testing.T) {
	handler := newTestHandler(t)

	drafts := make([]string, 51)
	for i := range drafts {
		drafts[i] = fmt.Sprintf(`{"platform":"twitter","content":"post %d","scheduled_time":"2030-01-01T10:00:00"}`, i)
	}

	rec := doRequest(handler, http.MethodPost, "/api/social-media/bulk-schedule", "["+strings.Join(drafts, ",")+"]")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cannot schedule more than 50 posts at once", decode(t, rec)["message"])
}

func TestNewHandler_RefreshInsightsQueuesJob(t *testing.T) {
	handler := newTestHandler(t)

	rec := doRequest(handler, http.MethodPost, "/api/dashboard/refresh-insights", "")
	require.Equal(t, http.StatusAccepted, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "queued", body["status"])
	jobID, ok := body["job_id"].(string)
	require.True(t, ok)

	rec = doRequest(handler, http.MethodGet, "/api/jobs/"+jobID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	job := decode(t, rec)
	assert.Equal(t, jobID, job["id"])
	assert.Equal(t, string(domain.JobInsightRefresh), job["kind"])
	assert.Equal(t, string(domain.JobQueued), job["status"])
}

func TestNewHandler_UploadedFileIsServed(t *testing.T) {
	handler := newTestHandler(t)

	upload := func(content string) string {
		var buf bytes.Buffer
		form := multipart.NewWriter(&buf)
		part, err := form.CreateFormFile("file", "logo.png")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, form.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/brand-assets/assets/upload", &buf)
		req.Header.Set("Authorization", "Bearer demo-token")
		req.Header.Set("Content-Type", form.FormDataContentType())

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		asset, ok := decode(t, rec)["asset"].(map[string]any)
		require.True(t, ok)
		url, ok := asset["url"].(string)
		require.True(t, ok)
		require.True(t, strings.HasPrefix(url, "/uploads/"))
		return url
	}

	first := upload("primeiro logo")
	second := upload("segundo logo")
	assert.NotEqual(t, first, second)

	for url, content := range map[string]string{first: "primeiro logo", second: "segundo logo"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, content, rec.Body.String())
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/nao-existe.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewHandler_LogsCreator(t *testing.T) {
	handler := newTestHandler(t)
	hook := logtest.NewGlobal()
	t.Cleanup(func() { logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks)) })

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-42",
		"email": "ana@example.com",
	}).SignedString([]byte("qualquer-segredo"))
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		expectedUser  string
		expectedEmail string
	}{
		{
			name:          "JWT identifica o autor",
			authorization: "Bearer " + token,
			expectedUser:  "user-42",
			expectedEmail: "ana@example.com",
		},
		{
			name:          "token opaco registra o usuário de demonstração",
			authorization: "Bearer demo-token",
			expectedUser:  domain.DemoPrincipal.UserID,
			expectedEmail: domain.DemoPrincipal.Email,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook.Reset()

			req := httptest.NewRequest(http.MethodPost, "/api/cash-flow/entries",
				strings.NewReader(`{"type":"income","category":"Vendas","amount":120.5,"description":"Pedido","date":"2026-10-01"}`))
			req.Header.Set("Authorization", tt.authorization)
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			entry := decode(t, rec)["entry"].(map[string]any)

			var created *logrus.Entry
			for _, e := range hook.AllEntries() {
				if e.Message == "API: recurso criado" {
					created = e
				}
			}
			require.NotNil(t, created)
			assert.Equal(t, "cash_flow_entry", created.Data["kind"])
			assert.Equal(t, entry["id"], created.Data["resource_id"])
			assert.Equal(t, tt.expectedUser, created.Data["user_id"])
			assert.Equal(t, tt.expectedEmail, created.Data["user_email"])
		})
	}
}
