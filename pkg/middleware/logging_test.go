package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func TestLogPanicMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		next     http.HandlerFunc
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "panic vira erro padrão em JSON",
			next: func(http.ResponseWriter, *http.Request) {
				panic("falha inesperada")
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

				var body apiErrors.APIError
				require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, apiErrors.ErrInternalServer, body.Code)
				assert.Equal(t, "Internal server error", body.Message)
			},
		},
		{
			name: "panic depois da resposta iniciada mantém o status enviado",
			next: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte("parcial"))
				panic("falha no meio da escrita")
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusAccepted, rec.Code)
				assert.Equal(t, "parcial", rec.Body.String())
			},
		},
		{
			name: "sem panic a resposta passa intacta",
			next: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusTeapot, rec.Code)
				assert.Empty(t, rec.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := LogPanicMiddleware()(LoggingMiddleware()(tt.next))
			rec := httptest.NewRecorder()

			require.NotPanics(t, func() {
				handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/metrics", nil))
			})

			assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
			tt.validate(t, rec)
		})
	}
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
	}))

	t.Run("reaproveita o ID enviado pelo cliente", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", seen)
		assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("gera um ID quando o cliente não envia", func(t *testing.T) {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	})
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250 µs", formatDuration(250*time.Microsecond))
	assert.Equal(t, "42 ms", formatDuration(42*time.Millisecond))
	assert.Equal(t, "1.50 s", formatDuration(1500*time.Millisecond))
}
