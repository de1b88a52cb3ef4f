package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "business_dashboard"

// Metrics agrupa as métricas Prometheus da API
type Metrics struct {
	HTTPRequests  *prometheus.CounterVec
	HTTPLatency   *prometheus.HistogramVec
	Jobs          *prometheus.CounterVec
	JobDuration   *prometheus.HistogramVec
	JobQueueDepth prometheus.Gauge
	LLMRequests   *prometheus.CounterVec
	LLMLatency    *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New cria e registra as métricas no registry informado.
// Use prometheus.NewRegistry() em testes para evitar registro duplicado.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total de requisições HTTP atendidas",
			},
			[]string{"method", "route", "status"},
		),
		HTTPLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latência das requisições HTTP em segundos",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "route"},
		),
		Jobs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "jobs_total",
				Help:      "Total de jobs por tipo e status",
			},
			[]string{"kind", "status"},
		),
		JobDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "job_duration_seconds",
				Help:      "Duração da execução dos jobs em segundos",
				Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120},
			},
			[]string{"kind"},
		),
		JobQueueDepth: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "job_queue_depth",
				Help:      "Jobs aguardando execução",
			},
		),
		LLMRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "llm_requests_total",
				Help:      "Total de chamadas ao modelo de linguagem",
			},
			[]string{"provider", "outcome"},
		),
		LLMLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "llm_request_duration_seconds",
				Help:      "Latência das chamadas ao modelo de linguagem em segundos",
				Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"provider"},
		),
		gatherer: reg,
	}
}

// Handler expõe as métricas do registry no formato Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) RecordRequest(method, route string, status int, latency time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(method, route).Observe(latency.Seconds())
}

func (m *Metrics) RecordJob(kind, status string) {
	m.Jobs.WithLabelValues(kind, status).Inc()
}

func (m *Metrics) RecordJobDuration(kind string, duration time.Duration) {
	m.JobDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

func (m *Metrics) SetQueueDepth(depth int) {
	m.JobQueueDepth.Set(float64(depth))
}

func (m *Metrics) RecordLLMRequest(provider string, err error, latency time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.LLMRequests.WithLabelValues(provider, outcome).Inc()
	m.LLMLatency.WithLabelValues(provider).Observe(latency.Seconds())
}
