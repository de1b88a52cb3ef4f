package llm

import (
	"context"
	"time"

	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
	"github.com/vfg2006/business-dashboard-api/pkg/metrics"
)

// Integrator é o ponto único de acesso ao modelo de linguagem usado pelos casos de uso
type Integrator interface {
	Generate(ctx context.Context, system, prompt string, temperature float64, maxTokens int) (string, error)
	Configured() bool
	Provider() string
}

type LLMIntegrator struct {
	client           llmclient.Client
	timeout          time.Duration
	defaultMaxTokens int
	metrics          *metrics.Metrics
}

func New(cfg config.AI, client llmclient.Client, m *metrics.Metrics) *LLMIntegrator {
	return &LLMIntegrator{
		client:           client,
		timeout:          cfg.RequestTimeout,
		defaultMaxTokens: cfg.DefaultMaxTokens,
		metrics:          m,
	}
}

func (s *LLMIntegrator) Configured() bool {
	return s.client.Provider() != llmclient.ProviderNone
}

func (s *LLMIntegrator) Provider() string {
	return s.client.Provider()
}

func (s *LLMIntegrator) Generate(ctx context.Context, system, prompt string, temperature float64, maxTokens int) (string, error) {
	if !s.Configured() {
		return "", llmclient.ErrNotConfigured
	}

	if maxTokens <= 0 {
		maxTokens = s.defaultMaxTokens
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"provider": s.client.Provider(),
		"model":    s.client.Model(),
	})
	logger.Debug("LLM: enviando requisição")

	start := time.Now()
	content, err := s.client.Complete(ctx, llmclient.Request{
		System:      system,
		Prompt:      prompt,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	elapsed := time.Since(start)

	if s.metrics != nil {
		s.metrics.RecordLLMRequest(s.client.Provider(), err, elapsed)
	}

	if err != nil {
		logger.WithFields(log.Fields{
			"error":       err.Error(),
			"duration_ms": elapsed.Milliseconds(),
		}).Error("LLM: falha na requisição")
		return "", err
	}

	logger.WithField("duration_ms", elapsed.Milliseconds()).Debug("LLM: resposta recebida")

	return content, nil
}
