package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/pkg/metrics"
)

type fakeClient struct {
	content  string
	err      error
	received llmclient.Request
	deadline bool
}

func (f *fakeClient) Complete(ctx context.Context, req llmclient.Request) (string, error) {
	f.received = req
	_, f.deadline = ctx.Deadline()
	return f.content, f.err
}

func (f *fakeClient) Provider() string { return llmclient.ProviderOpenAI }

func (f *fakeClient) Model() string { return "gpt-4" }

func TestLLMIntegrator_Generate(t *testing.T) {
	cfg := config.AI{RequestTimeout: time.Minute, DefaultMaxTokens: 500}

	tests := []struct {
		name      string
		client    *fakeClient
		maxTokens int
		validate  func(t *testing.T, client *fakeClient, content string, err error)
	}{
		{
			name:      "Usa o limite padrão de tokens quando não informado",
			client:    &fakeClient{content: "ok"},
			maxTokens: 0,
			validate: func(t *testing.T, client *fakeClient, content string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "ok", content)
				assert.Equal(t, 500, client.received.MaxTokens)
				assert.Equal(t, "system", client.received.System)
				assert.True(t, client.deadline)
			},
		},
		{
			name:      "Repassa o limite de tokens informado",
			client:    &fakeClient{content: "ok"},
			maxTokens: 1500,
			validate: func(t *testing.T, client *fakeClient, _ string, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1500, client.received.MaxTokens)
				assert.Equal(t, 0.8, client.received.Temperature)
			},
		},
		{
			name:      "Propaga o erro do provedor",
			client:    &fakeClient{err: errors.New("rate limited")},
			maxTokens: 100,
			validate: func(t *testing.T, _ *fakeClient, content string, err error) {
				require.Error(t, err)
				assert.Empty(t, content)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator := New(cfg, tt.client, metrics.New(prometheus.NewRegistry()))
			content, err := integrator.Generate(context.Background(), "system", "prompt", 0.8, tt.maxTokens)
			tt.validate(t, tt.client, content, err)
		})
	}
}

func TestLLMIntegrator_Unconfigured(t *testing.T) {
	integrator := New(config.AI{}, llmclient.NewUnconfiguredClient(), nil)

	assert.False(t, integrator.Configured())
	_, err := integrator.Generate(context.Background(), "s", "p", 0.5, 10)
	assert.ErrorIs(t, err, llmclient.ErrNotConfigured)
}

func TestNewClient_ProviderSelection(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.AI
		provider string
	}{
		{name: "Sem chaves", cfg: config.AI{Provider: "openai"}, provider: llmclient.ProviderNone},
		{name: "OpenAI", cfg: config.AI{Provider: "openai", OpenAIAPIKey: "sk"}, provider: llmclient.ProviderOpenAI},
		{name: "Anthropic", cfg: config.AI{Provider: "anthropic", AnthropicAPIKey: "ak"}, provider: llmclient.ProviderAnthropic},
		{name: "Anthropic sem chave usa OpenAI", cfg: config.AI{Provider: "anthropic", OpenAIAPIKey: "sk"}, provider: llmclient.ProviderOpenAI},
		{name: "OpenAI sem chave usa Anthropic", cfg: config.AI{Provider: "openai", AnthropicAPIKey: "ak"}, provider: llmclient.ProviderAnthropic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.provider, llmclient.NewClient(tt.cfg).Provider())
		})
	}
}
