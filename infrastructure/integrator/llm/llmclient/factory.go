package llmclient

import (
	"strings"

	"github.com/vfg2006/business-dashboard-api/internal/config"
)

// NewClient escolhe o provedor pela configuração; sem chave para o provedor
// escolhido tenta o outro, e sem nenhuma chave retorna o cliente não configurado
func NewClient(cfg config.AI) Client {
	openAI := func() Client {
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	}
	claude := func() Client {
		return NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	}

	switch strings.ToLower(cfg.Provider) {
	case ProviderAnthropic:
		if cfg.AnthropicAPIKey != "" {
			return claude()
		}
		if cfg.OpenAIAPIKey != "" {
			return openAI()
		}
	default:
		if cfg.OpenAIAPIKey != "" {
			return openAI()
		}
		if cfg.AnthropicAPIKey != "" {
			return claude()
		}
	}

	return NewUnconfiguredClient()
}
