// Package llmclient contém os clientes dos provedores de modelo de linguagem
package llmclient

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrNotConfigured indica que nenhuma chave de provedor foi informada
	ErrNotConfigured = errors.New("llm: provedor não configurado")
	// ErrEmptyResponse indica que o provedor respondeu sem conteúdo de texto
	ErrEmptyResponse = errors.New("llm: resposta sem conteúdo")
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderNone      = "none"
)

// Request é uma conversa de um turno: instrução de sistema e prompt do usuário
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Provider() string
	Model() string
}

type unconfiguredClient struct{}

// NewUnconfiguredClient retorna um cliente que falha toda chamada com ErrNotConfigured
func NewUnconfiguredClient() Client {
	return unconfiguredClient{}
}

func (unconfiguredClient) Complete(context.Context, Request) (string, error) {
	return "", ErrNotConfigured
}

func (unconfiguredClient) Provider() string { return ProviderNone }

func (unconfiguredClient) Model() string { return "" }

func cleanContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}
