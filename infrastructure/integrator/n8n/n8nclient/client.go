package n8nclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/business-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const apiKeyHeader = "X-N8N-API-KEY"

type Client interface {
	ListWorkflows(ctx context.Context) ([]Workflow, error)
	CallWebhook(ctx context.Context, name string, payload any) error
	WebhookURL(name string) string
}

// Workflow é o formato retornado pela API pública do n8n
type Workflow struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type listWorkflowsResponse struct {
	Data       []Workflow `json:"data"`
	NextCursor *string    `json:"nextCursor"`
}

type N8NClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	webhookURL string
}

func NewClient(cfg config.Automation) Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &N8NClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(cfg.N8NBaseURL, "/"),
		apiKey:     cfg.N8NAPIKey,
		webhookURL: strings.TrimSuffix(cfg.N8NWebhookURL, "/"),
	}
}

// ListWorkflows percorre todas as páginas de /api/v1/workflows
func (c *N8NClient) ListWorkflows(ctx context.Context) ([]Workflow, error) {
	var workflows []Workflow
	cursor := ""

	for {
		endpoint, err := url.Parse(c.baseURL)
		if err != nil {
			return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
		}
		endpoint.Path = path.Join(endpoint.Path, "/api/v1/workflows")
		if cursor != "" {
			query := endpoint.Query()
			query.Set("cursor", cursor)
			endpoint.RawQuery = query.Encode()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
		}
		req.Header.Set(apiKeyHeader, c.apiKey)
		req.Header.Set("Accept", "application/json")

		body, err := c.do(req)
		if err != nil {
			return nil, err
		}

		var page listWorkflowsResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
		}
		workflows = append(workflows, page.Data...)

		if page.NextCursor == nil || *page.NextCursor == "" {
			return workflows, nil
		}
		cursor = *page.NextCursor
	}
}

// CallWebhook dispara o webhook de produção com o payload em JSON
func (c *N8NClient) CallWebhook(ctx context.Context, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar o payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.WebhookURL(name), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

func (c *N8NClient) WebhookURL(name string) string {
	return c.webhookURL + "/" + strings.TrimPrefix(name, "/")
}

func (c *N8NClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	return body, nil
}
