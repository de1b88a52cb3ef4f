// Package n8n integra as regras de automação com o motor de workflows n8n.
package n8n

import (
	"context"
	"time"

	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/n8n/n8nclient"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

const (
	StatusConnected     = "connected"
	StatusUnreachable   = "unreachable"
	StatusNotConfigured = "not_configured"
)

type N8NIntegrator struct {
	client n8nclient.Client
	now    func() time.Time
}

// New recebe client nil quando o n8n não está configurado
func New(client n8nclient.Client) *N8NIntegrator {
	return &N8NIntegrator{
		client: client,
		now:    time.Now,
	}
}

func (s *N8NIntegrator) Configured() bool {
	return s.client != nil
}

// Workflows lista os workflows do n8n; sem conexão retorna o catálogo estático
func (s *N8NIntegrator) Workflows(ctx context.Context) ([]domain.Workflow, string) {
	if s.client == nil {
		return staticWorkflows(), StatusNotConfigured
	}

	remote, err := s.client.ListWorkflows(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("N8N: falha ao listar workflows, usando catálogo estático")
		return staticWorkflows(), StatusUnreachable
	}

	workflows := make([]domain.Workflow, 0, len(remote))
	for _, w := range remote {
		status := "inactive"
		if w.Active {
			status = "active"
		}
		workflows = append(workflows, domain.Workflow{
			ID:         w.ID,
			Name:       w.Name,
			Status:     status,
			WebhookURL: s.client.WebhookURL(w.ID),
		})
	}

	log.ForContext(ctx).WithField("workflows", len(workflows)).Debug("N8N: workflows carregados")

	return workflows, StatusConnected
}

// Trigger dispara a regra pelo webhook "rules/<id>"; sem n8n a execução é apenas registrada
func (s *N8NIntegrator) Trigger(ctx context.Context, ruleID string) (*domain.Execution, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	execution := &domain.Execution{
		ID:          "exec_" + id,
		RuleID:      ruleID,
		Status:      "running",
		TriggeredAt: s.now().UTC(),
	}

	if s.client == nil {
		return execution, nil
	}

	err = s.client.CallWebhook(ctx, "rules/"+ruleID, map[string]any{
		"rule_id":      ruleID,
		"execution_id": execution.ID,
		"triggered_at": execution.TriggeredAt,
	})
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"rule_id": ruleID,
			"error":   err.Error(),
		}).Error("N8N: falha ao disparar a regra")
		return nil, err
	}

	return execution, nil
}

func at(value string) *time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return &t
}

func staticWorkflows() []domain.Workflow {
	return []domain.Workflow{
		{
			ID:              "wf_social_automation",
			Name:            "Social Media Automation",
			Status:          "active",
			LastExecution:   at("2024-01-15T14:30:00Z"),
			ExecutionsToday: 45,
			SuccessRate:     94.2,
			WebhookURL:      "https://n8n.your-domain.com/webhook/social-automation",
		},
		{
			ID:              "wf_lead_processing",
			Name:            "Lead Processing Pipeline",
			Status:          "active",
			LastExecution:   at("2024-01-15T15:15:00Z"),
			ExecutionsToday: 12,
			SuccessRate:     98.1,
			WebhookURL:      "https://n8n.your-domain.com/webhook/lead-processing",
		},
		{
			ID:              "wf_analytics_sync",
			Name:            "Analytics Data Sync",
			Status:          "active",
			LastExecution:   at("2024-01-15T16:00:00Z"),
			ExecutionsToday: 8,
			SuccessRate:     100.0,
			WebhookURL:      "https://n8n.your-domain.com/webhook/analytics-sync",
		},
	}
}
