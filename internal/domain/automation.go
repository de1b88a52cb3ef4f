package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

type TriggerType string

const (
	TriggerSchedule  TriggerType = "schedule"
	TriggerWebhook   TriggerType = "webhook"
	TriggerEvent     TriggerType = "event"
	TriggerCondition TriggerType = "condition"
)

var TriggerTypes = []TriggerType{TriggerSchedule, TriggerWebhook, TriggerEvent, TriggerCondition}

func ParseTriggerType(value string) (TriggerType, error) {
	t := TriggerType(value)
	if !slices.Contains(TriggerTypes, t) {
		return "", NewValidationError("Invalid trigger type. Must be one of: %s", FormatChoices(TriggerTypes))
	}
	return t, nil
}

type AutomationRule struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	TriggerType TriggerType      `json:"trigger_type"`
	Schedule    *string          `json:"schedule,omitempty"`
	Actions     []map[string]any `json:"actions"`
	Conditions  map[string]any   `json:"conditions,omitempty"`
	Enabled     bool             `json:"enabled"`
	Status      string           `json:"status"`
	LastRun     *time.Time       `json:"last_run,omitempty"`
	NextRun     *time.Time       `json:"next_run,omitempty"`
	SuccessRate float64          `json:"success_rate"`
	CreatedAt   *time.Time       `json:"created_at,omitempty"`
}

func (r AutomationRule) IsActive() bool {
	return r.Status == "active"
}

// RuleDraft é a entrada de criação de regra; enabled é verdadeiro quando omitido
type RuleDraft struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	TriggerType string           `json:"trigger_type"`
	Actions     []map[string]any `json:"actions"`
	Conditions  map[string]any   `json:"conditions"`
	Schedule    *string          `json:"schedule"`
	Enabled     *bool            `json:"enabled"`
}

func NewAutomationRule(draft RuleDraft) (*AutomationRule, error) {
	trigger, err := ParseTriggerType(draft.TriggerType)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(draft.Name) == "" {
		return nil, NewValidationError("Name is required")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	enabled := draft.Enabled == nil || *draft.Enabled
	status := "active"
	if !enabled {
		status = "inactive"
	}

	actions := draft.Actions
	if actions == nil {
		actions = []map[string]any{}
	}

	now := time.Now().UTC()
	return &AutomationRule{
		ID:          "rule_" + id,
		Name:        draft.Name,
		Description: draft.Description,
		TriggerType: trigger,
		Schedule:    draft.Schedule,
		Actions:     actions,
		Conditions:  draft.Conditions,
		Enabled:     enabled,
		Status:      status,
		SuccessRate: 0,
		CreatedAt:   &now,
	}, nil
}

// Workflow é um fluxo do motor de automação (n8n)
type Workflow struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	LastExecution   *time.Time `json:"last_execution"`
	ExecutionsToday int        `json:"executions_today"`
	SuccessRate     float64    `json:"success_rate"`
	WebhookURL      string     `json:"webhook_url"`
}

func (w Workflow) IsActive() bool {
	return w.Status == "active"
}

// Execution é o disparo manual de uma regra
type Execution struct {
	ID          string    `json:"execution_id"`
	RuleID      string    `json:"rule_id"`
	Status      string    `json:"status"`
	TriggeredAt time.Time `json:"triggered_at"`
}
