package automation

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

const (
	recentFailureWindow = 10
	maxHistory          = 500
)

// WorkflowEngine é o motor de workflows que executa as regras
type WorkflowEngine interface {
	Workflows(ctx context.Context) ([]domain.Workflow, string)
	Trigger(ctx context.Context, ruleID string) (*domain.Execution, error)
}

type Service struct {
	engine WorkflowEngine
	now    func() time.Time
}

func NewService(engine WorkflowEngine) *Service {
	return &Service{
		engine: engine,
		now:    time.Now,
	}
}

func (s *Service) Rules() map[string]any {
	rules := catalogRules()

	return map[string]any{
		"rules":            rules,
		"total_rules":      len(rules),
		"active_rules":     aggregating.Count(rules, domain.AutomationRule.IsActive),
		"avg_success_rate": aggregating.Mean(rules, successRate),
	}
}

func successRate(r domain.AutomationRule) float64 {
	return r.SuccessRate
}

// CreateRule valida a regra; a persistência fica a cargo do motor de workflows
func (s *Service) CreateRule(ctx context.Context, draft domain.RuleDraft) (map[string]any, error) {
	rule, err := domain.NewAutomationRule(draft)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"rule_id":      rule.ID,
		"trigger_type": string(rule.TriggerType),
	}).Info("Automation: regra criada")

	return map[string]any{
		"message": "Automation rule created successfully",
		"rule":    rule,
	}, nil
}

func (s *Service) Workflows(ctx context.Context) map[string]any {
	workflows, status := s.engine.Workflows(ctx)

	return map[string]any{
		"workflows":              workflows,
		"total_workflows":        len(workflows),
		"active_workflows":       aggregating.Count(workflows, domain.Workflow.IsActive),
		"total_executions_today": aggregating.Sum(workflows, func(w domain.Workflow) int { return w.ExecutionsToday }),
		"avg_success_rate":       aggregating.Mean(workflows, func(w domain.Workflow) float64 { return w.SuccessRate }),
		"connection_status":      status,
	}
}

func (s *Service) Trigger(ctx context.Context, ruleID string) (map[string]any, error) {
	execution, err := s.engine.Trigger(ctx, ruleID)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"rule_id":      ruleID,
		"execution_id": execution.ID,
	}).Info("Automation: regra disparada")

	return map[string]any{
		"message":      fmt.Sprintf("Automation rule %s triggered successfully", ruleID),
		"execution_id": execution.ID,
		"status":       execution.Status,
		"triggered_at": execution.TriggeredAt,
	}, nil
}

type ExecutionRecord struct {
	ID               string    `json:"id"`
	RuleName         string    `json:"rule_name"`
	Status           string    `json:"status"`
	StartedAt        time.Time `json:"started_at"`
	Duration         string    `json:"duration"`
	ActionsCompleted int       `json:"actions_completed"`
	ErrorMessage     *string   `json:"error_message"`
}

var (
	historyRuleNames = []string{"Auto-post daily tips", "Engagement response", "Analytics sync"}
	historyStatuses  = []string{"success", "success", "failed", "success"}
)

// ExecutionHistory gera o histórico das últimas execuções, uma por hora; limit vai até 500
func (s *Service) ExecutionHistory(limit int) map[string]any {
	now := s.now().UTC()
	limit = min(max(limit, 0), maxHistory)
	executions := make([]ExecutionRecord, 0, limit)

	for i := range limit {
		record := ExecutionRecord{
			ID:               fmt.Sprintf("exec_%d", i+1),
			RuleName:         historyRuleNames[i%len(historyRuleNames)],
			Status:           historyStatuses[i%len(historyStatuses)],
			StartedAt:        now.Add(-time.Duration(i) * time.Hour),
			Duration:         fmt.Sprintf("%ds", 30+i%60),
			ActionsCompleted: 3 + i%2,
		}
		if i%4 == 2 {
			message := "API rate limit exceeded"
			record.ErrorMessage = &message
		}
		executions = append(executions, record)
	}

	succeeded := aggregating.Count(executions, func(e ExecutionRecord) bool { return e.Status == "success" })
	failures := aggregating.Filter(aggregating.Limit(executions, recentFailureWindow), func(e ExecutionRecord) bool {
		return e.Status == "failed"
	})

	return map[string]any{
		"executions":       executions,
		"total_executions": len(executions),
		"success_rate":     utils.RoundWithOneDecimalPlace(aggregating.Percent(float64(succeeded), float64(len(executions)))),
		"recent_failures":  failures,
		"avg_duration":     "45s",
	}
}

func (s *Service) Metrics() map[string]any {
	return map[string]any{
		"overview": map[string]any{
			"total_automations":  12,
			"active_automations": 8,
			"executions_today":   156,
			"success_rate":       93.2,
			"time_saved_hours":   24.5,
		},
		"performance": map[string]any{
			"avg_execution_time": "42s",
			"fastest_automation": "Analytics sync (8s)",
			"slowest_automation": "Content generation (2m 15s)",
			"most_reliable":      "Lead processing (99.1% success)",
		},
		"cost_savings": map[string]any{
			"manual_hours_avoided": 24.5,
			"cost_per_hour":        25,
			"monthly_savings":      612.5,
			"roi_on_automation":    "340%",
		},
		"upcoming_tasks": []map[string]any{
			{"name": "Daily tip post", "scheduled": "Tomorrow 9:00 AM", "estimated_duration": "45s"},
			{"name": "Analytics sync", "scheduled": "Every hour", "estimated_duration": "8s"},
		},
	}
}
