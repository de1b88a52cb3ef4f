package domain

import (
	"slices"
	"time"

	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

type InsightType string

const (
	InsightStrategy   InsightType = "strategy"
	InsightCompetitor InsightType = "competitor"
	InsightForecast   InsightType = "forecast"
	InsightTiming     InsightType = "timing"
	InsightContent    InsightType = "content"
)

var InsightTypes = []InsightType{InsightStrategy, InsightCompetitor, InsightForecast, InsightTiming, InsightContent}

func ParseInsightType(value string) (InsightType, error) {
	t := InsightType(value)
	if !slices.Contains(InsightTypes, t) {
		return "", NewValidationError("Invalid insight type. Must be one of: %s", FormatChoices(InsightTypes))
	}
	return t, nil
}

// AIInsight é gravado uma única vez e nunca atualizado
type AIInsight struct {
	ID         string      `json:"id"`
	Type       InsightType `json:"type"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	Confidence float64     `json:"confidence"`
	DataSource string      `json:"data_source"`
	CreatedAt  time.Time   `json:"created_at"`
}

func NewAIInsight(insightType InsightType, title, content string, confidence float64, dataSource string) (*AIInsight, error) {
	if !slices.Contains(InsightTypes, insightType) {
		return nil, NewValidationError("Invalid insight type. Must be one of: %s", FormatChoices(InsightTypes))
	}
	if confidence < 0 || confidence > 1 {
		return nil, NewValidationError("Confidence must be between 0 and 1")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	return &AIInsight{
		ID:         id,
		Type:       insightType,
		Title:      title,
		Content:    content,
		Confidence: confidence,
		DataSource: dataSource,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

type InsightFilter struct {
	Type  *InsightType
	Limit int
}

func (f InsightFilter) Match(i AIInsight) bool {
	return f.Type == nil || i.Type == *f.Type
}
