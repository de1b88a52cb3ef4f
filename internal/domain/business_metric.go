package domain

import (
	"time"

	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

// BusinessMetric é o consolidado financeiro de um dia de operação
type BusinessMetric struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Revenue   float64   `json:"revenue"`
	Expenses  float64   `json:"expenses"`
	Profit    float64   `json:"profit"`
	ROI       float64   `json:"roi"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBusinessMetric cria a métrica do dia, derivando o lucro de receita e despesas
func NewBusinessMetric(date time.Time, revenue, expenses, roi float64) (*BusinessMetric, error) {
	if revenue < 0 {
		return nil, NewValidationError("Revenue cannot be negative")
	}
	if expenses < 0 {
		return nil, NewValidationError("Expenses cannot be negative")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	return &BusinessMetric{
		ID:        id,
		Date:      date,
		Revenue:   revenue,
		Expenses:  expenses,
		Profit:    revenue - expenses,
		ROI:       roi,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// MetricFilter restringe as métricas a partir de uma data
type MetricFilter struct {
	Since time.Time
}

// MetricsForLastDays cria o filtro da janela dos últimos N dias
func MetricsForLastDays(days int, now time.Time) MetricFilter {
	return MetricFilter{Since: now.AddDate(0, 0, -days)}
}

func (f MetricFilter) Match(m BusinessMetric) bool {
	return !m.Date.Before(f.Since)
}
