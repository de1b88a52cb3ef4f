package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/business-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

//go:generate mockgen -source=business_metric.go -destination=mocks/business_metric.go -package=mocks

const businessMetricsTable = "business_metrics"

var businessMetricColumns = []string{"id", "date", "revenue", "expenses", "profit", "roi", "created_at"}

type BusinessMetricRepository interface {
	List(ctx context.Context, filter domain.MetricFilter) ([]domain.BusinessMetric, error)
	Insert(ctx context.Context, metric *domain.BusinessMetric) error
}

type businessMetricRepository struct {
	conn postgres.Queryer
}

func NewBusinessMetricRepository(conn postgres.Queryer) BusinessMetricRepository {
	return &businessMetricRepository{
		conn: conn,
	}
}

func (r *businessMetricRepository) List(ctx context.Context, filter domain.MetricFilter) ([]domain.BusinessMetric, error) {
	query, args, err := psql.
		Select(businessMetricColumns...).
		From(businessMetricsTable).
		Where("date >= ?", filter.Since).
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]domain.BusinessMetric, 0)
	for rows.Next() {
		var m domain.BusinessMetric
		if err := rows.Scan(&m.ID, &m.Date, &m.Revenue, &m.Expenses, &m.Profit, &m.ROI, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica: %w", err)
		}
		metrics = append(metrics, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func (r *businessMetricRepository) Insert(ctx context.Context, m *domain.BusinessMetric) error {
	query, args, err := psql.
		Insert(businessMetricsTable).
		Columns(businessMetricColumns...).
		Values(m.ID, m.Date, m.Revenue, m.Expenses, m.Profit, m.ROI, m.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir métrica: %w", err)
	}

	return nil
}
