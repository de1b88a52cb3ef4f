package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/business-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

//go:generate mockgen -source=ai_insight.go -destination=mocks/ai_insight.go -package=mocks

const aiInsightsTable = "ai_insights"

var aiInsightColumns = []string{"id", "type", "title", "content", "confidence", "data_source", "created_at"}

type AIInsightRepository interface {
	List(ctx context.Context, filter domain.InsightFilter) ([]domain.AIInsight, error)
	Insert(ctx context.Context, insight *domain.AIInsight) error
}

type aiInsightRepository struct {
	conn postgres.Queryer
}

func NewAIInsightRepository(conn postgres.Queryer) AIInsightRepository {
	return &aiInsightRepository{
		conn: conn,
	}
}

func (r *aiInsightRepository) List(ctx context.Context, filter domain.InsightFilter) ([]domain.AIInsight, error) {
	builder := psql.
		Select(aiInsightColumns...).
		From(aiInsightsTable).
		OrderBy("created_at DESC")

	if filter.Type != nil {
		builder = builder.Where(squirrel.Eq{"type": string(*filter.Type)})
	}

	query, args, err := withLimit(builder, filter.Limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	insights := make([]domain.AIInsight, 0)
	for rows.Next() {
		var (
			i           domain.AIInsight
			insightType string
		)

		if err := rows.Scan(&i.ID, &insightType, &i.Title, &i.Content, &i.Confidence, &i.DataSource, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear insight: %w", err)
		}

		i.Type = domain.InsightType(insightType)
		insights = append(insights, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return insights, nil
}

func (r *aiInsightRepository) Insert(ctx context.Context, i *domain.AIInsight) error {
	query, args, err := psql.
		Insert(aiInsightsTable).
		Columns(aiInsightColumns...).
		Values(i.ID, string(i.Type), i.Title, i.Content, i.Confidence, i.DataSource, i.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir insight: %w", err)
	}

	return nil
}
