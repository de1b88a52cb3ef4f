package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vfg2006/business-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

//go:generate mockgen -source=cash_flow.go -destination=mocks/cash_flow.go -package=mocks

const cashFlowTable = "cash_flow"

var cashFlowColumns = []string{"id", "type", "category", "amount", "description", "date", "tags", "created_at"}

type CashFlowRepository interface {
	List(ctx context.Context, filter domain.CashFlowFilter) ([]domain.CashFlowEntry, error)
	Insert(ctx context.Context, entry *domain.CashFlowEntry) error
}

type cashFlowRepository struct {
	conn postgres.Queryer
}

func NewCashFlowRepository(conn postgres.Queryer) CashFlowRepository {
	return &cashFlowRepository{
		conn: conn,
	}
}

func (r *cashFlowRepository) List(ctx context.Context, filter domain.CashFlowFilter) ([]domain.CashFlowEntry, error) {
	builder := psql.
		Select(cashFlowColumns...).
		From(cashFlowTable).
		Where("date >= ?", filter.Since).
		OrderBy("date DESC")

	if filter.Type != nil {
		builder = builder.Where(squirrel.Eq{"type": string(*filter.Type)})
	}
	if filter.Category != nil {
		builder = builder.Where("LOWER(category) = LOWER(?)", *filter.Category)
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

	entries := make([]domain.CashFlowEntry, 0)
	for rows.Next() {
		var (
			e         domain.CashFlowEntry
			entryType string
			tags      pq.StringArray
		)

		if err := rows.Scan(&e.ID, &entryType, &e.Category, &e.Amount, &e.Description, &e.Date, &tags, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
		}

		e.Type = domain.TransactionType(entryType)
		e.Tags = []string(tags)
		if e.Tags == nil {
			e.Tags = []string{}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *cashFlowRepository) Insert(ctx context.Context, e *domain.CashFlowEntry) error {
	query, args, err := psql.
		Insert(cashFlowTable).
		Columns(cashFlowColumns...).
		Values(e.ID, string(e.Type), e.Category, e.Amount, e.Description, e.Date, pq.Array(e.Tags), e.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir lançamento: %w", err)
	}

	return nil
}
