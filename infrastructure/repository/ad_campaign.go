package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/business-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

//go:generate mockgen -source=ad_campaign.go -destination=mocks/ad_campaign.go -package=mocks

const adCampaignsTable = "ad_campaigns"

var adCampaignColumns = []string{
	"id", "name", "platform", "budget", "spent", "clicks", "impressions", "conversions",
	"ctr", "cpc", "roas", "status", "target_audience", "campaign_type", "start_date", "end_date", "created_at",
}

type AdCampaignRepository interface {
	List(ctx context.Context, filter domain.CampaignFilter) ([]domain.AdCampaign, error)
	GetByID(ctx context.Context, id string) (*domain.AdCampaign, error)
	Insert(ctx context.Context, campaign *domain.AdCampaign) error
	// Update retorna nil quando a campanha não existe
	Update(ctx context.Context, id string, changes map[string]any) (*domain.AdCampaign, error)
}

type adCampaignRepository struct {
	conn postgres.Queryer
}

func NewAdCampaignRepository(conn postgres.Queryer) AdCampaignRepository {
	return &adCampaignRepository{
		conn: conn,
	}
}

func (r *adCampaignRepository) List(ctx context.Context, filter domain.CampaignFilter) ([]domain.AdCampaign, error) {
	builder := psql.
		Select(adCampaignColumns...).
		From(adCampaignsTable).
		OrderBy("created_at DESC")

	if filter.Platform != nil {
		builder = builder.Where("LOWER(platform) = LOWER(?)", *filter.Platform)
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.Since != nil {
		builder = builder.Where("created_at >= ?", *filter.Since)
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

	campaigns := make([]domain.AdCampaign, 0)
	for rows.Next() {
		campaign, err := scanAdCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, *campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *adCampaignRepository) GetByID(ctx context.Context, id string) (*domain.AdCampaign, error) {
	query, args, err := psql.
		Select(adCampaignColumns...).
		From(adCampaignsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanAdCampaign(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar campanha: %w", err)
	}

	return campaign, nil
}

func (r *adCampaignRepository) Insert(ctx context.Context, c *domain.AdCampaign) error {
	query, args, err := psql.
		Insert(adCampaignsTable).
		Columns(adCampaignColumns...).
		Values(
			c.ID, c.Name, string(c.Platform), c.Budget, c.Spent, c.Clicks, c.Impressions, c.Conversions,
			c.CTR, c.CPC, c.ROAS, string(c.Status), c.TargetAudience, c.CampaignType,
			nullTime(c.StartDate), nullTime(c.EndDate), c.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir campanha: %w", err)
	}

	return nil
}

func (r *adCampaignRepository) Update(ctx context.Context, id string, changes map[string]any) (*domain.AdCampaign, error) {
	if len(changes) == 0 {
		return r.GetByID(ctx, id)
	}

	query, args, err := psql.
		Update(adCampaignsTable).
		SetMap(changes).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(adCampaignColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanAdCampaign(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao atualizar campanha: %w", err)
	}

	return campaign, nil
}

func scanAdCampaign(row scanner) (*domain.AdCampaign, error) {
	var (
		c        domain.AdCampaign
		platform string
		status   string
		audience sql.NullString
		kind     sql.NullString
		start    sql.NullTime
		end      sql.NullTime
	)

	err := row.Scan(
		&c.ID, &c.Name, &platform, &c.Budget, &c.Spent, &c.Clicks, &c.Impressions, &c.Conversions,
		&c.CTR, &c.CPC, &c.ROAS, &status, &audience, &kind, &start, &end, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Platform = domain.Platform(platform)
	c.Status = domain.CampaignStatus(status)
	c.TargetAudience = audience.String
	c.CampaignType = kind.String
	c.StartDate = timePtr(start)
	c.EndDate = timePtr(end)

	return &c, nil
}
