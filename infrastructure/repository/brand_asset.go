package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vfg2006/business-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

//go:generate mockgen -source=brand_asset.go -destination=mocks/brand_asset.go -package=mocks

const brandAssetsTable = "brand_assets"

var brandAssetColumns = []string{
	"id", "name", "type", "url", "tags", "description", "file_size", "usage_count", "status",
	"filename", "content_type", "checksum", "metadata", "created_at", "last_used", "deleted_at",
}

type BrandAssetRepository interface {
	List(ctx context.Context, filter domain.AssetFilter) ([]domain.BrandAsset, error)
	GetByID(ctx context.Context, id string) (*domain.BrandAsset, error)
	Insert(ctx context.Context, asset *domain.BrandAsset) error
	// Update grava o ativo inteiro, retornando false quando ele não existe
	Update(ctx context.Context, asset *domain.BrandAsset) (bool, error)
}

type brandAssetRepository struct {
	conn postgres.Queryer
}

func NewBrandAssetRepository(conn postgres.Queryer) BrandAssetRepository {
	return &brandAssetRepository{
		conn: conn,
	}
}

func (r *brandAssetRepository) List(ctx context.Context, filter domain.AssetFilter) ([]domain.BrandAsset, error) {
	builder := psql.
		Select(brandAssetColumns...).
		From(brandAssetsTable).
		Where(squirrel.NotEq{"status": string(domain.AssetStatusDeleted)}).
		OrderBy("created_at DESC")

	if filter.Type != nil {
		builder = builder.Where(squirrel.Eq{"type": string(*filter.Type)})
	}
	if len(filter.Tags) > 0 {
		builder = builder.Where("tags && ?", pq.Array(filter.Tags))
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

	assets := make([]domain.BrandAsset, 0)
	for rows.Next() {
		asset, err := scanBrandAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ativo: %w", err)
		}
		assets = append(assets, *asset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return assets, nil
}

func (r *brandAssetRepository) GetByID(ctx context.Context, id string) (*domain.BrandAsset, error) {
	query, args, err := psql.
		Select(brandAssetColumns...).
		From(brandAssetsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	asset, err := scanBrandAsset(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar ativo: %w", err)
	}

	return asset, nil
}

func (r *brandAssetRepository) Insert(ctx context.Context, a *domain.BrandAsset) error {
	metadata, err := marshalMetadata(a.Metadata)
	if err != nil {
		return err
	}

	query, args, err := psql.
		Insert(brandAssetsTable).
		Columns(brandAssetColumns...).
		Values(
			a.ID, a.Name, string(a.Type), a.URL, pq.Array(a.Tags), nullString(a.Description), a.FileSize,
			a.UsageCount, string(a.Status), a.Filename, a.ContentType, a.Checksum, metadata,
			a.CreatedAt, nullTime(a.LastUsed), nullTime(a.DeletedAt),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir ativo: %w", err)
	}

	return nil
}

func (r *brandAssetRepository) Update(ctx context.Context, a *domain.BrandAsset) (bool, error) {
	metadata, err := marshalMetadata(a.Metadata)
	if err != nil {
		return false, err
	}

	query, args, err := psql.
		Update(brandAssetsTable).
		SetMap(map[string]any{
			"name":        a.Name,
			"type":        string(a.Type),
			"url":         a.URL,
			"tags":        pq.Array(a.Tags),
			"description": nullString(a.Description),
			"usage_count": a.UsageCount,
			"status":      string(a.Status),
			"metadata":    metadata,
			"last_used":   nullTime(a.LastUsed),
			"deleted_at":  nullTime(a.DeletedAt),
		}).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao atualizar ativo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return affected > 0, nil
}

func marshalMetadata(metadata map[string]any) ([]byte, error) {
	if metadata == nil {
		return []byte("{}"), nil
	}

	raw, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar metadados: %w", err)
	}

	return raw, nil
}

func scanBrandAsset(row scanner) (*domain.BrandAsset, error) {
	var (
		a           domain.BrandAsset
		assetType   string
		status      string
		tags        pq.StringArray
		description sql.NullString
		filename    sql.NullString
		contentType sql.NullString
		checksum    sql.NullString
		metadata    []byte
		lastUsed    sql.NullTime
		deletedAt   sql.NullTime
	)

	err := row.Scan(
		&a.ID, &a.Name, &assetType, &a.URL, &tags, &description, &a.FileSize, &a.UsageCount, &status,
		&filename, &contentType, &checksum, &metadata, &a.CreatedAt, &lastUsed, &deletedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Type = domain.AssetType(assetType)
	a.Status = domain.AssetStatus(status)
	a.Tags = []string(tags)
	if a.Tags == nil {
		a.Tags = []string{}
	}
	a.Description = stringPtr(description)
	a.Filename = filename.String
	a.ContentType = contentType.String
	a.Checksum = checksum.String
	a.LastUsed = timePtr(lastUsed)
	a.DeletedAt = timePtr(deletedAt)

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &a.Metadata); err != nil {
			return nil, fmt.Errorf("erro ao decodificar metadados: %w", err)
		}
		if len(a.Metadata) == 0 {
			a.Metadata = nil
		}
	}

	return &a, nil
}
