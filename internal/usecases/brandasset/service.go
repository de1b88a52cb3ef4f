package brandasset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/business-dashboard-api/infrastructure/storage"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

type AssetStore interface {
	BrandAssets(ctx context.Context, filter domain.AssetFilter) []domain.BrandAsset
	BrandAsset(ctx context.Context, id string) (*domain.BrandAsset, bool)
	AddBrandAsset(ctx context.Context, asset *domain.BrandAsset) *domain.BrandAsset
	UpdateBrandAsset(ctx context.Context, asset *domain.BrandAsset) (*domain.BrandAsset, bool)
}

// Uploader é o armazenamento de objetos com limite de tamanho
type Uploader interface {
	Upload(ctx context.Context, in storage.UploadInput) (*storage.UploadOutput, error)
	MaxMegabytes() int64
}

type Service struct {
	store    AssetStore
	uploader Uploader
	now      func() time.Time
}

func NewService(store AssetStore, uploader Uploader) *Service {
	return &Service{
		store:    store,
		uploader: uploader,
		now:      time.Now,
	}
}

type AssetQuery struct {
	Type  *string
	Tags  *string
	Limit int
}

// ListAssets filtra os ativos; as estatísticas consideram todos os ativos ativos
func (s *Service) ListAssets(ctx context.Context, q AssetQuery) (map[string]any, error) {
	filter := domain.AssetFilter{Limit: q.Limit}
	if q.Type != nil {
		t, err := domain.ParseAssetType(*q.Type)
		if err != nil {
			return nil, err
		}
		filter.Type = &t
	}
	if q.Tags != nil {
		filter.Tags = domain.ParseTagList(*q.Tags)
	}

	filtered := s.store.BrandAssets(ctx, filter)
	all := s.store.BrandAssets(ctx, domain.AssetFilter{})

	storageMB := aggregating.Sum(all, func(a domain.BrandAsset) float64 { return domain.FileSizeMegabytes(a.FileSize) })

	env := reporting.NewEnvelope().
		AddSummary("total_storage", fmt.Sprintf("%.1fMB", storageMB)).
		AddSummary("asset_types", countBy(all, func(a domain.BrandAsset) string { return string(a.Type) })).
		AddSummary("most_used", aggregating.MaxBy(all, func(a domain.BrandAsset) float64 { return float64(a.UsageCount) })).
		AddSummary("recently_added", aggregating.MaxBy(all, func(a domain.BrandAsset) float64 { return float64(a.CreatedAt.Unix()) })).
		AddBreakdown("by_type", countBy(filtered, func(a domain.BrandAsset) string { return string(a.Type) })).
		AddBreakdown("by_status", countBy(filtered, func(a domain.BrandAsset) string { return string(a.Status) })).
		Filter("type", reporting.Optional(q.Type)).
		Filter("tags", reporting.Optional(q.Tags)).
		Filter("limit", q.Limit)

	return env.Body("statistics", "breakdown", map[string]any{
		"assets":         filtered,
		"total_assets":   len(all),
		"filtered_count": len(filtered),
	}), nil
}

func countBy(assets []domain.BrandAsset, key func(domain.BrandAsset) string) map[string]int {
	counts := make(map[string]int)
	for k, group := range aggregating.GroupBy(assets, key) {
		counts[k] = len(group)
	}
	return counts
}

func (s *Service) CreateAsset(ctx context.Context, draft domain.AssetDraft) (*domain.BrandAsset, error) {
	asset, err := domain.NewBrandAsset(draft)
	if err != nil {
		return nil, err
	}

	return s.store.AddBrandAsset(ctx, asset), nil
}

type UploadRequest struct {
	Filename    string
	ContentType string
	Data        []byte
	Name        string
	AssetType   string
	Tags        string
	Description string
}

type UploadResult struct {
	Asset      *domain.BrandAsset    `json:"asset"`
	UploadInfo map[string]any        `json:"upload_info"`
	Storage    *storage.UploadOutput `json:"-"`
}

// Upload envia o arquivo ao armazenamento e registra o ativo.
// O tipo é inferido pela extensão quando não informado.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	if req.Filename == "" {
		return nil, domain.NewValidationError("%s", ErrNoFile.Error())
	}

	assetType := domain.InferAssetType(req.Filename)
	if req.AssetType != "" {
		parsed, err := domain.ParseAssetType(req.AssetType)
		if err != nil {
			return nil, err
		}
		assetType = parsed
	}

	stored, err := s.uploader.Upload(ctx, storage.UploadInput{
		Reader:      bytes.NewReader(req.Data),
		ContentType: req.ContentType,
		Size:        int64(len(req.Data)),
		Filename:    req.Filename,
	})
	if errors.Is(err, storage.ErrFileTooLarge) {
		return nil, domain.NewValidationError("File too large. Maximum size is %dMB", s.uploader.MaxMegabytes())
	}
	if err != nil {
		return nil, fmt.Errorf("upload do arquivo %s: %w", req.Filename, err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = req.Filename
	}
	var description *string
	if req.Description != "" {
		description = &req.Description
	}
	tags := domain.ParseTagList(req.Tags)
	if tags == nil {
		tags = []string{}
	}

	asset := s.store.AddBrandAsset(ctx, &domain.BrandAsset{
		ID:          id,
		Name:        name,
		Type:        assetType,
		URL:         stored.URL,
		Tags:        tags,
		Description: description,
		FileSize:    domain.FormatFileSize(int64(len(req.Data))),
		Status:      domain.AssetStatusActive,
		Filename:    req.Filename,
		ContentType: req.ContentType,
		Checksum:    utils.Checksum(req.Data),
		Metadata:    map[string]any{"storage_key": stored.Key, "backend": stored.Backend},
		CreatedAt:   s.now().UTC(),
	})

	log.ForContext(ctx).WithFields(log.Fields{
		"asset_id": asset.ID,
		"type":     string(asset.Type),
		"size":     asset.FileSize,
	}).Info("Ativos: arquivo registrado")

	return &UploadResult{
		Asset: asset,
		UploadInfo: map[string]any{
			"original_filename": req.Filename,
			"size":              asset.FileSize,
			"type":              string(asset.Type),
			"checksum":          asset.Checksum,
		},
		Storage: stored,
	}, nil
}

func (s *Service) Asset(ctx context.Context, id string) (*domain.BrandAsset, error) {
	asset, found := s.store.BrandAsset(ctx, id)
	if !found {
		return nil, ErrAssetNotFound
	}
	return asset, nil
}

type UpdateResult struct {
	Asset     *domain.BrandAsset `json:"asset"`
	Applied   map[string]any     `json:"updates_applied"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func (s *Service) UpdateAsset(ctx context.Context, id string, update domain.AssetUpdate) (*UpdateResult, error) {
	changes, err := update.Changes()
	if err != nil {
		return nil, err
	}

	asset, err := s.Asset(ctx, id)
	if err != nil {
		return nil, err
	}
	asset.Apply(update)

	updated, found := s.store.UpdateBrandAsset(ctx, asset)
	if !found {
		return nil, ErrAssetNotFound
	}

	return &UpdateResult{Asset: updated, Applied: changes, UpdatedAt: s.now()}, nil
}

// DeleteAsset faz a exclusão lógica; o arquivo permanece no armazenamento
func (s *Service) DeleteAsset(ctx context.Context, id string) (time.Time, error) {
	asset, err := s.Asset(ctx, id)
	if err != nil {
		return time.Time{}, err
	}

	deletedAt := s.now()
	asset.MarkDeleted(deletedAt)

	if _, found := s.store.UpdateBrandAsset(ctx, asset); !found {
		return time.Time{}, ErrAssetNotFound
	}

	log.ForContext(ctx).WithField("asset_id", id).Info("Ativos: ativo excluído")

	return deletedAt, nil
}
