package brandasset

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/business-dashboard-api/infrastructure/storage"
	"github.com/vfg2006/business-dashboard-api/infrastructure/store"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

func init() {
	log.SetupTestLogger()
}

// memoryBackend guarda os arquivos enviados em memória
type memoryBackend struct {
	files map[string][]byte
}

func (m *memoryBackend) Upload(_ context.Context, in storage.UploadInput) (*storage.UploadOutput, error) {
	data, err := io.ReadAll(in.Reader)
	if err != nil {
		return nil, err
	}
	m.files[in.Filename] = data
	return &storage.UploadOutput{
		Key:        in.Filename,
		URL:        "/uploads/" + in.Filename,
		Size:       int64(len(data)),
		Backend:    m.Name(),
		UploadedAt: time.Now().UTC(),
	}, nil
}

func (m *memoryBackend) Delete(_ context.Context, key string) error {
	delete(m.files, key)
	return nil
}

func (m *memoryBackend) Name() string { return "memory" }

type countingStore struct {
	*store.Store
	added   int
	updated []domain.BrandAsset
}

func (c *countingStore) AddBrandAsset(ctx context.Context, asset *domain.BrandAsset) *domain.BrandAsset {
	c.added++
	return c.Store.AddBrandAsset(ctx, asset)
}

func (c *countingStore) UpdateBrandAsset(ctx context.Context, asset *domain.BrandAsset) (*domain.BrandAsset, bool) {
	c.updated = append(c.updated, *asset)
	return c.Store.UpdateBrandAsset(ctx, asset)
}

func newService() (*Service, *countingStore, *memoryBackend) {
	records := &countingStore{Store: store.New(store.Repositories{}, nil)}
	backend := &memoryBackend{files: map[string][]byte{}}
	return NewService(records, storage.NewUploader(backend, 1024*1024)), records, backend
}

func TestService_ListAssets(t *testing.T) {
	imageType := "image"
	tags := "hero, footer"
	invalid := "audio"

	tests := []struct {
		name     string
		query    AssetQuery
		validate func(t *testing.T, body map[string]any, err error)
	}{
		{
			name:  "Sem filtros",
			query: AssetQuery{Limit: 50},
			validate: func(t *testing.T, body map[string]any, err error) {
				require.NoError(t, err)
				assert.Equal(t, 5, body["total_assets"])
				assert.Equal(t, 5, body["filtered_count"])

				stats := body["statistics"].(map[string]any)
				assert.Equal(t, "49.1MB", stats["total_storage"])
				assert.Equal(t, map[string]int{"logo": 1, "image": 2, "video": 1, "document": 1}, stats["asset_types"])
				assert.Equal(t, "Company Logo - Primary", stats["most_used"].(*domain.BrandAsset).Name)
				assert.Equal(t, "Product Demo Video", stats["recently_added"].(*domain.BrandAsset).Name)

				breakdown := body["breakdown"].(map[string]any)
				assert.Equal(t, stats["asset_types"], breakdown["by_type"])
				assert.Equal(t, map[string]int{"active": 5}, breakdown["by_status"])
			},
		},
		{
			name:  "Filtro por tipo e tags",
			query: AssetQuery{Type: &imageType, Tags: &tags, Limit: 50},
			validate: func(t *testing.T, body map[string]any, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, body["filtered_count"])
				assert.Equal(t, 5, body["total_assets"])
				filters := body["filters_applied"].(map[string]any)
				assert.Equal(t, "image", filters["type"])
				assert.Equal(t, "hero, footer", filters["tags"])

				breakdown := body["breakdown"].(map[string]any)
				assert.Equal(t, map[string]int{"image": 2}, breakdown["by_type"])
				assert.Equal(t, map[string]int{"active": 2}, breakdown["by_status"])
			},
		},
		{
			name:  "Tipo inválido",
			query: AssetQuery{Type: &invalid},
			validate: func(t *testing.T, body map[string]any, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "Invalid asset type")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newService()
			body, err := svc.ListAssets(context.Background(), tt.query)
			tt.validate(t, body, err)
		})
	}
}

func TestService_Upload(t *testing.T) {
	tests := []struct {
		name     string
		req      UploadRequest
		validate func(t *testing.T, result *UploadResult, err error, records *countingStore, backend *memoryBackend)
	}{
		{
			name: "Infere o tipo pela extensão",
			req:  UploadRequest{Filename: "banner.PNG", ContentType: "image/png", Data: []byte("png-bytes"), Tags: "ads, ,summer"},
			validate: func(t *testing.T, result *UploadResult, err error, records *countingStore, backend *memoryBackend) {
				require.NoError(t, err)
				assert.Equal(t, domain.AssetImage, result.Asset.Type)
				assert.Equal(t, "banner.PNG", result.Asset.Name)
				assert.Equal(t, "/uploads/banner.PNG", result.Asset.URL)
				assert.Equal(t, []string{"ads", "summer"}, result.Asset.Tags)
				assert.Equal(t, "0.0KB", result.Asset.FileSize)
				assert.Equal(t, utils.Checksum([]byte("png-bytes")), result.Asset.Checksum)
				assert.Equal(t, 1, records.added)
				assert.Equal(t, []byte("png-bytes"), backend.files["banner.PNG"])
			},
		},
		{
			name: "Arquivo acima do limite",
			req:  UploadRequest{Filename: "video.mp4", Data: bytes.Repeat([]byte{1}, 1024*1024+1)},
			validate: func(t *testing.T, result *UploadResult, err error, records *countingStore, backend *memoryBackend) {
				require.Error(t, err)
				assert.Equal(t, "File too large. Maximum size is 1MB", err.Error())
				_, ok := domain.AsValidationError(err)
				assert.True(t, ok)
				assert.Zero(t, records.added)
				assert.Empty(t, backend.files)
			},
		},
		{
			name: "Sem arquivo",
			req:  UploadRequest{},
			validate: func(t *testing.T, result *UploadResult, err error, records *countingStore, backend *memoryBackend) {
				require.Error(t, err)
				assert.Equal(t, "No file provided", err.Error())
			},
		},
		{
			name: "Tipo informado inválido",
			req:  UploadRequest{Filename: "a.txt", Data: []byte("x"), AssetType: "audio"},
			validate: func(t *testing.T, result *UploadResult, err error, records *countingStore, backend *memoryBackend) {
				require.Error(t, err)
				assert.Empty(t, backend.files)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, records, backend := newService()
			result, err := svc.Upload(context.Background(), tt.req)
			tt.validate(t, result, err, records, backend)
		})
	}
}

func TestService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	name := "Logo - Dark"

	t.Run("Atualiza metadados", func(t *testing.T) {
		svc, records, _ := newService()
		result, err := svc.UpdateAsset(ctx, "1", domain.AssetUpdate{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Logo - Dark", result.Asset.Name)
		assert.Equal(t, map[string]any{"name": "Logo - Dark"}, result.Applied)
		require.Len(t, records.updated, 1)
	})

	t.Run("Ativo inexistente", func(t *testing.T) {
		svc, _, _ := newService()
		_, err := svc.UpdateAsset(ctx, "42", domain.AssetUpdate{Name: &name})
		assert.ErrorIs(t, err, ErrAssetNotFound)

		_, err = svc.DeleteAsset(ctx, "42")
		assert.ErrorIs(t, err, ErrAssetNotFound)
	})

	t.Run("Exclusão lógica", func(t *testing.T) {
		svc, records, _ := newService()
		deletedAt, err := svc.DeleteAsset(ctx, "2")
		require.NoError(t, err)
		assert.False(t, deletedAt.IsZero())
		require.Len(t, records.updated, 1)
		assert.Equal(t, domain.AssetStatusDeleted, records.updated[0].Status)
	})
}

func TestCollections(t *testing.T) {
	body := Collections()
	assert.Equal(t, 3, body["total_collections"])
	assert.Equal(t, 29, body["total_assets_in_collections"])
}
