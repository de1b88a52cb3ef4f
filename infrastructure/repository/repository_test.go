package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

var errNoDatabase = errors.New("sem banco no teste")

// queryerStub grava a última query enviada; Query sempre falha porque *sql.Rows
// não pode ser construído sem um driver
type queryerStub struct {
	query    string
	args     []any
	affected int64
	execErr  error
}

func (s *queryerStub) Exec(_ context.Context, query string, args ...any) (sql.Result, error) {
	s.query, s.args = query, args
	if s.execErr != nil {
		return nil, s.execErr
	}
	return driver.RowsAffected(s.affected), nil
}

func (s *queryerStub) Query(_ context.Context, query string, args ...any) (*sql.Rows, error) {
	s.query, s.args = query, args
	return nil, errNoDatabase
}

func (s *queryerStub) QueryRow(context.Context, string, ...any) *sql.Row {
	panic("QueryRow não é usado nestes testes")
}

// rowStub devolve os valores na ordem das colunas
type rowStub []any

func (r rowStub) Scan(dest ...any) error {
	if len(dest) != len(r) {
		return fmt.Errorf("esperava %d colunas, recebeu %d destinos", len(r), len(dest))
	}
	for i, v := range r {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

func ptr[T any](v T) *T { return &v }

func TestListQueries(t *testing.T) {
	since := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		list     func(q *queryerStub) error
		contains []string
		args     int
	}{
		{
			name: "métricas filtram pela janela",
			list: func(q *queryerStub) error {
				_, err := NewBusinessMetricRepository(q).List(context.Background(), domain.MetricFilter{Since: since})
				return err
			},
			contains: []string{
				"SELECT id, date, revenue, expenses, profit, roi, created_at FROM business_metrics",
				"WHERE date >= $1",
				"ORDER BY date DESC",
			},
			args: 1,
		},
		{
			name: "publicações sem filtro não têm WHERE nem LIMIT",
			list: func(q *queryerStub) error {
				_, err := NewSocialPostRepository(q).List(context.Background(), domain.PostFilter{})
				return err
			},
			contains: []string{"FROM social_media_posts ORDER BY created_at DESC"},
			args:     0,
		},
		{
			name: "publicações com rede, status, data e limite",
			list: func(q *queryerStub) error {
				_, err := NewSocialPostRepository(q).List(context.Background(), domain.PostFilter{
					Platform: ptr(domain.Platform("instagram")),
					Status:   ptr(domain.PostStatus("scheduled")),
					Since:    &since,
					Limit:    5,
				})
				return err
			},
			contains: []string{"WHERE platform = $1 AND status = $2 AND created_at >= $3", "LIMIT 5"},
			args:     3,
		},
		{
			name: "campanhas comparam a rede sem diferenciar maiúsculas",
			list: func(q *queryerStub) error {
				_, err := NewAdCampaignRepository(q).List(context.Background(), domain.CampaignFilter{
					Platform: ptr("Google"),
					Limit:    10,
				})
				return err
			},
			contains: []string{"FROM ad_campaigns", "WHERE LOWER(platform) = LOWER($1)", "LIMIT 10"},
			args:     1,
		},
		{
			name: "lançamentos filtram tipo e categoria",
			list: func(q *queryerStub) error {
				_, err := NewCashFlowRepository(q).List(context.Background(), domain.CashFlowFilter{
					Since:    since,
					Type:     ptr(domain.TransactionType("expense")),
					Category: ptr("Marketing"),
				})
				return err
			},
			contains: []string{"WHERE date >= $1 AND type = $2 AND LOWER(category) = LOWER($3)"},
			args:     3,
		},
		{
			name: "ativos ignoram excluídos e cruzam tags",
			list: func(q *queryerStub) error {
				_, err := NewBrandAssetRepository(q).List(context.Background(), domain.AssetFilter{
					Type: ptr(domain.AssetType("logo")),
					Tags: []string{"primary"},
				})
				return err
			},
			contains: []string{"WHERE status <> $1 AND type = $2 AND tags && $3"},
			args:     3,
		},
		{
			name: "insights por tipo",
			list: func(q *queryerStub) error {
				_, err := NewAIInsightRepository(q).List(context.Background(), domain.InsightFilter{
					Type:  ptr(domain.InsightType("trend")),
					Limit: 3,
				})
				return err
			},
			contains: []string{"FROM ai_insights WHERE type = $1 ORDER BY created_at DESC LIMIT 3"},
			args:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &queryerStub{}

			err := tt.list(q)
			require.ErrorIs(t, err, errNoDatabase)

			for _, fragment := range tt.contains {
				assert.Contains(t, q.query, fragment)
			}
			assert.NotContains(t, q.query, "?")
			assert.Len(t, q.args, tt.args)
		})
	}
}

func TestInsertQueries(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		insert  func(q *queryerStub) error
		table   string
		columns int
	}{
		{
			name: "métrica",
			insert: func(q *queryerStub) error {
				return NewBusinessMetricRepository(q).Insert(context.Background(), &domain.BusinessMetric{ID: "m1", Date: now, CreatedAt: now})
			},
			table:   businessMetricsTable,
			columns: len(businessMetricColumns),
		},
		{
			name: "publicação",
			insert: func(q *queryerStub) error {
				return NewSocialPostRepository(q).Insert(context.Background(), &domain.SocialPost{ID: "p1", Hashtags: []string{"#ai"}, CreatedAt: now})
			},
			table:   socialPostsTable,
			columns: len(socialPostColumns),
		},
		{
			name: "campanha",
			insert: func(q *queryerStub) error {
				return NewAdCampaignRepository(q).Insert(context.Background(), &domain.AdCampaign{ID: "c1", StartDate: &now, CreatedAt: now})
			},
			table:   adCampaignsTable,
			columns: len(adCampaignColumns),
		},
		{
			name: "lançamento",
			insert: func(q *queryerStub) error {
				return NewCashFlowRepository(q).Insert(context.Background(), &domain.CashFlowEntry{ID: "e1", Date: now, CreatedAt: now})
			},
			table:   cashFlowTable,
			columns: len(cashFlowColumns),
		},
		{
			name: "ativo",
			insert: func(q *queryerStub) error {
				return NewBrandAssetRepository(q).Insert(context.Background(), &domain.BrandAsset{ID: "a1", CreatedAt: now})
			},
			table:   brandAssetsTable,
			columns: len(brandAssetColumns),
		},
		{
			name: "insight",
			insert: func(q *queryerStub) error {
				return NewAIInsightRepository(q).Insert(context.Background(), &domain.AIInsight{ID: "i1", CreatedAt: now})
			},
			table:   aiInsightsTable,
			columns: len(aiInsightColumns),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &queryerStub{affected: 1}

			require.NoError(t, tt.insert(q))
			assert.True(t, strings.HasPrefix(q.query, "INSERT INTO "+tt.table+" "))
			assert.Equal(t, tt.columns, strings.Count(q.query, "$"))
			assert.Len(t, q.args, tt.columns)
		})

		t.Run(tt.name+" com falha no banco", func(t *testing.T) {
			q := &queryerStub{execErr: errNoDatabase}

			assert.ErrorIs(t, tt.insert(q), errNoDatabase)
		})
	}
}

func TestBrandAssetRepository_Update(t *testing.T) {
	asset := &domain.BrandAsset{ID: "a1", Name: "Logo", Status: domain.AssetStatusActive, Tags: []string{"primary"}}

	t.Run("ativo existente", func(t *testing.T) {
		q := &queryerStub{affected: 1}

		ok, err := NewBrandAssetRepository(q).Update(context.Background(), asset)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, strings.HasPrefix(q.query, "UPDATE brand_assets SET "))
		assert.Contains(t, q.query, "WHERE id = $11")
		assert.Equal(t, "a1", q.args[len(q.args)-1])
	})

	t.Run("ativo inexistente", func(t *testing.T) {
		ok, err := NewBrandAssetRepository(&queryerStub{}).Update(context.Background(), asset)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestScanSocialPost(t *testing.T) {
	created := time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC)
	scheduled := time.Date(2026, 10, 3, 18, 0, 0, 0, time.FixedZone("BRT", -3*3600))

	post, err := scanSocialPost(rowStub{
		"p1", "instagram", "Lançamento", sql.NullString{}, pq.StringArray(nil),
		sql.NullTime{Time: scheduled, Valid: true}, sql.NullTime{}, "scheduled",
		10, 2, 1, 500, created,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Platform("instagram"), post.Platform)
	assert.Equal(t, domain.PostStatus("scheduled"), post.Status)
	assert.Nil(t, post.MediaURL)
	assert.Nil(t, post.PostedTime)
	assert.Equal(t, []string{}, post.Hashtags)
	require.NotNil(t, post.ScheduledTime)
	assert.Equal(t, time.UTC, post.ScheduledTime.Location())
	assert.True(t, scheduled.Equal(*post.ScheduledTime))
	assert.Equal(t, domain.Engagement{Likes: 10, Comments: 2, Shares: 1, Reach: 500}, post.Engagement)
}

func TestScanAdCampaign(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	campaign, err := scanAdCampaign(rowStub{
		"c1", "Black Friday", "google", 1000.0, 250.0, 120, 4000, 12,
		3.0, 2.08, 4.2, "active", sql.NullString{}, sql.NullString{String: "search", Valid: true},
		sql.NullTime{Time: start, Valid: true}, sql.NullTime{}, start,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.CampaignStatus("active"), campaign.Status)
	assert.Empty(t, campaign.TargetAudience)
	assert.Equal(t, "search", campaign.CampaignType)
	require.NotNil(t, campaign.StartDate)
	assert.Nil(t, campaign.EndDate)
}

func TestScanBrandAsset(t *testing.T) {
	created := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	row := func(metadata []byte) rowStub {
		return rowStub{
			"a1", "Logo", "logo", "/uploads/logo.png", pq.StringArray{"primary"},
			sql.NullString{String: "Logo principal", Valid: true}, "2.0 KB", 3, "active",
			sql.NullString{String: "logo.png", Valid: true}, sql.NullString{}, sql.NullString{},
			metadata, created, sql.NullTime{}, sql.NullTime{},
		}
	}

	tests := []struct {
		name     string
		metadata []byte
		validate func(t *testing.T, asset *domain.BrandAsset, err error)
	}{
		{
			name:     "metadados preenchidos",
			metadata: []byte(`{"backend":"local"}`),
			validate: func(t *testing.T, asset *domain.BrandAsset, err error) {
				require.NoError(t, err)
				assert.Equal(t, map[string]any{"backend": "local"}, asset.Metadata)
				assert.Equal(t, []string{"primary"}, asset.Tags)
				require.NotNil(t, asset.Description)
				assert.Equal(t, "Logo principal", *asset.Description)
				assert.Equal(t, "logo.png", asset.Filename)
				assert.Empty(t, asset.ContentType)
				assert.Nil(t, asset.LastUsed)
			},
		},
		{
			name:     "objeto vazio vira metadados nulos",
			metadata: []byte(`{}`),
			validate: func(t *testing.T, asset *domain.BrandAsset, err error) {
				require.NoError(t, err)
				assert.Nil(t, asset.Metadata)
			},
		},
		{
			name:     "metadados corrompidos",
			metadata: []byte(`{quebrado`),
			validate: func(t *testing.T, asset *domain.BrandAsset, err error) {
				assert.Error(t, err)
				assert.Nil(t, asset)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset, err := scanBrandAsset(row(tt.metadata))
			tt.validate(t, asset, err)
		})
	}
}

func TestNullableHelpers(t *testing.T) {
	local := time.Date(2026, 10, 14, 10, 0, 0, 0, time.FixedZone("BRT", -3*3600))

	assert.False(t, nullTime(nil).Valid)
	assert.Nil(t, timePtr(sql.NullTime{}))
	converted := timePtr(nullTime(&local))
	require.NotNil(t, converted)
	assert.Equal(t, time.UTC, converted.Location())
	assert.True(t, local.Equal(*converted))

	assert.False(t, nullString(nil).Valid)
	assert.Nil(t, stringPtr(sql.NullString{}))
	assert.Equal(t, "texto", *stringPtr(nullString(ptr("texto"))))

	assert.Equal(t, "id, name, status", joinColumns([]string{"id", "name", "status"}))
	assert.Empty(t, joinColumns(nil))

	raw, err := marshalMetadata(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}

func TestWithLimit(t *testing.T) {
	query, _, err := withLimit(psql.Select("id").From("t"), 0).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM t", query)

	query, _, err = withLimit(psql.Select("id").From("t"), 25).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM t LIMIT 25", query)
}
