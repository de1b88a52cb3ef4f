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

//go:generate mockgen -source=social_post.go -destination=mocks/social_post.go -package=mocks

const socialPostsTable = "social_media_posts"

var socialPostColumns = []string{
	"id", "platform", "content", "media_url", "hashtags", "scheduled_time", "posted_time",
	"status", "likes", "comments", "shares", "reach", "created_at",
}

type SocialPostRepository interface {
	List(ctx context.Context, filter domain.PostFilter) ([]domain.SocialPost, error)
	Insert(ctx context.Context, post *domain.SocialPost) error
	// UpdateEngagement retorna nil quando a publicação não existe
	UpdateEngagement(ctx context.Context, id string, engagement domain.Engagement) (*domain.SocialPost, error)
}

type socialPostRepository struct {
	conn postgres.Queryer
}

func NewSocialPostRepository(conn postgres.Queryer) SocialPostRepository {
	return &socialPostRepository{
		conn: conn,
	}
}

func (r *socialPostRepository) List(ctx context.Context, filter domain.PostFilter) ([]domain.SocialPost, error) {
	builder := psql.
		Select(socialPostColumns...).
		From(socialPostsTable).
		OrderBy("created_at DESC")

	if filter.Platform != nil {
		builder = builder.Where(squirrel.Eq{"platform": string(*filter.Platform)})
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

	posts := make([]domain.SocialPost, 0)
	for rows.Next() {
		post, err := scanSocialPost(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear publicação: %w", err)
		}
		posts = append(posts, *post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return posts, nil
}

func (r *socialPostRepository) Insert(ctx context.Context, p *domain.SocialPost) error {
	query, args, err := psql.
		Insert(socialPostsTable).
		Columns(socialPostColumns...).
		Values(
			p.ID, string(p.Platform), p.Content, nullString(p.MediaURL), pq.Array(p.Hashtags),
			nullTime(p.ScheduledTime), nullTime(p.PostedTime), string(p.Status),
			p.Engagement.Likes, p.Engagement.Comments, p.Engagement.Shares, p.Engagement.Reach,
			p.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir publicação: %w", err)
	}

	return nil
}

func (r *socialPostRepository) UpdateEngagement(ctx context.Context, id string, e domain.Engagement) (*domain.SocialPost, error) {
	query, args, err := psql.
		Update(socialPostsTable).
		SetMap(map[string]any{
			"likes":    e.Likes,
			"comments": e.Comments,
			"shares":   e.Shares,
			"reach":    e.Reach,
		}).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(socialPostColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	post, err := scanSocialPost(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao atualizar engajamento: %w", err)
	}

	return post, nil
}

func scanSocialPost(row scanner) (*domain.SocialPost, error) {
	var (
		p         domain.SocialPost
		platform  string
		status    string
		mediaURL  sql.NullString
		scheduled sql.NullTime
		posted    sql.NullTime
		hashtags  pq.StringArray
	)

	err := row.Scan(
		&p.ID, &platform, &p.Content, &mediaURL, &hashtags, &scheduled, &posted, &status,
		&p.Engagement.Likes, &p.Engagement.Comments, &p.Engagement.Shares, &p.Engagement.Reach,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Platform = domain.Platform(platform)
	p.Status = domain.PostStatus(status)
	p.MediaURL = stringPtr(mediaURL)
	p.ScheduledTime = timePtr(scheduled)
	p.PostedTime = timePtr(posted)
	p.Hashtags = []string(hashtags)
	if p.Hashtags == nil {
		p.Hashtags = []string{}
	}

	return &p, nil
}
