package domain

import (
	"strings"
	"time"

	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPosted    PostStatus = "posted"
)

// Engagement são os contadores de interação de uma publicação
type Engagement struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
	Reach    int `json:"reach"`
}

// Interactions soma curtidas, comentários e compartilhamentos
func (e Engagement) Interactions() int {
	return e.Likes + e.Comments + e.Shares
}

func (e Engagement) Validate() error {
	if e.Likes < 0 || e.Comments < 0 || e.Shares < 0 || e.Reach < 0 {
		return NewValidationError("Engagement counters cannot be negative")
	}
	return nil
}

type SocialPost struct {
	ID            string     `json:"id"`
	Platform      Platform   `json:"platform"`
	Content       string     `json:"content"`
	MediaURL      *string    `json:"media_url"`
	Hashtags      []string   `json:"hashtags"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	PostedTime    *time.Time `json:"posted_time"`
	Status        PostStatus `json:"status"`
	Engagement    Engagement `json:"engagement"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (p SocialPost) IsPosted() bool {
	return p.Status == PostStatusPosted
}

// PostDraft é a entrada de agendamento vinda do cliente
type PostDraft struct {
	Platform      string   `json:"platform"`
	Content       string   `json:"content"`
	MediaURL      *string  `json:"media_url"`
	ScheduledTime string   `json:"scheduled_time"`
	Hashtags      []string `json:"hashtags"`
}

// NewScheduledPost valida o rascunho e cria a publicação agendada com engajamento zerado.
// Quando now não é zero, o horário agendado precisa estar no futuro.
func NewScheduledPost(draft PostDraft, now time.Time) (*SocialPost, error) {
	platform, err := ParseSocialPlatform(draft.Platform)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(draft.Content) == "" {
		return nil, NewValidationError("Content is required")
	}

	scheduled, err := utils.ParseISODateTime(draft.ScheduledTime)
	if err != nil {
		return nil, NewValidationError("Invalid datetime format. Use ISO format (YYYY-MM-DDTHH:MM:SS)")
	}

	if !now.IsZero() && !scheduled.After(now) {
		return nil, NewValidationError("Scheduled time must be in the future")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	hashtags := draft.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}

	return &SocialPost{
		ID:            id,
		Platform:      platform,
		Content:       draft.Content,
		MediaURL:      draft.MediaURL,
		Hashtags:      hashtags,
		ScheduledTime: &scheduled,
		Status:        PostStatusScheduled,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// PostFilter seleciona publicações por rede e status, mais recentes primeiro
type PostFilter struct {
	Platform *Platform
	Status   *PostStatus
	Since    *time.Time
	Limit    int
}

func (f PostFilter) Match(p SocialPost) bool {
	if f.Platform != nil && p.Platform != *f.Platform {
		return false
	}
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	if f.Since != nil && p.CreatedAt.Before(*f.Since) {
		return false
	}
	return true
}
