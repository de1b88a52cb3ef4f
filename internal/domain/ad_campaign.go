package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

var CampaignStatuses = []CampaignStatus{CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted, CampaignStatusDraft}

func ParseCampaignStatus(value string) (CampaignStatus, error) {
	status := CampaignStatus(value)
	if !slices.Contains(CampaignStatuses, status) {
		return "", NewValidationError("Invalid status. Must be one of: %s", FormatChoices(CampaignStatuses))
	}
	return status, nil
}

// AdCampaign é uma campanha paga; spent pode ultrapassar budget
type AdCampaign struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Platform       Platform       `json:"platform"`
	Budget         float64        `json:"budget"`
	Spent          float64        `json:"spent"`
	Clicks         int            `json:"clicks"`
	Impressions    int            `json:"impressions"`
	Conversions    int            `json:"conversions"`
	CTR            float64        `json:"ctr"`
	CPC            float64        `json:"cpc"`
	ROAS           float64        `json:"roas"`
	Status         CampaignStatus `json:"status"`
	TargetAudience string         `json:"target_audience"`
	CampaignType   string         `json:"campaign_type"`
	StartDate      *time.Time     `json:"start_date"`
	EndDate        *time.Time     `json:"end_date"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (c AdCampaign) IsActive() bool {
	return c.Status == CampaignStatusActive
}

// AttributedRevenue é a receita atribuída à campanha (spent × ROAS)
func (c AdCampaign) AttributedRevenue() float64 {
	return c.Spent * c.ROAS
}

// CampaignDraft é a entrada de criação de campanha vinda do cliente
type CampaignDraft struct {
	Name           string  `json:"name"`
	Platform       string  `json:"platform"`
	Budget         float64 `json:"budget"`
	TargetAudience string  `json:"target_audience"`
	CampaignType   string  `json:"campaign_type"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date"`
}

// NewAdCampaign valida o rascunho e cria a campanha em draft com contadores zerados
func NewAdCampaign(draft CampaignDraft) (*AdCampaign, error) {
	platform, err := ParseAdPlatform(draft.Platform)
	if err != nil {
		return nil, err
	}

	if draft.Budget <= 0 {
		return nil, NewValidationError("Budget must be positive")
	}

	if strings.TrimSpace(draft.Name) == "" {
		return nil, NewValidationError("Name is required")
	}

	start, err := utils.ParseISODateTime(draft.StartDate)
	if err != nil {
		return nil, NewValidationError("Invalid date format")
	}

	var end *time.Time
	if draft.EndDate != nil && *draft.EndDate != "" {
		parsed, err := utils.ParseISODateTime(*draft.EndDate)
		if err != nil {
			return nil, NewValidationError("Invalid date format")
		}
		if !parsed.After(start) {
			return nil, NewValidationError("End date must be after start date")
		}
		end = &parsed
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	return &AdCampaign{
		ID:             id,
		Name:           draft.Name,
		Platform:       platform,
		Budget:         draft.Budget,
		Status:         CampaignStatusDraft,
		TargetAudience: draft.TargetAudience,
		CampaignType:   draft.CampaignType,
		StartDate:      &start,
		EndDate:        end,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// CampaignUpdate são as alterações parciais aceitas em uma campanha
type CampaignUpdate struct {
	Budget         *float64 `json:"budget"`
	Status         *string  `json:"status"`
	TargetAudience *string  `json:"target_audience"`
}

// Changes valida a atualização e retorna somente os campos informados
func (u CampaignUpdate) Changes() (map[string]any, error) {
	changes := make(map[string]any)

	if u.Budget != nil {
		if *u.Budget <= 0 {
			return nil, NewValidationError("Budget must be positive")
		}
		changes["budget"] = *u.Budget
	}

	if u.Status != nil {
		status, err := ParseCampaignStatus(*u.Status)
		if err != nil {
			return nil, err
		}
		changes["status"] = string(status)
	}

	if u.TargetAudience != nil {
		changes["target_audience"] = *u.TargetAudience
	}

	return changes, nil
}

// Apply aplica uma atualização já validada
func (c *AdCampaign) Apply(u CampaignUpdate) {
	if u.Budget != nil {
		c.Budget = *u.Budget
	}
	if u.Status != nil {
		c.Status = CampaignStatus(*u.Status)
	}
	if u.TargetAudience != nil {
		c.TargetAudience = *u.TargetAudience
	}
}

// CampaignFilter seleciona campanhas; a rede é comparada sem diferenciar maiúsculas
type CampaignFilter struct {
	Platform *string
	Status   *CampaignStatus
	Since    *time.Time
	Limit    int
}

func (f CampaignFilter) Match(c AdCampaign) bool {
	if f.Platform != nil && !strings.EqualFold(string(c.Platform), *f.Platform) {
		return false
	}
	if f.Status != nil && c.Status != *f.Status {
		return false
	}
	if f.Since != nil && c.CreatedAt.Before(*f.Since) {
		return false
	}
	return true
}
