package advertising

import (
	"fmt"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

var baseDailyBudget = map[string]float64{
	"awareness":  50,
	"traffic":    30,
	"engagement": 25,
	"conversion": 75,
	"retention":  40,
}

var competitionMultipliers = map[string]float64{
	"low":       0.8,
	"medium":    1.0,
	"high":      1.3,
	"very_high": 1.6,
}

// fatores por rede sobre o orçamento diário recomendado: mínimo (com piso), recomendado e ótimo
var platformFactors = []struct {
	platform    domain.Platform
	minimum     float64
	floor       float64
	recommended float64
	optimal     float64
}{
	{domain.PlatformFacebook, 0.8, 20, 1.0, 1.5},
	{domain.PlatformInstagram, 0.7, 15, 0.9, 1.3},
	{domain.PlatformGoogle, 1.2, 30, 1.5, 2.0},
	{domain.PlatformLinkedIn, 1.5, 40, 2.0, 2.5},
}

type PlatformBudget struct {
	MinimumDaily       float64 `json:"minimum_daily"`
	RecommendedDaily   float64 `json:"recommended_daily"`
	OptimalDaily       float64 `json:"optimal_daily"`
	MinimumMonthly     float64 `json:"minimum_monthly"`
	RecommendedMonthly float64 `json:"recommended_monthly"`
	OptimalMonthly     float64 `json:"optimal_monthly"`
}

type BudgetQuery struct {
	CampaignObjective  string
	TargetAudienceSize int
	CompetitionLevel   string
}

// BudgetRecommendations calcula o orçamento por rede a partir do objetivo, da concorrência e do
// tamanho do público (multiplicador entre 0.5 e 2.0 sobre uma base de 100 mil pessoas)
func BudgetRecommendations(q BudgetQuery) map[string]any {
	base, ok := baseDailyBudget[q.CampaignObjective]
	if !ok {
		base = 50
	}
	competition, ok := competitionMultipliers[q.CompetitionLevel]
	if !ok {
		competition = 1.0
	}
	audience := min(max(float64(q.TargetAudienceSize)/100000, 0.5), 2.0)

	daily := base * competition * audience

	recommendations := make(map[string]PlatformBudget, len(platformFactors))
	for _, f := range platformFactors {
		minimum := max(daily*f.minimum, f.floor)
		recommended := daily * f.recommended
		optimal := daily * f.optimal

		recommendations[string(f.platform)] = PlatformBudget{
			MinimumDaily:       utils.RoundWithTwoDecimalPlace(minimum),
			RecommendedDaily:   utils.RoundWithTwoDecimalPlace(recommended),
			OptimalDaily:       utils.RoundWithTwoDecimalPlace(optimal),
			MinimumMonthly:     utils.RoundWithTwoDecimalPlace(minimum * 30),
			RecommendedMonthly: utils.RoundWithTwoDecimalPlace(recommended * 30),
			OptimalMonthly:     utils.RoundWithTwoDecimalPlace(optimal * 30),
		}
	}

	return map[string]any{
		"recommendations": recommendations,
		"factors_considered": map[string]any{
			"campaign_objective":     q.CampaignObjective,
			"target_audience_size":   q.TargetAudienceSize,
			"competition_level":      q.CompetitionLevel,
			"audience_multiplier":    utils.RoundWithTwoDecimalPlace(audience),
			"competition_multiplier": competition,
		},
		"general_tips": []string{
			"Start with minimum budget and scale based on performance",
			"Monitor CPC and adjust bids accordingly",
			"Allocate 70% budget to top-performing ads",
			"Reserve 30% for testing new creatives",
			fmt.Sprintf("For %s campaigns, focus on conversion tracking", q.CampaignObjective),
		},
		"budget_allocation_strategy": map[string]string{
			"testing_phase":      "20% of budget for 7-14 days",
			"optimization_phase": "60% of budget for winning variations",
			"scaling_phase":      "Increase budget by 20-50% every 3 days",
		},
	}
}
