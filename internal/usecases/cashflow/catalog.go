package cashflow

import (
	"context"
	"fmt"
	"math"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UsageCount  int    `json:"usage_count"`
}

var (
	incomeCategories = []Category{
		{"Sales Revenue", "Product/service sales", 45},
		{"Consulting", "Consulting services", 12},
		{"Investment", "Investment returns", 3},
		{"Grants", "Government or private grants", 2},
		{"Other Income", "Other income sources", 8},
	}

	expenseCategories = []Category{
		{"Marketing", "Advertising and promotion", 34},
		{"Office Supplies", "Office equipment and supplies", 28},
		{"Software", "Software subscriptions and licenses", 22},
		{"Travel", "Business travel expenses", 15},
		{"Utilities", "Internet, phone, electricity", 18},
		{"Professional Services", "Legal, accounting, consulting", 9},
		{"Equipment", "Hardware and equipment purchases", 6},
		{"Other Expenses", "Other business expenses", 12},
	}
)

func usage(c Category) float64 { return float64(c.UsageCount) }

func Categories() map[string]any {
	return map[string]any{
		"categories": map[string][]Category{
			"income":  incomeCategories,
			"expense": expenseCategories,
		},
		"total_income_categories":  len(incomeCategories),
		"total_expense_categories": len(expenseCategories),
		"most_used_income":         aggregating.MaxBy(incomeCategories, usage),
		"most_used_expense":        aggregating.MaxBy(expenseCategories, usage),
	}
}

type budgetTarget struct {
	category string
	budget   float64
	priority string
}

// metas fixas de gasto por categoria no período analisado
var budgetTargets = []budgetTarget{
	{"Marketing", 2000, "high"},
	{"Software", 800, "medium"},
	{"Office Supplies", 300, "low"},
	{"Travel", 1200, "medium"},
	{"Utilities", 400, "high"},
	{"Professional Services", 600, "medium"},
}

const (
	statusOver    = "over"
	statusUnder   = "under"
	statusOnTrack = "on_track"

	// abaixo de 10% do orçamento a categoria é considerada subutilizada
	underBudgetTolerance = 0.1
	highSeverityVariance = 20
)

type BudgetLine struct {
	Budget          float64 `json:"budget"`
	Actual          float64 `json:"actual"`
	Variance        float64 `json:"variance"`
	VariancePercent float64 `json:"variance_percent"`
	Status          string  `json:"status"`
	Priority        string  `json:"priority"`
	Utilization     float64 `json:"utilization"`
}

type BudgetAlert struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

func budgetStatus(variance, budget float64) string {
	switch {
	case variance > 0:
		return statusOver
	case variance < -budget*underBudgetTolerance:
		return statusUnder
	default:
		return statusOnTrack
	}
}

// BudgetAnalysis compara as despesas do período com as metas por categoria
func (s *Service) BudgetAnalysis(ctx context.Context, days int) map[string]any {
	entries := s.store.CashFlow(ctx, domain.CashFlowFilter{Since: s.since(days)})
	actual := categoryAmounts(aggregating.Filter(entries, domain.CashFlowEntry.IsExpense))

	analysis := make(map[string]BudgetLine, len(budgetTargets))
	alerts := []BudgetAlert{}
	var totalBudget, totalActual float64
	over, under := 0, 0

	for _, target := range budgetTargets {
		spent := actual[target.category]
		variance := spent - target.budget
		line := BudgetLine{
			Budget:          target.budget,
			Actual:          spent,
			Variance:        variance,
			VariancePercent: utils.RoundWithOneDecimalPlace(variance / target.budget * 100),
			Status:          budgetStatus(variance, target.budget),
			Priority:        target.priority,
			Utilization:     utils.RoundWithOneDecimalPlace(spent / target.budget * 100),
		}
		analysis[target.category] = line

		switch line.Status {
		case statusOver:
			over++
			severity := "medium"
			if line.VariancePercent > highSeverityVariance {
				severity = "high"
			}
			alerts = append(alerts, BudgetAlert{
				Category: target.category,
				Message:  fmt.Sprintf("Over budget by $%.0f (%.1f%%)", math.Abs(variance), math.Abs(line.VariancePercent)),
				Severity: severity,
			})
		case statusUnder:
			under++
		}

		totalBudget += target.budget
		totalActual += spent
	}

	unbudgeted := make(map[string]float64)
	var unbudgetedTotal float64
	for name, value := range actual {
		if _, tracked := analysis[name]; !tracked {
			unbudgeted[name] = value
			unbudgetedTotal += value
		}
	}

	return map[string]any{
		"period": fmt.Sprintf("Last %d days", days),
		"overview": map[string]any{
			"total_budget":            totalBudget,
			"total_actual":            totalActual,
			"total_variance":          totalActual - totalBudget,
			"budget_utilization":      utils.RoundWithOneDecimalPlace(aggregating.Percent(totalActual, totalBudget)),
			"categories_over_budget":  over,
			"categories_under_budget": under,
		},
		"category_analysis": analysis,
		"unbudgeted_spending": map[string]any{
			"categories":          unbudgeted,
			"total":               unbudgetedTotal,
			"percentage_of_total": utils.RoundWithOneDecimalPlace(aggregating.Percent(unbudgetedTotal, totalActual)),
		},
		"alerts": alerts,
		"recommendations": []string{
			"Review over-budget categories and identify cost-saving opportunities",
			"Consider reallocating budget from under-utilized categories",
			"Set up automated alerts for budget thresholds",
			"Track unbudgeted spending and consider adding to formal budget",
		},
	}
}
