// Package forecasting projeta valores futuros a partir de uma base e de uma taxa de crescimento fixa.
package forecasting

import (
	"fmt"
	"math"
	"time"

	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

const (
	initialConfidence = 0.9
	confidenceStep    = 0.1
	minConfidence     = 0.4

	// HistoryWindowMonths é a janela de meses usada para formar a base histórica
	HistoryWindowMonths = 3
	// MaxForecastMonths limita o horizonte aceito pela previsão de caixa
	MaxForecastMonths = 60

	fallbackIncome     = 5000
	fallbackExpenses   = 3500
	fallbackConfidence = 0.3

	IncomeGrowthRate  = 0.05
	ExpenseGrowthRate = 0.03

	// RunwayIndefinite é reportado quando o gasto médio projetado é zero
	RunwayIndefinite = "Indefinite"
	// RunwayUnknown é reportado quando não há histórico para projetar
	RunwayUnknown = "Unknown - insufficient data"
)

// Confidence decresce 0.1 por período a partir de 0.9, com piso de 0.4
func Confidence(period int) float64 {
	return utils.RoundWithTwoDecimalPlace(math.Max(initialConfidence-confidenceStep*float64(period), minConfidence))
}

type Projection struct {
	Period     int     `json:"period"`
	Value      float64 `json:"value"`
	Confidence float64 `json:"confidence"`
}

// GrowthProjection aplica baseline × (1+rate)^k para k = 1..horizon
func GrowthProjection(baseline, rate float64, horizon int) []Projection {
	return project(baseline, rate, horizon, 1)
}

func project(baseline, rate float64, horizon, firstExponent int) []Projection {
	if horizon <= 0 {
		return []Projection{}
	}

	out := make([]Projection, horizon)
	for i := range horizon {
		out[i] = Projection{
			Period:     i + 1,
			Value:      baseline * math.Pow(1+rate, float64(i+firstExponent)),
			Confidence: Confidence(i),
		}
	}
	return out
}

// HistoricalBaseline é a média mensal de um total acumulado na janela histórica
func HistoricalBaseline(windowTotal float64) float64 {
	return windowTotal / HistoryWindowMonths
}

type MonthlyProjection struct {
	Month             string  `json:"month"`
	MonthName         string  `json:"month_name,omitempty"`
	ProjectedIncome   float64 `json:"projected_income"`
	ProjectedExpenses float64 `json:"projected_expenses"`
	NetFlow           float64 `json:"net_flow"`
	Confidence        float64 `json:"confidence"`
}

type CashFlowSummary struct {
	TotalProjectedIncome   float64  `json:"total_projected_income"`
	TotalProjectedExpenses float64  `json:"total_projected_expenses"`
	CumulativeNetFlow      float64  `json:"cumulative_net_flow"`
	AvgMonthlyIncome       *float64 `json:"avg_monthly_income,omitempty"`
	AvgMonthlyExpenses     *float64 `json:"avg_monthly_expenses,omitempty"`
	// RunwayMonths é um número de meses ou um dos textos RunwayIndefinite / RunwayUnknown
	RunwayMonths any `json:"runway_months"`
}

type CashFlowForecast struct {
	Months      int
	Historical  bool
	Projections []MonthlyProjection
	Summary     CashFlowSummary
}

// CashFlowInput são os totais da janela histórica e o saldo atual em caixa
type CashFlowInput struct {
	Months         int
	HasHistory     bool
	IncomeTotal    float64
	ExpensesTotal  float64
	CurrentBalance float64
	Now            time.Time
}

// ForecastCashFlow projeta receitas e despesas mensais.
// Sem histórico usa a base fixa com confiança 0.3; com histórico o primeiro mês é a própria
// média e o crescimento passa a valer a partir do segundo mês.
func ForecastCashFlow(in CashFlowInput) CashFlowForecast {
	in.Months = min(max(in.Months, 0), MaxForecastMonths)

	if !in.HasHistory {
		return fallbackForecast(in.Months)
	}

	income := project(HistoricalBaseline(in.IncomeTotal), IncomeGrowthRate, in.Months, 0)
	expenses := project(HistoricalBaseline(in.ExpensesTotal), ExpenseGrowthRate, in.Months, 0)

	projections := make([]MonthlyProjection, in.Months)
	var totalIncome, totalExpenses, cumulative float64
	for i := range in.Months {
		p := MonthlyProjection{
			Month:             fmt.Sprintf("Month %d", i+1),
			MonthName:         in.Now.AddDate(0, 0, 30*i).Format("January 2006"),
			ProjectedIncome:   utils.RoundWithTwoDecimalPlace(income[i].Value),
			ProjectedExpenses: utils.RoundWithTwoDecimalPlace(expenses[i].Value),
			NetFlow:           utils.RoundWithTwoDecimalPlace(income[i].Value - expenses[i].Value),
			Confidence:        income[i].Confidence,
		}
		projections[i] = p

		totalIncome += p.ProjectedIncome
		totalExpenses += p.ProjectedExpenses
		cumulative += p.NetFlow
	}

	months := float64(max(in.Months, 1))
	avgIncome := utils.RoundWithTwoDecimalPlace(totalIncome / months)
	avgExpenses := utils.RoundWithTwoDecimalPlace(totalExpenses / months)

	return CashFlowForecast{
		Months:      in.Months,
		Historical:  true,
		Projections: projections,
		Summary: CashFlowSummary{
			TotalProjectedIncome:   utils.RoundWithTwoDecimalPlace(totalIncome),
			TotalProjectedExpenses: utils.RoundWithTwoDecimalPlace(totalExpenses),
			CumulativeNetFlow:      utils.RoundWithTwoDecimalPlace(cumulative),
			AvgMonthlyIncome:       &avgIncome,
			AvgMonthlyExpenses:     &avgExpenses,
			RunwayMonths:           Runway(in.CurrentBalance, totalExpenses/months),
		},
	}
}

func fallbackForecast(months int) CashFlowForecast {
	projections := make([]MonthlyProjection, months)
	for i := range months {
		projections[i] = MonthlyProjection{
			Month:             fmt.Sprintf("Month %d", i+1),
			ProjectedIncome:   fallbackIncome,
			ProjectedExpenses: fallbackExpenses,
			NetFlow:           fallbackIncome - fallbackExpenses,
			Confidence:        fallbackConfidence,
		}
	}

	return CashFlowForecast{
		Months:      months,
		Projections: projections,
		Summary: CashFlowSummary{
			TotalProjectedIncome:   float64(fallbackIncome * months),
			TotalProjectedExpenses: float64(fallbackExpenses * months),
			CumulativeNetFlow:      float64((fallbackIncome - fallbackExpenses) * months),
			RunwayMonths:           RunwayUnknown,
		},
	}
}

// Runway é o saldo dividido pelo gasto médio do período, com uma casa decimal.
// Gasto médio zero resulta em RunwayIndefinite.
func Runway(balance, avgBurn float64) any {
	if avgBurn <= 0 {
		return RunwayIndefinite
	}
	return utils.RoundWithOneDecimalPlace(balance / avgBurn)
}

// ROIForecast é a projeção mensal de ROI usada quando a resposta do modelo não é aproveitável
func ROIForecast(baseROI, growthRate float64, months int) []float64 {
	projections := GrowthProjection(baseROI, growthRate, months)
	out := make([]float64, len(projections))
	for i, p := range projections {
		out[i] = utils.RoundWithTwoDecimalPlace(p.Value)
	}
	return out
}
