// Package cashflow concentra os lançamentos de caixa e os relatórios derivados deles.
package cashflow

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

const (
	historyWindowDays = forecasting.HistoryWindowMonths * 30
	maxTrendWeeks     = 4
	otherCategory     = "Other"
)

type EntryStore interface {
	CashFlow(ctx context.Context, filter domain.CashFlowFilter) []domain.CashFlowEntry
	AddCashFlowEntry(ctx context.Context, entry *domain.CashFlowEntry) *domain.CashFlowEntry
}

type Service struct {
	store       EntryStore
	cashBalance float64
	now         func() time.Time
}

func NewService(store EntryStore, forecast config.Forecast) *Service {
	return &Service{
		store:       store,
		cashBalance: forecast.CurrentCashBalance,
		now:         time.Now,
	}
}

type EntryQuery struct {
	Days     int
	Type     *string
	Category *string
	Limit    int
}

type CategoryTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Count   int     `json:"count"`
}

func amount(e domain.CashFlowEntry) float64 { return e.Amount }

func categoryOf(e domain.CashFlowEntry) string {
	if e.Category == "" {
		return otherCategory
	}
	return e.Category
}

func (s *Service) since(days int) time.Time {
	return s.now().AddDate(0, 0, -days)
}

// Entries lista os lançamentos do período; o tipo é validado antes da consulta
func (s *Service) Entries(ctx context.Context, q EntryQuery) (map[string]any, error) {
	filter := domain.CashFlowFilter{Since: s.since(q.Days), Category: q.Category, Limit: q.Limit}
	if q.Type != nil {
		t, err := domain.ParseTransactionType(*q.Type)
		if err != nil {
			return nil, err
		}
		filter.Type = &t
	}

	entries := s.store.CashFlow(ctx, filter)
	income := aggregating.Filter(entries, domain.CashFlowEntry.IsIncome)
	expenses := aggregating.Filter(entries, domain.CashFlowEntry.IsExpense)
	totalIncome := aggregating.Sum(income, amount)
	totalExpenses := aggregating.Sum(expenses, amount)

	categories := make(map[string]CategoryTotals)
	for name, group := range aggregating.GroupBy(entries, categoryOf) {
		categories[name] = CategoryTotals{
			Income:  aggregating.Sum(aggregating.Filter(group, domain.CashFlowEntry.IsIncome), amount),
			Expense: aggregating.Sum(aggregating.Filter(group, domain.CashFlowEntry.IsExpense), amount),
			Count:   len(group),
		}
	}

	env := reporting.NewEnvelope().
		AddSummary("total_income", totalIncome).
		AddSummary("total_expenses", totalExpenses).
		AddSummary("net_cash_flow", totalIncome-totalExpenses).
		AddSummary("transaction_count", len(entries)).
		AddSummary("period", fmt.Sprintf("Last %d days", q.Days)).
		AddBreakdown("income_transactions", len(income)).
		AddBreakdown("expense_transactions", len(expenses)).
		AddBreakdown("categories", categories).
		AddBreakdown("avg_transaction_size", aggregating.Rate(aggregating.Sum(entries, amount), float64(len(entries)))).
		Filter("type", reporting.Optional(q.Type)).
		Filter("category", reporting.Optional(q.Category)).
		Filter("days", q.Days).
		Filter("limit", q.Limit)

	return env.Body("summary", "breakdown", map[string]any{"entries": entries}), nil
}

func (s *Service) CreateEntry(ctx context.Context, draft domain.CashFlowDraft) (*domain.CashFlowEntry, error) {
	entry, err := domain.NewCashFlowEntry(draft)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"type":     string(entry.Type),
		"category": entry.Category,
	}).Info("Caixa: lançamento criado")

	return s.store.AddCashFlowEntry(ctx, entry), nil
}

type WeeklyTrend struct {
	Week      string  `json:"week"`
	Income    float64 `json:"income"`
	Expenses  float64 `json:"expenses"`
	Net       float64 `json:"net"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
}

func categoryAmounts(entries []domain.CashFlowEntry) map[string]float64 {
	out := make(map[string]float64)
	for name, group := range aggregating.GroupBy(entries, categoryOf) {
		out[name] = aggregating.Sum(group, amount)
	}
	return out
}

// largest retorna a categoria de maior valor, nil quando não há nenhuma
func largest(categories map[string]float64) any {
	best := aggregating.MaxBy(aggregating.SortedKeys(categories), func(name string) float64 { return categories[name] })
	if best == nil {
		return nil
	}
	return *best
}

// Summary consolida receitas e despesas do período com tendência semanal
func (s *Service) Summary(ctx context.Context, days int) map[string]any {
	now := s.now()
	entries := s.store.CashFlow(ctx, domain.CashFlowFilter{Since: s.since(days)})
	income := aggregating.Filter(entries, domain.CashFlowEntry.IsIncome)
	expenses := aggregating.Filter(entries, domain.CashFlowEntry.IsExpense)
	totalIncome := aggregating.Sum(income, amount)
	totalExpenses := aggregating.Sum(expenses, amount)
	net := totalIncome - totalExpenses
	burnRate := aggregating.Rate(totalExpenses, float64(days)) * 30

	weeks := min(maxTrendWeeks, days/7)
	weekly := make([]WeeklyTrend, 0, max(weeks, 0))
	for week := range max(weeks, 0) {
		start := now.AddDate(0, 0, -(week+1)*7)
		end := now.AddDate(0, 0, -week*7)
		inWeek := aggregating.Filter(entries, func(e domain.CashFlowEntry) bool {
			return !e.Date.Before(start) && e.Date.Before(end)
		})
		weekIncome := aggregating.Sum(aggregating.Filter(inWeek, domain.CashFlowEntry.IsIncome), amount)
		weekExpenses := aggregating.Sum(aggregating.Filter(inWeek, domain.CashFlowEntry.IsExpense), amount)

		weekly = append(weekly, WeeklyTrend{
			Week:      fmt.Sprintf("Week %d", week+1),
			Income:    weekIncome,
			Expenses:  weekExpenses,
			Net:       weekIncome - weekExpenses,
			StartDate: start.Format(time.DateOnly),
			EndDate:   end.Format(time.DateOnly),
		})
	}

	incomeCategories := categoryAmounts(income)
	expenseCategories := categoryAmounts(expenses)

	direction := "negative"
	if net > 0 {
		direction = "positive"
	}
	sustainability := "concerning"
	if burnRate < totalIncome {
		sustainability = "healthy"
	}

	return map[string]any{
		"period": fmt.Sprintf("Last %d days", days),
		"overview": map[string]any{
			"total_income":      totalIncome,
			"total_expenses":    totalExpenses,
			"net_cash_flow":     net,
			"cash_flow_ratio":   utils.RoundWithTwoDecimalPlace(aggregating.Rate(totalIncome, totalExpenses)),
			"monthly_burn_rate": utils.RoundWithTwoDecimalPlace(burnRate),
		},
		"income_breakdown": map[string]any{
			"categories":        incomeCategories,
			"largest_source":    largest(incomeCategories),
			"transaction_count": len(income),
			"average_size":      utils.RoundWithTwoDecimalPlace(aggregating.Rate(totalIncome, float64(len(income)))),
		},
		"expense_breakdown": map[string]any{
			"categories":        expenseCategories,
			"largest_expense":   largest(expenseCategories),
			"transaction_count": len(expenses),
			"average_size":      utils.RoundWithTwoDecimalPlace(aggregating.Rate(totalExpenses, float64(len(expenses)))),
		},
		"trends": map[string]any{
			"weekly_data":     weekly,
			"trend_direction": direction,
			"sustainability":  sustainability,
		},
	}
}

// Forecast projeta o caixa dos próximos meses a partir dos últimos 90 dias
func (s *Service) Forecast(ctx context.Context, months int) (map[string]any, error) {
	if months < 1 || months > forecasting.MaxForecastMonths {
		return nil, domain.NewValidationError("months must be between 1 and %d", forecasting.MaxForecastMonths)
	}

	now := s.now()
	history := s.store.CashFlow(ctx, domain.CashFlowFilter{Since: s.since(historyWindowDays)})

	forecast := forecasting.ForecastCashFlow(forecasting.CashFlowInput{
		Months:         months,
		HasHistory:     len(history) > 0,
		IncomeTotal:    aggregating.Sum(aggregating.Filter(history, domain.CashFlowEntry.IsIncome), amount),
		ExpensesTotal:  aggregating.Sum(aggregating.Filter(history, domain.CashFlowEntry.IsExpense), amount),
		CurrentBalance: s.cashBalance,
		Now:            now,
	})

	body := map[string]any{
		"forecast_period":     fmt.Sprintf("%d months", months),
		"monthly_projections": forecast.Projections,
		"summary":             forecast.Summary,
	}

	if !forecast.Historical {
		body["methodology"] = "No historical data available"
		return body, nil
	}

	body["methodology"] = "Based on 3-month historical average with growth projections"
	body["assumptions"] = map[string]any{
		"income_growth_rate":   "5% monthly",
		"expense_growth_rate":  "3% monthly",
		"current_cash_balance": s.cashBalance,
		"data_source":          "3-month historical average",
	}
	body["recommendations"] = []string{
		"Monitor actual vs projected performance monthly",
		"Consider diversifying income sources",
		"Review and optimize major expense categories",
		"Maintain cash reserves for unexpected expenses",
	}
	return body, nil
}
