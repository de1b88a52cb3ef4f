package cashflow

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

var now = time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

// memoryStore aplica o mesmo filtro que a consulta SQL
type memoryStore struct {
	entries []domain.CashFlowEntry
	added   int
}

func (m *memoryStore) CashFlow(_ context.Context, filter domain.CashFlowFilter) []domain.CashFlowEntry {
	out := []domain.CashFlowEntry{}
	for _, e := range m.entries {
		if filter.Match(e) {
			out = append(out, e)
		}
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out
}

func (m *memoryStore) AddCashFlowEntry(_ context.Context, entry *domain.CashFlowEntry) *domain.CashFlowEntry {
	m.added++
	m.entries = append(m.entries, *entry)
	return entry
}

func entry(t domain.TransactionType, category string, value float64, daysAgo int) domain.CashFlowEntry {
	return domain.CashFlowEntry{
		ID:       category,
		Type:     t,
		Category: category,
		Amount:   value,
		Date:     now.AddDate(0, 0, -daysAgo),
	}
}

func newService(entries ...domain.CashFlowEntry) (*Service, *memoryStore) {
	records := &memoryStore{entries: entries}
	svc := NewService(records, config.Forecast{CurrentCashBalance: 50000})
	svc.now = func() time.Time { return now }
	return svc, records
}

func TestService_Entries(t *testing.T) {
	svc, _ := newService(
		entry(domain.TransactionIncome, "Sales Revenue", 3000, 2),
		entry(domain.TransactionExpense, "Marketing", 800, 3),
		entry(domain.TransactionExpense, "marketing", 200, 5),
		entry(domain.TransactionExpense, "Travel", 500, 45),
	)
	ctx := context.Background()

	body, err := svc.Entries(ctx, EntryQuery{Days: 30, Limit: 100})
	require.NoError(t, err)

	summary := body["summary"].(map[string]any)
	assert.Equal(t, 3000.0, summary["total_income"])
	assert.Equal(t, 1000.0, summary["total_expenses"])
	assert.Equal(t, 2000.0, summary["net_cash_flow"])
	assert.Equal(t, 3, summary["transaction_count"])
	assert.Equal(t, "Last 30 days", summary["period"])

	breakdown := body["breakdown"].(map[string]any)
	categories := breakdown["categories"].(map[string]CategoryTotals)
	assert.Equal(t, CategoryTotals{Expense: 800, Count: 1}, categories["Marketing"])
	assert.Equal(t, 4000.0/3, breakdown["avg_transaction_size"])

	category := "MARKETING"
	body, err = svc.Entries(ctx, EntryQuery{Days: 30, Category: &category, Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, 2, body["summary"].(map[string]any)["transaction_count"])
	assert.Equal(t, "MARKETING", body["filters_applied"].(map[string]any)["category"])

	invalid := "transfer"
	_, err = svc.Entries(ctx, EntryQuery{Days: 30, Type: &invalid})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid transaction type")
}

func TestService_CreateEntry(t *testing.T) {
	tests := []struct {
		name     string
		draft    domain.CashFlowDraft
		validate func(t *testing.T, created *domain.CashFlowEntry, err error, added int)
	}{
		{
			name:  "Lançamento válido",
			draft: domain.CashFlowDraft{Type: "income", Category: "Consulting", Amount: 1200, Date: "2026-03-01"},
			validate: func(t *testing.T, created *domain.CashFlowEntry, err error, added int) {
				require.NoError(t, err)
				assert.Equal(t, domain.TransactionIncome, created.Type)
				assert.Equal(t, []string{}, created.Tags)
				assert.Equal(t, 1, added)
			},
		},
		{
			name:  "Valor zero",
			draft: domain.CashFlowDraft{Type: "expense", Category: "Travel", Amount: 0, Date: "2026-03-01"},
			validate: func(t *testing.T, created *domain.CashFlowEntry, err error, added int) {
				require.Error(t, err)
				assert.Equal(t, "Amount must be positive", err.Error())
				assert.Zero(t, added)
			},
		},
		{
			name:  "Data inválida",
			draft: domain.CashFlowDraft{Type: "expense", Category: "Travel", Amount: 10, Date: "yesterday"},
			validate: func(t *testing.T, created *domain.CashFlowEntry, err error, added int) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "Invalid date format")
				assert.Zero(t, added)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, records := newService()
			created, err := svc.CreateEntry(context.Background(), tt.draft)
			tt.validate(t, created, err, records.added)
		})
	}
}

func TestService_Summary(t *testing.T) {
	svc, _ := newService(
		entry(domain.TransactionIncome, "Sales Revenue", 3000, 2),
		entry(domain.TransactionIncome, "Consulting", 500, 9),
		entry(domain.TransactionExpense, "Marketing", 1500, 3),
	)

	tests := []struct {
		name     string
		days     int
		validate func(t *testing.T, body map[string]any)
	}{
		{
			name: "Trinta dias geram quatro semanas",
			days: 30,
			validate: func(t *testing.T, body map[string]any) {
				overview := body["overview"].(map[string]any)
				assert.Equal(t, 2000.0, overview["net_cash_flow"])
				assert.Equal(t, 2.33, overview["cash_flow_ratio"])
				assert.Equal(t, 1500.0, overview["monthly_burn_rate"])

				income := body["income_breakdown"].(map[string]any)
				assert.Equal(t, "Sales Revenue", income["largest_source"])
				assert.Equal(t, 1750.0, income["average_size"])

				trends := body["trends"].(map[string]any)
				weekly := trends["weekly_data"].([]WeeklyTrend)
				require.Len(t, weekly, 4)
				assert.Equal(t, 1500.0, weekly[0].Net)
				assert.Equal(t, 500.0, weekly[1].Income)
				assert.Equal(t, "2026-03-24", weekly[0].StartDate)
				assert.Equal(t, "positive", trends["trend_direction"])
				assert.Equal(t, "healthy", trends["sustainability"])
			},
		},
		{
			name: "Menos de uma semana não gera tendência",
			days: 5,
			validate: func(t *testing.T, body map[string]any) {
				weekly := body["trends"].(map[string]any)["weekly_data"].([]WeeklyTrend)
				assert.Empty(t, weekly)
				assert.Equal(t, "Marketing", body["expense_breakdown"].(map[string]any)["largest_expense"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, svc.Summary(context.Background(), tt.days))
		})
	}
}

func TestService_Forecast(t *testing.T) {
	t.Run("Sem histórico usa a projeção fixa", func(t *testing.T) {
		svc, _ := newService()

		body, err := svc.Forecast(context.Background(), 6)
		require.NoError(t, err)

		assert.Equal(t, "No historical data available", body["methodology"])
		projections := body["monthly_projections"].([]forecasting.MonthlyProjection)
		require.Len(t, projections, 6)
		for _, p := range projections {
			assert.Equal(t, 0.3, p.Confidence)
			assert.Equal(t, 1500.0, p.NetFlow)
		}
		summary := body["summary"].(forecasting.CashFlowSummary)
		assert.Equal(t, forecasting.RunwayUnknown, summary.RunwayMonths)
		assert.NotContains(t, body, "assumptions")
	})

	t.Run("Com histórico projeta a partir da média", func(t *testing.T) {
		svc, _ := newService(
			entry(domain.TransactionIncome, "Sales Revenue", 9000, 10),
			entry(domain.TransactionExpense, "Marketing", 3000, 20),
		)

		body, err := svc.Forecast(context.Background(), 3)
		require.NoError(t, err)

		projections := body["monthly_projections"].([]forecasting.MonthlyProjection)
		require.Len(t, projections, 3)
		assert.Equal(t, 3000.0, projections[0].ProjectedIncome)
		assert.Equal(t, 1000.0, projections[0].ProjectedExpenses)
		assert.Equal(t, 3150.0, projections[1].ProjectedIncome)
		assert.Equal(t, 0.9, projections[0].Confidence)
		assert.Equal(t, 0.8, projections[1].Confidence)
		assert.Equal(t, 50000.0, body["assumptions"].(map[string]any)["current_cash_balance"])
	})
}

func TestService_ForecastRejectsHorizon(t *testing.T) {
	svc, _ := newService()

	for _, months := range []int{0, -1, forecasting.MaxForecastMonths + 1, 10_000_000_000} {
		t.Run(fmt.Sprintf("months=%d", months), func(t *testing.T) {
			body, err := svc.Forecast(context.Background(), months)

			assert.Nil(t, body)
			validationErr, ok := domain.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, "months must be between 1 and 60", validationErr.Message)
		})
	}
}

func TestService_BudgetAnalysis(t *testing.T) {
	svc, _ := newService(
		entry(domain.TransactionExpense, "Marketing", 2500, 1),
		entry(domain.TransactionExpense, "Software", 100, 2),
		entry(domain.TransactionExpense, "Travel", 1150, 3),
		entry(domain.TransactionExpense, "Coffee", 250, 4),
		entry(domain.TransactionIncome, "Sales Revenue", 10000, 4),
	)

	body := svc.BudgetAnalysis(context.Background(), 30)

	analysis := body["category_analysis"].(map[string]BudgetLine)
	assert.Equal(t, statusOver, analysis["Marketing"].Status)
	assert.Equal(t, 25.0, analysis["Marketing"].VariancePercent)
	assert.Equal(t, statusUnder, analysis["Software"].Status)
	assert.Equal(t, statusOnTrack, analysis["Travel"].Status)
	assert.Equal(t, 95.8, analysis["Travel"].Utilization)

	alerts := body["alerts"].([]BudgetAlert)
	require.Len(t, alerts, 1)
	assert.Equal(t, BudgetAlert{Category: "Marketing", Message: "Over budget by $500 (25.0%)", Severity: "high"}, alerts[0])

	overview := body["overview"].(map[string]any)
	assert.Equal(t, 5300.0, overview["total_budget"])
	assert.Equal(t, 3750.0, overview["total_actual"])
	assert.Equal(t, 1, overview["categories_over_budget"])
	assert.Equal(t, 4, overview["categories_under_budget"])

	unbudgeted := body["unbudgeted_spending"].(map[string]any)
	assert.Equal(t, map[string]float64{"Coffee": 250}, unbudgeted["categories"])
	assert.Equal(t, 6.7, unbudgeted["percentage_of_total"])
}

func TestCategories(t *testing.T) {
	body := Categories()

	assert.Equal(t, 5, body["total_income_categories"])
	assert.Equal(t, 8, body["total_expense_categories"])
	assert.Equal(t, "Sales Revenue", body["most_used_income"].(*Category).Name)
	assert.Equal(t, "Marketing", body["most_used_expense"].(*Category).Name)
}
