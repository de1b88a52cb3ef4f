package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

var TransactionTypes = []TransactionType{TransactionIncome, TransactionExpense}

func ParseTransactionType(value string) (TransactionType, error) {
	t := TransactionType(value)
	if !slices.Contains(TransactionTypes, t) {
		return "", NewValidationError("Invalid transaction type. Must be one of: %s", FormatChoices(TransactionTypes))
	}
	return t, nil
}

type CashFlowEntry struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Tags        []string        `json:"tags"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (e CashFlowEntry) IsIncome() bool {
	return e.Type == TransactionIncome
}

func (e CashFlowEntry) IsExpense() bool {
	return e.Type == TransactionExpense
}

// CashFlowDraft é a entrada de lançamento vinda do cliente
type CashFlowDraft struct {
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Amount      float64  `json:"amount"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Tags        []string `json:"tags"`
}

func NewCashFlowEntry(draft CashFlowDraft) (*CashFlowEntry, error) {
	entryType, err := ParseTransactionType(draft.Type)
	if err != nil {
		return nil, err
	}

	if draft.Amount <= 0 {
		return nil, NewValidationError("Amount must be positive")
	}

	date, err := utils.ParseISODateTime(draft.Date)
	if err != nil {
		return nil, NewValidationError("Invalid date format. Use ISO format (YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS)")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	tags := draft.Tags
	if tags == nil {
		tags = []string{}
	}

	return &CashFlowEntry{
		ID:          id,
		Type:        entryType,
		Category:    draft.Category,
		Amount:      draft.Amount,
		Description: draft.Description,
		Date:        date,
		Tags:        tags,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// CashFlowFilter seleciona lançamentos; a categoria é comparada sem diferenciar maiúsculas
type CashFlowFilter struct {
	Since    time.Time
	Type     *TransactionType
	Category *string
	Limit    int
}

func (f CashFlowFilter) Match(e CashFlowEntry) bool {
	if e.Date.Before(f.Since) {
		return false
	}
	if f.Type != nil && e.Type != *f.Type {
		return false
	}
	if f.Category != nil && !strings.EqualFold(e.Category, *f.Category) {
		return false
	}
	return true
}
