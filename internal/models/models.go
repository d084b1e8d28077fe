// Package models defines the state tree for Spendbook.
//
// The whole tree is one immutable-by-convention snapshot: no entity is ever
// mutated in place, every change produces a new root AppState value. The
// state package is the sole writer.
package models

import (
	"github.com/shopspring/decimal"
	"github.com/spendbook/backend/internal/types"
)

// SchemaVersion is the version tag of the state tree. Snapshots with a
// different version are rejected at the persistence and backup boundaries.
const SchemaVersion = 1

// Category is a spending category, scoped to exactly one month.
type Category struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Planned   decimal.Decimal `json:"planned" example:"15000"` // Amount planned for the month
	CreatedAt int64           `json:"createdAt"`               // Creation time in Unix milliseconds
}

// Expense is a single expense, belonging to one month and one category.
type Expense struct {
	ID         string          `json:"id"`
	Date       types.Date      `json:"date" example:"2024-06-12"`
	CategoryID string          `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount" example:"799"`
	Comment    string          `json:"comment,omitempty"`
	CreatedAt  int64           `json:"createdAt"`
}

// IncomeAdjustment is ad-hoc money added to a month's budget, independent
// of the month's planned budget figure.
type IncomeAdjustment struct {
	ID        string          `json:"id"`
	Date      types.Date      `json:"date" example:"2024-06-01"`
	Amount    decimal.Decimal `json:"amount" example:"5000"`
	Comment   string          `json:"comment,omitempty"`
	CreatedAt int64           `json:"createdAt"`
}

// SavingsCategory is a savings bucket. It is not scoped to a month and
// persists across the whole history.
//
// Balance is a cached running total. It is maintained incrementally by
// every transaction against the category and always equals the sum of
// signed transaction amounts since the category was created.
type SavingsCategory struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance" example:"3000"`
	CreatedAt int64           `json:"createdAt"`
}

// TransactionType is the direction of a savings transaction.
type TransactionType string

const (
	// Deposit moves money from a month into a savings category.
	Deposit TransactionType = "deposit"
	// Withdraw returns money from a savings category to a month.
	Withdraw TransactionType = "withdraw"
)

// Valid reports whether the transaction type is one of the known directions.
func (t TransactionType) Valid() bool {
	return t == Deposit || t == Withdraw
}

// SavingsTransaction is a deposit to or withdrawal from a savings category.
// Month tags the month whose net balance the transaction affects.
type SavingsTransaction struct {
	ID                string          `json:"id"`
	Type              TransactionType `json:"type" example:"deposit"`
	Date              types.Date      `json:"date" example:"2024-06-20"`
	SavingsCategoryID string          `json:"savingsCategoryId"`
	Amount            decimal.Decimal `json:"amount" example:"5000"`
	Comment           string          `json:"comment,omitempty"`
	Month             types.Month     `json:"monthKey" example:"2024-06"`
	CreatedAt         int64           `json:"createdAt"`
}

// MonthlyState holds everything recorded for one month.
// A month with zero categories is considered uninitialized even if the
// entry exists.
type MonthlyState struct {
	Month      types.Month        `json:"monthKey" example:"2024-06"`
	BudgetPlan decimal.Decimal    `json:"budgetPlan" example:"50000"`
	Categories []Category         `json:"categories"`
	Incomes    []IncomeAdjustment `json:"incomes"`
	Expenses   []Expense          `json:"expenses"`
}

// Savings holds the savings categories and their transaction history.
type Savings struct {
	Categories   []SavingsCategory    `json:"categories"`
	Transactions []SavingsTransaction `json:"transactions"`
}

// AppState is the aggregate root. It is persisted and replaced as one
// atomic snapshot.
type AppState struct {
	SchemaVersion int                          `json:"schemaVersion" example:"1"`
	Months        map[types.Month]MonthlyState `json:"months"`
	Savings       Savings                      `json:"savings"`
}

// EmptyMonth returns an uninitialized month: no plan, no categories, no history.
func EmptyMonth(month types.Month) MonthlyState {
	return MonthlyState{
		Month:      month,
		BudgetPlan: decimal.Zero,
		Categories: []Category{},
		Incomes:    []IncomeAdjustment{},
		Expenses:   []Expense{},
	}
}

// Initial returns a freshly initialized snapshot containing only an empty
// entry for the current month.
func Initial(current types.Month) AppState {
	return AppState{
		SchemaVersion: SchemaVersion,
		Months: map[types.Month]MonthlyState{
			current: EmptyMonth(current),
		},
		Savings: Savings{
			Categories:   []SavingsCategory{},
			Transactions: []SavingsTransaction{},
		},
	}
}

// IsEmpty reports whether the snapshot holds no meaningful data, i.e. it is
// indistinguishable from a freshly initialized snapshot with no user input.
func (s AppState) IsEmpty() bool {
	for _, m := range s.Months {
		if m.BudgetPlan.IsPositive() || len(m.Categories) > 0 || len(m.Incomes) > 0 || len(m.Expenses) > 0 {
			return false
		}
	}

	return len(s.Savings.Categories) == 0 && len(s.Savings.Transactions) == 0
}

// Clone returns a deep copy of the snapshot. Entity values are copied by
// value; decimal amounts are immutable and safe to share.
func (s AppState) Clone() AppState {
	next := s
	next.Months = make(map[types.Month]MonthlyState, len(s.Months))
	for key, month := range s.Months {
		month.Categories = append([]Category{}, month.Categories...)
		month.Incomes = append([]IncomeAdjustment{}, month.Incomes...)
		month.Expenses = append([]Expense{}, month.Expenses...)
		next.Months[key] = month
	}

	next.Savings.Categories = append([]SavingsCategory{}, s.Savings.Categories...)
	next.Savings.Transactions = append([]SavingsTransaction{}, s.Savings.Transactions...)

	return next
}

// Normalize replaces nil collections with empty ones and aligns every
// month's key field with its map key. Snapshots passing a boundary
// (backup import, persistence load) are normalized so that the reducer
// can rely on non-nil collections.
func (s *AppState) Normalize() {
	if s.Months == nil {
		s.Months = map[types.Month]MonthlyState{}
	}

	for key, month := range s.Months {
		month.Month = key
		if month.Categories == nil {
			month.Categories = []Category{}
		}
		if month.Incomes == nil {
			month.Incomes = []IncomeAdjustment{}
		}
		if month.Expenses == nil {
			month.Expenses = []Expense{}
		}
		s.Months[key] = month
	}

	if s.Savings.Categories == nil {
		s.Savings.Categories = []SavingsCategory{}
	}
	if s.Savings.Transactions == nil {
		s.Savings.Transactions = []SavingsTransaction{}
	}
}
