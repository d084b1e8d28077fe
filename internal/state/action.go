package state

import (
	"github.com/shopspring/decimal"
	"github.com/spendbook/backend/internal/models"
	"github.com/spendbook/backend/internal/types"
)

// Action is an intent applied to the snapshot by the reducer.
//
// Actions carry pre-validated payloads: malformed money input, empty names
// and unknown transaction types are rejected at the boundary before an
// action is constructed. The reducer never fails for a structurally valid
// action.
type Action interface {
	isAction()
}

// EnsureMonth makes sure a month entry exists, rolling the previous month's
// budget plan and categories forward if needed.
type EnsureMonth struct {
	Month types.Month
}

// SetBudgetPlan sets the budget plan of a month.
type SetBudgetPlan struct {
	Month  types.Month
	Amount decimal.Decimal
}

// AddIncome records an ad-hoc income adjustment for a month.
// Date defaults to the current date when empty.
type AddIncome struct {
	Month   types.Month
	Amount  decimal.Decimal
	Comment string
	Date    types.Date
}

// DeleteIncome removes an income adjustment. A no-op if the id is absent.
type DeleteIncome struct {
	Month types.Month
	ID    string
}

// AddCategory adds a spending category to a month.
type AddCategory struct {
	Month   types.Month
	Name    string
	Planned decimal.Decimal
}

// UpdateCategory renames and replans a category. A no-op if the id is absent.
type UpdateCategory struct {
	Month   types.Month
	ID      string
	Name    string
	Planned decimal.Decimal
}

// DeleteCategory removes a category and cascades to every expense in the
// month that references it.
type DeleteCategory struct {
	Month types.Month
	ID    string
}

// AddExpense records an expense against a category.
// The category id is taken as-is: referential integrity is the caller's
// responsibility, a stale id is tolerated and rendered with a fallback
// label by the display layer.
type AddExpense struct {
	Month      types.Month
	CategoryID string
	Amount     decimal.Decimal
	Comment    string
	Date       types.Date
}

// DeleteExpense removes an expense. A no-op if the id is absent.
type DeleteExpense struct {
	Month types.Month
	ID    string
}

// AddSavingsCategory adds a savings category with a zero balance.
type AddSavingsCategory struct {
	Name string
}

// DeleteSavingsCategory removes a savings category and cascades to every
// savings transaction that references it.
type DeleteSavingsCategory struct {
	ID string
}

// RecordSavingsTransaction records a deposit or withdrawal and updates the
// matching category's cached balance in the same state transition.
// Date defaults to the current date and Month to the date's month.
type RecordSavingsTransaction struct {
	Type              models.TransactionType
	SavingsCategoryID string
	Amount            decimal.Decimal
	Comment           string
	Date              types.Date
	Month             types.Month
}

// ReplaceState replaces the whole snapshot. Used for backup restore and
// remote-sync load; the caller validates the shape first.
type ReplaceState struct {
	Next models.AppState
}

func (EnsureMonth) isAction()              {}
func (SetBudgetPlan) isAction()            {}
func (AddIncome) isAction()                {}
func (DeleteIncome) isAction()             {}
func (AddCategory) isAction()              {}
func (UpdateCategory) isAction()           {}
func (DeleteCategory) isAction()           {}
func (AddExpense) isAction()               {}
func (DeleteExpense) isAction()            {}
func (AddSavingsCategory) isAction()       {}
func (DeleteSavingsCategory) isAction()    {}
func (RecordSavingsTransaction) isAction() {}
func (ReplaceState) isAction()             {}
