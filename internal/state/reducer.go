// Package state implements the state engine for Spendbook.
//
// The engine is a deterministic reducer: Apply takes a snapshot and an
// action and produces a new snapshot without ever mutating its input.
// The Store owns the live snapshot, serializes dispatches and notifies
// subscribers after each change.
package state

import (
	"maps"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spendbook/backend/internal/models"
	"github.com/spendbook/backend/internal/money"
	"github.com/spendbook/backend/internal/types"
)

// Reducer applies actions to snapshots. Id generation and time are
// injected so that tests can run deterministically.
type Reducer struct {
	IDs   IDSource
	Clock Clock
}

// NewReducer returns a Reducer. Nil sources default to random UUIDs and
// the system clock.
func NewReducer(ids IDSource, clock Clock) Reducer {
	if ids == nil {
		ids = UUIDSource{}
	}
	if clock == nil {
		clock = SystemClock{}
	}

	return Reducer{IDs: ids, Clock: clock}
}

// Apply applies an action to a snapshot and returns the resulting
// snapshot. The input snapshot is never modified. Unknown actions return
// the snapshot unchanged.
func (r Reducer) Apply(s models.AppState, action Action) models.AppState {
	switch a := action.(type) {
	case ReplaceState:
		return a.Next

	case EnsureMonth:
		return r.EnsureMonth(s, a.Month)

	case SetBudgetPlan:
		next := r.EnsureMonth(s, a.Month)
		return withMonth(next, a.Month, func(m models.MonthlyState) models.MonthlyState {
			m.BudgetPlan = money.Round(a.Amount)
			return m
		})

	case AddIncome:
		next := r.EnsureMonth(s, a.Month)
		income := models.IncomeAdjustment{
			ID:        r.IDs.Next(),
			Date:      r.dateOrToday(a.Date),
			Amount:    money.Round(a.Amount),
			Comment:   strings.TrimSpace(a.Comment),
			CreatedAt: r.Clock.Now().UnixMilli(),
		}
		return withMonth(next, a.Month, func(m models.MonthlyState) models.MonthlyState {
			m.Incomes = prepend(income, m.Incomes)
			return m
		})

	case DeleteIncome:
		return withMonth(s, a.Month, func(m models.MonthlyState) models.MonthlyState {
			m.Incomes = removeIf(m.Incomes, func(i models.IncomeAdjustment) bool { return i.ID == a.ID })
			return m
		})

	case AddCategory:
		next := r.EnsureMonth(s, a.Month)
		category := models.Category{
			ID:        r.IDs.Next(),
			Name:      strings.TrimSpace(a.Name),
			Planned:   money.Round(a.Planned),
			CreatedAt: r.Clock.Now().UnixMilli(),
		}
		return withMonth(next, a.Month, func(m models.MonthlyState) models.MonthlyState {
			m.Categories = prepend(category, m.Categories)
			return m
		})

	case UpdateCategory:
		return withMonth(s, a.Month, func(m models.MonthlyState) models.MonthlyState {
			categories := make([]models.Category, len(m.Categories))
			for i, c := range m.Categories {
				if c.ID == a.ID {
					c.Name = strings.TrimSpace(a.Name)
					c.Planned = money.Round(a.Planned)
				}
				categories[i] = c
			}
			m.Categories = categories
			return m
		})

	case DeleteCategory:
		return withMonth(s, a.Month, func(m models.MonthlyState) models.MonthlyState {
			m.Categories = removeIf(m.Categories, func(c models.Category) bool { return c.ID == a.ID })
			// Cascade: expenses referencing the category must never
			// remain dangling.
			m.Expenses = removeIf(m.Expenses, func(e models.Expense) bool { return e.CategoryID == a.ID })
			return m
		})

	case AddExpense:
		next := r.EnsureMonth(s, a.Month)
		expense := models.Expense{
			ID:         r.IDs.Next(),
			Date:       r.dateOrToday(a.Date),
			CategoryID: a.CategoryID,
			Amount:     money.Round(a.Amount),
			Comment:    strings.TrimSpace(a.Comment),
			CreatedAt:  r.Clock.Now().UnixMilli(),
		}
		return withMonth(next, a.Month, func(m models.MonthlyState) models.MonthlyState {
			m.Expenses = prepend(expense, m.Expenses)
			return m
		})

	case DeleteExpense:
		return withMonth(s, a.Month, func(m models.MonthlyState) models.MonthlyState {
			m.Expenses = removeIf(m.Expenses, func(e models.Expense) bool { return e.ID == a.ID })
			return m
		})

	case AddSavingsCategory:
		category := models.SavingsCategory{
			ID:        r.IDs.Next(),
			Name:      strings.TrimSpace(a.Name),
			Balance:   decimal.Zero,
			CreatedAt: r.Clock.Now().UnixMilli(),
		}
		s.Savings.Categories = prepend(category, s.Savings.Categories)
		return s

	case DeleteSavingsCategory:
		s.Savings.Categories = removeIf(s.Savings.Categories, func(c models.SavingsCategory) bool { return c.ID == a.ID })
		// Cascade: transactions of the category go with it.
		s.Savings.Transactions = removeIf(s.Savings.Transactions, func(t models.SavingsTransaction) bool {
			return t.SavingsCategoryID == a.ID
		})
		return s

	case RecordSavingsTransaction:
		date := r.dateOrToday(a.Date)
		month := a.Month
		if month == "" {
			month = date.Month()
		}

		txn := models.SavingsTransaction{
			ID:                r.IDs.Next(),
			Type:              a.Type,
			Date:              date,
			SavingsCategoryID: a.SavingsCategoryID,
			Amount:            money.Round(a.Amount),
			Comment:           strings.TrimSpace(a.Comment),
			Month:             month,
			CreatedAt:         r.Clock.Now().UnixMilli(),
		}

		// The balance update and the transaction insertion are one state
		// transition, they are never observable separately.
		categories := make([]models.SavingsCategory, len(s.Savings.Categories))
		for i, c := range s.Savings.Categories {
			if c.ID == txn.SavingsCategoryID {
				delta := txn.Amount
				if txn.Type == models.Withdraw {
					delta = delta.Neg()
				}
				c.Balance = money.Round(c.Balance.Add(delta))
			}
			categories[i] = c
		}

		s.Savings.Categories = categories
		s.Savings.Transactions = prepend(txn, s.Savings.Transactions)
		return s
	}

	return s
}

func (r Reducer) dateOrToday(d types.Date) types.Date {
	if d == "" {
		return types.DateOf(r.Clock.Now())
	}

	return d
}

// withMonth replaces one month in the snapshot with the result of update.
// The months map is copied, the snapshot passed in stays untouched.
// A no-op if the month does not exist.
func withMonth(s models.AppState, key types.Month, update func(models.MonthlyState) models.MonthlyState) models.AppState {
	month, ok := s.Months[key]
	if !ok {
		return s
	}

	months := maps.Clone(s.Months)
	months[key] = update(month)
	s.Months = months
	return s
}

func prepend[T any](head T, rest []T) []T {
	next := make([]T, 0, len(rest)+1)
	next = append(next, head)
	return append(next, rest...)
}

// removeIf returns a new slice without the matching elements. The result
// is never nil so that snapshots keep serializing collections as arrays.
func removeIf[T any](items []T, match func(T) bool) []T {
	next := make([]T, 0, len(items))
	for _, item := range items {
		if !match(item) {
			next = append(next, item)
		}
	}

	return next
}
