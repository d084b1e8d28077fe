package state

import (
	"maps"

	"github.com/spendbook/backend/internal/models"
	"github.com/spendbook/backend/internal/types"
)

// EnsureMonth guarantees that a month entry exists before mutations are
// applied to it. It is idempotent.
//
// Rollover rule: a month that does not exist, or exists without
// categories while the chronologically preceding month has categories,
// inherits the previous month's budget plan and a fresh copy of its
// categories (new ids, new creation time). Transactional history never
// rolls forward, but incomes and expenses already recorded on an
// uninitialized month are preserved. Such records can only appear through
// backup restores and are valid state, not an error.
func (r Reducer) EnsureMonth(s models.AppState, month types.Month) models.AppState {
	current, exists := s.Months[month]
	prev, prevExists := s.Months[month.AddDate(-1)]
	prevInitialized := prevExists && len(prev.Categories) > 0

	if exists && len(current.Categories) > 0 {
		return s
	}
	if exists && !prevInitialized {
		return s
	}

	next := models.EmptyMonth(month)
	if exists {
		next.Incomes = current.Incomes
		next.Expenses = current.Expenses
	}
	if prevInitialized {
		next.BudgetPlan = prev.BudgetPlan
		next.Categories = r.copyCategories(prev.Categories)
	}

	months := maps.Clone(s.Months)
	if months == nil {
		months = map[types.Month]models.MonthlyState{}
	}
	months[month] = next

	s.Months = months
	return s
}

// copyCategories recreates a category list for a new month: names and
// planned amounts carry over, ids and creation times are fresh, spent
// history starts at zero.
func (r Reducer) copyCategories(categories []models.Category) []models.Category {
	now := r.Clock.Now().UnixMilli()

	next := make([]models.Category, len(categories))
	for i, category := range categories {
		category.ID = r.IDs.Next()
		category.CreatedAt = now
		next[i] = category
	}

	return next
}
