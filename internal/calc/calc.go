// Package calc implements pure, read-only aggregations over a snapshot.
// Every function depends only on the snapshot passed in and is safe to
// call repeatedly.
package calc

import (
	"slices"

	"github.com/shopspring/decimal"
	"github.com/spendbook/backend/internal/models"
	"github.com/spendbook/backend/internal/types"
)

// MonthIncomeTotal returns the sum of a month's income adjustments.
func MonthIncomeTotal(s models.AppState, month types.Month) decimal.Decimal {
	total := decimal.Zero
	for _, income := range s.Months[month].Incomes {
		total = total.Add(income.Amount)
	}

	return total
}

// MonthExpenseTotal returns the sum of a month's expenses.
func MonthExpenseTotal(s models.AppState, month types.Month) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range s.Months[month].Expenses {
		total = total.Add(expense.Amount)
	}

	return total
}

// MonthSavingsNet returns the net effect of savings transactions on a
// month's disposable balance. A deposit removes money from the month, a
// withdrawal returns it, so deposits count negative and withdrawals
// positive.
func MonthSavingsNet(s models.AppState, month types.Month) decimal.Decimal {
	net := decimal.Zero
	for _, txn := range s.Savings.Transactions {
		if txn.Month != month {
			continue
		}

		if txn.Type == models.Deposit {
			net = net.Sub(txn.Amount)
		} else {
			net = net.Add(txn.Amount)
		}
	}

	return net
}

// MonthBalance returns the disposable balance of a month:
// budget plan + incomes - expenses + savings net.
func MonthBalance(s models.AppState, month types.Month) decimal.Decimal {
	return s.Months[month].BudgetPlan.
		Add(MonthIncomeTotal(s, month)).
		Sub(MonthExpenseTotal(s, month)).
		Add(MonthSavingsNet(s, month))
}

// TotalSavingsBalance returns the sum of all savings category balances.
func TotalSavingsBalance(s models.AppState) decimal.Decimal {
	total := decimal.Zero
	for _, category := range s.Savings.Categories {
		total = total.Add(category.Balance)
	}

	return total
}

// CategorySpent returns the sum of a month's expenses recorded against a
// category.
func CategorySpent(s models.AppState, month types.Month, categoryID string) decimal.Decimal {
	spent := decimal.Zero
	for _, expense := range s.Months[month].Expenses {
		if expense.CategoryID == categoryID {
			spent = spent.Add(expense.Amount)
		}
	}

	return spent
}

// HistoryKind discriminates the record types in a month's history.
type HistoryKind string

const (
	KindIncome  HistoryKind = "income"
	KindExpense HistoryKind = "expense"
	KindSavings HistoryKind = "savings"
)

// HistoryItem is one record in a month's chronological history.
type HistoryItem struct {
	Kind       HistoryKind            `json:"kind"`
	ID         string                 `json:"id"`
	Date       types.Date             `json:"date"`
	Amount     decimal.Decimal        `json:"amount"`
	Comment    string                 `json:"comment,omitempty"`
	CategoryID string                 `json:"categoryId,omitempty"`
	Type       models.TransactionType `json:"type,omitempty"`
	CreatedAt  int64                  `json:"createdAt"`
}

// MonthHistory returns a month's incomes, expenses and savings
// transactions merged into one list, ordered by (date desc, createdAt
// desc). The snapshot's own head-insertion ordering is left untouched.
func MonthHistory(s models.AppState, month types.Month) []HistoryItem {
	m := s.Months[month]
	items := make([]HistoryItem, 0, len(m.Incomes)+len(m.Expenses)+len(s.Savings.Transactions))

	for _, income := range m.Incomes {
		items = append(items, HistoryItem{
			Kind:      KindIncome,
			ID:        income.ID,
			Date:      income.Date,
			Amount:    income.Amount,
			Comment:   income.Comment,
			CreatedAt: income.CreatedAt,
		})
	}

	for _, expense := range m.Expenses {
		items = append(items, HistoryItem{
			Kind:       KindExpense,
			ID:         expense.ID,
			Date:       expense.Date,
			Amount:     expense.Amount,
			Comment:    expense.Comment,
			CategoryID: expense.CategoryID,
			CreatedAt:  expense.CreatedAt,
		})
	}

	for _, txn := range s.Savings.Transactions {
		if txn.Month != month {
			continue
		}

		items = append(items, HistoryItem{
			Kind:       KindSavings,
			ID:         txn.ID,
			Date:       txn.Date,
			Amount:     txn.Amount,
			Comment:    txn.Comment,
			CategoryID: txn.SavingsCategoryID,
			Type:       txn.Type,
			CreatedAt:  txn.CreatedAt,
		})
	}

	slices.SortStableFunc(items, func(a, b HistoryItem) int {
		if a.Date != b.Date {
			if a.Date > b.Date {
				return -1
			}
			return 1
		}

		switch {
		case a.CreatedAt > b.CreatedAt:
			return -1
		case a.CreatedAt < b.CreatedAt:
			return 1
		default:
			return 0
		}
	})

	return items
}
