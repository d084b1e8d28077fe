package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spendbook/backend/internal/calc"
	"github.com/spendbook/backend/internal/httperror"
	"github.com/spendbook/backend/internal/httputil"
	"github.com/spendbook/backend/internal/models"
	"github.com/spendbook/backend/internal/state"
	"github.com/spendbook/backend/internal/types"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", OptionsMonth)
	r.GET("/:month", co.GetMonth)

	r.OPTIONS("/:month/budget", OptionsBudget)
	r.PATCH("/:month/budget", co.UpdateBudgetPlan)
}

type MonthResponse struct {
	Data Month `json:"data"`
}

// Month is a month's state together with its computed values.
type Month struct {
	Key            types.Month               `json:"monthKey" example:"2024-06"`
	Title          string                    `json:"title" example:"June 2024"`
	BudgetPlan     decimal.Decimal           `json:"budgetPlan" example:"50000"`
	IncomeTotal    decimal.Decimal           `json:"incomeTotal" example:"5000"`
	ExpenseTotal   decimal.Decimal           `json:"expenseTotal" example:"799"`
	SavingsNet     decimal.Decimal           `json:"savingsNet" example:"-5000"`
	Balance        decimal.Decimal           `json:"balance" example:"49201"`
	BalanceDisplay string                    `json:"balanceDisplay"`
	Categories     []Category                `json:"categories"`
	Incomes        []models.IncomeAdjustment `json:"incomes"`
	Expenses       []models.Expense          `json:"expenses"`
}

// Category is a spending category with its spent and remaining amounts
// for the month.
type Category struct {
	models.Category
	Spent     decimal.Decimal `json:"spent" example:"799"`
	Remaining decimal.Decimal `json:"remaining" example:"14201"`
}

type BudgetEditable struct {
	Amount string `json:"amount" example:"50000"` // The planned budget for the month
}

func (co Controller) newMonth(s models.AppState, key types.Month) Month {
	m := s.Months[key]

	categories := make([]Category, 0, len(m.Categories))
	for _, category := range m.Categories {
		spent := calc.CategorySpent(s, key, category.ID)
		categories = append(categories, Category{
			Category:  category,
			Spent:     spent,
			Remaining: category.Planned.Sub(spent),
		})
	}

	balance := calc.MonthBalance(s, key)

	return Month{
		Key:            key,
		Title:          key.Title(co.Locale),
		BudgetPlan:     m.BudgetPlan,
		IncomeTotal:    calc.MonthIncomeTotal(s, key),
		ExpenseTotal:   calc.MonthExpenseTotal(s, key),
		SavingsNet:     calc.MonthSavingsNet(s, key),
		Balance:        balance,
		BalanceDisplay: co.Formatter.Format(balance),
		Categories:     categories,
		Incomes:        m.Incomes,
		Expenses:       m.Expenses,
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months/{month} [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months/{month}/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsPatch(c)
}

// @Summary		Get month
// @Description	Returns the month's data with all computed totals. Navigating
// @Description	to a month ensures it: a month that does not exist yet inherits
// @Description	the previous month's budget plan and categories.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	httperror.Error
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [get]
func (co Controller) GetMonth(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	s := co.Store.Dispatch(state.EnsureMonth{Month: month})
	c.JSON(http.StatusOK, MonthResponse{Data: co.newMonth(s, month)})
}

// @Summary		Set budget plan
// @Description	Sets the month's planned budget
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	httperror.Error
// @Param			month	path		string			true	"The month in YYYY-MM format"
// @Param			budget	body		BudgetEditable	true	"Budget plan"
// @Router			/v1/months/{month}/budget [patch]
func (co Controller) UpdateBudgetPlan(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	amount, ok := parseAmount(c, editable.Amount)
	if !ok {
		return
	}

	s := co.Store.Dispatch(state.SetBudgetPlan{Month: month, Amount: amount})
	c.JSON(http.StatusOK, MonthResponse{Data: co.newMonth(s, month)})
}
