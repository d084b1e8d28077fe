package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendbook/backend/internal/httperror"
	"github.com/spendbook/backend/internal/httputil"
	"github.com/spendbook/backend/internal/models"
	"github.com/spendbook/backend/internal/state"
)

// ErrCategoryIDMissing is returned when an expense is created without a
// category reference.
var ErrCategoryIDMissing = errors.New("categoryId must be set")

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month/expenses", OptionsExpenseList)
	r.POST("/:month/expenses", co.CreateExpense)

	r.OPTIONS("/:month/expenses/:id", OptionsExpenseDetail)
	r.DELETE("/:month/expenses/:id", co.DeleteExpense)
}

type ExpenseEditable struct {
	CategoryID string `json:"categoryId"`                // ID of the category the expense belongs to
	Amount     string `json:"amount" example:"799"`      // Amount spent
	Comment    string `json:"comment" example:"cheese"`  // Optional comment
	Date       string `json:"date" example:"2024-06-12"` // Defaults to the current date
}

type ExpenseResponse struct {
	Data models.Expense `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/months/{month}/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/months/{month}/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Add expense
// @Description	Records an expense against a category. The category
// @Description	reference is taken as-is: if the category was deleted
// @Description	concurrently, the expense keeps the stale id and the display
// @Description	layer falls back to a "category deleted" label.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Param			month	path		string			true	"The month in YYYY-MM format"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/months/{month}/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	if editable.CategoryID == "" {
		c.JSON(http.StatusBadRequest, httperror.New(ErrCategoryIDMissing))
		return
	}

	amount, ok := parsePositiveAmount(c, editable.Amount)
	if !ok {
		return
	}

	date, ok := parseDate(c, editable.Date)
	if !ok {
		return
	}

	s := co.Store.Dispatch(state.AddExpense{
		Month:      month,
		CategoryID: editable.CategoryID,
		Amount:     amount,
		Comment:    editable.Comment,
		Date:       date,
	})

	c.JSON(http.StatusCreated, ExpenseResponse{Data: s.Months[month].Expenses[0]})
}

// @Summary		Delete expense
// @Description	Removes an expense. Deleting an id that does not exist is not an error.
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Param			id		path	string	true	"ID of the expense"
// @Router			/v1/months/{month}/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	co.Store.Dispatch(state.DeleteExpense{Month: month, ID: c.Param("id")})
	c.Status(http.StatusNoContent)
}
