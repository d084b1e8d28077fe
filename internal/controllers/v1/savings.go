package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spendbook/backend/internal/calc"
	"github.com/spendbook/backend/internal/httperror"
	"github.com/spendbook/backend/internal/httputil"
	"github.com/spendbook/backend/internal/models"
	"github.com/spendbook/backend/internal/state"
	"github.com/spendbook/backend/internal/types"
)

// RegisterSavingsRoutes registers the routes for savings with
// the RouterGroup that is passed.
func (co Controller) RegisterSavingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSavings)
	r.GET("", co.GetSavings)

	r.OPTIONS("/categories", OptionsSavingsCategoryList)
	r.POST("/categories", co.CreateSavingsCategory)

	r.OPTIONS("/categories/:id", OptionsSavingsCategoryDetail)
	r.DELETE("/categories/:id", co.DeleteSavingsCategory)

	r.OPTIONS("/transactions", OptionsSavingsTransactionList)
	r.POST("/transactions", co.CreateSavingsTransaction)
}

type SavingsResponse struct {
	Data SavingsList `json:"data"`
}

// SavingsList is all savings categories with their balances and the total
// over all of them.
type SavingsList struct {
	Categories   []models.SavingsCategory `json:"categories"`
	Total        decimal.Decimal          `json:"total" example:"3000"`
	TotalDisplay string                   `json:"totalDisplay"`
}

type SavingsCategoryEditable struct {
	Name string `json:"name" example:"vacation"` // Name of the savings category
}

type SavingsCategoryResponse struct {
	Data models.SavingsCategory `json:"data"`
}

type SavingsTransactionEditable struct {
	Type              string `json:"type" example:"deposit"`    // "deposit" or "withdraw"
	SavingsCategoryID string `json:"savingsCategoryId"`         // ID of the savings category
	Amount            string `json:"amount" example:"5000"`     // Amount moved
	Comment           string `json:"comment"`                   // Optional comment
	Date              string `json:"date" example:"2024-06-20"` // Defaults to the current date
	MonthKey          string `json:"monthKey" example:"2024-06"` // Month whose balance the transaction affects, defaults to the date's month
}

type SavingsTransactionResponse struct {
	Data models.SavingsTransaction `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Router			/v1/savings [options]
func OptionsSavings(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Router			/v1/savings/categories [options]
func OptionsSavingsCategoryList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Router			/v1/savings/categories/{id} [options]
func OptionsSavingsCategoryDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Router			/v1/savings/transactions [options]
func OptionsSavingsTransactionList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		List savings
// @Description	Returns all savings categories with their balances
// @Tags			Savings
// @Produce		json
// @Success		200	{object}	SavingsResponse
// @Router			/v1/savings [get]
func (co Controller) GetSavings(c *gin.Context) {
	s := co.Store.Snapshot()
	total := calc.TotalSavingsBalance(s)

	c.JSON(http.StatusOK, SavingsResponse{Data: SavingsList{
		Categories:   s.Savings.Categories,
		Total:        total,
		TotalDisplay: co.Formatter.Format(total),
	}})
}

// @Summary		Add savings category
// @Description	Adds a savings category with a zero balance
// @Tags			Savings
// @Accept			json
// @Produce		json
// @Success		201			{object}	SavingsCategoryResponse
// @Failure		400			{object}	httperror.Error
// @Param			category	body		SavingsCategoryEditable	true	"Savings category"
// @Router			/v1/savings/categories [post]
func (co Controller) CreateSavingsCategory(c *gin.Context) {
	var editable SavingsCategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	if strings.TrimSpace(editable.Name) == "" {
		c.JSON(http.StatusBadRequest, httperror.New(ErrNameEmpty))
		return
	}

	s := co.Store.Dispatch(state.AddSavingsCategory{Name: editable.Name})
	c.JSON(http.StatusCreated, SavingsCategoryResponse{Data: s.Savings.Categories[0]})
}

// @Summary		Delete savings category
// @Description	Removes a savings category and all its transactions.
// @Description	Deleting an id that does not exist is not an error.
// @Tags			Savings
// @Success		204
// @Param			id	path	string	true	"ID of the savings category"
// @Router			/v1/savings/categories/{id} [delete]
func (co Controller) DeleteSavingsCategory(c *gin.Context) {
	co.Store.Dispatch(state.DeleteSavingsCategory{ID: c.Param("id")})
	c.Status(http.StatusNoContent)
}

// @Summary		Record savings transaction
// @Description	Records a deposit or withdrawal. The matching category's
// @Description	balance is updated in the same state transition.
// @Tags			Savings
// @Accept			json
// @Produce		json
// @Success		201			{object}	SavingsTransactionResponse
// @Failure		400			{object}	httperror.Error
// @Param			transaction	body		SavingsTransactionEditable	true	"Savings transaction"
// @Router			/v1/savings/transactions [post]
func (co Controller) CreateSavingsTransaction(c *gin.Context) {
	var editable SavingsTransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	txnType := models.TransactionType(editable.Type)
	if !txnType.Valid() {
		c.JSON(http.StatusBadRequest, httperror.New(models.ErrInvalidTransactionType))
		return
	}

	if editable.SavingsCategoryID == "" {
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

	var month types.Month
	if editable.MonthKey != "" {
		var err error
		month, err = types.ParseMonth(editable.MonthKey)
		if err != nil {
			c.JSON(http.StatusBadRequest, httperror.New(err))
			return
		}
	}

	s := co.Store.Dispatch(state.RecordSavingsTransaction{
		Type:              txnType,
		SavingsCategoryID: editable.SavingsCategoryID,
		Amount:            amount,
		Comment:           editable.Comment,
		Date:              date,
		Month:             month,
	})

	c.JSON(http.StatusCreated, SavingsTransactionResponse{Data: s.Savings.Transactions[0]})
}
