package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendbook/backend/internal/httperror"
	"github.com/spendbook/backend/internal/httputil"
	"github.com/spendbook/backend/internal/models"
	"github.com/spendbook/backend/internal/state"
)

// RegisterIncomeRoutes registers the routes for income adjustments with
// the RouterGroup that is passed.
func (co Controller) RegisterIncomeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month/incomes", OptionsIncomeList)
	r.POST("/:month/incomes", co.CreateIncome)

	r.OPTIONS("/:month/incomes/:id", OptionsIncomeDetail)
	r.DELETE("/:month/incomes/:id", co.DeleteIncome)
}

type IncomeEditable struct {
	Amount  string `json:"amount" example:"5000"`     // Amount added to the month's budget
	Comment string `json:"comment" example:"bonus"`   // Optional comment
	Date    string `json:"date" example:"2024-06-01"` // Defaults to the current date
}

type IncomeResponse struct {
	Data models.IncomeAdjustment `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/months/{month}/incomes [options]
func OptionsIncomeList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/months/{month}/incomes/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Add income
// @Description	Records an ad-hoc income adjustment for the month
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	httperror.Error
// @Param			month	path		string			true	"The month in YYYY-MM format"
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/months/{month}/incomes [post]
func (co Controller) CreateIncome(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	var editable IncomeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
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

	s := co.Store.Dispatch(state.AddIncome{
		Month:   month,
		Amount:  amount,
		Comment: editable.Comment,
		Date:    date,
	})

	c.JSON(http.StatusCreated, IncomeResponse{Data: s.Months[month].Incomes[0]})
}

// @Summary		Delete income
// @Description	Removes an income adjustment. Deleting an id that does not exist is not an error.
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Param			id		path	string	true	"ID of the income adjustment"
// @Router			/v1/months/{month}/incomes/{id} [delete]
func (co Controller) DeleteIncome(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	co.Store.Dispatch(state.DeleteIncome{Month: month, ID: c.Param("id")})
	c.Status(http.StatusNoContent)
}
