package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/spendbook/backend/internal/calc"
	"github.com/spendbook/backend/internal/httputil"
)

// RegisterHistoryRoutes registers the routes for the month history with
// the RouterGroup that is passed.
func (co Controller) RegisterHistoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month/history", OptionsHistory)
	r.GET("/:month/history", co.GetHistory)
}

type HistoryResponse struct {
	Data []calc.HistoryItem `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months/{month}/history [options]
func OptionsHistory(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Month history
// @Description	Returns the month's incomes, expenses and savings
// @Description	transactions as one list, ordered by date and creation time,
// @Description	newest first.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	HistoryResponse
// @Failure		400		{object}	httperror.Error
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Param			comment	query		string	false	"Filter by comment, supports * globbing"
// @Router			/v1/months/{month}/history [get]
func (co Controller) GetHistory(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	items := calc.MonthHistory(co.Store.Snapshot(), month)

	pattern := c.Query("comment")
	if pattern != "" {
		filtered := make([]calc.HistoryItem, 0, len(items))
		for _, item := range items {
			if glob.Glob(pattern, item.Comment) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	c.JSON(http.StatusOK, HistoryResponse{Data: items})
}
