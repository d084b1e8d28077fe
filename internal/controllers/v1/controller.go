// Package v1 implements the API handlers. Handlers validate input at the
// boundary, translate it into state actions and render snapshots; the
// state engine itself never fails.
package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spendbook/backend/internal/httperror"
	"github.com/spendbook/backend/internal/money"
	"github.com/spendbook/backend/internal/session"
	"github.com/spendbook/backend/internal/state"
	"github.com/spendbook/backend/internal/types"
)

var (
	// ErrAmountNotPositive is returned when an amount is zero or negative.
	ErrAmountNotPositive = errors.New("amount must be greater than zero")

	// ErrNameEmpty is returned when a required name is empty after trimming.
	ErrNameEmpty = errors.New("name must not be empty")

	// ErrSyncUnavailable is returned when remote sync is not configured.
	ErrSyncUnavailable = errors.New("remote sync is not available")
)

// Controller holds the dependencies of the API handlers. Locale drives
// the month title language the same way Formatter drives amount display.
type Controller struct {
	Store     *state.Store
	Session   *session.Session
	Formatter money.Formatter
	Locale    string
	Clock     state.Clock
}

// NewController returns a Controller. A nil clock falls back to the
// system clock.
func NewController(store *state.Store, sess *session.Session, formatter money.Formatter, locale string, clock state.Clock) Controller {
	if clock == nil {
		clock = state.SystemClock{}
	}

	return Controller{
		Store:     store,
		Session:   sess,
		Formatter: formatter,
		Locale:    locale,
		Clock:     clock,
	}
}

// monthParam parses the ":month" URI parameter. On failure it renders a
// 400 response and reports false.
func monthParam(c *gin.Context) (types.Month, bool) {
	month, err := types.ParseMonth(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return "", false
	}

	return month, true
}

// parseAmount parses a monetary input string. On failure it renders a 400
// response and reports false.
func parseAmount(c *gin.Context, input string) (decimal.Decimal, bool) {
	amount, err := money.Parse(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return decimal.Zero, false
	}

	return amount, true
}

// parsePositiveAmount is parseAmount with an additional amount > 0 check.
func parsePositiveAmount(c *gin.Context, input string) (decimal.Decimal, bool) {
	amount, ok := parseAmount(c, input)
	if !ok {
		return decimal.Zero, false
	}

	if !amount.IsPositive() {
		c.JSON(http.StatusBadRequest, httperror.New(ErrAmountNotPositive))
		return decimal.Zero, false
	}

	return amount, true
}

// parseDate parses an optional "YYYY-MM-DD" input. An empty input yields
// an empty Date, the reducer then defaults to the current date.
func parseDate(c *gin.Context, input string) (types.Date, bool) {
	if input == "" {
		return "", true
	}

	date, err := types.ParseDate(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return "", false
	}

	return date, true
}
