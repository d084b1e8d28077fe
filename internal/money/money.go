// Package money implements rounding, parsing and formatting of monetary
// amounts. All amounts in Spendbook are decimal values with at most two
// fractional digits.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrInvalidAmount is returned when an input string cannot be parsed as an amount.
var ErrInvalidAmount = errors.New("amount is not a valid number")

// Round rounds an amount to two fractional digits, rounding half up.
// Every monetary value has to pass through Round before it is stored.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Parse parses user input into an amount. Both comma and dot are accepted
// as the decimal separator, spaces and non-breaking spaces are ignored so
// that locale-formatted input like "1 234,56" parses.
func Parse(s string) (decimal.Decimal, error) {
	normalized := strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', ' ':
			return -1
		case ',':
			return '.'
		default:
			return r
		}
	}, s)

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	return d, nil
}

// Formatter renders amounts with a currency symbol and locale-aware
// number formatting.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter returns a Formatter for a BCP 47 locale and an ISO 4217
// currency code.
func NewFormatter(locale, code string) (Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	return Formatter{
		unit:    unit,
		printer: message.NewPrinter(tag),
	}, nil
}

// Format renders an amount for display.
func (f Formatter) Format(d decimal.Decimal) string {
	if f.printer == nil {
		return Round(d).StringFixed(2)
	}

	amount, _ := Round(d).Float64()
	return f.printer.Sprintf("%v", currency.Symbol(f.unit.Amount(amount)))
}
