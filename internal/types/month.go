// Package types implements special types for Spendbook.
package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/goodsign/monday"
)

// ErrInvalidMonth is returned when a string is not a valid "YYYY-MM" month key.
var ErrInvalidMonth = errors.New("month must be in YYYY-MM format")

// Month is a calendar month identified by its canonical "YYYY-MM" key.
//
// The string form is the primary key into the months map, so Month is a
// validated string rather than a wrapped time.Time. Because the month part
// is zero-padded, lexicographic order is chronological order.
type Month string

// NewMonth returns the Month for a year and month.
func NewMonth(year int, month time.Month) Month {
	return Month(fmt.Sprintf("%04d-%02d", year, month))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month it represents.
func ParseMonth(s string) (Month, error) {
	m := Month(s)
	if !m.Valid() {
		return "", ErrInvalidMonth
	}

	return m, nil
}

// Valid reports whether the month is a well-formed "YYYY-MM" key.
func (m Month) Valid() bool {
	if len(m) != 7 {
		return false
	}

	_, err := time.Parse("2006-01", string(m))
	return err == nil
}

// String returns the canonical "YYYY-MM" key.
func (m Month) String() string {
	return string(m)
}

// Time returns the first instant of the month in UTC.
func (m Month) Time() time.Time {
	t, err := time.Parse("2006-01", string(m))
	if err != nil {
		return time.Time{}
	}

	return t
}

// AddDate shifts the month by the specified amount of months.
// Negative amounts shift backwards.
func (m Month) AddDate(months int) Month {
	return MonthOf(m.Time().AddDate(0, months, 0))
}

// Before reports whether the month m is before n.
func (m Month) Before(n Month) bool {
	return m < n
}

// After reports whether the month m is after n.
func (m Month) After(n Month) bool {
	return m > n
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return m == n
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return MonthOf(t) == m
}

// Title returns the display title for the month localized for the BCP 47
// locale, e.g. "June 2024" for "en" or "Июнь 2024" for "ru". The first
// letter is upper-cased since some locales carry lowercase month names.
// Unknown locales fall back to English.
func (m Month) Title(locale string) string {
	t := m.Time()
	if t.IsZero() {
		return string(m)
	}

	title := monday.Format(t, "January 2006", matchLocale(locale))
	r := []rune(title)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// matchLocale resolves a BCP 47 locale to a supported monday locale by
// its base language, so "ru" and "ru-RU" both render Russian.
func matchLocale(locale string) monday.Locale {
	base, _, _ := strings.Cut(strings.ReplaceAll(locale, "_", "-"), "-")
	base = strings.ToLower(base) + "_"

	for _, supported := range monday.ListLocales() {
		if strings.HasPrefix(string(supported), base) {
			return supported
		}
	}

	return monday.LocaleEnUS
}
