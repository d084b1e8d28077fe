package types

import (
	"errors"
	"time"
)

// ErrInvalidDate is returned when a string is not a valid "YYYY-MM-DD" date.
var ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")

// Date is a calendar date in its literal "YYYY-MM-DD" form.
//
// Records store dates as literal strings, they are only converted back to
// time.Time through this type.
type Date string

// DateOf returns the Date of a time instant in that time's location.
func DateOf(t time.Time) Date {
	return Date(t.Format("2006-01-02"))
}

// ParseDate parses a "YYYY-MM-DD" string and returns the Date it represents.
func ParseDate(s string) (Date, error) {
	d := Date(s)
	if !d.Valid() {
		return "", ErrInvalidDate
	}

	return d, nil
}

// Valid reports whether the date is a well-formed "YYYY-MM-DD" date.
func (d Date) Valid() bool {
	if len(d) != 10 {
		return false
	}

	_, err := time.Parse("2006-01-02", string(d))
	return err == nil
}

// String returns the canonical "YYYY-MM-DD" form.
func (d Date) String() string {
	return string(d)
}

// Month returns the Month the date falls in.
func (d Date) Month() Month {
	if len(d) < 7 {
		return ""
	}

	return Month(d[:7])
}

// Time returns the first instant of the date in UTC.
func (d Date) Time() time.Time {
	t, err := time.Parse("2006-01-02", string(d))
	if err != nil {
		return time.Time{}
	}

	return t
}
