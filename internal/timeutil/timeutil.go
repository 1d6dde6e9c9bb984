package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Date is a plain (year, month, day) triple. Unlike time.Time it never normalizes,
// so a day of 0 or 32 survives AddDays and formats as-is.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateOf returns the calendar date of t in its current location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Today returns the current date in loc (UTC when loc is nil).
func Today(now func() time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(now().In(loc))
}

// ParseDay parses a YYYY-MM-DD string into a Date.
func ParseDay(value string) (Date, error) {
	parsed, err := ParseDate(value)
	if err != nil {
		return Date{}, err
	}
	return DateOf(parsed), nil
}

// AddDays shifts the day of month by delta without rolling over months or years.
func (d Date) AddDays(delta int) Date {
	d.Day += delta
	return d
}

// Valid reports whether the date names a real calendar day.
func (d Date) Valid() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Day() == d.Day && int(t.Month()) == d.Month
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
