// Package types provides the core value types shared by the calculation
// packages: a calendar Date without a time component and money helpers.
package types

import (
	"fmt"
	"time"
)

// DateLayout is the wire/display format for dates.
const DateLayout = "2006-01-02"

// Date represents a calendar date without time component.
// Comparison and arithmetic go through time.Time at midnight UTC, so
// leap years and variable month lengths are always respected.
type Date struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

// ToTime converts a Date to a time.Time at midnight UTC.
func (d Date) ToTime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// FromTime creates a Date from a time.Time.
func FromTime(t time.Time) Date {
	return Date{
		Year:  t.Year(),
		Month: int(t.Month()),
		Day:   t.Day(),
	}
}

// Today returns the current date.
func Today() Date {
	return FromTime(time.Now())
}

// ParseDate parses an ISO date string ("2006-01-02") into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// String formats the date as an ISO "2006-01-02" string.
func (d Date) String() string {
	return d.ToTime().Format(DateLayout)
}

// Before returns true if d is before other.
func (d Date) Before(other Date) bool {
	return d.ToTime().Before(other.ToTime())
}

// After returns true if d is after other.
func (d Date) After(other Date) bool {
	return d.ToTime().After(other.ToTime())
}

// Equal returns true if d equals other.
func (d Date) Equal(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// AddDays returns the date days calendar days after d (before, if negative).
func (d Date) AddDays(days int) Date {
	return FromTime(d.ToTime().AddDate(0, 0, days))
}

// Weekday returns the day of week under a Monday=0 .. Sunday=6 convention.
func (d Date) Weekday() int {
	return (int(d.ToTime().Weekday()) + 6) % 7
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func (d Date) IsWeekend() bool {
	return d.Weekday() >= 5
}

// DaysUntil returns the signed number of calendar days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.ToTime().Sub(d.ToTime()).Hours() / 24)
}

// DaysInMonth returns the number of days in the given month of the given year.
func DaysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeapYear reports whether year is a leap year in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
