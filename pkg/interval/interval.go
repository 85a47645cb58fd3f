// Package interval computes the exact calendar gap between two dates as
// whole years, whole months and residual days. The decomposition walks the
// real calendar rather than assuming 30-day months, so leap years and
// variable month lengths are handled exactly.
package interval

import (
	"fmt"

	"github.com/coolbeans/lexcalc/pkg/types"
)

// Interval is a fully normalized calendar gap: Months is 0-11 and Days never
// reaches the length of the month the residual was measured against.
type Interval struct {
	Years  int
	Months int
	Days   int
}

// String renders the interval compactly, e.g. "1y 2m 3d".
func (iv Interval) String() string {
	return fmt.Sprintf("%dy %dm %dd", iv.Years, iv.Months, iv.Days)
}

// IsZero reports whether the interval is empty.
func (iv Interval) IsZero() bool {
	return iv.Years == 0 && iv.Months == 0 && iv.Days == 0
}

// addYear returns the date one calendar year after d. A Feb 29 start that
// lands in a non-leap year substitutes Feb 28.
func addYear(d types.Date) types.Date {
	next := types.Date{Year: d.Year + 1, Month: d.Month, Day: d.Day}
	if next.Month == 2 && next.Day == 29 && !types.IsLeapYear(next.Year) {
		next.Day = 28
	}
	return next
}

// addMonth returns the date one calendar month after d, clamping the
// day-of-month to the target month's actual length.
func addMonth(d types.Date) types.Date {
	year, month := d.Year, d.Month+1
	if month > 12 {
		year, month = year+1, 1
	}
	day := d.Day
	if max := types.DaysInMonth(year, month); day > max {
		day = max
	}
	return types.Date{Year: year, Month: month, Day: day}
}

// Between returns the exact (years, months, days) gap from start to end.
// A reversed range yields the zero interval. Whole years are stepped off
// greedily first, then whole months, and the remainder is counted in days.
func Between(start, end types.Date) Interval {
	if start.After(end) {
		return Interval{}
	}

	current := start
	var iv Interval

	for {
		next := addYear(current)
		if next.After(end) {
			break
		}
		current = next
		iv.Years++
	}

	for {
		next := addMonth(current)
		if next.After(end) {
			break
		}
		current = next
		iv.Months++
	}

	iv.Days = current.DaysUntil(end)
	return iv
}
