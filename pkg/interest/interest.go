// Package interest computes simple interest and penalty figures over a date
// range. Rates are quoted per day, month or year and annualized against a
// caller-selected 360 or 365 day basis; the same basis divides the day count
// in the accrual fraction.
package interest

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/coolbeans/lexcalc/pkg/types"
)

// Cadence is the time unit a quoted rate is expressed per.
type Cadence int

const (
	Day Cadence = iota
	Month
	Year
)

// String returns the stable CLI/config name of the cadence.
func (c Cadence) String() string {
	switch c {
	case Day:
		return "day"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return fmt.Sprintf("Cadence(%d)", int(c))
}

// ParseCadence resolves a CLI/config name to a Cadence.
func ParseCadence(s string) (Cadence, error) {
	switch s {
	case "day":
		return Day, nil
	case "month":
		return Month, nil
	case "year":
		return Year, nil
	}
	return 0, fmt.Errorf("unknown rate cadence %q", s)
}

// YearBasis is the day-count divisor used for annualization and accrual.
type YearBasis int

const (
	Basis360 YearBasis = 360
	Basis365 YearBasis = 365
)

// ParseYearBasis validates a numeric basis value.
func ParseYearBasis(n int) (YearBasis, error) {
	switch n {
	case 360:
		return Basis360, nil
	case 365:
		return Basis365, nil
	}
	return 0, fmt.Errorf("year basis must be 360 or 365, got %d", n)
}

// Annualize converts a percentage rate quoted at the given cadence to an
// annual percentage rate. Day rates scale by the year basis, month rates by
// twelve.
func Annualize(rate decimal.Decimal, cadence Cadence, basis YearBasis) decimal.Decimal {
	switch cadence {
	case Day:
		return rate.Mul(decimal.NewFromInt(int64(basis)))
	case Month:
		return rate.Mul(decimal.NewFromInt(12))
	case Year:
		return rate
	}
	return rate
}

// Simple computes simple interest on amount at the given percentage rate
// between start and end, rounded to 2 decimal places half away from zero.
// The day count is the raw calendar gap (end - start), not the year/month
// decomposition. A reversed range, non-positive amount or non-positive rate
// yields zero.
func Simple(amount, rate decimal.Decimal, cadence Cadence, start, end types.Date, basis YearBasis) decimal.Decimal {
	if start.After(end) || amount.Sign() <= 0 || rate.Sign() <= 0 {
		return decimal.Zero
	}

	annual := Annualize(rate, cadence, basis)
	days := start.DaysUntil(end)

	// amount * (annual/100) * (days/basis), as a single division to keep
	// decimal precision.
	raw := amount.
		Mul(annual).
		Mul(decimal.NewFromInt(int64(days))).
		Div(decimal.NewFromInt(int64(basis) * 100))
	return types.RoundMoney(raw)
}
