package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundMoney rounds an amount to 2 decimal places, half away from zero.
// This is the single rounding mode used for all displayed currency values.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatMoney renders an amount with exactly two decimal places.
func FormatMoney(d decimal.Decimal) string {
	return RoundMoney(d).StringFixed(2)
}

// ParseAmount parses a user-supplied amount string into a decimal.
// Thousands separators ("," ) are tolerated; an empty string is zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}
