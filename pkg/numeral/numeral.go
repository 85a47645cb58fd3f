// Package numeral renders monetary amounts as traditional Chinese
// capitalized currency text (大写金额), the fraud-resistant numeral form
// required on legal and financial documents.
package numeral

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	digits     = []string{"零", "壹", "贰", "叁", "肆", "伍", "陆", "柒", "捌", "玖"}
	units      = []string{"", "拾", "佰", "仟"}
	groupUnits = []string{"", "万", "亿", "兆"}
)

// ToCapital converts an amount to its capitalized currency string. The
// amount is first rounded to fen (2 decimal places, half away from zero).
// Negative amounts are prefixed with 负. Zero renders as 零元整. Amounts up
// to 9999兆 (just under 10^16 yuan) are supported.
func ToCapital(amount decimal.Decimal) string {
	if amount.Sign() < 0 {
		return "负" + ToCapital(amount.Neg())
	}

	// Total fen, so the integer and fractional parts share one rounding.
	totalFen := amount.Round(2).Shift(2).IntPart()
	intPart := totalFen / 100
	decPart := totalFen % 100

	var result string
	if intPart == 0 {
		result = "零"
	} else {
		result = formatInteger(intPart)
	}

	result += "元"

	if decPart == 0 {
		return result + "整"
	}
	jiao := decPart / 10
	fen := decPart % 10
	if jiao != 0 {
		result += digits[jiao] + "角"
	}
	if fen != 0 {
		result += digits[fen] + "分"
	}
	return result
}

// formatInteger renders a positive integer yuan amount, grouping by 10,000
// and collapsing runs of zeros to a single 零. A 零 is emitted for a zero
// gap between nonzero digits or groups, but never at a clean group boundary
// and never at the head of the whole numeral.
func formatInteger(n int64) string {
	var result string
	group := 0
	zeroPending := false

	for n > 0 {
		part := n % 10000
		if part == 0 {
			// A whole empty group: one 零 marks the gap, unless nothing
			// lower has been emitted yet or the lower digits already
			// open with a 零 of their own.
			if !zeroPending && result != "" && !strings.HasPrefix(result, "零") {
				result = "零" + result
			}
			zeroPending = true
		} else {
			result = formatGroup(part) + groupUnits[group] + result
			zeroPending = false
		}
		n /= 10000
		group++
	}

	// A leading zero inside the topmost group (e.g. 0100万) is not a gap.
	if result != "零" {
		result = strings.TrimPrefix(result, "零")
	}
	return result
}

// formatGroup renders one 0-9999 group with 拾佰仟 digit units. Zero digits
// between nonzero digits collapse to a single 零; the marker is kept at the
// group head so that gaps across group boundaries survive (壹仟零壹拾万).
func formatGroup(part int64) string {
	var s string
	for i := 0; i < 4; i++ {
		digit := part % 10
		if digit != 0 {
			s = digits[digit] + units[i] + s
		} else if s != "" && !strings.HasPrefix(s, "零") {
			s = "零" + s
		}
		part /= 10
	}
	return s
}
