// Package fee implements the statutory litigation fee schedules of the 2007
// measures on court cost payment: case acceptance fees, preservation fees,
// execution fees and application fees. Every function is a total, pure
// function of its decimal inputs; non-positive amounts resolve to the
// schedule's floor value and no function ever returns an error.
package fee

import (
	"github.com/shopspring/decimal"
)

// Bracket is one row of a single-lookup fee table: the fee for an amount a
// falling in this bracket is a*Rate + Offset. Rows are ordered ascending by
// Upper; the first row whose Upper is >= a applies. The final row of a table
// has Open set and no upper bound.
type Bracket struct {
	Upper  decimal.Decimal
	Open   bool
	Rate   decimal.Decimal
	Offset decimal.Decimal
}

// MarginalBand is one band of a marginal accumulation table: only the slice
// of the amount between Floor and Ceiling contributes, at Rate. A band with
// Open set has no ceiling.
type MarginalBand struct {
	Floor   decimal.Decimal
	Ceiling decimal.Decimal
	Open    bool
	Rate    decimal.Decimal
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Acceptance fee table for property cases. Single-bracket lookup: the whole
// amount is priced by the one matching row, not band by band. This is how
// the schedule is published and must not be converted to a marginal table.
var propertyBrackets = []Bracket{
	{Upper: dec("10000"), Rate: dec("0"), Offset: dec("50")},
	{Upper: dec("100000"), Rate: dec("0.025"), Offset: dec("-200")},
	{Upper: dec("200000"), Rate: dec("0.02"), Offset: dec("300")},
	{Upper: dec("500000"), Rate: dec("0.015"), Offset: dec("1300")},
	{Upper: dec("1000000"), Rate: dec("0.01"), Offset: dec("3800")},
	{Upper: dec("2000000"), Rate: dec("0.009"), Offset: dec("4800")},
	{Upper: dec("5000000"), Rate: dec("0.008"), Offset: dec("6800")},
	{Upper: dec("10000000"), Rate: dec("0.007"), Offset: dec("11800")},
	{Upper: dec("20000000"), Rate: dec("0.006"), Offset: dec("21800")},
	{Open: true, Rate: dec("0.005"), Offset: dec("41800")},
}

// Execution fee bands. Unlike propertyBrackets this is a true marginal
// schedule: each band prices only its own slice of the amount.
var executionBands = []MarginalBand{
	{Floor: dec("10000"), Ceiling: dec("500000"), Rate: dec("0.015")},
	{Floor: dec("500000"), Ceiling: dec("5000000"), Rate: dec("0.01")},
	{Floor: dec("5000000"), Ceiling: dec("10000000"), Rate: dec("0.005")},
	{Floor: dec("10000000"), Open: true, Rate: dec("0.001")},
}

var (
	executionBaseFee  = dec("50")
	preservationFloor = dec("30")
	preservationCap   = dec("5000")

	two   = dec("2")
	three = dec("3")
)

// lookup prices an amount against a single-bracket table.
func lookup(table []Bracket, amount decimal.Decimal) decimal.Decimal {
	for _, b := range table {
		if b.Open || amount.LessThanOrEqual(b.Upper) {
			return amount.Mul(b.Rate).Add(b.Offset)
		}
	}
	return decimal.Zero
}

// accumulate sums the marginal contributions of each band covering amount.
func accumulate(base decimal.Decimal, bands []MarginalBand, amount decimal.Decimal) decimal.Decimal {
	fee := base
	for _, band := range bands {
		if amount.LessThanOrEqual(band.Floor) {
			break
		}
		top := amount
		if !band.Open && top.GreaterThan(band.Ceiling) {
			top = band.Ceiling
		}
		fee = fee.Add(top.Sub(band.Floor).Mul(band.Rate))
	}
	return fee
}

// PropertyCaseFee returns the acceptance fee for a property case over the
// disputed amount. A non-positive amount yields zero.
func PropertyCaseFee(amount decimal.Decimal) decimal.Decimal {
	if amount.Sign() <= 0 {
		return decimal.Zero
	}
	return lookup(propertyBrackets, amount)
}

// PreservationFee returns the fee for an asset preservation application.
// Amounts of 1,000 or less (including no amount) pay the 30 floor; the fee
// is hard-capped at 5,000.
func PreservationFee(amount decimal.Decimal) decimal.Decimal {
	switch {
	case amount.LessThanOrEqual(dec("1000")):
		return preservationFloor
	case amount.LessThanOrEqual(dec("100000")):
		return amount.Mul(dec("0.01")).Add(dec("20"))
	default:
		fee := amount.Mul(dec("0.005")).Add(dec("520"))
		if fee.GreaterThan(preservationCap) {
			return preservationCap
		}
		return fee
	}
}

// ExecutionFee returns the fee for enforcing a judgment, accumulated across
// marginal bands over the executed amount. No amount, or 10,000 and below,
// pays the flat 50 base.
func ExecutionFee(amount decimal.Decimal) decimal.Decimal {
	if amount.LessThanOrEqual(dec("10000")) {
		return executionBaseFee
	}
	return accumulate(executionBaseFee, executionBands, amount)
}

// HalvedFee returns the reduced figure owed when a case is concluded under
// the summary procedure or by mediation: half the acceptance fee.
func HalvedFee(acceptance decimal.Decimal) decimal.Decimal {
	return acceptance.Div(two)
}
