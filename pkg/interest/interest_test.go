package interest

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/coolbeans/lexcalc/pkg/types"
)

func date(y, m, d int) types.Date {
	return types.Date{Year: y, Month: m, Day: d}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAnnualize(t *testing.T) {
	cases := []struct {
		rate    string
		cadence Cadence
		basis   YearBasis
		want    string
	}{
		{"0.05", Day, Basis365, "18.25"},
		{"0.05", Day, Basis360, "18"},
		{"1", Month, Basis365, "12"},
		{"1", Month, Basis360, "12"}, // basis only matters for day rates
		{"4.35", Year, Basis365, "4.35"},
	}
	for _, tc := range cases {
		got := Annualize(dec(tc.rate), tc.cadence, tc.basis)
		if !got.Equal(dec(tc.want)) {
			t.Errorf("Annualize(%s, %s, %d) = %s, want %s",
				tc.rate, tc.cadence, tc.basis, got, tc.want)
		}
	}
}

func TestSimple(t *testing.T) {
	cases := []struct {
		name       string
		amount     string
		rate       string
		cadence    Cadence
		start, end types.Date
		basis      YearBasis
		want       string
	}{
		{
			// 1%/month over 182 days: 100000 * 0.12 * 182/365 = 5983.5616...
			name:   "monthly rate over half a year",
			amount: "100000", rate: "1", cadence: Month,
			start: date(2024, 1, 1), end: date(2024, 7, 1),
			basis: Basis365, want: "5983.56",
		},
		{
			// 0.05%/day over 100 days on a 360 basis: annual 18%,
			// 50000 * 0.18 * 100/360 = 2500.
			name:   "daily rate on 360 basis",
			amount: "50000", rate: "0.05", cadence: Day,
			start: date(2024, 1, 1), end: date(2024, 4, 10),
			basis: Basis360, want: "2500",
		},
		{
			// LPR-style annual rate over a full non-leap year.
			name:   "annual rate full year",
			amount: "200000", rate: "3.45", cadence: Year,
			start: date(2023, 1, 1), end: date(2024, 1, 1),
			basis: Basis365, want: "6900",
		},
		{
			name:   "reversed range",
			amount: "100000", rate: "1", cadence: Month,
			start: date(2024, 7, 1), end: date(2024, 1, 1),
			basis: Basis365, want: "0",
		},
		{
			name:   "zero amount",
			amount: "0", rate: "1", cadence: Month,
			start: date(2024, 1, 1), end: date(2024, 7, 1),
			basis: Basis365, want: "0",
		},
		{
			name:   "negative rate",
			amount: "100000", rate: "-1", cadence: Month,
			start: date(2024, 1, 1), end: date(2024, 7, 1),
			basis: Basis365, want: "0",
		},
		{
			name:   "same day",
			amount: "100000", rate: "1", cadence: Month,
			start: date(2024, 1, 1), end: date(2024, 1, 1),
			basis: Basis365, want: "0",
		},
	}
	for _, tc := range cases {
		got := Simple(dec(tc.amount), dec(tc.rate), tc.cadence, tc.start, tc.end, tc.basis)
		if !got.Equal(dec(tc.want)) {
			t.Errorf("%s: Simple() = %s, want %s", tc.name, got, tc.want)
		}
	}
}

// The rounding mode is pinned: half away from zero at 2 decimal places.
// 100 * 1.8% * 1/360 = 0.005 exactly; half-up gives 0.01 where banker's
// rounding would give 0.00.
func TestSimpleRoundingHalfUp(t *testing.T) {
	got := Simple(dec("100"), dec("1.8"), Year, date(2024, 1, 1), date(2024, 1, 2), Basis360)
	if !got.Equal(dec("0.01")) {
		t.Errorf("Simple() = %s, want 0.01", got)
	}
}
