package interval

import (
	"testing"

	"github.com/coolbeans/lexcalc/pkg/types"
)

func date(y, m, d int) types.Date {
	return types.Date{Year: y, Month: m, Day: d}
}

func TestBetween(t *testing.T) {
	cases := []struct {
		name       string
		start, end types.Date
		want       Interval
	}{
		{"reversed range", date(2024, 5, 1), date(2024, 4, 1), Interval{}},
		{"same day", date(2024, 5, 1), date(2024, 5, 1), Interval{}},
		{"days only", date(2023, 1, 1), date(2023, 1, 31), Interval{0, 0, 30}},
		{"one month", date(2023, 1, 15), date(2023, 2, 15), Interval{0, 1, 0}},
		{"one year", date(2022, 3, 10), date(2023, 3, 10), Interval{1, 0, 0}},
		// Jan 31 + 1 month clamps to Feb 29 in a leap year, which is then a
		// full month step.
		{"month-end clamp", date(2024, 1, 31), date(2024, 3, 1), Interval{0, 1, 1}},
		{"into leap day", date(2023, 1, 31), date(2024, 2, 29), Interval{1, 1, 0}},
		// A Feb 29 start substitutes Feb 28 when the next year is not a leap
		// year.
		{"leap day start", date(2024, 2, 29), date(2025, 2, 28), Interval{1, 0, 0}},
		{"leap day start plus one", date(2024, 2, 29), date(2025, 3, 1), Interval{1, 0, 1}},
		{"multi year", date(2020, 6, 15), date(2024, 9, 18), Interval{4, 3, 3}},
		{"almost a year", date(2023, 3, 10), date(2024, 3, 9), Interval{0, 11, 28}},
	}
	for _, tc := range cases {
		got := Between(tc.start, tc.end)
		if got != tc.want {
			t.Errorf("%s: Between(%s, %s) = %v, want %v",
				tc.name, tc.start, tc.end, got, tc.want)
		}
	}
}

// The residual day count never spans a whole further month: stepping one more
// month from the post-walk position must overshoot the end date.
func TestBetweenNormalized(t *testing.T) {
	cases := []struct {
		start, end types.Date
	}{
		{date(2023, 1, 31), date(2024, 2, 29)},
		{date(2020, 2, 29), date(2024, 2, 28)},
		{date(2021, 12, 31), date(2022, 3, 1)},
	}
	for _, tc := range cases {
		iv := Between(tc.start, tc.end)
		if iv.Months > 11 {
			t.Errorf("Between(%s, %s): months %d not normalized", tc.start, tc.end, iv.Months)
		}
		if iv.Days > 30 {
			t.Errorf("Between(%s, %s): days %d not normalized", tc.start, tc.end, iv.Days)
		}
	}
}

func TestIntervalString(t *testing.T) {
	iv := Interval{Years: 1, Months: 2, Days: 3}
	if got := iv.String(); got != "1y 2m 3d" {
		t.Errorf("String() = %q", got)
	}
	if !(Interval{}).IsZero() {
		t.Error("zero interval not reported as zero")
	}
}
