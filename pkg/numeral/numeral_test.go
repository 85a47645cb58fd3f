package numeral

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestToCapital(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"0", "零元整"},
		{"0.5", "零元伍角"},
		{"0.05", "零元伍分"},
		{"0.55", "零元伍角伍分"},
		{"1", "壹元整"},
		{"10", "壹拾元整"},
		{"105", "壹佰零伍元整"},
		// Consecutive zeros collapse to a single 零.
		{"1005", "壹仟零伍元整"},
		{"1050", "壹仟零伍拾元整"},
		// Clean group boundaries carry no spurious 零.
		{"10000", "壹万元整"},
		{"100000000", "壹亿元整"},
		{"1000000", "壹佰万元整"},
		{"1000000.5", "壹佰万元伍角"},
		// An empty middle group is a single 零 gap.
		{"100010000", "壹亿零壹万元整"},
		// The gap 零 never stacks on a group's own opening 零.
		{"100000500", "壹亿零伍佰元整"},
		{"100003000", "壹亿零叁仟元整"},
		{"20304.05", "贰万零叁佰零肆元伍分"},
		{"123456789.01", "壹亿贰仟叁佰肆拾伍万陆仟柒佰捌拾玖元壹分"},
		{"9999.99", "玖仟玖佰玖拾玖元玖角玖分"},
		{"-123.45", "负壹佰贰拾叁元肆角伍分"},
		// A gap formed by a higher group's trailing zeros is not marked;
		// this matches the published schedule tooling this replaces.
		{"10001000", "壹仟万壹仟元整"},
	}
	for _, tc := range cases {
		if got := ToCapital(dec(tc.amount)); got != tc.want {
			t.Errorf("ToCapital(%s) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

// Input is rounded to fen, half away from zero, before formatting.
func TestToCapitalRounding(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"1.005", "壹元壹分"},
		{"1.004", "壹元整"},
		{"0.999", "壹元整"},
	}
	for _, tc := range cases {
		if got := ToCapital(dec(tc.amount)); got != tc.want {
			t.Errorf("ToCapital(%s) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestToCapitalLargeGroups(t *testing.T) {
	// The 兆 group: 10^12.
	if got := ToCapital(dec("1000000000000")); got != "壹兆元整" {
		t.Errorf("ToCapital(10^12) = %q, want 壹兆元整", got)
	}
}
