package fee

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CaseType identifies which acceptance fee schedule applies to a case.
// The enumeration is closed; dispatch over it is an exhaustive switch so
// that adding or removing a case type is a compile-time-visible change.
type CaseType int

const (
	// GeneralProperty is an ordinary property dispute priced by PropertyCaseFee.
	GeneralProperty CaseType = iota
	// DivorceNoProperty is a divorce case, with a property surcharge above 200,000.
	DivorceNoProperty
	// PersonalityRight covers infringement of personality rights.
	PersonalityRight
	// OtherNonProperty covers other non-property civil cases.
	OtherNonProperty
	// LaborDispute covers labor and personnel disputes.
	LaborDispute
	// AdminTrademarkPatentMaritime covers trademark, patent and maritime
	// administrative cases.
	AdminTrademarkPatentMaritime
	// AdminOther covers all other administrative cases.
	AdminOther
	// IntellectualProperty covers IP civil cases: a 750 flat fee when no
	// amount is in dispute, otherwise the property schedule.
	IntellectualProperty
)

var caseTypeNames = map[CaseType]string{
	GeneralProperty:              "general-property",
	DivorceNoProperty:            "divorce",
	PersonalityRight:             "personality-right",
	OtherNonProperty:             "other-non-property",
	LaborDispute:                 "labor-dispute",
	AdminTrademarkPatentMaritime: "admin-trademark-patent-maritime",
	AdminOther:                   "admin-other",
	IntellectualProperty:         "intellectual-property",
}

// String returns the stable CLI/config name of the case type.
func (c CaseType) String() string {
	if name, ok := caseTypeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CaseType(%d)", int(c))
}

// ParseCaseType resolves a CLI/config name to a CaseType.
func ParseCaseType(s string) (CaseType, error) {
	for ct, name := range caseTypeNames {
		if name == s {
			return ct, nil
		}
	}
	return 0, fmt.Errorf("unknown case type %q", s)
}

// CaseTypes lists all case types in schedule order.
func CaseTypes() []CaseType {
	return []CaseType{
		GeneralProperty,
		DivorceNoProperty,
		PersonalityRight,
		OtherNonProperty,
		LaborDispute,
		AdminTrademarkPatentMaritime,
		AdminOther,
		IntellectualProperty,
	}
}

// NonPropertyCaseFee returns the acceptance fee for the non-property case
// schedules. Property-schedule case types fall through to zero; use
// AcceptanceFee for full dispatch.
func NonPropertyCaseFee(caseType CaseType, amount decimal.Decimal) decimal.Decimal {
	switch caseType {
	case DivorceNoProperty:
		// 200 base; the property portion above 200,000 adds 0.5%.
		if amount.LessThanOrEqual(dec("200000")) {
			return dec("200")
		}
		return amount.Sub(dec("200000")).Mul(dec("0.005")).Add(dec("200"))
	case PersonalityRight:
		// 100 base; 1% on the slice above 50,000 up to 100,000, then 0.5%.
		switch {
		case amount.LessThanOrEqual(dec("50000")):
			return dec("100")
		case amount.LessThanOrEqual(dec("100000")):
			return amount.Sub(dec("50000")).Mul(dec("0.01")).Add(dec("100"))
		default:
			return amount.Sub(dec("100000")).Mul(dec("0.005")).Add(dec("600"))
		}
	case OtherNonProperty:
		return dec("70")
	case LaborDispute:
		return dec("10")
	case AdminTrademarkPatentMaritime:
		return dec("100")
	case AdminOther:
		return dec("50")
	case GeneralProperty, IntellectualProperty:
		return decimal.Zero
	}
	return decimal.Zero
}

// AcceptanceFee dispatches a case type to its acceptance fee schedule.
// hasAmount distinguishes "no amount in dispute" from a zero amount for the
// schedules that have a no-amount flat fee.
func AcceptanceFee(caseType CaseType, amount decimal.Decimal, hasAmount bool) decimal.Decimal {
	switch caseType {
	case GeneralProperty:
		if !hasAmount {
			return decimal.Zero
		}
		return PropertyCaseFee(amount)
	case IntellectualProperty:
		if !hasAmount || amount.Sign() <= 0 {
			return dec("750")
		}
		return PropertyCaseFee(amount)
	case DivorceNoProperty, PersonalityRight, OtherNonProperty, LaborDispute,
		AdminTrademarkPatentMaritime, AdminOther:
		return NonPropertyCaseFee(caseType, amount)
	}
	return decimal.Zero
}
