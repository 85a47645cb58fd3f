package fee

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ApplicationType identifies a special-procedure application and its fee rule.
type ApplicationType int

const (
	// PublicNotice is an application for public notice of lost instruments.
	PublicNotice ApplicationType = iota
	// SetAsideArbitration is an application to set aside an arbitral award
	// or determine the validity of an arbitration agreement.
	SetAsideArbitration
	// Bankruptcy is a bankruptcy petition.
	Bankruptcy
	// PaymentOrder is an application for a payment order.
	PaymentOrder
)

var applicationTypeNames = map[ApplicationType]string{
	PublicNotice:        "public-notice",
	SetAsideArbitration: "set-aside-arbitration",
	Bankruptcy:          "bankruptcy",
	PaymentOrder:        "payment-order",
}

// String returns the stable CLI/config name of the application type.
func (a ApplicationType) String() string {
	if name, ok := applicationTypeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("ApplicationType(%d)", int(a))
}

// ParseApplicationType resolves a CLI/config name to an ApplicationType.
func ParseApplicationType(s string) (ApplicationType, error) {
	for at, name := range applicationTypeNames {
		if name == s {
			return at, nil
		}
	}
	return 0, fmt.Errorf("unknown application type %q", s)
}

// bankruptcyCap is the statutory ceiling on a bankruptcy petition fee.
var bankruptcyCap = dec("300000")

// ApplicationFee returns the fee for a special-procedure application.
// Bankruptcy and payment-order fees derive from the property schedule over
// the amount involved; the others are flat.
func ApplicationFee(appType ApplicationType, amount decimal.Decimal) decimal.Decimal {
	switch appType {
	case PublicNotice:
		return dec("100")
	case SetAsideArbitration:
		return dec("400")
	case Bankruptcy:
		fee := PropertyCaseFee(amount).Div(two)
		if fee.GreaterThan(bankruptcyCap) {
			return bankruptcyCap
		}
		return fee
	case PaymentOrder:
		return PropertyCaseFee(amount).Div(three)
	}
	return decimal.Zero
}
