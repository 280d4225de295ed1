package invoice

import (
	"github.com/shopspring/decimal"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contract"
)

// StandardDayHours converts logged hours into billable days for daily
// rates. An 8-hour day is a fixed policy constant, not configuration.
var StandardDayHours = decimal.NewFromInt(8)

// LineQuantityPrice derives the quantity and unit price for an invoice
// line from an engagement's rate type. Hourly bills the hours as-is,
// daily divides by the standard day, fixed always bills one unit.
func LineQuantityPrice(rateType contract.RateType, rate, hours decimal.Decimal) (quantity, unitPrice decimal.Decimal) {
	switch rateType {
	case contract.RateTypeDaily:
		return hours.Div(StandardDayHours), rate
	case contract.RateTypeFixed:
		return decimal.NewFromInt(1), rate
	default:
		return hours, rate
	}
}

// Amount computes the billable amount for the rate type, rounded to 2
// decimal places.
func Amount(rateType contract.RateType, rate, hours decimal.Decimal) decimal.Decimal {
	quantity, unitPrice := LineQuantityPrice(rateType, rate, hours)
	return quantity.Mul(unitPrice).Round(2)
}
