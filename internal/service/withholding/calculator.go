package withholding

import (
	"github.com/shopspring/decimal"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/withholding"
)

// payeBracket maps an annualized income ceiling to its marginal rate.
// Brackets follow the SARS individual tax tables; the last bracket is
// open-ended.
type payeBracket struct {
	ceiling decimal.Decimal
	rate    decimal.Decimal
}

var payeBrackets = []payeBracket{
	{decimal.NewFromInt(237100), decimal.NewFromFloat(0.18)},
	{decimal.NewFromInt(370500), decimal.NewFromFloat(0.26)},
	{decimal.NewFromInt(512800), decimal.NewFromFloat(0.31)},
	{decimal.NewFromInt(673000), decimal.NewFromFloat(0.36)},
	{decimal.NewFromInt(857900), decimal.NewFromFloat(0.39)},
	{decimal.NewFromInt(1817000), decimal.NewFromFloat(0.41)},
}

var payeTopRate = decimal.NewFromFloat(0.45)

var (
	sdlRate = decimal.NewFromFloat(0.01)
	uifRate = decimal.NewFromFloat(0.01)
)

// Calculator computes statutory withholding amounts for deemed-employee
// contractors. All results are rounded half-up to 2 decimal places.
type Calculator struct {
	uifCapMonthly decimal.Decimal
}

func NewCalculator(uifCapMonthly decimal.Decimal) *Calculator {
	return &Calculator{uifCapMonthly: uifCapMonthly}
}

// Compute returns the withholding amount for a monthly gross under the
// given type.
func (c *Calculator) Compute(wtype withholding.WithholdingType, monthlyGross decimal.Decimal) (decimal.Decimal, error) {
	switch wtype {
	case withholding.WithholdingTypePAYE:
		return c.PAYE(monthlyGross), nil
	case withholding.WithholdingTypeSDL:
		return c.SDL(monthlyGross), nil
	case withholding.WithholdingTypeUIF:
		return c.UIF(monthlyGross), nil
	default:
		return decimal.Zero, withholding.ErrUnsupportedWithholdingType
	}
}

// PAYE annualizes the monthly gross, finds the marginal bracket, and
// applies that bracket's flat rate to the monthly amount.
func (c *Calculator) PAYE(monthlyGross decimal.Decimal) decimal.Decimal {
	annual := monthlyGross.Mul(decimal.NewFromInt(12))

	rate := payeTopRate
	for _, b := range payeBrackets {
		if annual.LessThanOrEqual(b.ceiling) {
			rate = b.rate
			break
		}
	}

	return monthlyGross.Mul(rate).Round(2)
}

// SDL is a flat 1% of gross with no ceiling.
func (c *Calculator) SDL(monthlyGross decimal.Decimal) decimal.Decimal {
	return monthlyGross.Mul(sdlRate).Round(2)
}

// UIF is 1% of gross capped at the configured monthly remuneration
// ceiling.
func (c *Calculator) UIF(monthlyGross decimal.Decimal) decimal.Decimal {
	base := monthlyGross
	if base.GreaterThan(c.uifCapMonthly) {
		base = c.uifCapMonthly
	}
	return base.Mul(uifRate).Round(2)
}
