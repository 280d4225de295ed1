package withholding

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/withholding"
)

func newTestCalculator() *Calculator {
	return NewCalculator(decimal.NewFromInt(17712))
}

func TestPAYEBrackets(t *testing.T) {
	calc := newTestCalculator()

	cases := []struct {
		name         string
		monthlyGross string
		want         string
	}{
		// 25000/month annualizes to 300000, which sits in the 26% bracket
		{"mid bracket", "25000", "6500.00"},
		{"lowest bracket", "15000", "2700.00"},
		{"second bracket ceiling", "30875", "8027.50"},
		{"31 percent bracket", "40000", "12400.00"},
		{"top bracket", "200000", "90000.00"},
		{"zero gross", "0", "0.00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gross := decimal.RequireFromString(c.monthlyGross)
			got := calc.PAYE(gross)
			assert.Equal(t, c.want, got.StringFixed(2))
		})
	}
}

func TestSDLFlatRate(t *testing.T) {
	calc := newTestCalculator()

	got := calc.SDL(decimal.NewFromInt(25000))
	assert.Equal(t, "250.00", got.StringFixed(2))

	// SDL has no ceiling
	got = calc.SDL(decimal.NewFromInt(500000))
	assert.Equal(t, "5000.00", got.StringFixed(2))
}

func TestUIFCapped(t *testing.T) {
	calc := newTestCalculator()

	// Below the cap: plain 1%
	got := calc.UIF(decimal.NewFromInt(10000))
	assert.Equal(t, "100.00", got.StringFixed(2))

	// Above the cap: 1% of the ceiling, not the gross
	got = calc.UIF(decimal.NewFromInt(20000))
	assert.Equal(t, "177.12", got.StringFixed(2))

	// Exactly at the cap
	got = calc.UIF(decimal.NewFromInt(17712))
	assert.Equal(t, "177.12", got.StringFixed(2))
}

func TestComputeDispatch(t *testing.T) {
	calc := newTestCalculator()
	gross := decimal.NewFromInt(25000)

	paye, err := calc.Compute(withholding.WithholdingTypePAYE, gross)
	require.NoError(t, err)
	assert.Equal(t, "6500.00", paye.StringFixed(2))

	sdl, err := calc.Compute(withholding.WithholdingTypeSDL, gross)
	require.NoError(t, err)
	assert.Equal(t, "250.00", sdl.StringFixed(2))

	uif, err := calc.Compute(withholding.WithholdingTypeUIF, gross)
	require.NoError(t, err)
	assert.Equal(t, "177.12", uif.StringFixed(2))
}

func TestComputeUnsupportedType(t *testing.T) {
	calc := newTestCalculator()

	_, err := calc.Compute(withholding.WithholdingType("vat"), decimal.NewFromInt(1000))
	assert.ErrorIs(t, err, withholding.ErrUnsupportedWithholdingType)
}

func TestNetAfterPAYE(t *testing.T) {
	calc := newTestCalculator()
	gross := decimal.NewFromInt(25000)

	withheld := calc.PAYE(gross)
	net := gross.Sub(withheld)
	assert.Equal(t, "18500.00", net.StringFixed(2))
}
