package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contract"
)

func TestLineQuantityPrice(t *testing.T) {
	rate := decimal.NewFromInt(1000)

	t.Run("hourly bills hours as-is", func(t *testing.T) {
		quantity, unitPrice := LineQuantityPrice(contract.RateTypeHourly, rate, decimal.NewFromInt(40))
		assert.Equal(t, "40.00", quantity.StringFixed(2))
		assert.Equal(t, "1000.00", unitPrice.StringFixed(2))
	})

	t.Run("daily divides by standard day", func(t *testing.T) {
		quantity, unitPrice := LineQuantityPrice(contract.RateTypeDaily, rate, decimal.NewFromInt(16))
		assert.Equal(t, "2.00", quantity.StringFixed(2))
		assert.Equal(t, "1000.00", unitPrice.StringFixed(2))
	})

	t.Run("partial day yields fractional quantity", func(t *testing.T) {
		quantity, _ := LineQuantityPrice(contract.RateTypeDaily, rate, decimal.NewFromInt(12))
		assert.Equal(t, "1.50", quantity.StringFixed(2))
	})

	t.Run("fixed always bills one unit", func(t *testing.T) {
		quantity, unitPrice := LineQuantityPrice(contract.RateTypeFixed, rate, decimal.NewFromInt(93))
		assert.Equal(t, "1.00", quantity.StringFixed(2))
		assert.Equal(t, "1000.00", unitPrice.StringFixed(2))
	})
}

func TestAmount(t *testing.T) {
	cases := []struct {
		name     string
		rateType contract.RateType
		rate     string
		hours    string
		want     string
	}{
		{"hourly 40h at 1000", contract.RateTypeHourly, "1000", "40", "40000.00"},
		{"hourly fractional", contract.RateTypeHourly, "850.50", "7.5", "6378.75"},
		{"daily two days", contract.RateTypeDaily, "8000", "16", "16000.00"},
		{"daily half day", contract.RateTypeDaily, "8000", "4", "4000.00"},
		{"fixed ignores hours", contract.RateTypeFixed, "120000", "200", "120000.00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Amount(c.rateType, decimal.RequireFromString(c.rate), decimal.RequireFromString(c.hours))
			assert.Equal(t, c.want, got.StringFixed(2))
		})
	}
}
