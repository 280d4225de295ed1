package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotals(t *testing.T) {
	items := []LineItem{
		{Amount: decimal.NewFromInt(40000)},
	}
	taxRate := decimal.RequireFromString("0.15")

	subtotal, taxAmount, totalAmount := Totals(items, taxRate)
	assert.Equal(t, "40000.00", subtotal.StringFixed(2))
	assert.Equal(t, "6000.00", taxAmount.StringFixed(2))
	assert.Equal(t, "46000.00", totalAmount.StringFixed(2))
}

func TestTotalsMultipleLines(t *testing.T) {
	items := []LineItem{
		{Amount: decimal.RequireFromString("1234.56")},
		{Amount: decimal.RequireFromString("765.44")},
		{Amount: decimal.RequireFromString("1000.00")},
	}
	taxRate := decimal.RequireFromString("0.15")

	subtotal, taxAmount, totalAmount := Totals(items, taxRate)
	assert.Equal(t, "3000.00", subtotal.StringFixed(2))
	assert.Equal(t, "450.00", taxAmount.StringFixed(2))
	assert.Equal(t, "3450.00", totalAmount.StringFixed(2))
}

func TestTotalsEmpty(t *testing.T) {
	subtotal, taxAmount, totalAmount := Totals(nil, decimal.RequireFromString("0.15"))
	assert.True(t, subtotal.IsZero())
	assert.True(t, taxAmount.IsZero())
	assert.True(t, totalAmount.IsZero())
}

func TestTotalsRoundsTax(t *testing.T) {
	items := []LineItem{
		{Amount: decimal.RequireFromString("99.99")},
	}
	// 99.99 * 0.15 = 14.9985, rounds to 15.00
	_, taxAmount, totalAmount := Totals(items, decimal.RequireFromString("0.15"))
	assert.Equal(t, "15.00", taxAmount.StringFixed(2))
	assert.Equal(t, "114.99", totalAmount.StringFixed(2))
}
