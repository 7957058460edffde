package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/skumaran/petti-kadai-api/internal/domain/sales"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func TestEffectiveUnitPrice_AppliesDiscount(t *testing.T) {
	got := sales.EffectiveUnitPrice(d("200"), d("10"))
	assert.True(t, d("180").Equal(got), "10%% off 200 should be 180, got %s", got)
}

func TestEffectiveUnitPrice_ClampsOutOfRangeDiscount(t *testing.T) {
	assert.True(t, d("200").Equal(sales.EffectiveUnitPrice(d("200"), d("-5"))),
		"negative discount must be treated as zero")
	assert.True(t, decimal.Zero.Equal(sales.EffectiveUnitPrice(d("200"), d("150"))),
		"discount above 100%% must clamp to free")
}

func TestComputeLine_ProfitAgainstCost(t *testing.T) {
	// 3 x 50 at 10% off, cost 30: unit 45, subtotal 135, profit 45.
	l := sales.ComputeLine(d("50"), d("30"), d("10"), d("3"))

	assert.True(t, d("45").Equal(l.UnitPrice))
	assert.True(t, d("135").Equal(l.Subtotal))
	assert.True(t, d("15").Equal(l.Discount), "discount amount is 5 per unit x 3")
	assert.True(t, d("45").Equal(l.Profit))
}

func TestComputeLine_NegativeProfitWhenSoldBelowCost(t *testing.T) {
	l := sales.ComputeLine(d("100"), d("90"), d("20"), d("1"))
	assert.True(t, l.Profit.IsNegative(), "20%% off 100 with cost 90 sells below cost")
}

func TestComputeSale_TaxOnDiscountedSubtotal(t *testing.T) {
	lines := []sales.LineTotals{
		sales.ComputeLine(d("100"), d("60"), d("0"), d("2")),  // subtotal 200, profit 80
		sales.ComputeLine(d("50"), d("30"), d("10"), d("4")),  // subtotal 180, profit 60
	}
	totals := sales.ComputeSale(lines, d("5"))

	assert.True(t, d("380").Equal(totals.Subtotal))
	assert.True(t, d("20").Equal(totals.DiscountTotal))
	assert.True(t, d("19").Equal(totals.TaxTotal), "5%% of 380")
	assert.True(t, d("399").Equal(totals.TotalAmount))
	assert.True(t, d("140").Equal(totals.TotalProfit))
}

func TestComputeSale_RoundsToTwoDecimals(t *testing.T) {
	// 99.99 at 18% tax: exact tax is 17.9982, stored columns hold 2 decimals.
	totals := sales.ComputeSale([]sales.LineTotals{
		sales.ComputeLine(d("99.99"), d("60"), d("0"), d("1")),
	}, d("18"))

	assert.True(t, d("99.99").Equal(totals.Subtotal))
	assert.True(t, d("18.00").Equal(totals.TaxTotal), "tax 17.9982 rounds to 18.00, got %s", totals.TaxTotal)
	assert.True(t, d("117.99").Equal(totals.TotalAmount), "total is rounded subtotal plus rounded tax, got %s", totals.TotalAmount)

	// Fractional quantities round the subtotal too: 0.335 kg at 99.99/kg.
	totals = sales.ComputeSale([]sales.LineTotals{
		sales.ComputeLine(d("99.99"), d("60"), d("0"), d("0.335")),
	}, decimal.Zero)
	assert.True(t, d("33.50").Equal(totals.Subtotal), "33.49665 rounds to 33.50, got %s", totals.Subtotal)
	assert.True(t, totals.Subtotal.Equal(totals.TotalAmount))
}

func TestComputeSale_ZeroTax(t *testing.T) {
	totals := sales.ComputeSale([]sales.LineTotals{
		sales.ComputeLine(d("10"), d("6"), d("0"), d("1")),
	}, decimal.Zero)

	assert.True(t, totals.TaxTotal.IsZero())
	assert.True(t, totals.Subtotal.Equal(totals.TotalAmount))
}

func TestLoyaltyPoints(t *testing.T) {
	cases := []struct {
		total string
		want  int64
	}{
		{"0", 0},
		{"99.99", 0},
		{"100", 1},
		{"1250.50", 12},
		{"-50", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, sales.LoyaltyPoints(d(c.total)), "total %s", c.total)
	}
}
