// Package sales holds the pure pricing logic shared by the cart and the
// checkout transaction: discounted unit prices, per-line profit and the
// sale-level totals.
package sales

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// EffectiveUnitPrice applies the product discount percentage to the selling
// price. Discount outside [0,100] is clamped.
func EffectiveUnitPrice(sellingPrice, discountPercent decimal.Decimal) decimal.Decimal {
	d := discountPercent
	if d.LessThan(decimal.Zero) {
		d = decimal.Zero
	}
	if d.GreaterThan(hundred) {
		d = hundred
	}
	return sellingPrice.Mul(hundred.Sub(d)).Div(hundred)
}

// LineTotals is the priced result of one cart line.
type LineTotals struct {
	UnitPrice decimal.Decimal // after discount
	Discount  decimal.Decimal // amount deducted (not percent)
	Subtotal  decimal.Decimal
	Profit    decimal.Decimal
}

// ComputeLine prices a single line from catalog data.
// Profit is measured against cost price and may be negative when a
// discount sells below cost.
func ComputeLine(sellingPrice, costPrice, discountPercent, quantity decimal.Decimal) LineTotals {
	unit := EffectiveUnitPrice(sellingPrice, discountPercent)
	subtotal := unit.Mul(quantity)
	return LineTotals{
		UnitPrice: unit,
		Discount:  sellingPrice.Sub(unit).Mul(quantity),
		Subtotal:  subtotal,
		Profit:    unit.Sub(costPrice).Mul(quantity),
	}
}

// SaleTotals aggregates line totals into the amounts stored on the sale
// header. TaxRatePercent comes from the seller's settings and applies to the
// discounted subtotal.
type SaleTotals struct {
	Subtotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	TaxTotal      decimal.Decimal
	TotalAmount   decimal.Decimal
	TotalProfit   decimal.Decimal
}

// ComputeSale sums the lines, applies tax and rounds the sale-level amounts
// to 2 decimal places. Lines are summed exact; rounding happens once here so
// the response matches the NUMERIC(14,2) columns the sale is stored in and
// credit math runs on the stored amount.
func ComputeSale(lines []LineTotals, taxRatePercent decimal.Decimal) SaleTotals {
	var t SaleTotals
	for _, l := range lines {
		t.Subtotal = t.Subtotal.Add(l.Subtotal)
		t.DiscountTotal = t.DiscountTotal.Add(l.Discount)
		t.TotalProfit = t.TotalProfit.Add(l.Profit)
	}
	rate := taxRatePercent
	if rate.LessThan(decimal.Zero) {
		rate = decimal.Zero
	}
	tax := t.Subtotal.Mul(rate).Div(hundred)

	t.Subtotal = t.Subtotal.Round(2)
	t.DiscountTotal = t.DiscountTotal.Round(2)
	t.TotalProfit = t.TotalProfit.Round(2)
	t.TaxTotal = tax.Round(2)
	t.TotalAmount = t.Subtotal.Add(t.TaxTotal)
	return t
}

// LoyaltyPoints returns the points earned for a sale total: one point per
// 100 currency units spent, rounded down.
func LoyaltyPoints(totalAmount decimal.Decimal) int64 {
	if totalAmount.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return totalAmount.Div(hundred).Floor().IntPart()
}
