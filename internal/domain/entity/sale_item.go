package entity

import "github.com/shopspring/decimal"

// SaleItem represents one line of a sale. ProductName and prices are
// denormalized so receipts survive later product edits.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal // effective price after discount
	CostPrice   decimal.Decimal
	Discount    decimal.Decimal // percent applied at sale time
	Subtotal    decimal.Decimal // UnitPrice * Quantity
	Profit      decimal.Decimal // (UnitPrice - CostPrice) * Quantity
}
