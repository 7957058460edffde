package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment types accepted at checkout. Credit sales require a customer and
// are charged against their credit limit.
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentUPI    = "upi"
	PaymentCredit = "credit"
)

// Sale statuses.
const (
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
)

// Sale represents the header of a committed sale. Header, items, stock
// decrements and customer balance updates are written in one transaction.
type Sale struct {
	ID            string
	UserID        string
	CustomerID    string // empty = walk-in sale
	SoldAt        time.Time
	Subtotal      decimal.Decimal // sum of line subtotals before tax
	DiscountTotal decimal.Decimal // sum of per-line discounts already deducted
	TaxTotal      decimal.Decimal
	TotalAmount   decimal.Decimal // Subtotal + TaxTotal
	TotalProfit   decimal.Decimal
	PaymentType   string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidPaymentType reports whether s is one of the accepted payment types.
func ValidPaymentType(s string) bool {
	switch s {
	case PaymentCash, PaymentCard, PaymentUPI, PaymentCredit:
		return true
	}
	return false
}
