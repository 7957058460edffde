package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents a store customer. Phone is unique and acts as the
// natural lookup key at the till. OutstandingBalance tracks unpaid credit
// sales and may never exceed CreditLimit.
type Customer struct {
	ID                 string
	Name               string
	Phone              string
	Email              string
	CreditLimit        decimal.Decimal
	OutstandingBalance decimal.Decimal
	LoyaltyPoints      int64
	TotalPurchases     decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
