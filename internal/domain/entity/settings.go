package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the per-user preference row: store identity printed on
// receipts plus the tax rate applied at checkout.
type Settings struct {
	UserID         string
	StoreName      string
	Address        string
	Phone          string
	CurrencySymbol string
	TaxRate        decimal.Decimal // percent 0..100
	DarkMode       bool
	UpdatedAt      time.Time
}

// DefaultSettings returns the settings used before the user saves their own.
func DefaultSettings(userID string) *Settings {
	return &Settings{
		UserID:         userID,
		StoreName:      "Petti Kadai",
		CurrencySymbol: "₹",
		TaxRate:        decimal.Zero,
	}
}
