package dto

import "github.com/shopspring/decimal"

// UpdateSettingsRequest body for PUT /api/settings. Nil fields keep their
// current value.
type UpdateSettingsRequest struct {
	StoreName      *string          `json:"store_name,omitempty"`
	Address        *string          `json:"address,omitempty"`
	Phone          *string          `json:"phone,omitempty"`
	CurrencySymbol *string          `json:"currency_symbol,omitempty"`
	TaxRate        *decimal.Decimal `json:"tax_rate,omitempty"`
	DarkMode       *bool            `json:"dark_mode,omitempty"`
}

// SettingsResponse the caller's settings (defaults when never saved).
type SettingsResponse struct {
	StoreName      string          `json:"store_name"`
	Address        string          `json:"address,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	CurrencySymbol string          `json:"currency_symbol"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	DarkMode       bool            `json:"dark_mode"`
}
