package dto

import "github.com/shopspring/decimal"

// CartItemRequest body for POST/PUT /api/cart/items.
type CartItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CartLineResponse one reconciled cart line. Available is the stock left
// after subtracting the cart quantity, so the client can cap its quantity
// stepper without another catalog call.
type CartLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"` // after product discount
	Subtotal    decimal.Decimal `json:"subtotal"`
	Available   decimal.Decimal `json:"available"`
}

// CartResponse the reconciled cart. Adjusted is true when lines were
// dropped or clamped against the live catalog.
type CartResponse struct {
	Items    []CartLineResponse `json:"items"`
	Subtotal decimal.Decimal    `json:"subtotal"`
	Adjusted bool               `json:"adjusted"`
}
