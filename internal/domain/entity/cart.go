package entity

import "github.com/shopspring/decimal"

// CartItem is one line of a session cart: a product reference and the
// desired quantity. Carts are keyed by user and are not persisted to the
// database until checkout.
type CartItem struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}
