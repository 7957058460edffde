package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutItemRequest one line of an explicit checkout body.
type CheckoutItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CheckoutRequest body for POST /api/sales. When Items is empty the
// caller's session cart is used (and cleared on success).
type CheckoutRequest struct {
	CustomerID  string                `json:"customer_id,omitempty"`
	PaymentType string                `json:"payment_type"`
	Items       []CheckoutItemRequest `json:"items,omitempty"`
}

// SaleItemResponse one sale line in responses.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Profit      decimal.Decimal `json:"profit"`
}

// SaleResponse sale with detail for POST /api/sales and GET /api/sales/:id.
type SaleResponse struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id"`
	CustomerID    string             `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name,omitempty"`
	SoldAt        time.Time          `json:"sold_at"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	DiscountTotal decimal.Decimal    `json:"discount_total"`
	TaxTotal      decimal.Decimal    `json:"tax_total"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	TotalProfit   decimal.Decimal    `json:"total_profit"`
	PaymentType   string             `json:"payment_type"`
	Status        string             `json:"status"`
	Items         []SaleItemResponse `json:"items"`
}

// SaleListResponse paginated sale listing (headers only).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ReceiptResponse metadata of a generated receipt artifact.
type ReceiptResponse struct {
	ID            string    `json:"id"`
	SaleID        string    `json:"sale_id"`
	ReceiptNumber string    `json:"receipt_number"`
	Format        string    `json:"format"`
	GeneratedAt   time.Time `json:"generated_at"`
}
