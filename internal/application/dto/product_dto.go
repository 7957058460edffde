package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body for POST /api/products.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	CategoryID   string          `json:"category_id,omitempty"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit,omitempty"`
	ImageURI     string          `json:"image_uri,omitempty"`
	Discount     decimal.Decimal `json:"discount,omitempty"`
}

// UpdateProductRequest body for PUT /api/products/:id. Nil fields are left
// unchanged.
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	CategoryID   *string          `json:"category_id,omitempty"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	SellingPrice *decimal.Decimal `json:"selling_price,omitempty"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	Unit         *string          `json:"unit,omitempty"`
	ImageURI     *string          `json:"image_uri,omitempty"`
	Discount     *decimal.Decimal `json:"discount,omitempty"`
	Rating       *decimal.Decimal `json:"rating,omitempty"`
}

// ProductResponse product in responses.
type ProductResponse struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"category_id,omitempty"`
	Name         string          `json:"name"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	ImageURI     string          `json:"image_uri,omitempty"`
	IsActive     bool            `json:"is_active"`
	Discount     decimal.Decimal `json:"discount"`
	Rating       decimal.Decimal `json:"rating"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse paginated product listing.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
