package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item with its live stock level.
// Quantity is decremented at checkout inside the sale transaction.
// Products are soft-deleted (IsActive=false) so historical sale items
// keep their foreign key.
type Product struct {
	ID           string
	CategoryID   string // empty = uncategorized
	Name         string
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	Quantity     decimal.Decimal // stock on hand, in Unit
	Unit         string          // pcs, kg, g, l, ml, pack
	ImageURI     string
	IsActive     bool
	Discount     decimal.Decimal // percent 0..100 applied at sale time
	Rating       decimal.Decimal // 0..5, informational
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
