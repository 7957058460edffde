package repository

import (
	"github.com/shopspring/decimal"

	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
)

// ProductFilter narrows List results. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID      string
	Search          string // case-insensitive substring of the name
	IncludeInactive bool
	Limit           int
	Offset          int
}

// ProductRepository defines the persistence port for Product.
// GetForUpdate locks the row and is only usable inside a transaction.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetActiveByName(name string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(id string, quantity decimal.Decimal) error
	List(filter ProductFilter) ([]*entity.Product, error)
	ListLowStock(threshold decimal.Decimal) ([]*entity.Product, error)
	// SetActive flips the soft-delete flag.
	SetActive(id string, active bool) error
}
