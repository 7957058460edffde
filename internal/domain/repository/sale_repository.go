package repository

import (
	"time"

	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
)

// SaleRepository defines the persistence port for Sale headers and items.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	UpdateStatus(id, status string, updatedAt time.Time) error
	List(from, to time.Time, limit, offset int) ([]*entity.Sale, error)
}
