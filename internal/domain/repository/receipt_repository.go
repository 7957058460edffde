package repository

import "github.com/skumaran/petti-kadai-api/internal/domain/entity"

// ReceiptRepository defines the persistence port for Receipt rows.
// The PDF artifact itself lives on disk; the row records where.
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	GetBySaleID(saleID string) (*entity.Receipt, error)
}
