package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/skumaran/petti-kadai-api/internal/domain"
	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
	"github.com/skumaran/petti-kadai-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implements the ReceiptRepository port over PostgreSQL.
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository builds the persistence adapter for receipts.
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create persists the receipt row. sale_id is unique so a second insert
// for the same sale reports domain.ErrDuplicate.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	query := `
		INSERT INTO receipts (id, sale_id, receipt_number, format, file_path, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.SaleID, receipt.ReceiptNumber, receipt.Format,
		receipt.FilePath, receipt.GeneratedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// GetBySaleID fetches the receipt recorded for a sale.
func (r *ReceiptRepo) GetBySaleID(saleID string) (*entity.Receipt, error) {
	query := `
		SELECT id, sale_id, receipt_number, format, file_path, generated_at
		FROM receipts WHERE sale_id = $1`
	var rc entity.Receipt
	err := r.q.QueryRow(context.Background(), query, saleID).Scan(
		&rc.ID, &rc.SaleID, &rc.ReceiptNumber, &rc.Format, &rc.FilePath, &rc.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt by sale: %w", err)
	}
	return &rc, nil
}
