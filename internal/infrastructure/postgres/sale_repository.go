package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/skumaran/petti-kadai-api/internal/domain"
	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
	"github.com/skumaran/petti-kadai-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, user_id, customer_id, sold_at, subtotal, discount_total, tax_total, total_amount, total_profit, payment_type, status, created_at, updated_at`

// SaleRepo implements the SaleRepository port over PostgreSQL.
// Usable with a pool or a transaction (Querier).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository builds the persistence adapter for sales.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var customerID *string
	err := row.Scan(
		&s.ID, &s.UserID, &customerID, &s.SoldAt, &s.Subtotal, &s.DiscountTotal,
		&s.TaxTotal, &s.TotalAmount, &s.TotalProfit, &s.PaymentType, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.CustomerID = derefStr(customerID)
	return &s, nil
}

// Create persists the sale header.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, user_id, customer_id, sold_at, subtotal, discount_total, tax_total, total_amount, total_profit, payment_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.UserID, nullIfEmpty(sale.CustomerID), sale.SoldAt, sale.Subtotal,
		sale.DiscountTotal, sale.TaxTotal, sale.TotalAmount, sale.TotalProfit,
		sale.PaymentType, sale.Status, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persists one sale line.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, product_name, quantity, unit_price, cost_price, discount, subtotal, profit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.ProductName, item.Quantity,
		item.UnitPrice, item.CostPrice, item.Discount, item.Subtotal, item.Profit,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID fetches a sale header by ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// GetItemsBySaleID fetches the lines of a sale ordered by product name.
func (r *SaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, product_name, quantity, unit_price, cost_price, discount, subtotal, profit
		FROM sale_items WHERE sale_id = $1 ORDER BY product_name`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	var items []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		err := rows.Scan(
			&it.ID, &it.SaleID, &it.ProductID, &it.ProductName, &it.Quantity,
			&it.UnitPrice, &it.CostPrice, &it.Discount, &it.Subtotal, &it.Profit,
		)
		if err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// UpdateStatus sets the sale status.
func (r *SaleRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	query := `UPDATE sales SET status = $2, updated_at = $3 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns sales in [from, to), newest first.
func (r *SaleRepo) List(from, to time.Time, limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sold_at >= $1 AND sold_at < $2 ORDER BY sold_at DESC`
	args := []any{from, to}
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
