package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/skumaran/petti-kadai-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo read-only aggregate queries behind the dashboard and report
// endpoints. Cancelled sales are excluded in every query.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository builds the reporting adapter.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetSalesMetrics aggregates count, revenue and profit over [from, to).
func (r *ReportRepo) GetSalesMetrics(ctx context.Context, from, to time.Time) (repository.SalesMetrics, error) {
	const query = `
	SELECT COUNT(*), COALESCE(SUM(total_amount), 0), COALESCE(SUM(total_profit), 0)
	FROM sales
	WHERE status = 'completed' AND sold_at >= $1 AND sold_at < $2`

	var m repository.SalesMetrics
	err := r.pool.QueryRow(ctx, query, from, to).Scan(&m.SaleCount, &m.Revenue, &m.Profit)
	if err != nil {
		return repository.SalesMetrics{}, fmt.Errorf("reports.GetSalesMetrics: %w", err)
	}
	return m, nil
}

// GetDailySales buckets completed sales per calendar day over [from, to).
// Days without sales are absent from the result.
func (r *ReportRepo) GetDailySales(ctx context.Context, from, to time.Time) ([]repository.DailySales, error) {
	const query = `
	SELECT date_trunc('day', sold_at) AS day,
	       COUNT(*),
	       COALESCE(SUM(total_amount), 0),
	       COALESCE(SUM(total_profit), 0)
	FROM sales
	WHERE status = 'completed' AND sold_at >= $1 AND sold_at < $2
	GROUP BY day
	ORDER BY day`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.GetDailySales: %w", err)
	}
	defer rows.Close()

	var results []repository.DailySales
	for rows.Next() {
		var d repository.DailySales
		if err := rows.Scan(&d.Day, &d.SaleCount, &d.Revenue, &d.Profit); err != nil {
			return nil, fmt.Errorf("reports.GetDailySales scan: %w", err)
		}
		results = append(results, d)
	}
	return results, rows.Err()
}

// GetSalesByPaymentType groups completed sales by payment type over [from, to).
func (r *ReportRepo) GetSalesByPaymentType(ctx context.Context, from, to time.Time) ([]repository.PaymentTypeSales, error) {
	const query = `
	SELECT payment_type, COUNT(*), COALESCE(SUM(total_amount), 0)
	FROM sales
	WHERE status = 'completed' AND sold_at >= $1 AND sold_at < $2
	GROUP BY payment_type
	ORDER BY SUM(total_amount) DESC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.GetSalesByPaymentType: %w", err)
	}
	defer rows.Close()

	var results []repository.PaymentTypeSales
	for rows.Next() {
		var p repository.PaymentTypeSales
		if err := rows.Scan(&p.PaymentType, &p.SaleCount, &p.Revenue); err != nil {
			return nil, fmt.Errorf("reports.GetSalesByPaymentType scan: %w", err)
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// GetTopProducts ranks products by revenue over [from, to). Names come from
// the sale lines so renamed or deactivated products rank under the name
// they sold with.
func (r *ReportRepo) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT si.product_id, si.product_name,
	       SUM(si.quantity), SUM(si.subtotal), SUM(si.profit)
	FROM sale_items si
	JOIN sales s ON s.id = si.sale_id
	WHERE s.status = 'completed' AND s.sold_at >= $1 AND s.sold_at < $2
	GROUP BY si.product_id, si.product_name
	ORDER BY SUM(si.subtotal) DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.ProductName, &t.UnitsSold, &t.Revenue, &t.Profit); err != nil {
			return nil, fmt.Errorf("reports.GetTopProducts scan: %w", err)
		}
		results = append(results, t)
	}
	return results, rows.Err()
}

// GetTopCustomers ranks customers by spend over [from, to). Walk-in sales
// have no customer and never rank.
func (r *ReportRepo) GetTopCustomers(ctx context.Context, from, to time.Time, limit int) ([]repository.TopCustomerResult, error) {
	const query = `
	SELECT c.id, c.name, COUNT(*), COALESCE(SUM(s.total_amount), 0)
	FROM sales s
	JOIN customers c ON c.id = s.customer_id
	WHERE s.status = 'completed' AND s.sold_at >= $1 AND s.sold_at < $2
	GROUP BY c.id, c.name
	ORDER BY SUM(s.total_amount) DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetTopCustomers: %w", err)
	}
	defer rows.Close()

	var results []repository.TopCustomerResult
	for rows.Next() {
		var t repository.TopCustomerResult
		if err := rows.Scan(&t.CustomerID, &t.Name, &t.SaleCount, &t.Revenue); err != nil {
			return nil, fmt.Errorf("reports.GetTopCustomers scan: %w", err)
		}
		results = append(results, t)
	}
	return results, rows.Err()
}

// CountLowStock counts active products at or below the threshold.
func (r *ReportRepo) CountLowStock(ctx context.Context, threshold decimal.Decimal) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE is_active AND quantity <= $1`, threshold).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("reports.CountLowStock: %w", err)
	}
	return n, nil
}

// GetOutstandingCredit sums customer outstanding balances.
func (r *ReportRepo) GetOutstandingCredit(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(outstanding_balance), 0) FROM customers`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("reports.GetOutstandingCredit: %w", err)
	}
	return total, nil
}
