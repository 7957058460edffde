package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesMetrics is the raw aggregate for a period: completed sales only.
type SalesMetrics struct {
	SaleCount int
	Revenue   decimal.Decimal
	Profit    decimal.Decimal
}

// DailySales is one bucket of the sales time series.
type DailySales struct {
	Day       time.Time
	SaleCount int
	Revenue   decimal.Decimal
	Profit    decimal.Decimal
}

// PaymentTypeSales groups revenue by payment type.
type PaymentTypeSales struct {
	PaymentType string
	SaleCount   int
	Revenue     decimal.Decimal
}

// TopProductResult ranks products by revenue in a period.
type TopProductResult struct {
	ProductID   string
	ProductName string
	UnitsSold   decimal.Decimal
	Revenue     decimal.Decimal
	Profit      decimal.Decimal
}

// TopCustomerResult ranks customers by spend in a period.
type TopCustomerResult struct {
	CustomerID string
	Name       string
	SaleCount  int
	Revenue    decimal.Decimal
}

// ReportRepository defines the read-only aggregate queries behind the
// dashboard and report endpoints. Cancelled sales are always excluded.
type ReportRepository interface {
	GetSalesMetrics(ctx context.Context, from, to time.Time) (SalesMetrics, error)
	GetDailySales(ctx context.Context, from, to time.Time) ([]DailySales, error)
	GetSalesByPaymentType(ctx context.Context, from, to time.Time) ([]PaymentTypeSales, error)
	GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductResult, error)
	GetTopCustomers(ctx context.Context, from, to time.Time, limit int) ([]TopCustomerResult, error)
	// CountLowStock counts active products at or below the threshold.
	CountLowStock(ctx context.Context, threshold decimal.Decimal) (int, error)
	// GetOutstandingCredit sums customer outstanding balances.
	GetOutstandingCredit(ctx context.Context) (decimal.Decimal, error)
}
