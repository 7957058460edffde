package dto

import "github.com/shopspring/decimal"

// PeriodMetricsDTO revenue/profit/count for one period.
type PeriodMetricsDTO struct {
	SaleCount int             `json:"sale_count"`
	Revenue   decimal.Decimal `json:"revenue"`
	Profit    decimal.Decimal `json:"profit"`
}

// TopProductDTO one row of the top-products widget.
type TopProductDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitsSold   decimal.Decimal `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
	Profit      decimal.Decimal `json:"profit"`
}

// TopCustomerDTO one row of the top-customers report.
type TopCustomerDTO struct {
	CustomerID string          `json:"customer_id"`
	Name       string          `json:"name"`
	SaleCount  int             `json:"sale_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// DashboardSummaryDTO the opening screen numbers: today, month to date,
// best sellers, stock and credit warnings.
type DashboardSummaryDTO struct {
	Today             PeriodMetricsDTO `json:"today"`
	MonthToDate       PeriodMetricsDTO `json:"month_to_date"`
	TopProducts       []TopProductDTO  `json:"top_products"`
	LowStockCount     int              `json:"low_stock_count"`
	OutstandingCredit decimal.Decimal  `json:"outstanding_credit"`
}

// DailySalesDTO one bucket of the sales series.
type DailySalesDTO struct {
	Date      string          `json:"date"` // YYYY-MM-DD
	SaleCount int             `json:"sale_count"`
	Revenue   decimal.Decimal `json:"revenue"`
	Profit    decimal.Decimal `json:"profit"`
}

// PaymentTypeSalesDTO revenue grouped by payment type.
type PaymentTypeSalesDTO struct {
	PaymentType string          `json:"payment_type"`
	SaleCount   int             `json:"sale_count"`
	Revenue     decimal.Decimal `json:"revenue"`
}
