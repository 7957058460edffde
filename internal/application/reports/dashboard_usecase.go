// Package reports contains the read-only use cases behind the report and
// dashboard endpoints.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skumaran/petti-kadai-api/internal/application/dto"
	"github.com/skumaran/petti-kadai-api/internal/domain"
	"github.com/skumaran/petti-kadai-api/internal/domain/repository"
)

const (
	dashboardTopProducts = 5 // rows in the dashboard best-sellers widget
	lowStockThreshold    = 5
)

// DashboardUseCase builds the opening-screen summary from the read-only
// report queries. It never touches the sale tables directly.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// GetSummary assembles the dashboard. The five independent queries are
// fanned out in goroutines.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type metricsResult struct {
		m   repository.SalesMetrics
		err error
	}
	type topResult struct {
		rows []repository.TopProductResult
		err  error
	}
	type countResult struct {
		n   int
		err error
	}
	type creditResult struct {
		total decimal.Decimal
		err   error
	}

	todayCh := make(chan metricsResult, 1)
	monthCh := make(chan metricsResult, 1)
	topCh := make(chan topResult, 1)
	lowCh := make(chan countResult, 1)
	creditCh := make(chan creditResult, 1)

	go func() {
		m, err := uc.reportRepo.GetSalesMetrics(ctx, todayStart, todayEnd)
		todayCh <- metricsResult{m, err}
	}()
	go func() {
		m, err := uc.reportRepo.GetSalesMetrics(ctx, monthStart, todayEnd)
		monthCh <- metricsResult{m, err}
	}()
	go func() {
		rows, err := uc.reportRepo.GetTopProducts(ctx, monthStart, todayEnd, dashboardTopProducts)
		topCh <- topResult{rows, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountLowStock(ctx, decimal.NewFromInt(lowStockThreshold))
		lowCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.reportRepo.GetOutstandingCredit(ctx)
		creditCh <- creditResult{total, err}
	}()

	today := <-todayCh
	month := <-monthCh
	top := <-topCh
	low := <-lowCh
	credit := <-creditCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: today metrics: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: month metrics: %w", month.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top products: %w", top.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: low stock: %w", low.err)
	}
	if credit.err != nil {
		return nil, fmt.Errorf("dashboard: outstanding credit: %w", credit.err)
	}

	return &dto.DashboardSummaryDTO{
		Today:             toPeriodMetrics(today.m),
		MonthToDate:       toPeriodMetrics(month.m),
		TopProducts:       toTopProducts(top.rows),
		LowStockCount:     low.n,
		OutstandingCredit: credit.total,
	}, nil
}

// GetSalesSeries returns the per-day revenue/profit series for a period.
func (uc *DashboardUseCase) GetSalesSeries(ctx context.Context, from, to time.Time) ([]dto.DailySalesDTO, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.reportRepo.GetDailySales(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports: daily sales: %w", err)
	}
	out := make([]dto.DailySalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DailySalesDTO{
			Date:      r.Day.Format("2006-01-02"),
			SaleCount: r.SaleCount,
			Revenue:   r.Revenue,
			Profit:    r.Profit,
		})
	}
	return out, nil
}

// GetSalesByPaymentType groups period revenue by payment type.
func (uc *DashboardUseCase) GetSalesByPaymentType(ctx context.Context, from, to time.Time) ([]dto.PaymentTypeSalesDTO, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.reportRepo.GetSalesByPaymentType(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports: payment types: %w", err)
	}
	out := make([]dto.PaymentTypeSalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PaymentTypeSalesDTO{
			PaymentType: r.PaymentType,
			SaleCount:   r.SaleCount,
			Revenue:     r.Revenue,
		})
	}
	return out, nil
}

// GetTopProducts ranks products by revenue in a period.
func (uc *DashboardUseCase) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]dto.TopProductDTO, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	rows, err := uc.reportRepo.GetTopProducts(ctx, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("reports: top products: %w", err)
	}
	return toTopProducts(rows), nil
}

// GetTopCustomers ranks customers by spend in a period.
func (uc *DashboardUseCase) GetTopCustomers(ctx context.Context, from, to time.Time, limit int) ([]dto.TopCustomerDTO, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	rows, err := uc.reportRepo.GetTopCustomers(ctx, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("reports: top customers: %w", err)
	}
	out := make([]dto.TopCustomerDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopCustomerDTO{
			CustomerID: r.CustomerID,
			Name:       r.Name,
			SaleCount:  r.SaleCount,
			Revenue:    r.Revenue,
		})
	}
	return out, nil
}

func toPeriodMetrics(m repository.SalesMetrics) dto.PeriodMetricsDTO {
	return dto.PeriodMetricsDTO{
		SaleCount: m.SaleCount,
		Revenue:   m.Revenue,
		Profit:    m.Profit,
	}
}

func toTopProducts(rows []repository.TopProductResult) []dto.TopProductDTO {
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductDTO{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			UnitsSold:   r.UnitsSold,
			Revenue:     r.Revenue,
			Profit:      r.Profit,
		})
	}
	return out
}
