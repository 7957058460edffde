package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skumaran/petti-kadai-api/internal/application/dto"
	"github.com/skumaran/petti-kadai-api/internal/application/reports"
)

// ReportHandler handles the dashboard and report routes (owner only).
type ReportHandler struct {
	uc *reports.DashboardUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *reports.DashboardUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Dashboard summary
// @Description  Today and month-to-date metrics, best sellers, low stock
// @Description  and outstanding credit in one call.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// SalesSeries godoc
// @Summary      Daily sales series
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "RFC 3339 or YYYY-MM-DD, default today"
// @Param        to    query  string  false  "RFC 3339 or YYYY-MM-DD, default now"
// @Success      200  {array}  dto.DailySalesDTO
// @Router       /api/reports/sales-series [get]
func (h *ReportHandler) SalesSeries(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	out, err := h.uc.GetSalesSeries(c.Context(), from, to)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// SalesByPaymentType godoc
// @Summary      Revenue by payment type
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "RFC 3339 or YYYY-MM-DD, default today"
// @Param        to    query  string  false  "RFC 3339 or YYYY-MM-DD, default now"
// @Success      200  {array}  dto.PaymentTypeSalesDTO
// @Router       /api/reports/payment-types [get]
func (h *ReportHandler) SalesByPaymentType(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	out, err := h.uc.GetSalesByPaymentType(c.Context(), from, to)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Best selling products
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from   query  string  false  "RFC 3339 or YYYY-MM-DD, default today"
// @Param        to     query  string  false  "RFC 3339 or YYYY-MM-DD, default now"
// @Param        limit  query  int     false  "Limit"  default(10)
// @Success      200  {array}  dto.TopProductDTO
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	out, err := h.uc.GetTopProducts(c.Context(), from, to, c.QueryInt("limit", 10))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// TopCustomers godoc
// @Summary      Top customers by spend
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from   query  string  false  "RFC 3339 or YYYY-MM-DD, default today"
// @Param        to     query  string  false  "RFC 3339 or YYYY-MM-DD, default now"
// @Param        limit  query  int     false  "Limit"  default(10)
// @Success      200  {array}  dto.TopCustomerDTO
// @Router       /api/reports/top-customers [get]
func (h *ReportHandler) TopCustomers(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	out, err := h.uc.GetTopCustomers(c.Context(), from, to, c.QueryInt("limit", 10))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
