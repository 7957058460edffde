package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/skumaran/petti-kadai-api/internal/application/dto"
	"github.com/skumaran/petti-kadai-api/internal/application/sales"
)

// SaleHandler handles checkout, sale lookups, cancellation and receipts
// (protected).
type SaleHandler struct {
	checkout *sales.CheckoutUseCase
	receipts *sales.ReceiptUseCase
}

// NewSaleHandler builds the handler.
func NewSaleHandler(checkout *sales.CheckoutUseCase, receipts *sales.ReceiptUseCase) *SaleHandler {
	return &SaleHandler{checkout: checkout, receipts: receipts}
}

// Checkout godoc
// @Summary      Commit a sale
// @Description  Charges the body items, or the caller's session cart when
// @Description  the body has no items. Stock and customer balances update
// @Description  atomically with the sale.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Payment type, optional customer and items"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse  "Empty cart or bad payment type"
// @Failure      409   {object}  dto.ErrorResponse  "Insufficient stock or credit limit exceeded"
// @Router       /api/sales [post]
func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.checkout.Checkout(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get a sale with its lines
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Sale ID"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.checkout.GetSale(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sale not found"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List sales in a date range
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "RFC 3339 or YYYY-MM-DD, default today"
// @Param        to      query  string  false  "RFC 3339 or YYYY-MM-DD, default now"
// @Param        limit   query  int     false  "Limit"   default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid pagination"})
	}
	page.DefaultPage()

	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}

	out, err := h.checkout.ListSales(from, to, page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancel a sale
// @Description  Restores the sold stock and reverses customer balance and
// @Description  loyalty changes. A sale can be cancelled only once.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Sale ID"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "Already cancelled"
// @Router       /api/sales/{id}/cancel [post]
func (h *SaleHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.checkout.CancelSale(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Download the receipt PDF of a sale
// @Description  Generates the PDF on first call and reuses the stored
// @Description  artifact afterwards.
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "Sale ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "Sale is cancelled"
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	data, receipt, err := h.receipts.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s.pdf"`, receipt.ReceiptNumber))
	return c.Send(data)
}

// parseDateRange resolves from/to query values. Bare dates are taken at
// midnight local time; an empty range defaults to today.
func parseDateRange(fromRaw, toRaw string) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := now

	var err error
	if fromRaw != "" {
		if from, err = parseDate(fromRaw); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from: %s", fromRaw)
		}
	}
	if toRaw != "" {
		if to, err = parseDate(toRaw); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to: %s", toRaw)
		}
		// a bare to-date means "through the end of that day"
		if len(toRaw) == len("2006-01-02") {
			to = to.AddDate(0, 0, 1)
		}
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("to must be after from")
	}
	return from, to, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}
