package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skumaran/petti-kadai-api/internal/application/dto"
	"github.com/skumaran/petti-kadai-api/internal/application/sales"
)

// CartHandler handles the session cart routes (protected). Each user has
// one cart, reconciled against the live catalog on every read.
type CartHandler struct {
	uc *sales.CartUseCase
}

// NewCartHandler builds the handler.
func NewCartHandler(uc *sales.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Get the caller's cart
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Add a product to the cart
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CartItemRequest  true  "Product and quantity"
// @Success      200   {object}  dto.CartResponse
// @Failure      409   {object}  dto.ErrorResponse  "Not enough stock"
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.CartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.AddItem(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Set the quantity of a cart line
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CartItemRequest  true  "Product and new quantity (0 removes)"
// @Success      200   {object}  dto.CartResponse
// @Failure      409   {object}  dto.ErrorResponse  "Not enough stock"
// @Router       /api/cart/items [put]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.CartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.UpdateItem(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Remove a product from the cart
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "Product ID"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.RemoveItem(c.Context(), GetUserID(c), c.Params("productId"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Empty the cart
// @Tags         cart
// @Security     Bearer
// @Success      204
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context(), GetUserID(c)); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
