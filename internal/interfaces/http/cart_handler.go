package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carpihogar-api/internal/application/cart"
	"github.com/jhoicas/carpihogar-api/internal/application/dto"
)

// CartHandler carrito de la tienda (público, identificado por cartId).
type CartHandler struct {
	uc *cart.UseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.UseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener carrito
// @Tags         cart
// @Produce      json
// @Param        cartId  path  string  true  "ID del carrito"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/{cartId} [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("cartId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar una unidad de un producto
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        cartId  path  string  true  "ID del carrito"
// @Param        body    body  dto.AddCartItemRequest  true  "product_id"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/{cartId}/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Add(c.Context(), c.Params("cartId"), in.ProductID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateItem cambia la cantidad; 0 o menos elimina la línea.
// PUT /api/cart/:cartId/items/:productId
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateQuantity(c.Context(), c.Params("cartId"), c.Params("productId"), in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem DELETE /api/cart/:cartId/items/:productId
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.Remove(c.Context(), c.Params("cartId"), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Clear DELETE /api/cart/:cartId
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context(), c.Params("cartId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
