package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/application/orders"
)

// OrderHandler pedidos de la tienda en línea.
type OrderHandler struct {
	uc *orders.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Checkout godoc
// @Summary      Crear pedido desde la tienda
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Cliente, ítems y pago"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Checkout(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UploadReceipt godoc
// @Summary      Subir comprobante de pago
// @Tags         orders
// @Accept       multipart/form-data
// @Produce      json
// @Param        receipt  formData  file  true  "Imagen del comprobante"
// @Success      201  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders/receipts [post]
func (h *OrderHandler) UploadReceipt(c *fiber.Ctx) error {
	file, ok, err := formFile(c, "receipt")
	if !ok {
		return err
	}
	url, err := h.uc.UploadReceipt(c.Context(), file.Name, file.ContentType, file.Data)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{URL: url})
}

// List pedidos más recientes primero.
// GET /api/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(items))
}

// GetByID GET /api/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del pedido
// @Description  Al pasar a Aprobada descuenta el stock de cada ítem en la misma transacción.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
