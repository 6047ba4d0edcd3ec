package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carpihogar-api/internal/application/analytics"
	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/application/sales"
	"github.com/jhoicas/carpihogar-api/internal/domain"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
)

// SaleHandler ventas de mostrador. Un vendedor solo ve las suyas.
type SaleHandler struct {
	uc        *sales.UseCase
	exportUC  *analytics.ExportUseCase
	exporters Exporters
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.UseCase, exportUC *analytics.ExportUseCase, exporters Exporters) *SaleHandler {
	return &SaleHandler{uc: uc, exportUC: exportUC, exporters: exporters}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Descuenta stock y asigna el número ORD-00000 en una sola transacción.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Cliente e ítems"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), sellerScope(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(items))
}

// GetByID GET /api/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if scope := sellerScope(c); scope != "" && out.SellerID != scope {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(out)
}

// Export GET /api/sales/export.:format (pdf | xlsx)
func (h *SaleHandler) Export(c *fiber.Ctx) error {
	return export(c, h.exporters, "ventas", h.exportUC.Sales)
}

// sellerScope limita las consultas de un vendedor a sus propias ventas.
func sellerScope(c *fiber.Ctx) string {
	if GetRole(c) == entity.RoleVendedor {
		return GetUserID(c)
	}
	return ""
}
