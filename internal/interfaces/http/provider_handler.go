package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/internal/application/usecase"
)

// ProviderHandler proveedores, sus facturas y abonos.
type ProviderHandler struct {
	uc        *usecase.ProviderUseCase
	exporters Exporters
}

// NewProviderHandler construye el handler.
func NewProviderHandler(uc *usecase.ProviderUseCase, exporters Exporters) *ProviderHandler {
	return &ProviderHandler{uc: uc, exporters: exporters}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         providers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProviderRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.ProviderResponse
// @Router       /api/providers [post]
func (h *ProviderHandler) Create(c *fiber.Ctx) error {
	var in dto.ProviderRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), GetRole(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/providers/:id
func (h *ProviderHandler) Update(c *fiber.Ctx) error {
	var in dto.ProviderRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), GetRole(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/providers
func (h *ProviderHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(items))
}

// Summary godoc
// @Summary      Resumen de deuda con proveedores
// @Description  Total adeudado, mayor deudor, facturas a vencer en 7 días y deuda por proveedor.
// @Tags         providers
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Código, nombre o RIF"
// @Success      200  {object}  reporting.ProviderSummary
// @Router       /api/providers/summary [get]
func (h *ProviderHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export GET /api/providers/export.:format
func (h *ProviderHandler) Export(c *fiber.Ctx) error {
	search := c.Query("search")
	return export(c, h.exporters, "proveedores", func(ctx context.Context, r ports.TableRenderer) ([]byte, error) {
		return h.uc.ExportSummary(ctx, search, r)
	})
}

// Detail godoc
// @Summary      Proveedor con facturas y pedidos
// @Tags         providers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.ProviderDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/providers/{id} [get]
func (h *ProviderHandler) Detail(c *fiber.Ctx) error {
	out, err := h.uc.Detail(c.Context(), GetRole(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/providers/:id
func (h *ProviderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateInvoice POST /api/invoices
func (h *ProviderHandler) CreateInvoice(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.CreateInvoice(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UploadAttachment godoc
// @Summary      Subir adjunto de factura o abono
// @Tags         invoices
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        adjunto  formData  file  true  "Archivo"
// @Success      201  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/invoices/attachments [post]
func (h *ProviderHandler) UploadAttachment(c *fiber.Ctx) error {
	file, ok, err := formFile(c, "adjunto")
	if !ok {
		return err
	}
	url, err := h.uc.UploadAttachment(c.Context(), file.Name, file.ContentType, file.Data)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{URL: url})
}

// RegisterPayment godoc
// @Summary      Registrar abono a factura
// @Description  Inserta el abono y actualiza monto pagado y estado con la factura bloqueada.
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la factura"
// @Param        body  body  dto.RegisterPaymentRequest  true  "Abono"
// @Success      201   {object}  dto.RegisterPaymentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/payments [post]
func (h *ProviderHandler) RegisterPayment(c *fiber.Ctx) error {
	var in dto.RegisterPaymentRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.RegisterPayment(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPayments GET /api/invoices/:id/payments
func (h *ProviderHandler) ListPayments(c *fiber.Ctx) error {
	items, err := h.uc.ListPayments(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(items))
}
