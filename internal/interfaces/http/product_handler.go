package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carpihogar-api/internal/application/analytics"
	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc        *usecase.ProductUseCase
	reports   *analytics.InventoryReportUseCase
	exportUC  *analytics.ExportUseCase
	exporters Exporters
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, reports *analytics.InventoryReportUseCase, exportUC *analytics.ExportUseCase, exporters Exporters) *ProductHandler {
	return &ProductHandler{uc: uc, reports: reports, exportUC: exportUC, exporters: exporters}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(items))
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadImages godoc
// @Summary      Subir imágenes del producto (máximo 3 en total)
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id      path      string  true  "ID del producto"
// @Param        images  formData  file    true  "Imágenes"
// @Success      200  {object}  dto.ProductResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/images [post]
func (h *ProductHandler) UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se esperaba multipart/form-data"})
	}
	headers := form.File["images"]
	files := make([]usecase.ImageUpload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return respondError(c, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return respondError(c, err)
		}
		files = append(files, usecase.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Data:        data,
		})
	}
	out, err := h.uc.AddImages(c.Context(), c.Params("id"), files)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MostSold top 10 por unidades vendidas con serie mensual.
// GET /api/products/most-sold
func (h *ProductHandler) MostSold(c *fiber.Ctx) error {
	items, err := h.reports.MostSold(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(items))
}

// LeastSold GET /api/products/least-sold
func (h *ProductHandler) LeastSold(c *fiber.Ctx) error {
	items, err := h.reports.LeastSold(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(items))
}

// LowStock GET /api/products/low-stock
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.reports.LowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(items))
}

// Sales ventas de un producto por código.
// GET /api/products/:code/sales
func (h *ProductHandler) Sales(c *fiber.Ctx) error {
	out, err := h.reports.ProductSales(c.Context(), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export GET /api/products/export.:format (pdf | xlsx)
func (h *ProductHandler) Export(c *fiber.Ctx) error {
	return export(c, h.exporters, "inventario", h.exportUC.Inventory)
}
