package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carpihogar-api/internal/application/catalog"
	"github.com/jhoicas/carpihogar-api/internal/application/dto"
)

// CatalogHandler consultas públicas del catálogo.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Search godoc
// @Summary      Buscar productos del catálogo
// @Tags         catalog
// @Produce      json
// @Param        search     query  string  false  "Texto libre o nombre de categoría"
// @Param        category   query  string  false  "Categoría exacta"
// @Param        brand      query  string  false  "Marca exacta"
// @Param        min_price  query  string  false  "Precio mínimo"
// @Param        max_price  query  string  false  "Precio máximo"
// @Param        in_stock   query  bool    false  "Solo con stock"
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	var q dto.CatalogQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	items, err := h.uc.Search(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(items))
}

// Categories árbol de navegación.
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.Categories())
}

// Brands marcas distintas en orden de aparición.
func (h *CatalogHandler) Brands(c *fiber.Ctx) error {
	brands, err := h.uc.Brands(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(brands))
}

// Product detalle con precio en Bs cuando hay tasa.
// GET /api/catalog/products/:id
func (h *CatalogHandler) Product(c *fiber.Ctx) error {
	out, err := h.uc.Product(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
