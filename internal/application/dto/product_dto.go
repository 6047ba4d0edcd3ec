package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Codigo        string           `json:"codigo" validate:"required,min=1,max=100"`
	Nombre        string           `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion   string           `json:"descripcion"`
	Categoria     string           `json:"categoria" validate:"required"`
	Marca         string           `json:"marca"`
	Proveedor     string           `json:"proveedor"`
	Precio        decimal.Decimal  `json:"precio"`
	PrecioMayor   *decimal.Decimal `json:"precio_mayor"`
	PrecioAliados *decimal.Decimal `json:"precio_aliados"`
	PrecioCliente *decimal.Decimal `json:"precio_cliente"`
	Stock         int              `json:"stock" validate:"min=0"`
	StockMinimo   int              `json:"stock_minimo" validate:"min=0"`
	Imagenes      []string         `json:"imagenes" validate:"max=3,dive,url"`
}

// UpdateProductRequest campos editables; nil deja el valor actual.
type UpdateProductRequest struct {
	Nombre        *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion   *string          `json:"descripcion"`
	Categoria     *string          `json:"categoria" validate:"omitempty,min=1"`
	Marca         *string          `json:"marca"`
	Proveedor     *string          `json:"proveedor"`
	Precio        *decimal.Decimal `json:"precio"`
	PrecioMayor   *decimal.Decimal `json:"precio_mayor"`
	PrecioAliados *decimal.Decimal `json:"precio_aliados"`
	PrecioCliente *decimal.Decimal `json:"precio_cliente"`
	Stock         *int             `json:"stock" validate:"omitempty,min=0"`
	StockMinimo   *int             `json:"stock_minimo" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto. PrecioBs solo se llena cuando hay tasa de cambio.
type ProductResponse struct {
	ID            string           `json:"id"`
	Codigo        string           `json:"codigo"`
	Nombre        string           `json:"nombre"`
	Descripcion   string           `json:"descripcion"`
	Categoria     string           `json:"categoria"`
	Marca         string           `json:"marca"`
	Proveedor     string           `json:"proveedor"`
	Precio        decimal.Decimal  `json:"precio"`
	PrecioBs      *decimal.Decimal `json:"precio_bs,omitempty"`
	PrecioMayor   *decimal.Decimal `json:"precio_mayor,omitempty"`
	PrecioAliados *decimal.Decimal `json:"precio_aliados,omitempty"`
	PrecioCliente *decimal.Decimal `json:"precio_cliente,omitempty"`
	Stock         int              `json:"stock"`
	StockMinimo   int              `json:"stock_minimo"`
	Imagenes      []string         `json:"imagenes"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// CatalogQuery filtros de GET /api/catalog.
type CatalogQuery struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Brand    string `query:"brand"`
	MinPrice string `query:"min_price"`
	MaxPrice string `query:"max_price"`
	InStock  bool   `query:"in_stock"`
}
