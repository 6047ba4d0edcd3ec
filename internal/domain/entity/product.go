package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxProductImages límite de imágenes por producto.
const MaxProductImages = 3

// Tipos de precio usados en ventas de mostrador.
const (
	PriceTypeMayor   = "mayor"
	PriceTypeAliados = "aliados"
	PriceTypeCliente = "cliente"
)

// Product representa un artículo del catálogo. Precio está en la moneda base (USD);
// la conversión a Bs se hace con la tasa de cambio vigente al mostrar o vender.
type Product struct {
	ID            string
	Codigo        string // código único de inventario
	Nombre        string
	Descripcion   string
	Categoria     string
	Marca         string
	Proveedor     string
	Precio        decimal.Decimal
	PrecioMayor   *decimal.Decimal
	PrecioAliados *decimal.Decimal
	PrecioCliente *decimal.Decimal
	Stock         int
	StockMinimo   int
	Imagenes      []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PriceFor devuelve el precio para el tipo indicado; si el producto no tiene ese precio
// configurado se usa el precio base.
func (p *Product) PriceFor(priceType string) decimal.Decimal {
	var v *decimal.Decimal
	switch priceType {
	case PriceTypeMayor:
		v = p.PrecioMayor
	case PriceTypeAliados:
		v = p.PrecioAliados
	case PriceTypeCliente:
		v = p.PrecioCliente
	}
	if v != nil {
		return *v
	}
	return p.Precio
}

// BelowMinimum indica si el stock está en o por debajo de su stock mínimo propio.
func (p *Product) BelowMinimum() bool {
	return p.Stock <= p.StockMinimo
}

// CanAddImages indica si caben n imágenes más.
func (p *Product) CanAddImages(n int) bool {
	return len(p.Imagenes)+n <= MaxProductImages
}

// IsValidPriceType valida el tipo de precio de una línea de venta.
func IsValidPriceType(t string) bool {
	switch t {
	case PriceTypeMayor, PriceTypeAliados, PriceTypeCliente:
		return true
	}
	return false
}
