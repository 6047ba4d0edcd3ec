package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/domain/cart"
)

// AddCartItemRequest producto a agregar (suma 1 unidad).
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// UpdateCartItemRequest nueva cantidad; 0 o menos elimina la línea.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse estado del carrito con totales.
type CartResponse struct {
	CartID     string          `json:"cart_id"`
	Items      []cart.Item     `json:"items"`
	ItemCount  int             `json:"item_count"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
