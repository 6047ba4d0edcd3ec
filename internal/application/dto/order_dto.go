package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutClient datos del comprador en el checkout.
type CheckoutClient struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Telefono  string `json:"telefono" validate:"required,max=30"`
	Cedula    string `json:"cedula" validate:"required,max=30"`
	Direccion string `json:"direccion" validate:"omitempty,max=500"`
}

// CheckoutItem producto y cantidad pedidos.
type CheckoutItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CheckoutPayment comprobante reportado por el comprador.
type CheckoutPayment struct {
	PayerName  string          `json:"payer_name" validate:"required"`
	Reference  string          `json:"reference" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method" validate:"required"`
	ReceiptURL string          `json:"receipt_url" validate:"omitempty,url"`
}

// CheckoutRequest entrada de POST /api/orders. Si CartID viene, los ítems se toman del carrito
// cuando Items está vacío y el carrito se vacía al terminar.
type CheckoutRequest struct {
	CartID  string          `json:"cart_id"`
	Client  CheckoutClient  `json:"client" validate:"required"`
	Items   []CheckoutItem  `json:"items" validate:"omitempty,dive"`
	Payment CheckoutPayment `json:"payment" validate:"required"`
}

// UpdateOrderStatusRequest nuevo estado del pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse línea del pedido.
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
	Quantity  int             `json:"quantity"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID        string              `json:"id"`
	Client    CheckoutClient      `json:"client"`
	Items     []OrderItemResponse `json:"items"`
	Payment   CheckoutPayment     `json:"payment"`
	Total     decimal.Decimal     `json:"total"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// UploadResponse URL pública de un archivo subido.
type UploadResponse struct {
	URL string `json:"url"`
}
