package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem producto comprado en la tienda en línea (precio en USD).
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
	Quantity  int             `json:"quantity"`
}

// OrderClient datos del comprador.
type OrderClient struct {
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Cedula    string `json:"cedula"`
	Direccion string `json:"direccion"`
}

// PaymentProof comprobante de pago reportado en el checkout.
type PaymentProof struct {
	PayerName  string          `json:"payer_name"`
	Reference  string          `json:"reference"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	ReceiptURL string          `json:"receipt_url,omitempty"`
}

// StoreOrder pedido de la tienda en línea. Status sigue order.Status.
type StoreOrder struct {
	ID        string
	Client    OrderClient
	Items     []OrderItem
	Payment   PaymentProof
	Total     decimal.Decimal
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemsTotal Σ precio × cantidad.
func (o *StoreOrder) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Precio.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
