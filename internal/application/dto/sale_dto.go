package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de una venta.
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	PriceType string `json:"price_type" validate:"required,oneof=mayor aliados cliente"`
}

// CreateSaleRequest entrada para registrar una venta de mostrador.
type CreateSaleRequest struct {
	ClientName  string            `json:"client_name" validate:"required,min=1,max=200"`
	ClientID    string            `json:"client_id" validate:"omitempty,max=30"`
	ClientPhone string            `json:"client_phone" validate:"omitempty,max=30"`
	ClientAddr  string            `json:"client_address" validate:"omitempty,max=300"`
	Items       []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemResponse línea de venta con precios calculados.
type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Codigo    string          `json:"codigo"`
	Nombre    string          `json:"nombre"`
	Quantity  int             `json:"quantity"`
	PriceType string          `json:"price_type"`
	Price     decimal.Decimal `json:"price"`
	PriceBs   decimal.Decimal `json:"price_bs"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID           string             `json:"id"`
	OrderNumber  string             `json:"order_number"`
	SellerID     string             `json:"seller_id"`
	SellerName   string             `json:"seller_name"`
	ClientName   string             `json:"client_name"`
	ClientID     string             `json:"client_id,omitempty"`
	ClientPhone  string             `json:"client_phone,omitempty"`
	ClientAddr   string             `json:"client_address,omitempty"`
	Items        []SaleItemResponse `json:"items"`
	ExchangeRate decimal.Decimal    `json:"exchange_rate"`
	TotalBs      decimal.Decimal    `json:"total_bs"`
	CreatedAt    time.Time          `json:"created_at"`
}
