package dto

import "github.com/shopspring/decimal"

// ExchangeRateDTO tasa Bs por USD.
type ExchangeRateDTO struct {
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

// WhatsappDTO número de contacto de la tienda.
type WhatsappDTO struct {
	WhatsappNumber string `json:"whatsappNumber" validate:"required"`
}
