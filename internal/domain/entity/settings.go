package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Claves de configuración persistidas.
const (
	SettingExchangeRate   = "exchangeRate"
	SettingWhatsappNumber = "whatsappNumber"
)

// Settings valores globales de la tienda.
type Settings struct {
	ExchangeRate   decimal.Decimal
	WhatsappNumber string
	UpdatedAt      time.Time
}
