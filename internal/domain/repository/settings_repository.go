package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// SettingsRepository guarda los valores globales de la tienda.
// Los Get devuelven found=false si la clave nunca se configuró.
type SettingsRepository interface {
	GetExchangeRate(ctx context.Context) (rate decimal.Decimal, found bool, err error)
	SetExchangeRate(ctx context.Context, rate decimal.Decimal) error
	GetWhatsapp(ctx context.Context) (number string, found bool, err error)
	SetWhatsapp(ctx context.Context, number string) error
}
