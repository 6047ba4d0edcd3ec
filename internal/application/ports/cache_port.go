package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/domain/cart"
)

// CartStore persiste carritos por id. Get devuelve un carrito vacío si no existe.
type CartStore interface {
	Get(ctx context.Context, cartID string) (*cart.Cart, error)
	Save(ctx context.Context, cartID string, c *cart.Cart) error
	Delete(ctx context.Context, cartID string) error
}

// SettingsCache caché de lectura de la configuración global.
// Los Get devuelven found=false en un miss; los errores de caché no deben romper la lectura.
type SettingsCache interface {
	GetExchangeRate(ctx context.Context) (decimal.Decimal, bool, error)
	SetExchangeRate(ctx context.Context, rate decimal.Decimal) error
	GetWhatsapp(ctx context.Context) (string, bool, error)
	SetWhatsapp(ctx context.Context, number string) error
	Invalidate(ctx context.Context) error
}
