package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo configuración global como pares clave/valor.
type SettingsRepo struct {
	db Querier
}

// NewSettingsRepository construye el adaptador de persistencia para settings.
func NewSettingsRepository(db Querier) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// GetExchangeRate lee la tasa Bs/USD.
func (r *SettingsRepo) GetExchangeRate(ctx context.Context) (decimal.Decimal, bool, error) {
	raw, found, err := r.get(ctx, entity.SettingExchangeRate)
	if err != nil || !found {
		return decimal.Zero, found, err
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("parse exchange rate %q: %w", raw, err)
	}
	return rate, true, nil
}

// SetExchangeRate guarda la tasa Bs/USD.
func (r *SettingsRepo) SetExchangeRate(ctx context.Context, rate decimal.Decimal) error {
	return r.set(ctx, entity.SettingExchangeRate, rate.String())
}

// GetWhatsapp lee el número de WhatsApp de la tienda.
func (r *SettingsRepo) GetWhatsapp(ctx context.Context) (string, bool, error) {
	return r.get(ctx, entity.SettingWhatsappNumber)
}

// SetWhatsapp guarda el número de WhatsApp de la tienda.
func (r *SettingsRepo) SetWhatsapp(ctx context.Context, number string) error {
	return r.set(ctx, entity.SettingWhatsappNumber, number)
}

func (r *SettingsRepo) get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.db.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get setting %s: %w", key, err)
	}
	return v, true, nil
}

func (r *SettingsRepo) set(ctx context.Context, key, value string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, key, value)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}
