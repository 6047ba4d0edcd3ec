package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
)

var _ ports.SettingsCache = (*SettingsCache)(nil)

const settingsKeyPrefix = "settings:"

// SettingsCache caché de lectura para la tasa y el número de WhatsApp.
type SettingsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSettingsCache crea la caché con el TTL dado.
func NewSettingsCache(client *redis.Client, ttl time.Duration) *SettingsCache {
	return &SettingsCache{client: client, ttl: ttl}
}

// GetExchangeRate tasa en caché; false si no está.
func (c *SettingsCache) GetExchangeRate(ctx context.Context) (decimal.Decimal, bool, error) {
	raw, ok, err := c.get(ctx, entity.SettingExchangeRate)
	if err != nil || !ok {
		return decimal.Zero, false, err
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("decode cached rate: %w", err)
	}
	return rate, true, nil
}

// SetExchangeRate guarda la tasa con el TTL de la caché.
func (c *SettingsCache) SetExchangeRate(ctx context.Context, rate decimal.Decimal) error {
	return c.set(ctx, entity.SettingExchangeRate, rate.String())
}

// GetWhatsapp número en caché; false si no está.
func (c *SettingsCache) GetWhatsapp(ctx context.Context) (string, bool, error) {
	return c.get(ctx, entity.SettingWhatsappNumber)
}

// SetWhatsapp guarda el número con el TTL de la caché.
func (c *SettingsCache) SetWhatsapp(ctx context.Context, number string) error {
	return c.set(ctx, entity.SettingWhatsappNumber, number)
}

// Invalidate borra ambas claves.
func (c *SettingsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx,
		settingsKeyPrefix+entity.SettingExchangeRate,
		settingsKeyPrefix+entity.SettingWhatsappNumber,
	).Err()
}

func (c *SettingsCache) get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, settingsKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *SettingsCache) set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, settingsKeyPrefix+key, value, c.ttl).Err()
}
