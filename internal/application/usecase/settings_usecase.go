package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/internal/domain"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

// SettingsUseCase lectura y escritura de la configuración global (tasa de cambio y WhatsApp).
// Las lecturas pasan primero por la caché; las escrituras la invalidan.
type SettingsUseCase struct {
	repo  repository.SettingsRepository
	cache ports.SettingsCache
	log   zerolog.Logger
}

// NewSettingsUseCase construye el caso de uso. cache puede ser nil.
func NewSettingsUseCase(repo repository.SettingsRepository, cache ports.SettingsCache, log zerolog.Logger) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, cache: cache, log: log}
}

// ExchangeRate tasa vigente. found=false si nunca se configuró.
func (uc *SettingsUseCase) ExchangeRate(ctx context.Context) (decimal.Decimal, bool, error) {
	if uc.cache != nil {
		rate, ok, err := uc.cache.GetExchangeRate(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Msg("caché de settings no disponible")
		} else if ok {
			return rate, true, nil
		}
	}
	rate, found, err := uc.repo.GetExchangeRate(ctx)
	if err != nil || !found {
		return rate, found, err
	}
	if uc.cache != nil {
		if err := uc.cache.SetExchangeRate(ctx, rate); err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo cachear la tasa de cambio")
		}
	}
	return rate, true, nil
}

// GetExchangeRate igual que ExchangeRate pero con ErrNotFound si no está configurada.
func (uc *SettingsUseCase) GetExchangeRate(ctx context.Context) (*dto.ExchangeRateDTO, error) {
	rate, found, err := uc.ExchangeRate(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return &dto.ExchangeRateDTO{ExchangeRate: rate}, nil
}

// SetExchangeRate guarda la tasa. Debe ser mayor que cero.
func (uc *SettingsUseCase) SetExchangeRate(ctx context.Context, in dto.ExchangeRateDTO) (*dto.ExchangeRateDTO, error) {
	if !in.ExchangeRate.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.SetExchangeRate(ctx, in.ExchangeRate); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return &dto.ExchangeRateDTO{ExchangeRate: in.ExchangeRate}, nil
}

// GetWhatsapp número de contacto configurado.
func (uc *SettingsUseCase) GetWhatsapp(ctx context.Context) (*dto.WhatsappDTO, error) {
	if uc.cache != nil {
		n, ok, err := uc.cache.GetWhatsapp(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Msg("caché de settings no disponible")
		} else if ok {
			return &dto.WhatsappDTO{WhatsappNumber: n}, nil
		}
	}
	n, found, err := uc.repo.GetWhatsapp(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	if uc.cache != nil {
		if err := uc.cache.SetWhatsapp(ctx, n); err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo cachear el número de WhatsApp")
		}
	}
	return &dto.WhatsappDTO{WhatsappNumber: n}, nil
}

// SetWhatsapp guarda el número. No puede quedar vacío.
func (uc *SettingsUseCase) SetWhatsapp(ctx context.Context, in dto.WhatsappDTO) (*dto.WhatsappDTO, error) {
	n := strings.TrimSpace(in.WhatsappNumber)
	if n == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.SetWhatsapp(ctx, n); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return &dto.WhatsappDTO{WhatsappNumber: n}, nil
}

func (uc *SettingsUseCase) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo invalidar la caché de settings")
	}
}
