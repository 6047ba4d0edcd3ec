package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/application/usecase"
)

// SettingsHandler tasa de cambio y número de WhatsApp.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetExchangeRate GET /api/settings/exchange-rate
func (h *SettingsHandler) GetExchangeRate(c *fiber.Ctx) error {
	out, err := h.uc.GetExchangeRate(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetExchangeRate godoc
// @Summary      Actualizar tasa Bs/USD
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExchangeRateDTO  true  "Tasa mayor que cero"
// @Success      200   {object}  dto.ExchangeRateDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/exchange-rate [put]
func (h *SettingsHandler) SetExchangeRate(c *fiber.Ctx) error {
	var in dto.ExchangeRateDTO
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.SetExchangeRate(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetWhatsapp GET /api/settings/whatsapp
func (h *SettingsHandler) GetWhatsapp(c *fiber.Ctx) error {
	out, err := h.uc.GetWhatsapp(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetWhatsapp PUT /api/settings/whatsapp
func (h *SettingsHandler) SetWhatsapp(c *fiber.Ctx) error {
	var in dto.WhatsappDTO
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.SetWhatsapp(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
