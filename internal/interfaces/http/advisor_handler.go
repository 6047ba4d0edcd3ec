package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/application/usecase"
	"github.com/jhoicas/carpihogar-api/internal/domain"
)

// AdvisorHandler asesor de decoración. Responde {response} o {error}.
type AdvisorHandler struct {
	uc *usecase.AdvisorUseCase
}

// NewAdvisorHandler construye el handler.
func NewAdvisorHandler(uc *usecase.AdvisorUseCase) *AdvisorHandler {
	return &AdvisorHandler{uc: uc}
}

// Ask godoc
// @Summary      Consultar al asesor
// @Tags         advisor
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdvisorRequest  true  "Mensaje de hasta 500 caracteres"
// @Success      200   {object}  dto.AdvisorResponse
// @Failure      400   {object}  dto.AdvisorError
// @Failure      405   {object}  dto.AdvisorError
// @Failure      500   {object}  dto.AdvisorError
// @Router       /api/advisor [post]
func (h *AdvisorHandler) Ask(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.AdvisorError{Error: "Method not allowed"})
	}
	var in dto.AdvisorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.AdvisorError{Error: usecase.ErrInvalidMessage.Error()})
	}
	answer, err := h.uc.Ask(c.Context(), in.Message)
	switch {
	case err == nil:
		return c.JSON(dto.AdvisorResponse{Response: answer})
	case errors.Is(err, usecase.ErrInvalidMessage):
		return c.Status(fiber.StatusBadRequest).JSON(dto.AdvisorError{Error: err.Error()})
	case errors.Is(err, domain.ErrNotConfigured):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.AdvisorError{Error: "Missing API key"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.AdvisorError{Error: "Failed to get a response from the advisor"})
	}
}
