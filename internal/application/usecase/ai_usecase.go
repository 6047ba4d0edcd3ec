package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/internal/domain"
)

// MaxAdvisorMessageLength largo máximo del mensaje del usuario, en caracteres.
const MaxAdvisorMessageLength = 500

// AdvisorSystemPrompt instrucción fija del asesor.
const AdvisorSystemPrompt = "Eres un asesor experto en decoración y materiales de fabricación."

// ErrInvalidMessage mensaje vacío, no textual o demasiado largo.
var ErrInvalidMessage = errors.New("Invalid message")

// AdvisorUseCase asesor de decoración por chat.
type AdvisorUseCase struct {
	chat    ports.ChatService
	timeout time.Duration
}

// NewAdvisorUseCase construye el caso de uso. chat puede ser nil si no hay API key configurada.
func NewAdvisorUseCase(chat ports.ChatService, timeout time.Duration) *AdvisorUseCase {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &AdvisorUseCase{chat: chat, timeout: timeout}
}

// ValidateMessage acepta solo texto no vacío de hasta 500 caracteres.
func ValidateMessage(raw any) (string, error) {
	msg, ok := raw.(string)
	if !ok || strings.TrimSpace(msg) == "" || utf8.RuneCountInString(msg) > MaxAdvisorMessageLength {
		return "", ErrInvalidMessage
	}
	return msg, nil
}

// Ask valida el mensaje y consulta al servicio de chat.
func (uc *AdvisorUseCase) Ask(ctx context.Context, raw any) (string, error) {
	msg, err := ValidateMessage(raw)
	if err != nil {
		return "", err
	}
	if uc.chat == nil {
		return "", domain.ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	answer, err := uc.chat.Complete(ctx, AdvisorSystemPrompt, msg)
	if err != nil {
		return "", fmt.Errorf("asesor: %w", err)
	}
	return answer, nil
}
