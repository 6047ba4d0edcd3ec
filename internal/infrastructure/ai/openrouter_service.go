package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openrouter "github.com/revrost/go-openrouter"
	"github.com/rs/zerolog"

	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/pkg/config"
)

// Verificar en tiempo de compilación que OpenRouterService implementa ChatService.
var _ ports.ChatService = (*OpenRouterService)(nil)

// ErrEmptyResponse el modelo no devolvió texto.
var ErrEmptyResponse = errors.New("AI: respuesta vacía del modelo")

// OpenRouterService adaptador de ChatService sobre la API de OpenRouter.
type OpenRouterService struct {
	client *openrouter.Client
	model  string
	logger zerolog.Logger
}

// NewOpenRouterService construye el adaptador. Devuelve nil si no hay API key:
// el caso de uso interpreta un servicio nil como "no configurado".
func NewOpenRouterService(cfg config.AIConfig, logger zerolog.Logger) *OpenRouterService {
	apiKey := strings.TrimSpace(cfg.OpenRouterAPIKey)
	if apiKey == "" {
		logger.Warn().Msg("OPENROUTER_API_KEY no configurado; el asesor responderá 500")
		return nil
	}
	clientCfg := openrouter.DefaultConfig(apiKey)
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		clientCfg.BaseURL = base
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &OpenRouterService{
		client: openrouter.NewClientWithConfig(*clientCfg),
		model:  cfg.Model,
		logger: logger,
	}
}

// Complete envía el prompt de sistema y el mensaje, y devuelve el texto de la primera opción.
func (s *OpenRouterService) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openrouter.ChatCompletionRequest{
		Model: s.model,
		Messages: []openrouter.ChatCompletionMessage{
			openrouter.SystemMessage(systemPrompt),
			openrouter.UserMessage(userMessage),
		},
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		s.logger.Error().Err(err).Str("model", s.model).Msg("llamada a OpenRouter fallida")
		return "", fmt.Errorf("AI: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content.Text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
