package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carpihogar-api/pkg/config"
)

func TestNewOpenRouterService_SinKeyDevuelveNil(t *testing.T) {
	svc := NewOpenRouterService(config.AIConfig{}, zerolog.Nop())
	assert.Nil(t, svc)
}

func TestComplete_EnviaPromptsYLeeRespuesta(t *testing.T) {
	var body struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer clave", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","choices":[{"index":0,"message":{"role":"assistant","content":"  Use madera de pino.  "}}]}`))
	}))
	defer srv.Close()

	svc := NewOpenRouterService(config.AIConfig{
		OpenRouterAPIKey: "clave",
		Model:            "openai/gpt-3.5-turbo",
		BaseURL:          srv.URL,
		Timeout:          5 * time.Second,
	}, zerolog.Nop())
	require.NotNil(t, svc)

	answer, err := svc.Complete(context.Background(), "Eres un asesor", "¿Qué madera uso?")
	require.NoError(t, err)
	assert.Equal(t, "Use madera de pino.", answer)
	assert.Equal(t, "openai/gpt-3.5-turbo", body.Model)
	require.Len(t, body.Messages, 2)
	assert.Equal(t, "system", body.Messages[0].Role)
	assert.Equal(t, "¿Qué madera uso?", body.Messages[1].Content)
}

func TestComplete_ErrorUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","code":500}}`))
	}))
	defer srv.Close()

	svc := NewOpenRouterService(config.AIConfig{OpenRouterAPIKey: "k", Model: "m", BaseURL: srv.URL, Timeout: time.Second}, zerolog.Nop())
	_, err := svc.Complete(context.Background(), "s", "u")
	assert.Error(t, err)
}

func TestComplete_SinOpciones(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","choices":[]}`))
	}))
	defer srv.Close()

	svc := NewOpenRouterService(config.AIConfig{OpenRouterAPIKey: "k", Model: "m", BaseURL: srv.URL, Timeout: time.Second}, zerolog.Nop())
	_, err := svc.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}
