package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carpihogar-api/internal/application/usecase"
	"github.com/jhoicas/carpihogar-api/internal/domain"
)

type fakeChat struct {
	answer string
	err    error
	system string
}

func (f *fakeChat) Complete(_ context.Context, system, _ string) (string, error) {
	f.system = system
	return f.answer, f.err
}

func TestValidateMessage(t *testing.T) {
	_, err := usecase.ValidateMessage(strings.Repeat("a", 501))
	assert.ErrorIs(t, err, usecase.ErrInvalidMessage)

	_, err = usecase.ValidateMessage("")
	assert.ErrorIs(t, err, usecase.ErrInvalidMessage)

	_, err = usecase.ValidateMessage("   ")
	assert.ErrorIs(t, err, usecase.ErrInvalidMessage)

	_, err = usecase.ValidateMessage(42.0)
	assert.ErrorIs(t, err, usecase.ErrInvalidMessage)

	msg, err := usecase.ValidateMessage(strings.Repeat("ñ", 500))
	require.NoError(t, err)
	assert.Len(t, []rune(msg), 500)
}

func TestAdvisor_Ask(t *testing.T) {
	chat := &fakeChat{answer: "Use laminado HPL"}
	uc := usecase.NewAdvisorUseCase(chat, time.Second)

	got, err := uc.Ask(context.Background(), "¿Qué material para cocina?")
	require.NoError(t, err)
	assert.Equal(t, "Use laminado HPL", got)
	assert.Equal(t, usecase.AdvisorSystemPrompt, chat.system)
}

func TestAdvisor_SinConfiguracion(t *testing.T) {
	uc := usecase.NewAdvisorUseCase(nil, time.Second)
	_, err := uc.Ask(context.Background(), "hola")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestAdvisor_FalloDelProveedor(t *testing.T) {
	uc := usecase.NewAdvisorUseCase(&fakeChat{err: errors.New("upstream 502")}, time.Second)
	_, err := uc.Ask(context.Background(), "hola")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream 502")
}
