package cart_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carpihogar-api/internal/application/cart"
	"github.com/jhoicas/carpihogar-api/internal/domain"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/infrastructure/memory"
)

func newCart(t *testing.T) *cart.UseCase {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "a", Codigo: "A", Nombre: "A", Precio: decimal.NewFromInt(10)}))
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "b", Codigo: "B", Nombre: "B", Precio: decimal.NewFromInt(15)}))
	return cart.NewUseCase(memory.NewCartStore(), store.Products())
}

func TestCartUseCase_PersisteCadaCambio(t *testing.T) {
	uc := newCart(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, "c1", "a")
	require.NoError(t, err)
	_, err = uc.Add(ctx, "c1", "a")
	require.NoError(t, err)
	_, err = uc.Add(ctx, "c1", "b")
	require.NoError(t, err)

	got, err := uc.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.ItemCount)
	assert.True(t, got.TotalPrice.Equal(decimal.NewFromInt(35)))

	got, err = uc.UpdateQuantity(ctx, "c1", "a", 0)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "b", got.Items[0].ProductID)

	require.NoError(t, uc.Clear(ctx, "c1"))
	got, err = uc.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestCartUseCase_ProductoInexistente(t *testing.T) {
	uc := newCart(t)
	_, err := uc.Add(context.Background(), "c1", "zzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
