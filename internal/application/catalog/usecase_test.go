package catalog_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carpihogar-api/internal/application/catalog"
	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/application/usecase"
	"github.com/jhoicas/carpihogar-api/internal/domain"
	domaincatalog "github.com/jhoicas/carpihogar-api/internal/domain/catalog"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/infrastructure/memory"
)

func TestCatalog_BuscaYConvierteABs(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "1", Codigo: "BIS", Nombre: "Bisagra X", Categoria: "Herrajes", Marca: "Hafele", Precio: decimal.NewFromInt(10), Stock: 3}))
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "2", Codigo: "GRI", Nombre: "Grifo", Categoria: "Griferías", Marca: "Grival", Precio: decimal.NewFromInt(30)}))
	require.NoError(t, store.Settings().SetExchangeRate(ctx, decimal.NewFromInt(40)))
	settings := usecase.NewSettingsUseCase(store.Settings(), nil, zerolog.Nop())
	uc := catalog.NewUseCase(store.Products(), settings, domaincatalog.DefaultTree())

	got, err := uc.Search(ctx, dto.CatalogQuery{Search: "Carpintería"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
	require.NotNil(t, got[0].PrecioBs)
	assert.Equal(t, "400", got[0].PrecioBs.String())

	got, err = uc.Search(ctx, dto.CatalogQuery{MinPrice: "20"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	_, err = uc.Search(ctx, dto.CatalogQuery{MaxPrice: "abc"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	brands, err := uc.Brands(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Hafele", "Grival"}, brands)
}
