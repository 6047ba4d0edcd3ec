package catalog

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/application/usecase"
	"github.com/jhoicas/carpihogar-api/internal/domain"
	domaincatalog "github.com/jhoicas/carpihogar-api/internal/domain/catalog"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

// RateSource tasa de cambio vigente.
type RateSource interface {
	ExchangeRate(ctx context.Context) (decimal.Decimal, bool, error)
}

// UseCase vista de catálogo de la tienda.
type UseCase struct {
	products repository.ProductRepository
	rates    RateSource
	tree     []domaincatalog.Category
	engine   *domaincatalog.Engine
}

// NewUseCase construye el catálogo con el árbol de navegación dado.
func NewUseCase(products repository.ProductRepository, rates RateSource, tree []domaincatalog.Category) *UseCase {
	return &UseCase{
		products: products,
		rates:    rates,
		tree:     tree,
		engine:   domaincatalog.NewEngine(tree),
	}
}

// Search aplica los filtros sobre el catálogo completo.
func (uc *UseCase) Search(ctx context.Context, q dto.CatalogQuery) ([]dto.ProductResponse, error) {
	state, err := toFilterState(q)
	if err != nil {
		return nil, err
	}
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	rate := uc.rate(ctx)
	filtered := uc.engine.Filter(list, state)
	out := make([]dto.ProductResponse, 0, len(filtered))
	for _, p := range filtered {
		out = append(out, *usecase.ToProductResponse(p, rate))
	}
	return out, nil
}

// Categories árbol de navegación.
func (uc *UseCase) Categories() []domaincatalog.Category {
	return uc.tree
}

// Brands marcas presentes en el catálogo.
func (uc *UseCase) Brands(ctx context.Context) ([]string, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	brands := domaincatalog.Brands(list)
	if brands == nil {
		brands = []string{}
	}
	return brands, nil
}

// Product detalle con precio en Bs si hay tasa.
func (uc *UseCase) Product(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return usecase.ToProductResponse(p, uc.rate(ctx)), nil
}

// rate devuelve nil si no hay tasa configurada o no se pudo leer; el catálogo sigue en USD.
func (uc *UseCase) rate(ctx context.Context) *decimal.Decimal {
	if uc.rates == nil {
		return nil
	}
	r, ok, err := uc.rates.ExchangeRate(ctx)
	if err != nil || !ok {
		return nil
	}
	return &r
}

func toFilterState(q dto.CatalogQuery) (domaincatalog.FilterState, error) {
	state := domaincatalog.FilterState{
		Search:   q.Search,
		Category: q.Category,
		Brand:    q.Brand,
		InStock:  q.InStock,
	}
	var err error
	if state.MinPrice, err = parsePrice(q.MinPrice); err != nil {
		return state, err
	}
	if state.MaxPrice, err = parsePrice(q.MaxPrice); err != nil {
		return state, err
	}
	return state, nil
}

func parsePrice(raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &d, nil
}
