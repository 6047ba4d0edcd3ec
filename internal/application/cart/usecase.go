package cart

import (
	"context"
	"strings"

	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/internal/domain"
	domaincart "github.com/jhoicas/carpihogar-api/internal/domain/cart"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

// UseCase operaciones sobre carritos persistidos. Cada cambio se guarda de inmediato.
type UseCase struct {
	store    ports.CartStore
	products repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(store ports.CartStore, products repository.ProductRepository) *UseCase {
	return &UseCase{store: store, products: products}
}

// Get carrito actual (vacío si no existe).
func (uc *UseCase) Get(ctx context.Context, cartID string) (*dto.CartResponse, error) {
	c, err := uc.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return toResponse(cartID, c), nil
}

// Add suma una unidad del producto. Solo productos existentes.
func (uc *UseCase) Add(ctx context.Context, cartID, productID string) (*dto.CartResponse, error) {
	c, err := uc.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	c.Add(p)
	return uc.save(ctx, cartID, c)
}

// UpdateQuantity fija la cantidad; n <= 0 elimina la línea.
func (uc *UseCase) UpdateQuantity(ctx context.Context, cartID, productID string, n int) (*dto.CartResponse, error) {
	c, err := uc.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	c.UpdateQuantity(productID, n)
	return uc.save(ctx, cartID, c)
}

// Remove quita el producto del carrito.
func (uc *UseCase) Remove(ctx context.Context, cartID, productID string) (*dto.CartResponse, error) {
	c, err := uc.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	c.Remove(productID)
	return uc.save(ctx, cartID, c)
}

// Clear vacía el carrito.
func (uc *UseCase) Clear(ctx context.Context, cartID string) error {
	if strings.TrimSpace(cartID) == "" {
		return domain.ErrInvalidInput
	}
	return uc.store.Delete(ctx, cartID)
}

func (uc *UseCase) load(ctx context.Context, cartID string) (*domaincart.Cart, error) {
	if strings.TrimSpace(cartID) == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.store.Get(ctx, cartID)
}

func (uc *UseCase) save(ctx context.Context, cartID string, c *domaincart.Cart) (*dto.CartResponse, error) {
	if err := uc.store.Save(ctx, cartID, c); err != nil {
		return nil, err
	}
	return toResponse(cartID, c), nil
}

func toResponse(cartID string, c *domaincart.Cart) *dto.CartResponse {
	items := c.Items
	if items == nil {
		items = []domaincart.Item{}
	}
	return &dto.CartResponse{
		CartID:     cartID,
		Items:      items,
		ItemCount:  c.ItemCount(),
		TotalPrice: c.TotalPrice(),
	}
}
