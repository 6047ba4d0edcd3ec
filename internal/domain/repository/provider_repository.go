package repository

import (
	"context"

	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
)

// ProviderRepository define el puerto de persistencia para proveedores y sus pedidos.
type ProviderRepository interface {
	Create(ctx context.Context, provider *entity.Provider) error
	GetByID(ctx context.Context, id string) (*entity.Provider, error)
	Update(ctx context.Context, provider *entity.Provider) error
	List(ctx context.Context) ([]*entity.Provider, error)
	Delete(ctx context.Context, id string) error
	ListOrders(ctx context.Context, providerID string) ([]*entity.ProviderOrder, error)
}
