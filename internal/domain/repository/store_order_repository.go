package repository

import (
	"context"

	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
)

// StoreOrderRepository define el puerto de persistencia para los pedidos de la tienda.
type StoreOrderRepository interface {
	Create(ctx context.Context, order *entity.StoreOrder) error
	GetByID(ctx context.Context, id string) (*entity.StoreOrder, error)
	GetForUpdate(ctx context.Context, id string) (*entity.StoreOrder, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// List devuelve los pedidos del más reciente al más antiguo.
	List(ctx context.Context) ([]*entity.StoreOrder, error)
}
