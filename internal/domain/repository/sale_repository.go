package repository

import (
	"context"

	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	// NextOrderNumber reserva el siguiente consecutivo de forma atómica.
	NextOrderNumber(ctx context.Context) (int64, error)
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Sale, error)
}
