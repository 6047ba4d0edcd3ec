package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateCommission(ctx context.Context, id string, rate decimal.Decimal) error
	SetResetToken(ctx context.Context, id, token string, expires time.Time) error
	List(ctx context.Context) ([]*entity.User, error)
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
}

// RoleFieldsRepository lee los campos de rol de las dos colecciones de usuarios.
// found=false cuando el id no existe en esa colección.
type RoleFieldsRepository interface {
	FindInUsers(ctx context.Context, id string) (fields entity.RoleFields, found bool, err error)
	FindInLegacy(ctx context.Context, id string) (fields entity.RoleFields, found bool, err error)
}
