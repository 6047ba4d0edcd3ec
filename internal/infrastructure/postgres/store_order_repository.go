package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/carpihogar-api/internal/domain"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

var _ repository.StoreOrderRepository = (*StoreOrderRepo)(nil)

// StoreOrderRepo pedidos de la tienda en línea.
type StoreOrderRepo struct {
	db Querier
}

// NewStoreOrderRepository construye el adaptador de persistencia para pedidos.
func NewStoreOrderRepository(db Querier) *StoreOrderRepo {
	return &StoreOrderRepo{db: db}
}

const orderColumns = `id, client, items, payment, total, status, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.StoreOrder, error) {
	var o entity.StoreOrder
	err := row.Scan(&o.ID, &o.Client, &o.Items, &o.Payment, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste el pedido.
func (r *StoreOrderRepo) Create(ctx context.Context, o *entity.StoreOrder) error {
	query := `INSERT INTO store_orders (` + orderColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		o.ID, o.Client, o.Items, o.Payment, o.Total, o.Status, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert store order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *StoreOrderRepo) GetByID(ctx context.Context, id string) (*entity.StoreOrder, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM store_orders WHERE id = $1`, id)
}

// GetForUpdate obtiene el pedido bloqueando la fila.
func (r *StoreOrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.StoreOrder, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM store_orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *StoreOrderRepo) getOne(ctx context.Context, query, id string) (*entity.StoreOrder, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store order: %w", err)
	}
	return o, nil
}

// UpdateStatus cambia el estado del pedido.
func (r *StoreOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.db.Exec(ctx, `UPDATE store_orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update store order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los pedidos del más reciente al más antiguo.
func (r *StoreOrderRepo) List(ctx context.Context) ([]*entity.StoreOrder, error) {
	rows, err := r.db.Query(ctx, `SELECT `+orderColumns+` FROM store_orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list store orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.StoreOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
