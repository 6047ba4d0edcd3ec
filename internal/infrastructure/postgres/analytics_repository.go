package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo conteos de solo lectura para el tablero.
// Usa el pool directamente: el tablero lanza las cuatro consultas en paralelo.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountSales total de ventas registradas.
func (r *AnalyticsRepo) CountSales(ctx context.Context) (int64, error) {
	return r.count(ctx, "sales")
}

// CountProducts total de productos del catálogo.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, "products")
}

// CountUsers total de usuarios.
func (r *AnalyticsRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, "users")
}

// CountProviders total de proveedores.
func (r *AnalyticsRepo) CountProviders(ctx context.Context) (int64, error) {
	return r.count(ctx, "providers")
}

// count recibe solo nombres de tabla fijos de este archivo.
func (r *AnalyticsRepo) count(ctx context.Context, table string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
