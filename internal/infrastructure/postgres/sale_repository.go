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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas de mostrador; los ítems se guardan como JSONB.
type SaleRepo struct {
	db Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(db Querier) *SaleRepo {
	return &SaleRepo{db: db}
}

const saleColumns = `id, order_number, seller_id, seller_name, client_name, client_id, client_phone,
	client_address, items, exchange_rate, total_bs, created_at`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.OrderNumber, &s.SellerID, &s.SellerName, &s.ClientName, &s.ClientID, &s.ClientPhone,
		&s.ClientAddr, &s.Items, &s.ExchangeRate, &s.TotalBs, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// NextOrderNumber toma el siguiente valor de la secuencia. Los huecos por rollback son aceptables.
func (r *SaleRepo) NextOrderNumber(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('sale_order_seq')`).Scan(&n); err != nil {
		return 0, fmt.Errorf("next order number: %w", err)
	}
	return n, nil
}

// Create persiste la venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.OrderNumber, s.SellerID, s.SellerName, s.ClientName, s.ClientID, s.ClientPhone,
		s.ClientAddr, s.Items, s.ExchangeRate, s.TotalBs, s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := scanSale(r.db.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// List devuelve todas las ventas, más recientes primero.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY created_at DESC`)
}

// ListBySeller devuelve las ventas de un vendedor.
func (r *SaleRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sales WHERE seller_id = $1 ORDER BY created_at DESC`, sellerID)
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
