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

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo proveedores; los contactos se guardan como JSONB.
type ProviderRepo struct {
	db Querier
}

// NewProviderRepository construye el adaptador de persistencia para proveedores.
func NewProviderRepository(db Querier) *ProviderRepo {
	return &ProviderRepo{db: db}
}

const providerColumns = `id, codigo, nombre, rif, direccion, telefono, email, descripcion, contactos, notas_internas,
	created_at, updated_at`

func scanProvider(row pgx.Row) (*entity.Provider, error) {
	var p entity.Provider
	err := row.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.RIF, &p.Direccion, &p.Telefono, &p.Email, &p.Descripcion,
		&p.Contactos, &p.NotasInternas, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func contactsOrEmpty(c []entity.ProviderContact) []entity.ProviderContact {
	if c == nil {
		return []entity.ProviderContact{}
	}
	return c
}

// Create persiste el proveedor.
func (r *ProviderRepo) Create(ctx context.Context, p *entity.Provider) error {
	query := `INSERT INTO providers (` + providerColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Codigo, p.Nombre, p.RIF, p.Direccion, p.Telefono, p.Email, p.Descripcion,
		contactsOrEmpty(p.Contactos), p.NotasInternas, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert provider: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProviderRepo) GetByID(ctx context.Context, id string) (*entity.Provider, error) {
	p, err := scanProvider(r.db.QueryRow(ctx, `SELECT `+providerColumns+` FROM providers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}
	return p, nil
}

// Update actualiza el proveedor completo, notas incluidas.
func (r *ProviderRepo) Update(ctx context.Context, p *entity.Provider) error {
	query := `
		UPDATE providers SET codigo = $2, nombre = $3, rif = $4, direccion = $5, telefono = $6, email = $7,
			descripcion = $8, contactos = $9, notas_internas = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		p.ID, p.Codigo, p.Nombre, p.RIF, p.Direccion, p.Telefono, p.Email,
		p.Descripcion, contactsOrEmpty(p.Contactos), p.NotasInternas, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update provider: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los proveedores ordenados por nombre.
func (r *ProviderRepo) List(ctx context.Context) ([]*entity.Provider, error) {
	rows, err := r.db.Query(ctx, `SELECT `+providerColumns+` FROM providers ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Provider
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina el proveedor; sus pedidos y facturas caen en cascada.
func (r *ProviderRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM providers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete provider: %w", err)
	}
	return nil
}

// ListOrders devuelve el historial de pedidos al proveedor, más recientes primero.
func (r *ProviderRepo) ListOrders(ctx context.Context, providerID string) ([]*entity.ProviderOrder, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, provider_id, descripcion, estado, fecha FROM provider_orders WHERE provider_id = $1 ORDER BY fecha DESC`,
		providerID)
	if err != nil {
		return nil, fmt.Errorf("list provider orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProviderOrder
	for rows.Next() {
		var o entity.ProviderOrder
		if err := rows.Scan(&o.ID, &o.ProviderID, &o.Descripcion, &o.Estado, &o.Fecha); err != nil {
			return nil, fmt.Errorf("scan provider order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
