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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	db Querier
}

// NewProductRepository construye el adaptador; db puede ser el pool o una transacción.
func NewProductRepository(db Querier) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `id, codigo, nombre, descripcion, categoria, marca, proveedor,
	precio, precio_mayor, precio_aliados, precio_cliente, stock, stock_minimo, imagenes,
	created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.Categoria, &p.Marca, &p.Proveedor,
		&p.Precio, &p.PrecioMayor, &p.PrecioAliados, &p.PrecioCliente, &p.Stock, &p.StockMinimo, &p.Imagenes,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto. El código es único.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	images := p.Imagenes
	if images == nil {
		images = []string{}
	}
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.Categoria, p.Marca, p.Proveedor,
		p.Precio, p.PrecioMayor, p.PrecioAliados, p.PrecioCliente, p.Stock, p.StockMinimo, images,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetByCodigo obtiene un producto por código de inventario.
func (r *ProductRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE codigo = $1`, codigo)
}

// GetForUpdate obtiene el producto con bloqueo de fila (solo tiene efecto dentro de una tx).
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductRepo) getOne(ctx context.Context, query string, arg string) (*entity.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza los datos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET codigo = $2, nombre = $3, descripcion = $4, categoria = $5, marca = $6,
			proveedor = $7, precio = $8, precio_mayor = $9, precio_aliados = $10, precio_cliente = $11,
			stock = $12, stock_minimo = $13, updated_at = $14
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.Categoria, p.Marca,
		p.Proveedor, p.Precio, p.PrecioMayor, p.PrecioAliados, p.PrecioCliente,
		p.Stock, p.StockMinimo, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija el stock del producto.
func (r *ProductRepo) UpdateStock(ctx context.Context, id string, stock int) error {
	tag, err := r.db.Exec(ctx, `UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`, id, stock)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("update product stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateImages reemplaza la lista de imágenes del producto.
func (r *ProductRepo) UpdateImages(ctx context.Context, id string, images []string) error {
	if images == nil {
		images = []string{}
	}
	tag, err := r.db.Exec(ctx, `UPDATE products SET imagenes = $2, updated_at = now() WHERE id = $1`, id, images)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrTooManyImages
		}
		return fmt.Errorf("update product images: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los productos ordenados por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina el producto. No falla si no existe.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
