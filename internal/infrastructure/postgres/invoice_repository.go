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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)
var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// InvoiceRepo facturas de proveedor.
type InvoiceRepo struct {
	db Querier
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas.
func NewInvoiceRepository(db Querier) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

const invoiceColumns = `id, provider_id, numero, total, paid_amount, estado, issued_at, due_date, adjunto,
	created_at, updated_at`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var i entity.Invoice
	err := row.Scan(&i.ID, &i.ProviderID, &i.Numero, &i.Total, &i.PaidAmount, &i.Estado,
		&i.IssuedAt, &i.DueDate, &i.Adjunto, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste la factura.
func (r *InvoiceRepo) Create(ctx context.Context, i *entity.Invoice) error {
	query := `INSERT INTO invoices (` + invoiceColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		i.ID, i.ProviderID, i.Numero, i.Total, i.PaidAmount, i.Estado, i.IssuedAt, i.DueDate, i.Adjunto,
		i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
}

// GetForUpdate obtiene la factura bloqueando la fila para registrar un abono.
func (r *InvoiceRepo) GetForUpdate(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, id)
}

func (r *InvoiceRepo) getOne(ctx context.Context, query, id string) (*entity.Invoice, error) {
	i, err := scanInvoice(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return i, nil
}

// UpdatePayment guarda el monto abonado y el estado resultante.
func (r *InvoiceRepo) UpdatePayment(ctx context.Context, i *entity.Invoice) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE invoices SET paid_amount = $2, estado = $3, updated_at = now() WHERE id = $1`,
		i.ID, i.PaidAmount, i.Estado)
	if err != nil {
		return fmt.Errorf("update invoice payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByProvider devuelve las facturas del proveedor ordenadas por vencimiento.
func (r *InvoiceRepo) ListByProvider(ctx context.Context, providerID string) ([]*entity.Invoice, error) {
	return r.list(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE provider_id = $1 ORDER BY due_date`, providerID)
}

// List devuelve todas las facturas ordenadas por vencimiento.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	return r.list(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY due_date`)
}

func (r *InvoiceRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		i, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// PaymentRepo abonos a facturas.
type PaymentRepo struct {
	db Querier
}

// NewPaymentRepository construye el adaptador de persistencia para abonos.
func NewPaymentRepository(db Querier) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// Create persiste el abono.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, invoice_id, monto, metodo, referencia, fecha, adjunto, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.InvoiceID, p.Monto, p.Metodo, p.Referencia, p.Fecha, p.Adjunto, p.CreatedBy, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListByInvoice devuelve los abonos de la factura en orden cronológico.
func (r *PaymentRepo) ListByInvoice(ctx context.Context, invoiceID string) ([]*entity.Payment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, invoice_id, monto, metodo, referencia, fecha, adjunto, created_by, created_at
		FROM payments WHERE invoice_id = $1 ORDER BY fecha`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.Monto, &p.Metodo, &p.Referencia, &p.Fecha, &p.Adjunto, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
