package repository

import (
	"context"

	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas de proveedor.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Invoice, error)
	UpdatePayment(ctx context.Context, invoice *entity.Invoice) error
	ListByProvider(ctx context.Context, providerID string) ([]*entity.Invoice, error)
	List(ctx context.Context) ([]*entity.Invoice, error)
}

// PaymentRepository define el puerto de persistencia para abonos.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListByInvoice(ctx context.Context, invoiceID string) ([]*entity.Payment, error)
}
