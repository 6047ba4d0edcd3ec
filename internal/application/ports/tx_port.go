package ports

import (
	"context"

	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Products repository.ProductRepository
	Sales    repository.SaleRepository
	Orders   repository.StoreOrderRepository
	Invoices repository.InvoiceRepository
	Payments repository.PaymentRepository
}

// TxRunner ejecuta fn dentro de una transacción de BD. Si fn retorna error se hace rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
