package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura de proveedor.
const (
	InvoiceStatusPendiente = "Pendiente"
	InvoiceStatusParcial   = "Parcial"
	InvoiceStatusPagada    = "Pagada"
)

// Invoice factura de un proveedor (cuentas por pagar).
type Invoice struct {
	ID         string
	ProviderID string
	Numero     string
	Total      decimal.Decimal
	PaidAmount decimal.Decimal
	Estado     string
	IssuedAt   time.Time
	DueDate    time.Time
	Adjunto    string // URL del archivo de la factura
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ApplyPayment suma el monto abonado y recalcula el estado.
func (i *Invoice) ApplyPayment(monto decimal.Decimal) {
	i.PaidAmount = i.PaidAmount.Add(monto)
	if i.PaidAmount.GreaterThanOrEqual(i.Total) {
		i.Estado = InvoiceStatusPagada
	} else {
		i.Estado = InvoiceStatusParcial
	}
}

// DaysOverdue días completos transcurridos desde el vencimiento (0 si no ha vencido).
func (i *Invoice) DaysOverdue(now time.Time) int {
	if i.DueDate.IsZero() || !now.After(i.DueDate) {
		return 0
	}
	return int(now.Sub(i.DueDate).Hours() / 24)
}

// IsOverdue factura vencida y no pagada.
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.Estado != InvoiceStatusPagada && i.DaysOverdue(now) > 0
}

// Balance saldo pendiente.
func (i *Invoice) Balance() decimal.Decimal {
	b := i.Total.Sub(i.PaidAmount)
	if b.IsNegative() {
		return decimal.Zero
	}
	return b
}
