package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment abono a una factura de proveedor.
type Payment struct {
	ID         string
	InvoiceID  string
	Monto      decimal.Decimal
	Metodo     string
	Referencia string
	Fecha      time.Time
	Adjunto    string // URL del comprobante
	CreatedBy  string
	CreatedAt  time.Time
}
