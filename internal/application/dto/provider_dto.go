package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProviderContactDTO contacto de un proveedor.
type ProviderContactDTO struct {
	Nombre   string `json:"nombre" validate:"required"`
	Cargo    string `json:"cargo,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// ProviderRequest alta o edición de proveedor. NotasInternas se ignora si el rol no es root/admin.
type ProviderRequest struct {
	Codigo        string               `json:"codigo" validate:"required,max=30"`
	Nombre        string               `json:"nombre" validate:"required,min=1,max=200"`
	RIF           string               `json:"rif" validate:"omitempty,max=30"`
	Direccion     string               `json:"direccion"`
	Telefono      string               `json:"telefono"`
	Email         string               `json:"email" validate:"omitempty,email"`
	Descripcion   string               `json:"descripcion" validate:"omitempty,max=1000"`
	Contactos     []ProviderContactDTO `json:"contactos" validate:"omitempty,dive"`
	NotasInternas *string              `json:"notas_internas"`
}

// ProviderResponse salida de un proveedor. NotasInternas se omite para roles sin acceso.
type ProviderResponse struct {
	ID            string               `json:"id"`
	Codigo        string               `json:"codigo"`
	Nombre        string               `json:"nombre"`
	RIF           string               `json:"rif"`
	Direccion     string               `json:"direccion"`
	Telefono      string               `json:"telefono"`
	Email         string               `json:"email"`
	Descripcion   string               `json:"descripcion"`
	Contactos     []ProviderContactDTO `json:"contactos"`
	NotasInternas *string              `json:"notas_internas,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// ProviderOrderResponse pedido hecho al proveedor.
type ProviderOrderResponse struct {
	ID          string    `json:"id"`
	Descripcion string    `json:"descripcion"`
	Estado      string    `json:"estado"`
	Fecha       time.Time `json:"fecha"`
}

// ProviderDetailResponse proveedor con sus facturas y pedidos.
type ProviderDetailResponse struct {
	Provider ProviderResponse        `json:"provider"`
	Invoices []InvoiceResponse       `json:"invoices"`
	Orders   []ProviderOrderResponse `json:"orders"`
}

// CreateInvoiceRequest registro de una factura de proveedor.
type CreateInvoiceRequest struct {
	ProviderID string          `json:"provider_id" validate:"required"`
	Numero     string          `json:"numero" validate:"required,max=50"`
	Total      decimal.Decimal `json:"total"`
	IssuedAt   time.Time       `json:"issued_at" validate:"required"`
	DueDate    time.Time       `json:"due_date" validate:"required"`
	Adjunto    string          `json:"adjunto" validate:"omitempty,url"`
}

// InvoiceResponse salida de una factura de proveedor.
type InvoiceResponse struct {
	ID          string          `json:"id"`
	ProviderID  string          `json:"provider_id"`
	Numero      string          `json:"numero"`
	Total       decimal.Decimal `json:"total"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	Balance     decimal.Decimal `json:"balance"`
	Estado      string          `json:"estado"`
	IssuedAt    time.Time       `json:"issued_at"`
	DueDate     time.Time       `json:"due_date"`
	Overdue     bool            `json:"overdue"`
	DaysOverdue int             `json:"days_overdue"`
	Adjunto     string          `json:"adjunto,omitempty"`
}

// RegisterPaymentRequest abono a una factura.
type RegisterPaymentRequest struct {
	Monto      decimal.Decimal `json:"monto"`
	Metodo     string          `json:"metodo" validate:"required"`
	Referencia string          `json:"referencia"`
	Fecha      *time.Time      `json:"fecha"`
	Adjunto    string          `json:"adjunto" validate:"omitempty,url"`
}

// PaymentResponse salida de un abono.
type PaymentResponse struct {
	ID         string          `json:"id"`
	InvoiceID  string          `json:"invoice_id"`
	Monto      decimal.Decimal `json:"monto"`
	Metodo     string          `json:"metodo"`
	Referencia string          `json:"referencia"`
	Fecha      time.Time       `json:"fecha"`
	Adjunto    string          `json:"adjunto,omitempty"`
	CreatedBy  string          `json:"created_by"`
}

// RegisterPaymentResponse abono registrado y factura actualizada.
type RegisterPaymentResponse struct {
	Payment PaymentResponse `json:"payment"`
	Invoice InvoiceResponse `json:"invoice"`
}
