package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User.
const (
	RoleRoot      = "root"
	RoleAdmin     = "admin"
	RoleVendedor  = "vendedor"
	RoleDespacho  = "despacho"
	RoleEcommerce = "ecommerce"
	RoleCliente   = "cliente"
)

// Estados de la cuenta.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa una cuenta del sistema. Comision aplica solo al rol vendedor (porcentaje).
type User struct {
	ID           string
	Nombre       string
	Email        string
	PasswordHash string
	Rol          string
	Comision     decimal.Decimal
	Status       string
	ResetToken   string
	ResetExpires *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoleFields son los dos campos de rol que pueden existir en un documento de usuario.
// Los registros importados del sistema anterior usan "role"; los nuevos "rol".
type RoleFields struct {
	Rol  string
	Role string
}
