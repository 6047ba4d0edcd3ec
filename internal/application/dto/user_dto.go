package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateUserRequest entrada para crear un usuario del back-office (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Nombre   string           `json:"nombre" validate:"required,min=1,max=200"`
	Email    string           `json:"email" validate:"required,email"`
	Password string           `json:"password" validate:"required,min=8"`
	Rol      string           `json:"rol" validate:"required,oneof=root admin vendedor despacho ecommerce cliente"`
	Comision *decimal.Decimal `json:"comision"`
}

// UpdateUserRequest campos editables de un usuario.
type UpdateUserRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Rol    *string `json:"rol" validate:"omitempty,oneof=root admin vendedor despacho ecommerce cliente"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateCommissionRequest nuevo porcentaje de comisión (0-100).
type UpdateCommissionRequest struct {
	Comision decimal.Decimal `json:"comision"`
}

// RegisterRequest registro de clientes de la tienda.
type RegisterRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	Email     string          `json:"email"`
	Rol       string          `json:"rol"`
	Comision  decimal.Decimal `json:"comision"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT, usuario y ruta de inicio según su rol.
type LoginResponse struct {
	Token    string       `json:"token"`
	User     UserResponse `json:"user"`
	Redirect string       `json:"redirect"`
}

// PasswordResetRequest solicitud de restablecimiento de contraseña.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// MeResponse identidad del usuario autenticado con su rol resuelto en el servidor.
type MeResponse struct {
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	Redirect string `json:"redirect"`
}
