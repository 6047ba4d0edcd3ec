package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrTooManyImages      = errors.New("el producto ya tiene el máximo de imágenes")
	ErrInvalidStatus      = errors.New("estado de orden inválido")
	ErrNotConfigured      = errors.New("servicio externo no configurado")
	ErrNoExchangeRate     = errors.New("tasa de cambio no configurada")
)
