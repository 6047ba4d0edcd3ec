package order

import (
	"fmt"

	"github.com/jhoicas/carpihogar-api/internal/domain"
)

// Estados de un pedido de la tienda.
const (
	StatusPendiente     = "Pendiente"
	StatusRevisada      = "Revisada"
	StatusAprobada      = "Aprobada"
	StatusEnPreparacion = "En preparación"
	StatusEnviada       = "Enviada"
	StatusEntregada     = "Entregada"
)

// Statuses en el orden del flujo operativo.
var Statuses = []string{
	StatusPendiente,
	StatusRevisada,
	StatusAprobada,
	StatusEnPreparacion,
	StatusEnviada,
	StatusEntregada,
}

// IsValid indica si s es uno de los estados conocidos.
func IsValid(s string) bool {
	for _, st := range Statuses {
		if st == s {
			return true
		}
	}
	return false
}

// Transition resultado de cambiar de estado.
type Transition struct {
	From, To string
	// DecrementStock es true solo al entrar en Aprobada desde otro estado.
	DecrementStock bool
}

// Plan valida el cambio from -> to. Se permite saltar estados; re-aprobar no vuelve a descontar.
func Plan(from, to string) (Transition, error) {
	if !IsValid(to) {
		return Transition{}, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, to)
	}
	return Transition{
		From:           from,
		To:             to,
		DecrementStock: to == StatusAprobada && from != StatusAprobada,
	}, nil
}
