package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carpihogar-api/internal/domain"
	"github.com/jhoicas/carpihogar-api/internal/domain/order"
)

func TestPlan_AprobarDescuentaStock(t *testing.T) {
	tr, err := order.Plan(order.StatusRevisada, order.StatusAprobada)
	require.NoError(t, err)
	assert.True(t, tr.DecrementStock)
}

func TestPlan_ReaprobarNoDescuenta(t *testing.T) {
	tr, err := order.Plan(order.StatusAprobada, order.StatusAprobada)
	require.NoError(t, err)
	assert.False(t, tr.DecrementStock)
}

func TestPlan_SaltoPermitido(t *testing.T) {
	tr, err := order.Plan(order.StatusPendiente, order.StatusEntregada)
	require.NoError(t, err)
	assert.False(t, tr.DecrementStock)
}

func TestPlan_EstadoDesconocido(t *testing.T) {
	_, err := order.Plan(order.StatusPendiente, "Cancelada")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
