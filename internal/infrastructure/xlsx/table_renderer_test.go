package xlsx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/carpihogar-api/internal/application/ports"
)

func TestRender_UnaHojaConEncabezado(t *testing.T) {
	r := NewTableRenderer()
	out, err := r.Render(ports.Table{
		Title:   "Inventario",
		Headers: []string{"Código", "Nombre", "Stock", "Stock Mínimo"},
		Rows: [][]string{
			{"007", "Silla", "4", "2"},
			{"A-1", "Mesa", "10", "3"},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Inventario"}, f.GetSheetList())
	rows, err := f.GetRows("Inventario")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Código", "Nombre", "Stock", "Stock Mínimo"}, rows[0])
	assert.Equal(t, []string{"007", "Silla", "4", "2"}, rows[1])
	assert.Equal(t, "Mesa", rows[2][1])
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Ventas 01-2024", SheetName("Ventas 01/2024"))
	assert.Equal(t, "Reporte", SheetName("  "))
	assert.Len(t, []rune(SheetName("Comisiones de vendedores del mes de diciembre")), 31)
}

func TestCellValue(t *testing.T) {
	assert.Equal(t, "007", cellValue("007"))
	assert.Equal(t, 12.5, cellValue("12.5"))
	assert.Equal(t, 0.5, cellValue("0.5"))
	assert.Equal(t, "ORD-00001", cellValue("ORD-00001"))
}
