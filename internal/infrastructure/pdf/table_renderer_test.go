package pdf

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carpihogar-api/internal/application/ports"
)

func sampleTable(rows int) ports.Table {
	t := ports.Table{Title: "Inventario", Headers: []string{"Código", "Nombre", "Stock", "Stock Mínimo"}}
	for i := 0; i < rows; i++ {
		t.Rows = append(t.Rows, []string{fmt.Sprintf("C-%03d", i), "Silla", "4", "2"})
	}
	return t
}

func TestColumnWidths(t *testing.T) {
	assert.Equal(t, []int{3, 3, 3, 3}, columnWidths(4))
	assert.Equal(t, []int{4, 2, 2, 2, 2}, columnWidths(5))
	assert.Equal(t, []int{12}, columnWidths(1))
}

func TestPages_RepiteEncabezadoYPagina(t *testing.T) {
	g := NewTableRenderer("")
	g.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }

	assert.Len(t, g.pages(sampleTable(0)), 1)
	assert.Len(t, g.pages(sampleTable(rowsFirstPage)), 1)
	assert.Len(t, g.pages(sampleTable(rowsFirstPage+1)), 2)
	assert.Len(t, g.pages(sampleTable(rowsFirstPage+rowsPerPage+1)), 3)
}

func TestRender_GeneraPDF(t *testing.T) {
	g := NewTableRenderer("/no/existe/logo.jpg")
	out, err := g.Render(sampleTable(50))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
	assert.Equal(t, "application/pdf", g.ContentType())
	assert.Equal(t, "pdf", g.Extension())
}

func TestRender_SinColumnas(t *testing.T) {
	_, err := NewTableRenderer("").Render(ports.Table{Title: "x"})
	assert.Error(t, err)
}
