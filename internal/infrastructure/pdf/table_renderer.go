// Package pdf genera reportes tabulares en PDF (inventario, ventas, comisiones).
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────┐
//	│  LOGO (solo primera página)              │
//	│  TÍTULO + fecha de generación            │
//	│  ENCABEZADO de columnas (cada página)    │
//	│  filas...                                │
//	│                           Página n de N  │
//	└──────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"os"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/carpihogar-api/internal/application/ports"
)

var _ ports.TableRenderer = (*TableRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 140, Green: 82, Blue: 45}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Filas de detalle por página. La primera lleva logo y título.
const (
	rowsFirstPage = 30
	rowsPerPage   = 35
	maxColumns    = 12
)

// TableRenderer implementa ports.TableRenderer usando Maroto v2.
type TableRenderer struct {
	logoPath string
	now      func() time.Time
}

// NewTableRenderer construye el generador. Si logoPath no existe el PDF sale sin logo.
func NewTableRenderer(logoPath string) *TableRenderer {
	return &TableRenderer{logoPath: logoPath, now: time.Now}
}

func (g *TableRenderer) ContentType() string { return "application/pdf" }
func (g *TableRenderer) Extension() string   { return "pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *TableRenderer) Render(t ports.Table) ([]byte, error) {
	if len(t.Headers) == 0 || len(t.Headers) > maxColumns {
		return nil, fmt.Errorf("pdf: cantidad de columnas inválida: %d", len(t.Headers))
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    8,
			Color:   colorGray,
		}).
		WithTitle(t.Title, true).
		WithAuthor("Carpihogar", true).
		Build()

	m := maroto.New(cfg)
	for _, p := range g.pages(t) {
		m.AddPages(p)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// pages reparte las filas en páginas repitiendo el encabezado de columnas.
func (g *TableRenderer) pages(t ports.Table) []core.Page {
	widths := columnWidths(len(t.Headers))

	first := page.New()
	if logo := g.logoRow(); logo != nil {
		first.Add(logo)
	}
	first.Add(titleRow(t.Title, g.now()))
	first.Add(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	first.Add(headerRow(t.Headers, widths))

	pages := []core.Page{first}
	current, capacity, used := first, rowsFirstPage, 0
	for _, r := range t.Rows {
		if used == capacity {
			current = page.New()
			current.Add(headerRow(t.Headers, widths))
			pages = append(pages, current)
			capacity, used = rowsPerPage, 0
		}
		current.Add(dataRow(r, widths))
		used++
	}
	return pages
}

func (g *TableRenderer) logoRow() core.Row {
	if g.logoPath == "" {
		return nil
	}
	if _, err := os.Stat(g.logoPath); err != nil {
		return nil
	}
	return image.NewFromFileRow(20, g.logoPath, props.Rect{Percent: 100, Left: 0})
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(title string, now time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New("Generado: "+now.Format("02/01/2006 15:04"), props.Text{
			Size: 8, Align: align.Right, Top: 4, Color: colorGray,
		})),
	)
}

func headerRow(headers []string, widths []int) core.Row {
	cols := make([]core.Col, len(headers))
	for i, h := range headers {
		cols[i] = col.New(widths[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(cols...)
}

func dataRow(values []string, widths []int) core.Row {
	cols := make([]core.Col, len(widths))
	for i := range widths {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		cols[i] = col.New(widths[i]).Add(text.New(v, props.Text{Size: 8, Top: 1, Left: 1, Right: 1}))
	}
	return row.New(7).Add(cols...)
}

// columnWidths reparte las 12 columnas de la grilla; el sobrante va a la primera.
func columnWidths(n int) []int {
	base := maxColumns / n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
	}
	widths[0] += maxColumns - base*n
	return widths
}
