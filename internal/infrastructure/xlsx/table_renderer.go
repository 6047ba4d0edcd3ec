package xlsx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/carpihogar-api/internal/application/ports"
)

var _ ports.TableRenderer = (*TableRenderer)(nil)

const maxSheetName = 31

// TableRenderer exporta un Table como libro de una hoja: fila de encabezado y filas de datos.
type TableRenderer struct{}

// NewTableRenderer construye el exportador.
func NewTableRenderer() *TableRenderer { return &TableRenderer{} }

func (r *TableRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *TableRenderer) Extension() string { return "xlsx" }

// Render escribe el libro. Los valores numéricos se guardan como número.
func (r *TableRenderer) Render(t ports.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := SheetName(t.Title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("xlsx: nombre de hoja: %w", err)
	}

	header := make([]any, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	if len(t.Headers) > 0 {
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, fmt.Errorf("xlsx: estilo: %w", err)
		}
		last, _ := excelize.CoordinatesToCellName(len(t.Headers), 1)
		if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
			return nil, fmt.Errorf("xlsx: estilo: %w", err)
		}
	}

	for i, row := range t.Rows {
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = cellValue(v)
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

// SheetName limpia el título a un nombre de hoja válido (sin []:*?/\ y máximo 31 caracteres).
func SheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return '-'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		return "Reporte"
	}
	runes := []rune(name)
	if len(runes) > maxSheetName {
		name = string(runes[:maxSheetName])
	}
	return name
}

// cellValue conserva códigos con ceros a la izquierda como texto.
func cellValue(v string) any {
	if v == "" || (len(v) > 1 && v[0] == '0' && v[1] != '.') {
		return v
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		return n
	}
	return v
}
