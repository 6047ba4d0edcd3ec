package ports

// Table reporte tabular listo para exportar.
type Table struct {
	Title   string // título del PDF y nombre de la hoja
	Headers []string
	Rows    [][]string
}

// TableRenderer convierte un Table en un archivo (PDF, xlsx).
type TableRenderer interface {
	Render(t Table) ([]byte, error)
	ContentType() string
	Extension() string
}
