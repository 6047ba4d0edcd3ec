package reporting

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Commission total × rate / 100, redondeado a 2 decimales.
func Commission(total, rate decimal.Decimal) decimal.Decimal {
	return total.Mul(rate).Div(hundred).Round(2)
}

// VendorCommission fila del reporte de comisiones.
type VendorCommission struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	NumSales        int             `json:"numSales"`
	TotalSales      decimal.Decimal `json:"totalSales"`
	ComRate         decimal.Decimal `json:"comRate"`
	CommissionTotal decimal.Decimal `json:"commissionTotal"`
}

// CommissionReport una fila por vendedor con sus ventas del período.
// search filtra por nombre (sin acentos ni mayúsculas); vacío no filtra.
func CommissionReport(vendors []*entity.User, sales []*entity.Sale, month, year int, search string, normalize func(string) string) []VendorCommission {
	term := normalize(strings.TrimSpace(search))
	out := make([]VendorCommission, 0, len(vendors))
	for _, v := range vendors {
		if term != "" && !strings.Contains(normalize(v.Nombre), term) {
			continue
		}
		own := FilterSales(sales, SalesFilter{SellerID: v.ID, Month: month, Year: year})
		total := TotalBs(own)
		out = append(out, VendorCommission{
			ID:              v.ID,
			Nombre:          v.Nombre,
			NumSales:        len(own),
			TotalSales:      total,
			ComRate:         v.Comision,
			CommissionTotal: Commission(total, v.Comision),
		})
	}
	return out
}

// SaleCommission comisión de una venta individual.
type SaleCommission struct {
	SaleID      string          `json:"sale_id"`
	OrderNumber string          `json:"order_number"`
	ClientName  string          `json:"client_name"`
	TotalBs     decimal.Decimal `json:"total_bs"`
	Commission  decimal.Decimal `json:"commission"`
}

// SellerCommissions detalle por venta y total para un vendedor.
// El total sale de la suma de ventas, no de las filas redondeadas, para coincidir con CommissionReport.
func SellerCommissions(sales []*entity.Sale, rate decimal.Decimal) ([]SaleCommission, decimal.Decimal) {
	rows := make([]SaleCommission, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, SaleCommission{
			SaleID:      s.ID,
			OrderNumber: s.OrderNumber,
			ClientName:  s.ClientName,
			TotalBs:     s.TotalBs,
			Commission:  Commission(s.TotalBs, rate),
		})
	}
	return rows, Commission(TotalBs(sales), rate)
}
