package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/domain/reporting"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary: totales de cada colección.
type DashboardSummaryDTO struct {
	Sales     int64 `json:"sales"`
	Products  int64 `json:"products"`
	Users     int64 `json:"users"`
	Providers int64 `json:"providers"`
	DateLabel string `json:"date_label"` // ej: "Febrero 2026"
}

// RankedProductDTO producto más o menos vendido con su serie mensual.
type RankedProductDTO struct {
	Product       ProductResponse          `json:"product"`
	TotalQuantity int                      `json:"totalQuantity"`
	TotalAmount   decimal.Decimal          `json:"totalAmount"`
	Monthly       []reporting.MonthlyPoint `json:"monthly"`
}

// LowStockDTO fila del reporte de stock bajo.
type LowStockDTO struct {
	ProductResponse
	BelowMinimum bool `json:"below_minimum"`
}

// CommissionReportDTO reporte de comisiones del período.
type CommissionReportDTO struct {
	Month int                          `json:"month"`
	Year  int                          `json:"year"`
	Rows  []reporting.VendorCommission `json:"rows"`
	Total decimal.Decimal              `json:"total"`
}

// MyCommissionsDTO comisiones del vendedor autenticado.
type MyCommissionsDTO struct {
	Month int                        `json:"month"`
	Year  int                        `json:"year"`
	Rate  decimal.Decimal            `json:"rate"`
	Sales []reporting.SaleCommission `json:"sales"`
	Total decimal.Decimal            `json:"total"`
}
