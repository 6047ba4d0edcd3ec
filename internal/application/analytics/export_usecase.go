package analytics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

// ExportUseCase arma las tablas de inventario, ventas y comisiones y las entrega al renderer pedido.
type ExportUseCase struct {
	inventory   *InventoryReportUseCase
	commissions *CommissionUseCase
	sales       repository.SaleRepository
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(inventory *InventoryReportUseCase, commissions *CommissionUseCase, sales repository.SaleRepository) *ExportUseCase {
	return &ExportUseCase{inventory: inventory, commissions: commissions, sales: sales}
}

// Inventory tabla Código, Nombre, Stock, Stock Mínimo.
func (uc *ExportUseCase) Inventory(ctx context.Context, r ports.TableRenderer) ([]byte, error) {
	products, err := uc.inventory.AllProducts(ctx)
	if err != nil {
		return nil, err
	}
	t := ports.Table{
		Title:   "Inventario",
		Headers: []string{"Código", "Nombre", "Stock", "Stock Mínimo"},
	}
	for _, p := range products {
		t.Rows = append(t.Rows, []string{p.Codigo, p.Nombre, strconv.Itoa(p.Stock), strconv.Itoa(p.StockMinimo)})
	}
	return r.Render(t)
}

// Sales tabla de ventas.
func (uc *ExportUseCase) Sales(ctx context.Context, r ports.TableRenderer) ([]byte, error) {
	list, err := uc.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	t := ports.Table{
		Title:   "Ventas",
		Headers: []string{"Orden", "Fecha", "Vendedor", "Cliente", "Dirección", "Total Bs"},
	}
	for _, s := range list {
		t.Rows = append(t.Rows, []string{
			s.OrderNumber,
			s.CreatedAt.Format("2006-01-02"),
			s.SellerName,
			s.ClientName,
			s.ClientAddr,
			s.TotalBs.StringFixed(2),
		})
	}
	return r.Render(t)
}

// Commissions tabla del reporte de comisiones del período.
func (uc *ExportUseCase) Commissions(ctx context.Context, period Period, search string, r ports.TableRenderer) ([]byte, error) {
	rep, err := uc.commissions.Report(ctx, period, search)
	if err != nil {
		return nil, err
	}
	t := ports.Table{
		Title:   fmt.Sprintf("Comisiones %02d-%d", rep.Month, rep.Year),
		Headers: []string{"Vendedor", "Ventas", "Total Bs", "Comisión %", "Comisión Bs"},
	}
	for _, row := range rep.Rows {
		t.Rows = append(t.Rows, []string{
			row.Nombre,
			strconv.Itoa(row.NumSales),
			row.TotalSales.StringFixed(2),
			row.ComRate.String(),
			row.CommissionTotal.StringFixed(2),
		})
	}
	return r.Render(t)
}
