package reporting_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/domain/reporting"
)

func sale(id, seller string, total int64, at time.Time, items ...entity.SaleItem) *entity.Sale {
	return &entity.Sale{ID: id, OrderNumber: "ORD-" + id, SellerID: seller, TotalBs: decimal.NewFromInt(total), CreatedAt: at, Items: items}
}

func item(productID, codigo string, qty int, subtotal int64) entity.SaleItem {
	return entity.SaleItem{ProductID: productID, Codigo: codigo, Quantity: qty, Subtotal: decimal.NewFromInt(subtotal)}
}

// ─── Comisiones ──────────────────────────────────────────────────────────────

func TestCommission_DiezPorCiento(t *testing.T) {
	march := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	sales := []*entity.Sale{sale("1", "v1", 100, march), sale("2", "v1", 200, march)}

	total := reporting.TotalBs(sales)
	got := reporting.Commission(total, decimal.NewFromInt(10))

	assert.Equal(t, "30.00", got.StringFixed(2))
}

func TestCommissionReport_FiltraPorMesYAnio(t *testing.T) {
	march := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	april := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	vendors := []*entity.User{
		{ID: "v1", Nombre: "Ana Pérez", Comision: decimal.NewFromInt(5)},
		{ID: "v2", Nombre: "Luis", Comision: decimal.NewFromInt(10)},
	}
	sales := []*entity.Sale{
		sale("1", "v1", 100, march),
		sale("2", "v1", 300, april),
		sale("3", "v2", 50, march),
	}

	rows := reporting.CommissionReport(vendors, sales, 3, 2024, "", strings.ToLower)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].NumSales)
	assert.Equal(t, "5.00", rows[0].CommissionTotal.StringFixed(2))
	assert.Equal(t, "5.00", rows[1].CommissionTotal.StringFixed(2))

	rows = reporting.CommissionReport(vendors, sales, 3, 2024, "ana", strings.ToLower)
	require.Len(t, rows, 1)
	assert.Equal(t, "v1", rows[0].ID)
}

func TestSellerCommissions(t *testing.T) {
	at := time.Now()
	rows, total := reporting.SellerCommissions([]*entity.Sale{sale("1", "v", 150, at), sale("2", "v", 50, at)}, decimal.NewFromInt(4))
	require.Len(t, rows, 2)
	assert.Equal(t, "6.00", rows[0].Commission.StringFixed(2))
	assert.Equal(t, "8.00", total.StringFixed(2))
}

func TestSellerCommissions_TotalCoincideConReporte(t *testing.T) {
	at := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	v := decimal.RequireFromString("100.05")
	sales := []*entity.Sale{
		{ID: "1", SellerID: "v1", TotalBs: v, CreatedAt: at},
		{ID: "2", SellerID: "v1", TotalBs: v, CreatedAt: at},
		{ID: "3", SellerID: "v1", TotalBs: v, CreatedAt: at},
	}
	rate := decimal.NewFromInt(10)

	rows, total := reporting.SellerCommissions(sales, rate)
	require.Len(t, rows, 3)
	assert.Equal(t, "10.01", rows[0].Commission.StringFixed(2))
	assert.Equal(t, "30.02", total.StringFixed(2))

	report := reporting.CommissionReport([]*entity.User{{ID: "v1", Nombre: "Luis", Comision: rate}}, sales, 3, 2024, "", strings.ToLower)
	require.Len(t, report, 1)
	assert.True(t, total.Equal(report[0].CommissionTotal), "mine=%s report=%s", total, report[0].CommissionTotal)
}

// ─── Inventario ──────────────────────────────────────────────────────────────

func TestTopN_PorIDDeProducto(t *testing.T) {
	at := time.Now()
	sales := []*entity.Sale{
		sale("1", "v", 0, at, item("p1", "A", 2, 20), item("p2", "B", 5, 50)),
		sale("2", "v", 0, at, item("p1", "A", 1, 10)),
	}
	products := []*entity.Product{
		{ID: "p1", Codigo: "A", Nombre: "Mismo nombre"},
		{ID: "p2", Codigo: "B", Nombre: "Mismo nombre"},
		{ID: "p3", Codigo: "C", Nombre: "Otro"},
	}
	counts := reporting.SalesCountByProduct(sales)
	assert.Equal(t, 3, counts["p1"])
	assert.Equal(t, 5, counts["p2"])

	most := reporting.TopN(products, counts, 2, true)
	require.Len(t, most, 2)
	assert.Equal(t, "p2", most[0].Product.ID)
	assert.Equal(t, "p1", most[1].Product.ID)

	least := reporting.TopN(products, counts, 10, false)
	require.Len(t, least, 3)
	assert.Equal(t, "p3", least[0].Product.ID)
	assert.Equal(t, 0, least[0].Units)
}

func TestLowStock(t *testing.T) {
	products := []*entity.Product{{ID: "a", Stock: 5}, {ID: "b", Stock: 6}, {ID: "c", Stock: 0}}
	got := reporting.LowStock(products, 5)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestMonthlySeries(t *testing.T) {
	sales := []*entity.Sale{
		sale("1", "v", 0, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), item("p1", "A", 2, 0)),
		sale("2", "v", 0, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), item("p1", "A", 1, 0)),
		sale("3", "v", 0, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), item("p1", "A", 4, 0)),
		sale("4", "v", 0, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), item("p1", "A", 9, 0)),
	}
	series := reporting.MonthlySeries(sales, "p1", 2024)
	require.Len(t, series, 12)
	assert.Equal(t, reporting.MonthlyPoint{Month: "Enero", Count: 3}, series[0])
	assert.Equal(t, 4, series[5].Count)
	assert.Equal(t, 0, series[11].Count)
}

func TestProductSales(t *testing.T) {
	at := time.Now()
	sales := []*entity.Sale{
		sale("1", "v", 0, at, item("p1", "BIS-01", 2, 20), item("p2", "X", 1, 99)),
		sale("2", "v", 0, at, item("p1", "BIS-02", 3, 30)),
	}
	// el código cambió entre ventas; el historial sigue al producto
	sum := reporting.ProductSales(sales, "p1")
	assert.Len(t, sum.Sales, 2)
	assert.Equal(t, 5, sum.TotalQuantity)
	assert.True(t, sum.TotalAmount.Equal(decimal.NewFromInt(50)))

	empty := reporting.ProductSales(sales, "p9")
	assert.NotNil(t, empty.Sales)
	assert.Zero(t, empty.TotalQuantity)
}

// ─── Proveedores ─────────────────────────────────────────────────────────────

func TestProviderBalances(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	providers := []*entity.Provider{
		{ID: "a", Codigo: "PRV-01", Nombre: "Hafele", RIF: "J-1"},
		{ID: "b", Codigo: "PRV-02", Nombre: "Grival", RIF: "J-2"},
		{ID: "c", Codigo: "PRV-03", Nombre: "Lamitech", RIF: "J-3"},
	}
	invoice := func(provider string, total, paid int64, due time.Time, estado string) *entity.Invoice {
		return &entity.Invoice{ProviderID: provider, Total: decimal.NewFromInt(total), PaidAmount: decimal.NewFromInt(paid), DueDate: due, Estado: estado}
	}
	invoices := []*entity.Invoice{
		invoice("a", 100, 40, now.AddDate(0, 0, 3), entity.InvoiceStatusParcial),
		invoice("a", 50, 0, now.AddDate(0, 0, 30), entity.InvoiceStatusPendiente),
		invoice("b", 200, 0, now.AddDate(0, 0, -25), entity.InvoiceStatusPendiente),
		invoice("b", 80, 80, now.AddDate(0, 0, 2), entity.InvoiceStatusPagada),
		invoice("c", 10, 10, now.AddDate(0, 0, -60), entity.InvoiceStatusPagada),
	}

	sum := reporting.ProviderBalances(providers, invoices, now, "", strings.ToLower)
	assert.Equal(t, 3, sum.TotalProviders)
	assert.Equal(t, "310.00", sum.TotalDebt.StringFixed(2))
	assert.Equal(t, "Grival", sum.TopDebtor)
	assert.Equal(t, 1, sum.ExpiringSoon, "la pagada no cuenta")

	require.Len(t, sum.Rows, 3)
	byID := map[string]reporting.ProviderBalance{}
	for _, r := range sum.Rows {
		byID[r.ID] = r
	}
	assert.Equal(t, "110.00", byID["a"].Debt.StringFixed(2))
	assert.False(t, byID["a"].Overdue)
	assert.True(t, byID["b"].Overdue)
	assert.True(t, byID["c"].Debt.IsZero())
	assert.False(t, byID["c"].Overdue, "factura pagada no alerta")

	filtered := reporting.ProviderBalances(providers, invoices, now, "prv-03", strings.ToLower)
	require.Len(t, filtered.Rows, 1)
	assert.Equal(t, "c", filtered.Rows[0].ID)
	assert.Equal(t, "310.00", filtered.TotalDebt.StringFixed(2), "el filtro no cambia los totales")
}

func TestProviderBalances_SinDeuda(t *testing.T) {
	sum := reporting.ProviderBalances([]*entity.Provider{{ID: "a", Nombre: "Hafele"}}, nil, time.Now(), "", strings.ToLower)
	assert.Empty(t, sum.TopDebtor)
	assert.True(t, sum.TotalDebt.IsZero())
	require.Len(t, sum.Rows, 1)
}
