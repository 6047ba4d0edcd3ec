package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carpihogar-api/internal/application/analytics"
	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/infrastructure/memory"
)

type captureRenderer struct{ table ports.Table }

func (c *captureRenderer) Render(t ports.Table) ([]byte, error) { c.table = t; return []byte("ok"), nil }
func (c *captureRenderer) ContentType() string                  { return "text/plain" }
func (c *captureRenderer) Extension() string                    { return "txt" }

func seed(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Products().Create(ctx, &entity.Product{ID: "p1", Codigo: "A", Nombre: "Bisagra", Stock: 2, StockMinimo: 3}))
	require.NoError(t, s.Products().Create(ctx, &entity.Product{ID: "p2", Codigo: "B", Nombre: "Corredera", Stock: 50, StockMinimo: 5}))
	require.NoError(t, s.Products().Create(ctx, &entity.Product{ID: "p3", Codigo: "C", Nombre: "Grifo", Stock: 5, StockMinimo: 1}))
	require.NoError(t, s.Users().Create(ctx, &entity.User{ID: "v1", Nombre: "Luis", Email: "l@x.com", Rol: "vendedor", Comision: decimal.NewFromInt(10)}))
	require.NoError(t, s.Users().Create(ctx, &entity.User{ID: "a1", Nombre: "Admin", Email: "a@x.com", Rol: "admin"}))

	now := time.Now()
	require.NoError(t, s.Sales().Create(ctx, &entity.Sale{
		ID: "s1", OrderNumber: "ORD-00001", SellerID: "v1", SellerName: "Luis", TotalBs: decimal.NewFromInt(100), CreatedAt: now,
		Items: []entity.SaleItem{{ProductID: "p2", Codigo: "B", Quantity: 4, Subtotal: decimal.NewFromInt(100)}},
	}))
	require.NoError(t, s.Sales().Create(ctx, &entity.Sale{
		ID: "s2", OrderNumber: "ORD-00002", SellerID: "v1", SellerName: "Luis", TotalBs: decimal.NewFromInt(200), CreatedAt: now,
		Items: []entity.SaleItem{{ProductID: "p1", Codigo: "A", Quantity: 1, Subtotal: decimal.NewFromInt(200)}},
	}))
	return s
}

func TestDashboard_ConteosEnParalelo(t *testing.T) {
	s := seed(t)
	got, err := analytics.NewDashboardUseCase(s.Analytics()).GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Sales)
	assert.Equal(t, int64(3), got.Products)
	assert.Equal(t, int64(2), got.Users)
	assert.Equal(t, int64(0), got.Providers)
	assert.NotEmpty(t, got.DateLabel)
}

func TestInventoryReport(t *testing.T) {
	s := seed(t)
	uc := analytics.NewInventoryReportUseCase(s.Products(), s.Sales(), 5)
	ctx := context.Background()

	most, err := uc.MostSold(ctx)
	require.NoError(t, err)
	require.Len(t, most, 3)
	assert.Equal(t, "p2", most[0].Product.ID)
	assert.Equal(t, 4, most[0].TotalQuantity)
	assert.Len(t, most[0].Monthly, 12)

	least, err := uc.LeastSold(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p3", least[0].Product.ID)

	low, err := uc.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 2)
	flags := map[string]bool{}
	for _, l := range low {
		flags[l.ID] = l.BelowMinimum
	}
	assert.True(t, flags["p1"])
	assert.False(t, flags["p3"])

	sales, err := uc.ProductSales(ctx, "B")
	require.NoError(t, err)
	assert.Equal(t, 4, sales.TotalQuantity)
}

func TestProductSales_SobreviveCambioDeCodigo(t *testing.T) {
	s := seed(t)
	ctx := context.Background()
	p, err := s.Products().GetByID(ctx, "p2")
	require.NoError(t, err)
	p.Codigo = "B-NUEVO"
	require.NoError(t, s.Products().Update(ctx, p))

	uc := analytics.NewInventoryReportUseCase(s.Products(), s.Sales(), 5)
	sales, err := uc.ProductSales(ctx, "B-NUEVO")
	require.NoError(t, err)
	assert.Equal(t, 4, sales.TotalQuantity)
	require.Len(t, sales.Sales, 1)
	assert.Equal(t, "ORD-00001", sales.Sales[0].OrderNumber)
}

func TestCommissions(t *testing.T) {
	s := seed(t)
	uc := analytics.NewCommissionUseCase(s.Users(), s.Sales())
	now := time.Now()
	period := analytics.Period{Month: int(now.Month()), Year: now.Year()}

	rep, err := uc.Report(context.Background(), period, "")
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1, "solo vendedores")
	assert.Equal(t, "30.00", rep.Rows[0].CommissionTotal.StringFixed(2))

	mine, err := uc.Mine(context.Background(), "v1", period)
	require.NoError(t, err)
	assert.Len(t, mine.Sales, 2)
	assert.Equal(t, "30.00", mine.Total.StringFixed(2))

	_, err = uc.Report(context.Background(), analytics.Period{Month: 13, Year: 2024}, "")
	assert.Error(t, err)
}

func TestExportInventory_Encabezados(t *testing.T) {
	s := seed(t)
	inv := analytics.NewInventoryReportUseCase(s.Products(), s.Sales(), 5)
	exp := analytics.NewExportUseCase(inv, analytics.NewCommissionUseCase(s.Users(), s.Sales()), s.Sales())
	r := &captureRenderer{}

	_, err := exp.Inventory(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, []string{"Código", "Nombre", "Stock", "Stock Mínimo"}, r.table.Headers)
	assert.Len(t, r.table.Rows, 3)
}
