package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/application/usecase"
	"github.com/jhoicas/carpihogar-api/internal/domain"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/domain/reporting"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

// RankingSize cantidad de productos en los rankings de más y menos vendidos.
const RankingSize = 10

// InventoryReportUseCase reportes de inventario basados en las ventas registradas.
type InventoryReportUseCase struct {
	products  repository.ProductRepository
	sales     repository.SaleRepository
	threshold int
	now       func() time.Time
}

// NewInventoryReportUseCase construye el caso de uso. threshold es el umbral de stock bajo.
func NewInventoryReportUseCase(products repository.ProductRepository, sales repository.SaleRepository, threshold int) *InventoryReportUseCase {
	return &InventoryReportUseCase{products: products, sales: sales, threshold: threshold, now: time.Now}
}

// MostSold los 10 productos con más unidades vendidas (por id de producto).
func (uc *InventoryReportUseCase) MostSold(ctx context.Context) ([]dto.RankedProductDTO, error) {
	return uc.ranking(ctx, true)
}

// LeastSold los 10 productos con menos unidades vendidas; los que no se vendieron cuentan 0.
func (uc *InventoryReportUseCase) LeastSold(ctx context.Context) ([]dto.RankedProductDTO, error) {
	return uc.ranking(ctx, false)
}

func (uc *InventoryReportUseCase) ranking(ctx context.Context, desc bool) ([]dto.RankedProductDTO, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := uc.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	year := uc.now().Year()
	counts := reporting.SalesCountByProduct(sales)
	ranked := reporting.TopN(products, counts, RankingSize, desc)
	out := make([]dto.RankedProductDTO, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, dto.RankedProductDTO{
			Product:       *usecase.ToProductResponse(r.Product, nil),
			TotalQuantity: r.Units,
			TotalAmount:   reporting.AmountByProduct(sales, r.Product.ID),
			Monthly:       reporting.MonthlySeries(sales, r.Product.ID, year),
		})
	}
	return out, nil
}

// LowStock productos con stock en o bajo el umbral; cada fila indica si está bajo su propio mínimo.
func (uc *InventoryReportUseCase) LowStock(ctx context.Context) ([]dto.LowStockDTO, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	low := reporting.LowStock(products, uc.threshold)
	out := make([]dto.LowStockDTO, 0, len(low))
	for _, p := range low {
		out = append(out, dto.LowStockDTO{
			ProductResponse: *usecase.ToProductResponse(p, nil),
			BelowMinimum:    p.BelowMinimum(),
		})
	}
	return out, nil
}

// ProductSales ventas del producto con el código dado.
func (uc *InventoryReportUseCase) ProductSales(ctx context.Context, code string) (*reporting.ProductSalesSummary, error) {
	p, err := uc.products.GetByCodigo(ctx, code)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	sales, err := uc.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	sum := reporting.ProductSales(sales, p.ID)
	return &sum, nil
}

// AllProducts lista completa para exportar.
func (uc *InventoryReportUseCase) AllProducts(ctx context.Context) ([]*entity.Product, error) {
	return uc.products.List(ctx)
}
