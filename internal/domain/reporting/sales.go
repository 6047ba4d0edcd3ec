package reporting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
)

// MonthNames nombres de mes en español, índice 0 = enero.
var MonthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// SalesFilter criterios de selección; valores cero no filtran.
type SalesFilter struct {
	SellerID string
	Month    int // 1-12
	Year     int
}

// FilterSales ventas que cumplen vendedor, mes y año de CreatedAt.
func FilterSales(sales []*entity.Sale, f SalesFilter) []*entity.Sale {
	out := make([]*entity.Sale, 0, len(sales))
	for _, s := range sales {
		if f.SellerID != "" && s.SellerID != f.SellerID {
			continue
		}
		if f.Month != 0 && int(s.CreatedAt.Month()) != f.Month {
			continue
		}
		if f.Year != 0 && s.CreatedAt.Year() != f.Year {
			continue
		}
		out = append(out, s)
	}
	return out
}

// TotalBs suma de totalBs de las ventas.
func TotalBs(sales []*entity.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.TotalBs)
	}
	return total
}

// SalesCountByProduct unidades vendidas por id de producto.
func SalesCountByProduct(sales []*entity.Sale) map[string]int {
	counts := make(map[string]int)
	for _, s := range sales {
		for _, it := range s.Items {
			counts[it.ProductID] += it.Quantity
		}
	}
	return counts
}

// Ranked producto con sus unidades vendidas.
type Ranked struct {
	Product *entity.Product
	Units   int
}

// TopN ordena por unidades (desc o asc) y corta en n. Los productos sin ventas cuentan 0.
// El empate se resuelve por código para que el resultado sea estable.
func TopN(products []*entity.Product, counts map[string]int, n int, desc bool) []Ranked {
	ranked := make([]Ranked, 0, len(products))
	for _, p := range products {
		ranked = append(ranked, Ranked{Product: p, Units: counts[p.ID]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Units != ranked[j].Units {
			if desc {
				return ranked[i].Units > ranked[j].Units
			}
			return ranked[i].Units < ranked[j].Units
		}
		return ranked[i].Product.Codigo < ranked[j].Product.Codigo
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// LowStock productos con stock <= threshold.
func LowStock(products []*entity.Product, threshold int) []*entity.Product {
	var out []*entity.Product
	for _, p := range products {
		if p.Stock <= threshold {
			out = append(out, p)
		}
	}
	return out
}

// MonthlyPoint unidades vendidas en un mes.
type MonthlyPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// MonthlySeries doce meses del año indicado con las unidades vendidas del producto.
func MonthlySeries(sales []*entity.Sale, productID string, year int) []MonthlyPoint {
	var buckets [12]int
	for _, s := range sales {
		if s.CreatedAt.Year() != year {
			continue
		}
		for _, it := range s.Items {
			if it.ProductID == productID {
				buckets[s.CreatedAt.Month()-1] += it.Quantity
			}
		}
	}
	out := make([]MonthlyPoint, 12)
	for i := range buckets {
		out[i] = MonthlyPoint{Month: MonthNames[i], Count: buckets[i]}
	}
	return out
}

// ProductSaleRow una línea de venta de un producto.
type ProductSaleRow struct {
	SaleID      string          `json:"sale_id"`
	OrderNumber string          `json:"order_number"`
	Date        time.Time       `json:"date"`
	SellerName  string          `json:"seller_name"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// ProductSalesSummary ventas de un producto con totales.
type ProductSalesSummary struct {
	Sales         []ProductSaleRow `json:"sales"`
	TotalQuantity int              `json:"totalQuantity"`
	TotalAmount   decimal.Decimal  `json:"totalAmount"`
}

// ProductSales líneas de venta del producto. Se compara por ID: el código guardado en la línea puede estar desactualizado.
func ProductSales(sales []*entity.Sale, productID string) ProductSalesSummary {
	sum := ProductSalesSummary{Sales: []ProductSaleRow{}, TotalAmount: decimal.Zero}
	for _, s := range sales {
		for _, it := range s.Items {
			if it.ProductID != productID {
				continue
			}
			sum.Sales = append(sum.Sales, ProductSaleRow{
				SaleID:      s.ID,
				OrderNumber: s.OrderNumber,
				Date:        s.CreatedAt,
				SellerName:  s.SellerName,
				Quantity:    it.Quantity,
				Subtotal:    it.Subtotal,
			})
			sum.TotalQuantity += it.Quantity
			sum.TotalAmount = sum.TotalAmount.Add(it.Subtotal)
		}
	}
	return sum
}

// AmountByProduct monto vendido (Bs) del producto.
func AmountByProduct(sales []*entity.Sale, productID string) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		for _, it := range s.Items {
			if it.ProductID == productID {
				total = total.Add(it.Subtotal)
			}
		}
	}
	return total
}
