package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem línea de una venta de mostrador. Price está en USD; PriceBs y Subtotal en Bs.
type SaleItem struct {
	ProductID string          `json:"product_id"`
	Codigo    string          `json:"codigo"`
	Nombre    string          `json:"nombre"`
	Quantity  int             `json:"quantity"`
	PriceType string          `json:"price_type"`
	Price     decimal.Decimal `json:"price"`
	PriceBs   decimal.Decimal `json:"price_bs"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Sale venta registrada por un vendedor.
type Sale struct {
	ID           string
	OrderNumber  string
	SellerID     string
	SellerName   string
	ClientName   string
	ClientID     string // cédula o RIF
	ClientPhone  string
	ClientAddr   string
	Items        []SaleItem
	ExchangeRate decimal.Decimal
	TotalBs      decimal.Decimal
	CreatedAt    time.Time
}

// FormatOrderNumber formatea el consecutivo como ORD-00001.
func FormatOrderNumber(n int64) string {
	return fmt.Sprintf("ORD-%05d", n)
}

// NewSaleItem calcula precio en Bs y subtotal para la línea.
func NewSaleItem(p *Product, quantity int, priceType string, rate decimal.Decimal) SaleItem {
	price := p.PriceFor(priceType)
	priceBs := price.Mul(rate)
	return SaleItem{
		ProductID: p.ID,
		Codigo:    p.Codigo,
		Nombre:    p.Nombre,
		Quantity:  quantity,
		PriceType: priceType,
		Price:     price,
		PriceBs:   priceBs,
		Subtotal:  priceBs.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// SumSubtotals total en Bs de las líneas.
func SumSubtotals(items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return total
}
