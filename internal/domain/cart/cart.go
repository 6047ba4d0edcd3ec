package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
)

// Item línea del carrito. Guarda una copia del producto al momento de agregarlo.
type Item struct {
	ProductID string          `json:"product_id"`
	Codigo    string          `json:"codigo"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
	Imagen    string          `json:"imagen,omitempty"`
	Quantity  int             `json:"quantity"`
}

// Cart carrito de compras. Cada producto aparece a lo sumo una vez y siempre con cantidad > 0.
type Cart struct {
	Items []Item `json:"items"`
}

// New carrito vacío.
func New() *Cart {
	return &Cart{Items: []Item{}}
}

// Add agrega el producto con cantidad 1 o incrementa en 1 si ya estaba.
func (c *Cart) Add(p *entity.Product) {
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	item := Item{
		ProductID: p.ID,
		Codigo:    p.Codigo,
		Nombre:    p.Nombre,
		Precio:    p.Precio,
		Quantity:  1,
	}
	if len(p.Imagenes) > 0 {
		item.Imagen = p.Imagenes[0]
	}
	c.Items = append(c.Items, item)
}

// UpdateQuantity fija la cantidad; con n <= 0 la línea se elimina.
// Un producto que no está en el carrito se ignora.
func (c *Cart) UpdateQuantity(productID string, n int) {
	out := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID == productID {
			it.Quantity = n
		}
		if it.Quantity > 0 {
			out = append(out, it)
		}
	}
	c.Items = out
}

// Remove quita la línea del producto.
func (c *Cart) Remove(productID string) {
	c.UpdateQuantity(productID, 0)
}

// Clear vacía el carrito.
func (c *Cart) Clear() {
	c.Items = []Item{}
}

// TotalPrice Σ precio × cantidad en moneda base.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Precio.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// ItemCount suma de cantidades.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}
