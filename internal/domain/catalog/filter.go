package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
)

// FilterState criterios de la vista de catálogo. Los campos vacíos o nil no filtran.
type FilterState struct {
	Search   string
	Category string
	Brand    string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	InStock  bool
}

// Engine aplica FilterState sobre una lista de productos.
type Engine struct {
	searchMap SearchMap
}

// NewEngine construye el motor con el mapa derivado del árbol dado.
func NewEngine(tree []Category) *Engine {
	return &Engine{searchMap: BuildSearchMap(tree)}
}

// Filter devuelve los productos que cumplen todos los criterios, en el orden de entrada.
func (e *Engine) Filter(products []*entity.Product, f FilterState) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if e.Matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}

// Matches evalúa texto, categoría, marca, precio mínimo, precio máximo y stock, en ese orden.
func (e *Engine) Matches(p *entity.Product, f FilterState) bool {
	if !e.matchesText(p, f.Search) {
		return false
	}
	if f.Category != "" && p.Categoria != f.Category {
		return false
	}
	if f.Brand != "" && p.Marca != f.Brand {
		return false
	}
	if f.MinPrice != nil && p.Precio.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Precio.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.InStock && p.Stock <= 0 {
		return false
	}
	return true
}

func (e *Engine) matchesText(p *entity.Product, search string) bool {
	term := Normalize(strings.TrimSpace(search))
	if term == "" {
		return true
	}
	if cats, ok := e.searchMap[term]; ok {
		for _, c := range cats {
			if c == p.Categoria {
				return true
			}
		}
		return false
	}
	return strings.Contains(Normalize(p.Nombre), term) ||
		strings.Contains(Normalize(p.Codigo), term) ||
		strings.Contains(Normalize(p.Categoria), term)
}

// Brands marcas distintas no vacías, en orden de primera aparición.
func Brands(products []*entity.Product) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		if p.Marca == "" {
			continue
		}
		if _, ok := seen[p.Marca]; ok {
			continue
		}
		seen[p.Marca] = struct{}{}
		out = append(out, p.Marca)
	}
	return out
}
