package catalog

// Category nodo del árbol de navegación. Subitems es el tercer nivel.
type Category struct {
	Name     string     `json:"name"`
	Children []Category `json:"children,omitempty"`
}

// DefaultTree árbol de navegación de la tienda.
func DefaultTree() []Category {
	return []Category{
		{
			Name: "Carpintería",
			Children: []Category{
				{
					Name: "Herrajes",
					Children: []Category{
						{Name: "Elevadores de puertas superiores"},
						{Name: "Bisagras"},
						{Name: "Correderas"},
						{Name: "Condimenteros"},
						{Name: "Esquineros"},
					},
				},
				{Name: "Accesorios"},
				{Name: "Laminados HPL"},
			},
		},
		{
			Name: "Hogar",
			Children: []Category{
				{Name: "Lavamanos"},
				{Name: "Fregaderos"},
				{Name: "Griferías"},
				{Name: "Piezas sanitarias"},
				{Name: "Porcelanatos"},
				{Name: "Paneles WPC"},
				{Name: "Pisos de vinil"},
			},
		},
	}
}

// SearchMap término normalizado -> nombres de categoría que abarca.
type SearchMap map[string][]string

// BuildSearchMap arma el mapa de búsqueda por categoría:
// padre -> hijos y nietos; hijo -> él mismo y sus subitems; subitem -> él mismo.
// Un padre no se incluye a sí mismo.
func BuildSearchMap(tree []Category) SearchMap {
	m := SearchMap{}
	for _, parent := range tree {
		var all []string
		for _, child := range parent.Children {
			all = append(all, child.Name)
			childTerms := []string{child.Name}
			for _, sub := range child.Children {
				all = append(all, sub.Name)
				childTerms = append(childTerms, sub.Name)
				m[Normalize(sub.Name)] = []string{sub.Name}
			}
			m[Normalize(child.Name)] = childTerms
		}
		m[Normalize(parent.Name)] = all
	}
	return m
}
