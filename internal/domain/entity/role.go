package entity

import "strings"

// NormalizeRole devuelve el rol en minúsculas y sin espacios.
// Si ambos campos existen gana "rol"; "role" solo se usa cuando "rol" está vacío.
func NormalizeRole(rol, role string) string {
	r := strings.TrimSpace(rol)
	if r == "" {
		r = strings.TrimSpace(role)
	}
	return strings.ToLower(r)
}

// IsKnownRole indica si el rol pertenece al conjunto soportado.
func IsKnownRole(role string) bool {
	switch role {
	case RoleRoot, RoleAdmin, RoleVendedor, RoleDespacho, RoleEcommerce, RoleCliente:
		return true
	}
	return false
}

// RedirectPath ruta de inicio del panel según el rol.
func RedirectPath(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case RoleRoot:
		return "/dashboard/root"
	case RoleAdmin:
		return "/dashboard/admin"
	case RoleVendedor:
		return "/dashboard/vendedor"
	case RoleDespacho:
		return "/dashboard/despacho"
	case RoleCliente:
		return "/tienda"
	default:
		return "/auth/login"
	}
}
