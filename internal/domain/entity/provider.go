package entity

import "time"

// ProviderContact persona de contacto de un proveedor.
type ProviderContact struct {
	Nombre   string `json:"nombre"`
	Cargo    string `json:"cargo,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Provider proveedor de mercancía. NotasInternas solo es visible para root y admin.
type Provider struct {
	ID            string
	Codigo        string
	Nombre        string
	RIF           string
	Direccion     string
	Telefono      string
	Email         string
	Descripcion   string
	Contactos     []ProviderContact
	NotasInternas string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProviderOrder pedido de compra hecho a un proveedor.
type ProviderOrder struct {
	ID          string
	ProviderID  string
	Descripcion string
	Estado      string
	Fecha       time.Time
}
