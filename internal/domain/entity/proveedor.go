package entity

import "time"

// Proveedor representa un proveedor de insumos del negocio.
type Proveedor struct {
	ID        string
	NegocioID string
	Nombre    string
	NIT       string
	Telefono  string
	Email     string
	Direccion string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
