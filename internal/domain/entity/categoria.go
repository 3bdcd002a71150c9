package entity

import "time"

// Categoria agrupa insumos o productos para los listados del tablero.
type Categoria struct {
	ID        string
	NegocioID string
	Nombre    string
	Tipo      string // "insumo" o "producto"
	Activa    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
