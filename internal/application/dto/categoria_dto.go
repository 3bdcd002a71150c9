package dto

import "time"

// SaveCategoriaRequest entrada para crear o actualizar una categoría.
type SaveCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=100"`
	Tipo   string `json:"tipo" validate:"required,oneof=insumo producto"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Tipo      string    `json:"tipo"`
	Activa    bool      `json:"activa"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
