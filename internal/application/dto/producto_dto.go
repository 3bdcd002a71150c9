package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProductoRequest entrada para crear o actualizar un producto de venta.
// Costo solo aplica a los tipos DIRECTO y MATERIA_PRIMA; para INVENTARIO y
// RECETA el servidor lo deriva y lo ignora si viene en el payload.
type SaveProductoRequest struct {
	Nombre      string          `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string          `json:"descripcion"`
	CategoriaID string          `json:"categoria_id"`
	Tipo        string          `json:"tipo" validate:"required"`
	InsumoID    string          `json:"insumo_id"`
	RecetaID    string          `json:"receta_id"`
	Precio      decimal.Decimal `json:"precio"`
	Costo       decimal.Decimal `json:"costo"`
}

// ProductoResponse salida de un producto de venta.
type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	CategoriaID string          `json:"categoria_id,omitempty"`
	Tipo        string          `json:"tipo"`
	InsumoID    string          `json:"insumo_id,omitempty"`
	RecetaID    string          `json:"receta_id,omitempty"`
	Precio      decimal.Decimal `json:"precio"`
	Costo       decimal.Decimal `json:"costo"`
	Activo      bool            `json:"activo"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductoListResponse lista paginada de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
