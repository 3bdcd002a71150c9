package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInsumoRequest entrada para crear un insumo. El costo promedio inicia
// en cero y se mantiene vía compras, nunca por edición directa.
type CreateInsumoRequest struct {
	Nombre        string          `json:"nombre" validate:"required,min=1,max=200"`
	Unidad        string          `json:"unidad" validate:"required"`
	StockMinimo   decimal.Decimal `json:"stock_minimo"`
	CategoriaID   string          `json:"categoria_id"`
	Inventariable *bool           `json:"inventariable"`
}

// UpdateInsumoRequest entrada para actualizar un insumo (sin costo ni stock).
type UpdateInsumoRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Unidad      *string          `json:"unidad"`
	StockMinimo *decimal.Decimal `json:"stock_minimo"`
	CategoriaID *string          `json:"categoria_id"`
	Activo      *bool            `json:"activo"`
}

// InsumoResponse salida de un insumo.
type InsumoResponse struct {
	ID            string          `json:"id"`
	NegocioID     string          `json:"negocio_id"`
	Nombre        string          `json:"nombre"`
	Unidad        string          `json:"unidad"`
	CostoPromedio decimal.Decimal `json:"costo_promedio"`
	Stock         decimal.Decimal `json:"stock"`
	StockMinimo   decimal.Decimal `json:"stock_minimo"`
	CategoriaID   string          `json:"categoria_id,omitempty"`
	Activo        bool            `json:"activo"`
	Inventariable bool            `json:"inventariable"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InsumoListResponse lista paginada de insumos.
type InsumoListResponse struct {
	Items []InsumoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
