package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrarCompraRequest entrada para registrar una compra de insumo. Aplica
// el promedio ponderado al costo del insumo y suma la cantidad al stock.
type RegistrarCompraRequest struct {
	InsumoID      string          `json:"insumo_id" validate:"required"`
	ProveedorID   string          `json:"proveedor_id"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	Fecha         *time.Time      `json:"fecha"`
}

// CompraResponse salida de una compra registrada.
type CompraResponse struct {
	ID            string          `json:"id"`
	InsumoID      string          `json:"insumo_id"`
	ProveedorID   string          `json:"proveedor_id,omitempty"`
	Proveedor     string          `json:"proveedor,omitempty"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	Total         decimal.Decimal `json:"total"`
	Fecha         time.Time       `json:"fecha"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CompraListResponse lista paginada de compras.
type CompraListResponse struct {
	Items []CompraResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
