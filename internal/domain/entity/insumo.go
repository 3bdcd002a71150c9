package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Insumo representa una materia prima del catálogo (leche, harina, carne).
// CostoPromedio es el costo promedio ponderado mantenido por el registro de
// compras; el resto del sistema lo lee como snapshot, nunca lo recalcula.
type Insumo struct {
	ID            string
	NegocioID     string
	Nombre        string
	Unidad        string // kg, g, l, ml, unidad
	CostoPromedio decimal.Decimal
	Stock         decimal.Decimal
	StockMinimo   decimal.Decimal
	CategoriaID   string
	Activo        bool
	Inventariable bool // false = insumo de servicio, no aparece en movimientos
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
