package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Compra es el registro de una compra de insumo a un proveedor. Alimenta la
// consulta de "última compra" que acompaña a las líneas de movimiento.
type Compra struct {
	ID            string
	NegocioID     string
	InsumoID      string
	ProveedorID   string
	Proveedor     string // nombre al momento de la compra
	Cantidad      decimal.Decimal
	CostoUnitario decimal.Decimal
	Total         decimal.Decimal
	Fecha         time.Time
	CreatedAt     time.Time
	CreatedBy     string
}
