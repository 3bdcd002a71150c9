package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gasto es un egreso operativo del negocio (arriendo, servicios, nómina).
// No toca inventario; solo alimenta los reportes de egresos.
type Gasto struct {
	ID          string
	NegocioID   string
	Concepto    string
	Categoria   string
	Monto       decimal.Decimal
	Fecha       time.Time
	Observacion string
	CreatedAt   time.Time
	CreatedBy   string
}
