package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receta es la composición de un plato vendible. Tiene la misma forma que una
// sub-receta y además acepta líneas importadas en bloque desde una sub-receta
// (copiadas por valor: cambios posteriores en la fuente no la afectan).
type Receta struct {
	ID             string
	NegocioID      string
	Nombre         string
	Instrucciones  string
	ArchivoAdjunto string
	Costo          decimal.Decimal
	Estado         string
	Lineas         []LineaUso
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
