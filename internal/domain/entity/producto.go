package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto de venta. Determinan cómo se deriva el costo.
const (
	ProductoDirecto       = "DIRECTO"        // costo digitado a mano
	ProductoInventario    = "INVENTARIO"     // costo = costo promedio del insumo vinculado
	ProductoReceta        = "RECETA"         // costo = costo actual de la receta vinculada
	ProductoMateriaPrima  = "MATERIA_PRIMA"  // venta directa de insumo, costo digitado
)

// ProductoVenta es un ítem vendible del menú. Para los tipos INVENTARIO y
// RECETA, Costo es derivado (solo lectura en la UI) y se recalcula en cada
// cambio de referencia; para DIRECTO y MATERIA_PRIMA se digita manualmente.
type ProductoVenta struct {
	ID          string
	NegocioID   string
	Nombre      string
	Descripcion string
	CategoriaID string
	Tipo        string
	InsumoID    string // solo para tipo INVENTARIO
	RecetaID    string // solo para tipo RECETA
	Precio      decimal.Decimal
	Costo       decimal.Decimal
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CambiarTipo cambia el tipo del producto limpiando las referencias y el costo
// derivado; el resolvedor nunca conserva una referencia vieja tras el cambio.
func (p *ProductoVenta) CambiarTipo(tipo string) {
	p.Tipo = tipo
	p.InsumoID = ""
	p.RecetaID = ""
	p.Costo = decimal.Zero
}
