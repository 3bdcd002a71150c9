package entity

import "github.com/shopspring/decimal"

// LineaUso es una fila de consumo de insumo dentro de una sub-receta o receta.
//
// Si InsumoID no está vacío, Unidad y CostoUnitario reflejan los valores del
// catálogo al momento en que la línea se vinculó; la línea no se re-vincula
// sola después. Si PersistedID no está vacío (la línea ya existe en BD),
// InsumoID, Unidad y el borrado quedan bloqueados: solo Cantidad puede cambiar.
type LineaUso struct {
	PersistedID   string // vacío para líneas nuevas
	InsumoID      string // vacío para líneas importadas de sub-receta
	NombreInsumo  string
	Unidad        string
	Cantidad      decimal.Decimal
	CostoUnitario decimal.Decimal
}

// Bloqueada indica si la línea ya fue persistida y sus campos de vínculo están cerrados.
func (l LineaUso) Bloqueada() bool { return l.PersistedID != "" }

// Resuelta indica si la línea tiene un insumo identificable, por referencia
// de catálogo o por nombre arrastrado de una importación.
func (l LineaUso) Resuelta() bool { return l.InsumoID != "" || l.NombreInsumo != "" }

// Costo devuelve Cantidad × CostoUnitario de la línea.
func (l LineaUso) Costo() decimal.Decimal { return l.Cantidad.Mul(l.CostoUnitario) }
