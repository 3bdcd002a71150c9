package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de sub-recetas y recetas.
const (
	EstadoActivo   = "ACTIVO"
	EstadoInactivo = "INACTIVO"
)

// SubReceta es una preparación reutilizable (salsa, masa base) compuesta de
// líneas de insumo. Costo se mantiene igual a la suma de los costos de sus
// líneas; el editor lo recalcula en cada mutación.
type SubReceta struct {
	ID                string
	NegocioID         string
	Nombre            string
	Instrucciones     string
	ArchivoAdjunto    string // nombre del archivo de instrucciones, si se cargó
	Costo             decimal.Decimal
	Estado            string
	Lineas            []LineaUso
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
