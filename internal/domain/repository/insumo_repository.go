package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jcastrillo/restopos-api/internal/domain/entity"
)

// InsumoRepository define el puerto de persistencia y catálogo para Insumo (DIP).
// ListCandidatos devuelve únicamente insumos activos e inventariables: son los
// únicos seleccionables en líneas de receta y de movimiento.
type InsumoRepository interface {
	Create(insumo *entity.Insumo) error
	GetByID(id string) (*entity.Insumo, error)
	ListByNegocio(negocioID string, limit, offset int) ([]*entity.Insumo, error)
	ListCandidatos(negocioID string) ([]*entity.Insumo, error)
	Update(insumo *entity.Insumo) error
	// UpdateCostoYStock aplica el resultado del promedio ponderado tras registrar una compra.
	UpdateCostoYStock(insumoID string, costo, stock decimal.Decimal) error
	Delete(id string) error
}
