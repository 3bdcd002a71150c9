package repository

import (
	"time"

	"github.com/jcastrillo/restopos-api/internal/domain/entity"
)

// GastoRepository define el puerto de persistencia para Gasto.
type GastoRepository interface {
	Create(g *entity.Gasto) error
	GetByID(id string) (*entity.Gasto, error)
	ListByNegocio(negocioID string, from, to *time.Time, limit, offset int) ([]*entity.Gasto, error)
	Update(g *entity.Gasto) error
	Delete(id string) error
}
