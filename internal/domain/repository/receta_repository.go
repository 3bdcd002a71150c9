package repository

import "github.com/jcastrillo/restopos-api/internal/domain/entity"

// RecetaRepository define el puerto de persistencia para Receta.
type RecetaRepository interface {
	Save(r *entity.Receta) error
	GetByID(id string) (*entity.Receta, error)
	ListByNegocio(negocioID string, limit, offset int) ([]*entity.Receta, error)
	Delete(id string) error
}
