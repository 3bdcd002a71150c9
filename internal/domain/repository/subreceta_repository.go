package repository

import "github.com/jcastrillo/restopos-api/internal/domain/entity"

// SubRecetaRepository define el puerto de persistencia para SubReceta.
// Save persiste el agregado completo (cabecera + líneas) en una transacción;
// el núcleo nunca hace escrituras parciales.
type SubRecetaRepository interface {
	Save(sr *entity.SubReceta) error
	GetByID(id string) (*entity.SubReceta, error)
	ListByNegocio(negocioID string, limit, offset int) ([]*entity.SubReceta, error)
	Delete(id string) error
}
