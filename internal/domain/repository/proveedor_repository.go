package repository

import "github.com/jcastrillo/restopos-api/internal/domain/entity"

// ProveedorRepository define el puerto de persistencia para Proveedor.
type ProveedorRepository interface {
	Create(p *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	ListByNegocio(negocioID string, limit, offset int) ([]*entity.Proveedor, error)
	Update(p *entity.Proveedor) error
	Delete(id string) error
}
