package repository

import "github.com/jcastrillo/restopos-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para ProductoVenta.
type ProductoRepository interface {
	Create(p *entity.ProductoVenta) error
	GetByID(id string) (*entity.ProductoVenta, error)
	ListByNegocio(negocioID string, limit, offset int) ([]*entity.ProductoVenta, error)
	Update(p *entity.ProductoVenta) error
	Delete(id string) error
}
