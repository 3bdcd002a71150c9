package repository

import "github.com/jcastrillo/restopos-api/internal/domain/entity"

// CompraRepository define el puerto de persistencia para compras de insumos.
// UltimaCompra devuelve la compra más reciente del insumo o nil si no hay
// ninguna; la ausencia nunca se trata como error en el editor de movimientos.
type CompraRepository interface {
	Create(c *entity.Compra) error
	GetByID(id string) (*entity.Compra, error)
	UltimaCompra(insumoID string) (*entity.Compra, error)
	ListByInsumo(insumoID string, limit, offset int) ([]*entity.Compra, error)
	ListByNegocio(negocioID string, limit, offset int) ([]*entity.Compra, error)
}
