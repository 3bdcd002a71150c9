package movimientos

import "github.com/jcastrillo/restopos-api/internal/domain/entity"

// CatalogoInsumos resuelve el insumo seleccionado en una línea.
type CatalogoInsumos interface {
	GetInsumo(id string) (*entity.Insumo, error)
}

// UltimaCompraLookup devuelve la compra más reciente de un insumo, o nil si
// no hay ninguna. Para el editor la ausencia (o el error) nunca es bloqueante:
// se sustituye por el snapshot en cero.
type UltimaCompraLookup interface {
	UltimaCompra(insumoID string) (*entity.Compra, error)
}
