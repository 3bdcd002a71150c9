package costeo

import "github.com/jcastrillo/restopos-api/internal/domain/entity"

// CatalogoInsumos es el colaborador de catálogo que resuelve un insumo por
// id. Devuelve (nil, nil) cuando no existe; el editor trata la ausencia como
// dato no vinculable, nunca como falla del proceso.
type CatalogoInsumos interface {
	GetInsumo(id string) (*entity.Insumo, error)
}

// Recetario resuelve recetas por id para el costo de productos tipo RECETA.
type Recetario interface {
	GetReceta(id string) (*entity.Receta, error)
}

// SubRecetario resuelve sub-recetas por id para la importación en recetas.
type SubRecetario interface {
	GetSubReceta(id string) (*entity.SubReceta, error)
}
