package usecase

import (
	"context"

	"github.com/jcastrillo/restopos-api/internal/domain/entity"
	"github.com/jcastrillo/restopos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre el registro de la
// compra y la actualización de costo/stock del insumo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		compraRepo repository.CompraRepository,
		insumoRepo repository.InsumoRepository,
		movRepo repository.MovimientoRepository,
	) error) error
}

// CatalogoDeRepositorio adapta InsumoRepository al puerto de catálogo que
// consumen los editores de costeo y movimientos.
type CatalogoDeRepositorio struct {
	Repo repository.InsumoRepository
}

// GetInsumo resuelve el insumo por id contra el repositorio.
func (c CatalogoDeRepositorio) GetInsumo(id string) (*entity.Insumo, error) {
	return c.Repo.GetByID(id)
}

// RecetarioDeRepositorio adapta RecetaRepository al puerto Recetario.
type RecetarioDeRepositorio struct {
	Repo repository.RecetaRepository
}

// GetReceta resuelve la receta por id contra el repositorio.
func (r RecetarioDeRepositorio) GetReceta(id string) (*entity.Receta, error) {
	return r.Repo.GetByID(id)
}

// SubRecetarioDeRepositorio adapta SubRecetaRepository al puerto SubRecetario
// que consume la importación en bloque de recetas.
type SubRecetarioDeRepositorio struct {
	Repo repository.SubRecetaRepository
}

// GetSubReceta resuelve la sub-receta por id contra el repositorio.
func (s SubRecetarioDeRepositorio) GetSubReceta(id string) (*entity.SubReceta, error) {
	return s.Repo.GetByID(id)
}
