package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jcastrillo/restopos-api/internal/application/costeo"
	"github.com/jcastrillo/restopos-api/internal/application/dto"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
	"github.com/jcastrillo/restopos-api/internal/domain/repository"
)

// ProductoUseCase casos de uso para productos de venta. El costo de los
// tipos INVENTARIO y RECETA se deriva con el resolvedor en cada guardado;
// para DIRECTO y MATERIA_PRIMA se respeta el digitado.
type ProductoUseCase struct {
	repo     repository.ProductoRepository
	catalogo costeo.CatalogoInsumos
	recetas  costeo.Recetario
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, catalogo costeo.CatalogoInsumos, recetas costeo.Recetario) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, catalogo: catalogo, recetas: recetas}
}

// Create valida y crea el producto. Si la validación falla devuelve el mapa
// campo→mensaje y no persiste nada.
func (uc *ProductoUseCase) Create(negocioID string, in dto.SaveProductoRequest) (*dto.ProductoResponse, costeo.ErroresCampo, error) {
	now := time.Now()
	p := &entity.ProductoVenta{
		ID:          uuid.New().String(),
		NegocioID:   negocioID,
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	uc.aplicar(p, in)
	if errores := costeo.ValidarProducto(p, uc.catalogo, uc.recetas); !errores.OK() {
		return nil, errores, nil
	}
	p.Costo = costeo.ResolverCostoProducto(p, uc.catalogo, uc.recetas)
	if err := uc.repo.Create(p); err != nil {
		return nil, nil, err
	}
	return toProductoResponse(p), nil, nil
}

// Update valida y actualiza el producto, re-derivando el costo.
func (uc *ProductoUseCase) Update(id string, in dto.SaveProductoRequest) (*dto.ProductoResponse, costeo.ErroresCampo, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, nil
	}
	uc.aplicar(p, in)
	if errores := costeo.ValidarProducto(p, uc.catalogo, uc.recetas); !errores.OK() {
		return nil, errores, nil
	}
	p.Costo = costeo.ResolverCostoProducto(p, uc.catalogo, uc.recetas)
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, nil, err
	}
	return toProductoResponse(p), nil, nil
}

// aplicar vuelca el request sobre la entidad. Un cambio de tipo limpia las
// referencias y el costo derivado antes de aplicar las nuevas.
func (uc *ProductoUseCase) aplicar(p *entity.ProductoVenta, in dto.SaveProductoRequest) {
	if p.Tipo != in.Tipo {
		p.CambiarTipo(in.Tipo)
	}
	p.Nombre = in.Nombre
	p.Descripcion = in.Descripcion
	p.CategoriaID = in.CategoriaID
	p.Precio = in.Precio
	switch in.Tipo {
	case entity.ProductoInventario:
		p.InsumoID = in.InsumoID
	case entity.ProductoReceta:
		p.RecetaID = in.RecetaID
	default:
		p.Costo = in.Costo
	}
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductoResponse(p), nil
}

// List lista productos por negocio con paginación.
func (uc *ProductoUseCase) List(negocioID string, limit, offset int) (*dto.ProductoListResponse, error) {
	list, err := uc.repo.ListByNegocio(negocioID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.ProductoVenta) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		CategoriaID: p.CategoriaID,
		Tipo:        p.Tipo,
		InsumoID:    p.InsumoID,
		RecetaID:    p.RecetaID,
		Precio:      p.Precio,
		Costo:       p.Costo,
		Activo:      p.Activo,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
