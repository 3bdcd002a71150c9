package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastrillo/restopos-api/internal/application/dto"
	"github.com/jcastrillo/restopos-api/internal/domain"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
	"github.com/jcastrillo/restopos-api/internal/domain/repository"
	"github.com/jcastrillo/restopos-api/pkg/texto"
)

// InsumoUseCase casos de uso CRUD para insumos. CostoPromedio y Stock se
// manejan vía compras y movimientos, nunca por edición directa.
type InsumoUseCase struct {
	repo repository.InsumoRepository
}

// NewInsumoUseCase construye el caso de uso.
func NewInsumoUseCase(repo repository.InsumoRepository) *InsumoUseCase {
	return &InsumoUseCase{repo: repo}
}

// Create crea un insumo nuevo. Costo y stock inician en cero.
func (uc *InsumoUseCase) Create(negocioID string, in dto.CreateInsumoRequest) (*dto.InsumoResponse, error) {
	if in.Nombre == "" || in.Unidad == "" {
		return nil, domain.ErrInvalidInput
	}
	inventariable := true
	if in.Inventariable != nil {
		inventariable = *in.Inventariable
	}
	now := time.Now()
	insumo := &entity.Insumo{
		ID:            uuid.New().String(),
		NegocioID:     negocioID,
		Nombre:        in.Nombre,
		Unidad:        in.Unidad,
		CostoPromedio: decimal.Zero,
		Stock:         decimal.Zero,
		StockMinimo:   in.StockMinimo,
		CategoriaID:   in.CategoriaID,
		Activo:        true,
		Inventariable: inventariable,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(insumo); err != nil {
		return nil, err
	}
	return toInsumoResponse(insumo), nil
}

// GetByID obtiene un insumo por ID.
func (uc *InsumoUseCase) GetByID(id string) (*dto.InsumoResponse, error) {
	insumo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if insumo == nil {
		return nil, nil
	}
	return toInsumoResponse(insumo), nil
}

// Update actualiza un insumo. No permite modificar costo ni stock.
func (uc *InsumoUseCase) Update(id string, in dto.UpdateInsumoRequest) (*dto.InsumoResponse, error) {
	insumo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if insumo == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		insumo.Nombre = *in.Nombre
	}
	if in.Unidad != nil {
		insumo.Unidad = *in.Unidad
	}
	if in.StockMinimo != nil {
		insumo.StockMinimo = *in.StockMinimo
	}
	if in.CategoriaID != nil {
		insumo.CategoriaID = *in.CategoriaID
	}
	if in.Activo != nil {
		insumo.Activo = *in.Activo
	}
	insumo.UpdatedAt = time.Now()
	if err := uc.repo.Update(insumo); err != nil {
		return nil, err
	}
	return toInsumoResponse(insumo), nil
}

// List lista insumos por negocio con paginación.
func (uc *InsumoUseCase) List(negocioID string, limit, offset int) (*dto.InsumoListResponse, error) {
	list, err := uc.repo.ListByNegocio(negocioID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InsumoResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toInsumoResponse(i))
	}
	return &dto.InsumoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Candidatos lista los insumos seleccionables en líneas de receta y de
// movimiento (activos e inventariables), con filtro de búsqueda insensible
// a mayúsculas y tildes ("azucar" encuentra "Azúcar").
func (uc *InsumoUseCase) Candidatos(negocioID, busqueda string) ([]dto.InsumoResponse, error) {
	list, err := uc.repo.ListCandidatos(negocioID)
	if err != nil {
		return nil, err
	}
	filtro := texto.Normalizar(busqueda)
	items := make([]dto.InsumoResponse, 0, len(list))
	for _, i := range list {
		if filtro != "" && !strings.Contains(texto.Normalizar(i.Nombre), filtro) {
			continue
		}
		items = append(items, *toInsumoResponse(i))
	}
	return items, nil
}

// Delete elimina un insumo por ID.
func (uc *InsumoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toInsumoResponse(i *entity.Insumo) *dto.InsumoResponse {
	if i == nil {
		return nil
	}
	return &dto.InsumoResponse{
		ID:            i.ID,
		NegocioID:     i.NegocioID,
		Nombre:        i.Nombre,
		Unidad:        i.Unidad,
		CostoPromedio: i.CostoPromedio,
		Stock:         i.Stock,
		StockMinimo:   i.StockMinimo,
		CategoriaID:   i.CategoriaID,
		Activo:        i.Activo,
		Inventariable: i.Inventariable,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}
