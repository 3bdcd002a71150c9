package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastrillo/restopos-api/internal/application/dto"
	"github.com/jcastrillo/restopos-api/internal/domain"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
	"github.com/jcastrillo/restopos-api/internal/domain/repository"
)

// GastoUseCase casos de uso CRUD para gastos operativos.
type GastoUseCase struct {
	repo repository.GastoRepository
}

// NewGastoUseCase construye el caso de uso.
func NewGastoUseCase(repo repository.GastoRepository) *GastoUseCase {
	return &GastoUseCase{repo: repo}
}

// Create registra un gasto. El monto debe ser mayor a cero.
func (uc *GastoUseCase) Create(negocioID, userID string, in dto.SaveGastoRequest) (*dto.GastoResponse, error) {
	if in.Concepto == "" || !in.Monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	fecha := now
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	g := &entity.Gasto{
		ID:          uuid.New().String(),
		NegocioID:   negocioID,
		Concepto:    in.Concepto,
		Categoria:   in.Categoria,
		Monto:       in.Monto,
		Fecha:       fecha,
		Observacion: in.Observacion,
		CreatedAt:   now,
		CreatedBy:   userID,
	}
	if err := uc.repo.Create(g); err != nil {
		return nil, err
	}
	return toGastoResponse(g), nil
}

// GetByID obtiene un gasto por ID.
func (uc *GastoUseCase) GetByID(id string) (*dto.GastoResponse, error) {
	g, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	return toGastoResponse(g), nil
}

// Update actualiza un gasto existente.
func (uc *GastoUseCase) Update(id string, in dto.SaveGastoRequest) (*dto.GastoResponse, error) {
	g, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	if in.Concepto == "" || !in.Monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	g.Concepto = in.Concepto
	g.Categoria = in.Categoria
	g.Monto = in.Monto
	if in.Fecha != nil {
		g.Fecha = *in.Fecha
	}
	g.Observacion = in.Observacion
	if err := uc.repo.Update(g); err != nil {
		return nil, err
	}
	return toGastoResponse(g), nil
}

// List lista gastos por negocio y rango de fechas con paginación.
func (uc *GastoUseCase) List(negocioID string, from, to *time.Time, limit, offset int) (*dto.GastoListResponse, error) {
	list, err := uc.repo.ListByNegocio(negocioID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GastoResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toGastoResponse(g))
	}
	return &dto.GastoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un gasto por ID.
func (uc *GastoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toGastoResponse(g *entity.Gasto) *dto.GastoResponse {
	if g == nil {
		return nil
	}
	return &dto.GastoResponse{
		ID:          g.ID,
		Concepto:    g.Concepto,
		Categoria:   g.Categoria,
		Monto:       g.Monto,
		Fecha:       g.Fecha,
		Observacion: g.Observacion,
		CreatedAt:   g.CreatedAt,
	}
}
