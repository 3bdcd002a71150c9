package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jcastrillo/restopos-api/internal/application/dto"
	"github.com/jcastrillo/restopos-api/internal/domain"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
	"github.com/jcastrillo/restopos-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD para categorías de insumos y productos.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Create crea una categoría.
func (uc *CategoriaUseCase) Create(negocioID string, in dto.SaveCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nombre == "" || (in.Tipo != "insumo" && in.Tipo != "producto") {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Categoria{
		ID:        uuid.New().String(),
		NegocioID: negocioID,
		Nombre:    in.Nombre,
		Tipo:      in.Tipo,
		Activa:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

// List lista categorías por negocio, opcionalmente filtradas por tipo.
func (uc *CategoriaUseCase) List(negocioID, tipo string) ([]dto.CategoriaResponse, error) {
	list, err := uc.repo.ListByNegocio(negocioID, tipo)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoriaResponse(c))
	}
	return items, nil
}

// Update renombra una categoría.
func (uc *CategoriaUseCase) Update(id string, in dto.SaveCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	c.Nombre = in.Nombre
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

// Delete elimina una categoría por ID.
func (uc *CategoriaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoriaResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Tipo:      c.Tipo,
		Activa:    c.Activa,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
