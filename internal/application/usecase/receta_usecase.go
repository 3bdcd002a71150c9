package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jcastrillo/restopos-api/internal/application/costeo"
	"github.com/jcastrillo/restopos-api/internal/application/dto"
	"github.com/jcastrillo/restopos-api/internal/domain"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
	"github.com/jcastrillo/restopos-api/internal/domain/repository"
)

// RecetaUseCase guarda recetas completas con las mismas reglas de líneas que
// las sub-recetas, más la importación en bloque desde una sub-receta.
type RecetaUseCase struct {
	repo       repository.RecetaRepository
	subRecetas costeo.SubRecetario
	catalogo   costeo.CatalogoInsumos
}

// NewRecetaUseCase construye el caso de uso.
func NewRecetaUseCase(repo repository.RecetaRepository, subRecetas costeo.SubRecetario, catalogo costeo.CatalogoInsumos) *RecetaUseCase {
	return &RecetaUseCase{repo: repo, subRecetas: subRecetas, catalogo: catalogo}
}

// Save crea (id vacío) o actualiza una receta. Si el payload trae
// ImportarSubRecetaID, las líneas de esa sub-receta se anexan al final
// copiadas por valor; una fuente sin líneas rechaza el guardado completo.
func (uc *RecetaUseCase) Save(negocioID, id string, in dto.SaveRecetaRequest) (*dto.RecetaResponse, costeo.ErroresCampo, error) {
	now := time.Now()
	var r *entity.Receta
	if id == "" {
		r = &entity.Receta{
			ID:        uuid.New().String(),
			NegocioID: negocioID,
			CreatedAt: now,
		}
	} else {
		existente, err := uc.repo.GetByID(id)
		if err != nil {
			return nil, nil, err
		}
		if existente == nil || existente.NegocioID != negocioID {
			return nil, nil, domain.ErrNotFound
		}
		r = existente
	}

	r.Nombre = in.Nombre
	r.Instrucciones = in.Instrucciones
	r.ArchivoAdjunto = in.ArchivoAdjunto
	if in.Estado != "" {
		r.Estado = in.Estado
	}
	lineas, err := reconciliarLineas(uc.catalogo, r.Lineas, in.Lineas)
	if err != nil {
		return nil, nil, err
	}
	r.Lineas = lineas
	r.UpdatedAt = now

	editor := costeo.NewRecetaEditor(uc.catalogo, r)
	if in.ImportarSubRecetaID != "" {
		fuente, err := uc.subRecetas.GetSubReceta(in.ImportarSubRecetaID)
		if err != nil {
			return nil, nil, err
		}
		if fuente == nil {
			return nil, nil, domain.ErrNotFound
		}
		if err := editor.ImportarDeSubReceta(fuente); err != nil {
			return nil, nil, err
		}
	}
	if errores := editor.ValidarParaGuardar(); !errores.OK() {
		return nil, errores, nil
	}
	asignarPersistedIDs(r.Lineas)
	if err := uc.repo.Save(r); err != nil {
		return nil, nil, err
	}
	return toRecetaResponse(r), nil, nil
}

// GetByID obtiene una receta por ID.
func (uc *RecetaUseCase) GetByID(id string) (*dto.RecetaResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return toRecetaResponse(r), nil
}

// List lista recetas por negocio con paginación.
func (uc *RecetaUseCase) List(negocioID string, limit, offset int) (*dto.RecetaListResponse, error) {
	list, err := uc.repo.ListByNegocio(negocioID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecetaResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRecetaResponse(r))
	}
	return &dto.RecetaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina la receta completa.
func (uc *RecetaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toRecetaResponse(r *entity.Receta) *dto.RecetaResponse {
	if r == nil {
		return nil
	}
	lineas := make([]dto.LineaUsoResponse, 0, len(r.Lineas))
	for _, l := range r.Lineas {
		lineas = append(lineas, toLineaUsoResponse(l))
	}
	return &dto.RecetaResponse{
		ID:             r.ID,
		Nombre:         r.Nombre,
		Instrucciones:  r.Instrucciones,
		ArchivoAdjunto: r.ArchivoAdjunto,
		Costo:          r.Costo,
		Estado:         r.Estado,
		Lineas:         lineas,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
