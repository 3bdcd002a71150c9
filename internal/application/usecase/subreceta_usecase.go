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

// SubRecetaUseCase guarda sub-recetas completas (cabecera + líneas) pasando
// por el editor de costeo: vínculo de catálogo para líneas nuevas, respeto
// del bloqueo de líneas persistidas y validación al guardar.
type SubRecetaUseCase struct {
	repo     repository.SubRecetaRepository
	catalogo costeo.CatalogoInsumos
}

// NewSubRecetaUseCase construye el caso de uso.
func NewSubRecetaUseCase(repo repository.SubRecetaRepository, catalogo costeo.CatalogoInsumos) *SubRecetaUseCase {
	return &SubRecetaUseCase{repo: repo, catalogo: catalogo}
}

// Save crea (id vacío) o actualiza una sub-receta. Si la validación falla,
// devuelve el mapa campo→mensaje y no persiste nada.
func (uc *SubRecetaUseCase) Save(negocioID, id string, in dto.SaveSubRecetaRequest) (*dto.SubRecetaResponse, costeo.ErroresCampo, error) {
	now := time.Now()
	var sr *entity.SubReceta
	if id == "" {
		sr = &entity.SubReceta{
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
		sr = existente
	}

	sr.Nombre = in.Nombre
	sr.Instrucciones = in.Instrucciones
	sr.ArchivoAdjunto = in.ArchivoAdjunto
	if in.Estado != "" {
		sr.Estado = in.Estado
	}
	lineas, err := reconciliarLineas(uc.catalogo, sr.Lineas, in.Lineas)
	if err != nil {
		return nil, nil, err
	}
	sr.Lineas = lineas
	sr.UpdatedAt = now

	editor := costeo.NewSubRecetaEditor(uc.catalogo, sr)
	if errores := editor.ValidarParaGuardar(); !errores.OK() {
		return nil, errores, nil
	}
	asignarPersistedIDs(sr.Lineas)
	if err := uc.repo.Save(sr); err != nil {
		return nil, nil, err
	}
	return toSubRecetaResponse(sr), nil, nil
}

// GetByID obtiene una sub-receta por ID.
func (uc *SubRecetaUseCase) GetByID(id string) (*dto.SubRecetaResponse, error) {
	sr, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sr == nil {
		return nil, nil
	}
	return toSubRecetaResponse(sr), nil
}

// List lista sub-recetas por negocio con paginación.
func (uc *SubRecetaUseCase) List(negocioID string, limit, offset int) (*dto.SubRecetaListResponse, error) {
	list, err := uc.repo.ListByNegocio(negocioID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubRecetaResponse, 0, len(list))
	for _, sr := range list {
		items = append(items, *toSubRecetaResponse(sr))
	}
	return &dto.SubRecetaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina la sub-receta completa (cabecera + líneas). El borrado en
// cascada es decisión del repositorio, no del editor.
func (uc *SubRecetaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// reconciliarLineas arma el conjunto de líneas final a partir del payload:
// las líneas con PersistedID conservan sus campos bloqueados (solo cambia la
// cantidad), las nuevas con InsumoID se vinculan al catálogo de hoy, y las
// persistidas que el payload omitió se conservan (una línea bloqueada no se
// borra por esta vía).
func reconciliarLineas(catalogo costeo.CatalogoInsumos, guardadas []entity.LineaUso, payload []dto.LineaUsoRequest) ([]entity.LineaUso, error) {
	porID := make(map[string]entity.LineaUso, len(guardadas))
	orden := make([]string, 0, len(guardadas))
	for _, l := range guardadas {
		if l.PersistedID != "" {
			porID[l.PersistedID] = l
			orden = append(orden, l.PersistedID)
		}
	}

	nuevas := make([]entity.LineaUso, 0, len(payload))
	for _, lr := range payload {
		if lr.PersistedID != "" {
			guardada, ok := porID[lr.PersistedID]
			if !ok {
				return nil, domain.ErrConflict
			}
			if !lr.Cantidad.IsNegative() {
				guardada.Cantidad = lr.Cantidad
			}
			nuevas = append(nuevas, guardada)
			delete(porID, lr.PersistedID)
			continue
		}
		nueva := entity.LineaUso{
			NombreInsumo: lr.NombreInsumo,
			Cantidad:     lr.Cantidad,
		}
		if lr.InsumoID != "" {
			insumo, err := catalogo.GetInsumo(lr.InsumoID)
			if err != nil {
				return nil, err
			}
			if insumo != nil {
				nueva.InsumoID = insumo.ID
				nueva.NombreInsumo = insumo.Nombre
				nueva.Unidad = insumo.Unidad
				nueva.CostoUnitario = insumo.CostoPromedio
			}
		}
		nuevas = append(nuevas, nueva)
	}

	// Líneas bloqueadas omitidas en el payload: se conservan en su orden.
	for _, id := range orden {
		if guardada, ok := porID[id]; ok {
			nuevas = append(nuevas, guardada)
		}
	}
	return nuevas, nil
}

// asignarPersistedIDs marca las líneas nuevas como persistidas antes del Save.
func asignarPersistedIDs(lineas []entity.LineaUso) {
	for i := range lineas {
		if lineas[i].PersistedID == "" {
			lineas[i].PersistedID = uuid.New().String()
		}
	}
}

func toLineaUsoResponse(l entity.LineaUso) dto.LineaUsoResponse {
	return dto.LineaUsoResponse{
		PersistedID:   l.PersistedID,
		InsumoID:      l.InsumoID,
		NombreInsumo:  l.NombreInsumo,
		Unidad:        l.Unidad,
		Cantidad:      l.Cantidad,
		CostoUnitario: l.CostoUnitario,
		Costo:         l.Costo(),
		Importada:     l.InsumoID == "",
	}
}

func toSubRecetaResponse(sr *entity.SubReceta) *dto.SubRecetaResponse {
	if sr == nil {
		return nil
	}
	lineas := make([]dto.LineaUsoResponse, 0, len(sr.Lineas))
	for _, l := range sr.Lineas {
		lineas = append(lineas, toLineaUsoResponse(l))
	}
	return &dto.SubRecetaResponse{
		ID:             sr.ID,
		Nombre:         sr.Nombre,
		Instrucciones:  sr.Instrucciones,
		ArchivoAdjunto: sr.ArchivoAdjunto,
		Costo:          sr.Costo,
		Estado:         sr.Estado,
		Lineas:         lineas,
		CreatedAt:      sr.CreatedAt,
		UpdatedAt:      sr.UpdatedAt,
	}
}
