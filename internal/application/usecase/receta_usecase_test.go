package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastrillo/restopos-api/internal/application/dto"
	"github.com/jcastrillo/restopos-api/internal/application/usecase"
	"github.com/jcastrillo/restopos-api/internal/domain"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
)

// recetaRepoFake guarda recetas en memoria.
type recetaRepoFake struct {
	guardadas map[string]*entity.Receta
	saves     int
}

func newRecetaRepoFake() *recetaRepoFake {
	return &recetaRepoFake{guardadas: make(map[string]*entity.Receta)}
}

func (r *recetaRepoFake) Save(rec *entity.Receta) error {
	copia := *rec
	copia.Lineas = append([]entity.LineaUso(nil), rec.Lineas...)
	r.guardadas[rec.ID] = &copia
	r.saves++
	return nil
}

func (r *recetaRepoFake) GetByID(id string) (*entity.Receta, error) {
	rec, ok := r.guardadas[id]
	if !ok {
		return nil, nil
	}
	copia := *rec
	copia.Lineas = append([]entity.LineaUso(nil), rec.Lineas...)
	return &copia, nil
}

func (r *recetaRepoFake) ListByNegocio(string, int, int) ([]*entity.Receta, error) {
	return nil, nil
}

func (r *recetaRepoFake) Delete(id string) error {
	delete(r.guardadas, id)
	return nil
}

// subRecetarioFijo implementa costeo.SubRecetario sobre un mapa en memoria.
type subRecetarioFijo map[string]*entity.SubReceta

func (s subRecetarioFijo) GetSubReceta(id string) (*entity.SubReceta, error) { return s[id], nil }

func TestRecetaUseCase_ImportaLineasDeSubReceta(t *testing.T) {
	repo := newRecetaRepoFake()
	subRecetas := subRecetarioFijo{
		"masa": {
			ID:     "masa",
			Nombre: "Masa base",
			Lineas: []entity.LineaUso{
				{InsumoID: "leche", NombreInsumo: "Leche entera", Unidad: "l", Cantidad: dec("0.5"), CostoUnitario: dec("4")},
			},
		},
	}
	uc := usecase.NewRecetaUseCase(repo, subRecetas, catalogoDePrueba())

	out, campos, err := uc.Save("neg-1", "", dto.SaveRecetaRequest{
		Nombre:              "Pan de campo",
		Lineas:              []dto.LineaUsoRequest{{InsumoID: "harina", Cantidad: dec("2")}},
		ImportarSubRecetaID: "masa",
	})
	require.NoError(t, err)
	require.True(t, campos.OK(), "no debería haber errores de campo: %v", campos)
	require.NotNil(t, out)

	// línea propia (2 kg × $10) + línea importada (0.5 l × $4)
	require.Len(t, out.Lineas, 2)
	assert.True(t, dec("22").Equal(out.Costo), "esperado 22, obtenido %s", out.Costo)

	importada := out.Lineas[1]
	assert.Empty(t, importada.InsumoID, "la línea importada se copia por valor, sin referencia de catálogo")
	assert.True(t, importada.Importada)
	assert.Equal(t, "Leche entera", importada.NombreInsumo)
	assert.Equal(t, "l", importada.Unidad)
	assert.True(t, dec("4").Equal(importada.CostoUnitario))
	assert.Equal(t, 1, repo.saves)
}

func TestRecetaUseCase_FuenteSinLineasRechazaElGuardado(t *testing.T) {
	repo := newRecetaRepoFake()
	subRecetas := subRecetarioFijo{"vacia": {ID: "vacia", Nombre: "Sin contenido"}}
	uc := usecase.NewRecetaUseCase(repo, subRecetas, catalogoDePrueba())

	_, _, err := uc.Save("neg-1", "", dto.SaveRecetaRequest{
		Nombre:              "Pan de campo",
		Lineas:              []dto.LineaUsoRequest{{InsumoID: "harina", Cantidad: dec("2")}},
		ImportarSubRecetaID: "vacia",
	})
	require.ErrorIs(t, err, domain.ErrSinLineas)
	assert.Equal(t, 0, repo.saves, "una importación fallida no persiste nada")
}

func TestRecetaUseCase_SubRecetaInexistenteEsNotFound(t *testing.T) {
	repo := newRecetaRepoFake()
	uc := usecase.NewRecetaUseCase(repo, subRecetarioFijo{}, catalogoDePrueba())

	_, _, err := uc.Save("neg-1", "", dto.SaveRecetaRequest{
		Nombre:              "Pan de campo",
		Lineas:              []dto.LineaUsoRequest{{InsumoID: "harina", Cantidad: dec("2")}},
		ImportarSubRecetaID: "no-existe",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, repo.saves)
}
