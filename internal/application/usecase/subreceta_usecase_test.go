package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastrillo/restopos-api/internal/application/dto"
	"github.com/jcastrillo/restopos-api/internal/application/usecase"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// catalogoFijo implementa costeo.CatalogoInsumos sobre un mapa en memoria.
type catalogoFijo map[string]*entity.Insumo

func (c catalogoFijo) GetInsumo(id string) (*entity.Insumo, error) { return c[id], nil }

// subRecetaRepoFake guarda sub-recetas en memoria.
type subRecetaRepoFake struct {
	guardadas map[string]*entity.SubReceta
	saves     int
}

func newSubRecetaRepoFake() *subRecetaRepoFake {
	return &subRecetaRepoFake{guardadas: make(map[string]*entity.SubReceta)}
}

func (r *subRecetaRepoFake) Save(sr *entity.SubReceta) error {
	copia := *sr
	copia.Lineas = append([]entity.LineaUso(nil), sr.Lineas...)
	r.guardadas[sr.ID] = &copia
	r.saves++
	return nil
}

func (r *subRecetaRepoFake) GetByID(id string) (*entity.SubReceta, error) {
	sr, ok := r.guardadas[id]
	if !ok {
		return nil, nil
	}
	copia := *sr
	copia.Lineas = append([]entity.LineaUso(nil), sr.Lineas...)
	return &copia, nil
}

func (r *subRecetaRepoFake) ListByNegocio(string, int, int) ([]*entity.SubReceta, error) {
	return nil, nil
}

func (r *subRecetaRepoFake) Delete(id string) error {
	delete(r.guardadas, id)
	return nil
}

func catalogoDePrueba() catalogoFijo {
	return catalogoFijo{
		"harina": {ID: "harina", NegocioID: "neg-1", Nombre: "Harina de trigo", Unidad: "kg", CostoPromedio: dec("10"), Activo: true, Inventariable: true},
		"leche":  {ID: "leche", NegocioID: "neg-1", Nombre: "Leche entera", Unidad: "l", CostoPromedio: dec("4"), Activo: true, Inventariable: true},
	}
}

func TestSubRecetaUseCase_CreateVinculaYAsignaPersistedIDs(t *testing.T) {
	repo := newSubRecetaRepoFake()
	uc := usecase.NewSubRecetaUseCase(repo, catalogoDePrueba())

	out, campos, err := uc.Save("neg-1", "", dto.SaveSubRecetaRequest{
		Nombre: "Masa base",
		Lineas: []dto.LineaUsoRequest{
			{InsumoID: "harina", Cantidad: dec("2")},
			{InsumoID: "leche", Cantidad: dec("0.5")},
		},
	})
	require.NoError(t, err)
	require.True(t, campos.OK(), "no debería haber errores de campo: %v", campos)
	require.NotNil(t, out)

	assert.True(t, dec("22").Equal(out.Costo), "esperado 22, obtenido %s", out.Costo)
	require.Len(t, out.Lineas, 2)
	for _, l := range out.Lineas {
		assert.NotEmpty(t, l.PersistedID, "toda línea guardada recibe persisted_id")
	}
	assert.Equal(t, "Harina de trigo", out.Lineas[0].NombreInsumo)
	assert.Equal(t, "kg", out.Lineas[0].Unidad)
	assert.Equal(t, 1, repo.saves)
}

func TestSubRecetaUseCase_UpdateSoloCambiaCantidadEnLineaBloqueada(t *testing.T) {
	catalogo := catalogoDePrueba()
	repo := newSubRecetaRepoFake()
	uc := usecase.NewSubRecetaUseCase(repo, catalogo)

	creada, _, err := uc.Save("neg-1", "", dto.SaveSubRecetaRequest{
		Nombre: "Masa base",
		Lineas: []dto.LineaUsoRequest{{InsumoID: "harina", Cantidad: dec("2")}},
	})
	require.NoError(t, err)
	persistedID := creada.Lineas[0].PersistedID

	// El costo del catálogo cambia después de guardar; la línea bloqueada
	// conserva el costo con el que se vinculó.
	catalogo["harina"].CostoPromedio = dec("99")

	out, campos, err := uc.Save("neg-1", creada.ID, dto.SaveSubRecetaRequest{
		Nombre: "Masa base",
		Lineas: []dto.LineaUsoRequest{
			{PersistedID: persistedID, InsumoID: "leche", Cantidad: dec("3")},
		},
	})
	require.NoError(t, err)
	require.True(t, campos.OK())
	require.Len(t, out.Lineas, 1)

	// Cantidad actualizada; insumo, unidad y costo unitario intactos.
	assert.True(t, dec("3").Equal(out.Lineas[0].Cantidad))
	assert.Equal(t, "harina", out.Lineas[0].InsumoID, "el re-vínculo en línea bloqueada se ignora")
	assert.Equal(t, "kg", out.Lineas[0].Unidad)
	assert.True(t, dec("10").Equal(out.Lineas[0].CostoUnitario))
	assert.True(t, dec("30").Equal(out.Costo))
}

func TestSubRecetaUseCase_LineaBloqueadaOmitidaSeConserva(t *testing.T) {
	repo := newSubRecetaRepoFake()
	uc := usecase.NewSubRecetaUseCase(repo, catalogoDePrueba())

	creada, _, err := uc.Save("neg-1", "", dto.SaveSubRecetaRequest{
		Nombre: "Masa base",
		Lineas: []dto.LineaUsoRequest{
			{InsumoID: "harina", Cantidad: dec("2")},
			{InsumoID: "leche", Cantidad: dec("0.5")},
		},
	})
	require.NoError(t, err)

	// El payload de actualización omite la línea de leche: borrar una línea
	// persistida es un no-op, la línea vuelve.
	out, campos, err := uc.Save("neg-1", creada.ID, dto.SaveSubRecetaRequest{
		Nombre: "Masa base",
		Lineas: []dto.LineaUsoRequest{
			{PersistedID: creada.Lineas[0].PersistedID, Cantidad: dec("2")},
		},
	})
	require.NoError(t, err)
	require.True(t, campos.OK())
	require.Len(t, out.Lineas, 2)
	assert.Equal(t, "leche", out.Lineas[1].InsumoID)
	assert.True(t, dec("22").Equal(out.Costo))
}

func TestSubRecetaUseCase_ValidacionBloqueaSinPersistir(t *testing.T) {
	repo := newSubRecetaRepoFake()
	uc := usecase.NewSubRecetaUseCase(repo, catalogoDePrueba())

	// Línea sin insumo ni nombre: irresoluble, el guardado se rechaza con
	// error de campo y sin tocar el repositorio.
	out, campos, err := uc.Save("neg-1", "", dto.SaveSubRecetaRequest{
		Nombre: "Masa base",
		Lineas: []dto.LineaUsoRequest{{Cantidad: dec("1")}},
	})
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.False(t, campos.OK())
	assert.Equal(t, 0, repo.saves)
}
