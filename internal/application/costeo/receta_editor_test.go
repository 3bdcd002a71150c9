package costeo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastrillo/restopos-api/internal/application/costeo"
	"github.com/jcastrillo/restopos-api/internal/domain"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
)

func subRecetaMasa() *entity.SubReceta {
	return &entity.SubReceta{
		Nombre: "Masa base",
		Lineas: []entity.LineaUso{
			{InsumoID: "harina", NombreInsumo: "Harina de trigo", Unidad: "kg", Cantidad: dec("2"), CostoUnitario: dec("10")},
			{InsumoID: "leche", NombreInsumo: "Leche entera", Unidad: "l", Cantidad: dec("0.5"), CostoUnitario: dec("4")},
		},
	}
}

// TestRecetaEditor_ImportarDeSubReceta: importa N líneas copiadas por valor,
// sin InsumoID, y el costo de la receta sube exactamente en el costo fuente.
func TestRecetaEditor_ImportarDeSubReceta(t *testing.T) {
	e := costeo.NewRecetaEditor(catalogoDePrueba(), &entity.Receta{Nombre: "Pizza"})
	fuente := subRecetaMasa()

	require.NoError(t, e.ImportarDeSubReceta(fuente))

	r := e.Documento()
	require.Len(t, r.Lineas, 2, "una línea importada por cada línea fuente")
	for _, l := range r.Lineas {
		assert.Empty(t, l.InsumoID, "las líneas importadas no arrastran id de catálogo")
	}
	assert.Equal(t, "Harina de trigo", r.Lineas[0].NombreInsumo)
	assert.True(t, dec("22").Equal(r.Costo))

	// Copia por valor: mutar la fuente después no cambia la receta.
	fuente.Lineas[0].CostoUnitario = dec("100")
	assert.True(t, dec("10").Equal(e.Documento().Lineas[0].CostoUnitario))
	assert.True(t, dec("22").Equal(e.Documento().Costo))
}

// TestRecetaEditor_ImportarMasLineaManual: receta que importa la masa (22.00)
// y agrega (1 unidad, $3) debe costar 25.00.
func TestRecetaEditor_ImportarMasLineaManual(t *testing.T) {
	cat := catalogoDePrueba()
	cat["queso"] = &entity.Insumo{ID: "queso", Nombre: "Queso", Unidad: "unidad", CostoPromedio: dec("3"), Activo: true, Inventariable: true}

	e := costeo.NewRecetaEditor(cat, &entity.Receta{Nombre: "Pizza"})
	require.NoError(t, e.ImportarDeSubReceta(subRecetaMasa()))

	e.AgregarLinea()
	require.NoError(t, e.VincularInsumo(2, "queso"))
	e.SetCantidad(2, dec("1"))

	assert.True(t, dec("25").Equal(e.Documento().Costo),
		"esperado 25.00, obtenido %s", e.Documento().Costo)
}

// TestRecetaEditor_ImportarFuenteVacia falla completo, sin importación parcial.
func TestRecetaEditor_ImportarFuenteVacia(t *testing.T) {
	e := costeo.NewRecetaEditor(catalogoDePrueba(), &entity.Receta{Nombre: "Pizza"})

	err := e.ImportarDeSubReceta(&entity.SubReceta{Nombre: "Vacía"})
	assert.ErrorIs(t, err, domain.ErrSinLineas)
	assert.Empty(t, e.Documento().Lineas)

	err = e.ImportarDeSubReceta(nil)
	assert.ErrorIs(t, err, domain.ErrSinLineas)
}

// TestRecetaEditor_LineasImportadasValidanPorNombre: una línea importada no
// tiene InsumoID pero cuenta como resuelta por el nombre arrastrado.
func TestRecetaEditor_LineasImportadasValidanPorNombre(t *testing.T) {
	e := costeo.NewRecetaEditor(catalogoDePrueba(), &entity.Receta{Nombre: "Pizza"})
	require.NoError(t, e.ImportarDeSubReceta(subRecetaMasa()))
	assert.True(t, e.ValidarParaGuardar().OK())
}
