package costeo_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastrillo/restopos-api/internal/application/costeo"
	"github.com/jcastrillo/restopos-api/internal/domain"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// catalogoFijo implementa costeo.CatalogoInsumos sobre un mapa en memoria.
type catalogoFijo map[string]*entity.Insumo

func (c catalogoFijo) GetInsumo(id string) (*entity.Insumo, error) { return c[id], nil }

func catalogoDePrueba() catalogoFijo {
	return catalogoFijo{
		"harina": {ID: "harina", Nombre: "Harina de trigo", Unidad: "kg", CostoPromedio: dec("10"), Activo: true, Inventariable: true},
		"leche":  {ID: "leche", Nombre: "Leche entera", Unidad: "l", CostoPromedio: dec("4"), Activo: true, Inventariable: true},
	}
}

func TestSubRecetaEditor_AgregarLineaVacia(t *testing.T) {
	e := costeo.NewSubRecetaEditor(catalogoDePrueba(), &entity.SubReceta{Nombre: "Masa base"})
	e.AgregarLinea()

	sr := e.Documento()
	require.Len(t, sr.Lineas, 1)
	assert.True(t, sr.Lineas[0].Cantidad.IsZero())
	assert.True(t, sr.Lineas[0].CostoUnitario.IsZero())
	assert.True(t, sr.Costo.IsZero())
}

// TestSubRecetaEditor_CostoEsSumaDeLineas cubre el vector de referencia:
// (2kg, $10) + (0.5l, $4) = 22.00, recalculado tras cada mutación.
func TestSubRecetaEditor_CostoEsSumaDeLineas(t *testing.T) {
	e := costeo.NewSubRecetaEditor(catalogoDePrueba(), &entity.SubReceta{Nombre: "Masa base"})

	e.AgregarLinea()
	require.NoError(t, e.VincularInsumo(0, "harina"))
	e.SetCantidad(0, dec("2"))

	e.AgregarLinea()
	require.NoError(t, e.VincularInsumo(1, "leche"))
	e.SetCantidad(1, dec("0.5"))

	assert.True(t, dec("22").Equal(e.Documento().Costo),
		"esperado 22.00, obtenido %s", e.Documento().Costo)

	// Quitar una línea recalcula el costo.
	e.QuitarLinea(1)
	assert.True(t, dec("20").Equal(e.Documento().Costo))
}

// TestSubRecetaEditor_VincularCopiaValoresDelCatalogo: al vincular, unidad y
// costo unitario quedan exactamente en los valores actuales del catálogo.
func TestSubRecetaEditor_VincularCopiaValoresDelCatalogo(t *testing.T) {
	cat := catalogoDePrueba()
	e := costeo.NewSubRecetaEditor(cat, &entity.SubReceta{Nombre: "Masa"})
	e.AgregarLinea()
	require.NoError(t, e.VincularInsumo(0, "harina"))

	l := e.Documento().Lineas[0]
	assert.Equal(t, "harina", l.InsumoID)
	assert.Equal(t, "Harina de trigo", l.NombreInsumo)
	assert.Equal(t, "kg", l.Unidad)
	assert.True(t, dec("10").Equal(l.CostoUnitario))

	// La línea no se re-vincula sola: subir el costo en el catálogo después
	// del vínculo no cambia la línea.
	cat["harina"].CostoPromedio = dec("15")
	assert.True(t, dec("10").Equal(e.Documento().Lineas[0].CostoUnitario))
}

func TestSubRecetaEditor_VincularInsumoInexistente(t *testing.T) {
	e := costeo.NewSubRecetaEditor(catalogoDePrueba(), &entity.SubReceta{Nombre: "Masa"})
	e.AgregarLinea()
	err := e.VincularInsumo(0, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, e.Documento().Lineas[0].InsumoID, "la línea queda intacta")
}

// TestSubRecetaEditor_LineaPersistidaBloqueada: sobre una línea con
// PersistedID el vínculo y el borrado son no-ops; solo la cantidad cambia.
func TestSubRecetaEditor_LineaPersistidaBloqueada(t *testing.T) {
	sr := &entity.SubReceta{
		Nombre: "Salsa",
		Lineas: []entity.LineaUso{{
			PersistedID: "linea-1", InsumoID: "leche", NombreInsumo: "Leche entera",
			Unidad: "l", Cantidad: dec("1"), CostoUnitario: dec("4"),
		}},
	}
	e := costeo.NewSubRecetaEditor(catalogoDePrueba(), sr)

	// Vincular otro insumo no toca la línea bloqueada.
	require.NoError(t, e.VincularInsumo(0, "harina"))
	assert.Equal(t, "leche", e.Documento().Lineas[0].InsumoID)
	assert.Equal(t, "l", e.Documento().Lineas[0].Unidad)

	// Borrar es no-op.
	e.QuitarLinea(0)
	require.Len(t, e.Documento().Lineas, 1)

	// La cantidad sí es editable y el costo se recalcula.
	e.SetCantidad(0, dec("3"))
	assert.True(t, dec("12").Equal(e.Documento().Costo))
}

func TestSubRecetaEditor_IndicesFueraDeRangoSonNoOp(t *testing.T) {
	e := costeo.NewSubRecetaEditor(catalogoDePrueba(), &entity.SubReceta{Nombre: "Masa"})
	e.QuitarLinea(0)
	e.SetCantidad(5, dec("1"))
	assert.Empty(t, e.Documento().Lineas)
}

func TestSubRecetaEditor_ValidarParaGuardar(t *testing.T) {
	e := costeo.NewSubRecetaEditor(catalogoDePrueba(), &entity.SubReceta{})
	errores := e.ValidarParaGuardar()
	assert.Contains(t, errores, "nombre")
	assert.Contains(t, errores, "lineas")

	e.Documento().Nombre = "Masa"
	e.AgregarLinea()
	errores = e.ValidarParaGuardar()
	assert.Contains(t, errores, "lineas[0].insumo", "línea sin insumo resuelto")
	assert.Contains(t, errores, "lineas[0].cantidad", "cantidad en cero")

	require.NoError(t, e.VincularInsumo(0, "harina"))
	e.SetCantidad(0, dec("2"))
	assert.True(t, e.ValidarParaGuardar().OK())
}
