package costeo_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jcastrillo/restopos-api/internal/application/costeo"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
)

// recetarioFijo implementa costeo.Recetario sobre un mapa en memoria.
type recetarioFijo map[string]*entity.Receta

func (r recetarioFijo) GetReceta(id string) (*entity.Receta, error) { return r[id], nil }

func recetarioDePrueba() recetarioFijo {
	return recetarioFijo{
		"pizza": {ID: "pizza", Nombre: "Pizza", Costo: dec("25")},
		"gratis": {ID: "gratis", Nombre: "Sin costear", Costo: decimal.Zero},
	}
}

func TestResolverCostoProducto_DirectoYMateriaPrima(t *testing.T) {
	cat, rec := catalogoDePrueba(), recetarioDePrueba()

	directo := &entity.ProductoVenta{Nombre: "Gaseosa", Tipo: entity.ProductoDirecto, Costo: dec("1.80")}
	assert.True(t, dec("1.80").Equal(costeo.ResolverCostoProducto(directo, cat, rec)),
		"el costo digitado se devuelve sin cambios")

	mp := &entity.ProductoVenta{Nombre: "Café en grano", Tipo: entity.ProductoMateriaPrima, Costo: dec("7")}
	assert.True(t, dec("7").Equal(costeo.ResolverCostoProducto(mp, cat, rec)))
}

func TestResolverCostoProducto_Inventario(t *testing.T) {
	cat, rec := catalogoDePrueba(), recetarioDePrueba()

	p := &entity.ProductoVenta{Nombre: "Harina al detal", Tipo: entity.ProductoInventario, InsumoID: "harina"}
	assert.True(t, dec("10").Equal(costeo.ResolverCostoProducto(p, cat, rec)),
		"costo = costo promedio actual del insumo")

	sinRef := &entity.ProductoVenta{Tipo: entity.ProductoInventario}
	assert.True(t, costeo.ResolverCostoProducto(sinRef, cat, rec).IsZero())

	roto := &entity.ProductoVenta{Tipo: entity.ProductoInventario, InsumoID: "no-existe"}
	assert.True(t, costeo.ResolverCostoProducto(roto, cat, rec).IsZero())
}

func TestResolverCostoProducto_Receta(t *testing.T) {
	cat, rec := catalogoDePrueba(), recetarioDePrueba()

	p := &entity.ProductoVenta{Nombre: "Pizza personal", Tipo: entity.ProductoReceta, RecetaID: "pizza"}
	assert.True(t, dec("25").Equal(costeo.ResolverCostoProducto(p, cat, rec)))

	roto := &entity.ProductoVenta{Tipo: entity.ProductoReceta, RecetaID: "no-existe"}
	assert.True(t, costeo.ResolverCostoProducto(roto, cat, rec).IsZero())
}

// TestCambiarTipo_LimpiaReferencias: cambiar de tipo nunca conserva una
// referencia vieja ni el costo derivado anterior.
func TestCambiarTipo_LimpiaReferencias(t *testing.T) {
	p := &entity.ProductoVenta{
		Nombre: "Harina al detal", Tipo: entity.ProductoInventario,
		InsumoID: "harina", Costo: dec("10"),
	}
	p.CambiarTipo(entity.ProductoReceta)

	assert.Empty(t, p.InsumoID)
	assert.Empty(t, p.RecetaID)
	assert.True(t, p.Costo.IsZero())
	assert.Equal(t, entity.ProductoReceta, p.Tipo)
}

// TestValidarProducto_CostoCeroEsRechazado: un registro vinculado con costo 0
// se trata como dato mal configurado, no como producto de costo cero.
func TestValidarProducto_CostoCeroEsRechazado(t *testing.T) {
	cat, rec := catalogoDePrueba(), recetarioDePrueba()
	cat["sin-costo"] = &entity.Insumo{ID: "sin-costo", Nombre: "Nuevo", Unidad: "kg", CostoPromedio: decimal.Zero}

	porInsumo := &entity.ProductoVenta{Nombre: "X", Tipo: entity.ProductoInventario, InsumoID: "sin-costo"}
	errores := costeo.ValidarProducto(porInsumo, cat, rec)
	assert.Contains(t, errores, "costo")

	porReceta := &entity.ProductoVenta{Nombre: "Y", Tipo: entity.ProductoReceta, RecetaID: "gratis"}
	errores = costeo.ValidarProducto(porReceta, cat, rec)
	assert.Contains(t, errores, "costo")
}

func TestValidarProducto_CamposRequeridos(t *testing.T) {
	cat, rec := catalogoDePrueba(), recetarioDePrueba()

	vacio := &entity.ProductoVenta{Tipo: entity.ProductoInventario}
	errores := costeo.ValidarProducto(vacio, cat, rec)
	assert.Contains(t, errores, "nombre")
	assert.Contains(t, errores, "insumo_id")

	sinReceta := &entity.ProductoVenta{Nombre: "Z", Tipo: entity.ProductoReceta}
	assert.Contains(t, costeo.ValidarProducto(sinReceta, cat, rec), "receta_id")

	tipoRaro := &entity.ProductoVenta{Nombre: "Z", Tipo: "COMBO"}
	assert.Contains(t, costeo.ValidarProducto(tipoRaro, cat, rec), "tipo")
}

func TestValidarProducto_DirectoValido(t *testing.T) {
	p := &entity.ProductoVenta{Nombre: "Gaseosa", Tipo: entity.ProductoDirecto, Costo: dec("1.80")}
	assert.True(t, costeo.ValidarProducto(p, catalogoDePrueba(), recetarioDePrueba()).OK())
}
