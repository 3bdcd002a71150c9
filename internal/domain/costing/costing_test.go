package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jcastrillo/restopos-api/internal/domain/costing"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// TestCostoLineas_SumaBasica valida el rollup Σ(cantidad × costo unitario)
// con el vector de referencia: (2kg, $10) + (0.5L, $4) = $22.00.
func TestCostoLineas_SumaBasica(t *testing.T) {
	lineas := []entity.LineaUso{
		{NombreInsumo: "Harina", Unidad: "kg", Cantidad: dec("2"), CostoUnitario: dec("10")},
		{NombreInsumo: "Leche", Unidad: "l", Cantidad: dec("0.5"), CostoUnitario: dec("4")},
	}
	assert.True(t, dec("22").Equal(costing.CostoLineas(lineas)),
		"el costo de la sub-receta debe ser 22.00")
}

func TestCostoLineas_SinLineasEsCero(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(costing.CostoLineas(nil)))
}

func TestCostoLineas_CantidadCeroNoAporta(t *testing.T) {
	lineas := []entity.LineaUso{
		{Cantidad: decimal.Zero, CostoUnitario: dec("99")},
		{Cantidad: dec("3"), CostoUnitario: dec("1.5")},
	}
	assert.True(t, dec("4.5").Equal(costing.CostoLineas(lineas)))
}

func TestTotalMovimiento_SobreCantidadPositiva(t *testing.T) {
	lineas := []entity.MovimientoLinea{
		{Cantidad: dec("5"), CostoUnitario: dec("2")},
	}
	// El total se calcula antes del signo, sobre la cantidad de edición.
	assert.True(t, dec("10").Equal(costing.TotalMovimiento(lineas)))
}

// TestPromedioPonderado_Formula verifica el promedio ponderado con stock previo.
func TestPromedioPonderado_Formula(t *testing.T) {
	// (10*100 + 5*130) / 15 = 110
	nuevo := costing.PromedioPonderado(dec("10"), dec("100"), dec("5"), dec("130"))
	assert.True(t, dec("110").Equal(nuevo), "esperado 110, obtenido %s", nuevo)
}

func TestPromedioPonderado_SinStockUsaCostoEntrada(t *testing.T) {
	nuevo := costing.PromedioPonderado(decimal.Zero, decimal.Zero, dec("4"), dec("25"))
	assert.True(t, dec("25").Equal(nuevo))
}

func TestPromedioPonderado_DenominadorNoPositivo(t *testing.T) {
	nuevo := costing.PromedioPonderado(dec("-5"), dec("10"), dec("5"), dec("10"))
	assert.True(t, decimal.Zero.Equal(nuevo), "denominador cero o negativo devuelve cero")
}
