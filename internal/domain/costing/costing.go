package costing

import (
	"github.com/shopspring/decimal"

	"github.com/jcastrillo/restopos-api/internal/domain/entity"
)

// CostoLineas suma Cantidad × CostoUnitario sobre las líneas de uso.
// Es el rollup compartido por sub-recetas y recetas.
func CostoLineas(lineas []entity.LineaUso) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lineas {
		total = total.Add(l.Costo())
	}
	return total
}

// TotalMovimiento suma Cantidad × CostoUnitario sobre las líneas de un
// documento de movimiento, sobre la cantidad positiva de edición (el signo
// se aplica solo en la frontera de persistencia).
func TotalMovimiento(lineas []entity.MovimientoLinea) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lineas {
		total = total.Add(l.Costo())
	}
	return total
}

// PromedioPonderado implementa el costo promedio ponderado que el registro de
// compras aplica al insumo.
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func PromedioPonderado(stockActual, costoActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	sum := stockActual.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(sum)
}
