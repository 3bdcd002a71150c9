package costeo

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcastrillo/restopos-api/internal/domain/entity"
)

// Operaciones compartidas sobre el conjunto de líneas de sub-recetas y
// recetas. Las violaciones de invariante (índice fuera de rango, línea
// bloqueada) se resuelven como no-ops: la UI debe seguir respondiendo.

func agregarLinea(lineas []entity.LineaUso) []entity.LineaUso {
	return append(lineas, entity.LineaUso{
		Cantidad:      decimal.Zero,
		CostoUnitario: decimal.Zero,
	})
}

func quitarLinea(lineas []entity.LineaUso, idx int) []entity.LineaUso {
	if idx < 0 || idx >= len(lineas) || lineas[idx].Bloqueada() {
		return lineas
	}
	return append(lineas[:idx], lineas[idx+1:]...)
}

// vincular sobreescribe nombre, unidad y costo unitario de la línea con los
// valores actuales del catálogo. No-op si la línea está bloqueada.
func vincular(lineas []entity.LineaUso, idx int, insumo *entity.Insumo) {
	if idx < 0 || idx >= len(lineas) || insumo == nil {
		return
	}
	if lineas[idx].Bloqueada() {
		return
	}
	lineas[idx].InsumoID = insumo.ID
	lineas[idx].NombreInsumo = insumo.Nombre
	lineas[idx].Unidad = insumo.Unidad
	lineas[idx].CostoUnitario = insumo.CostoPromedio
}

// setCantidad cambia la cantidad de la línea; permitido aun en líneas bloqueadas.
func setCantidad(lineas []entity.LineaUso, idx int, cantidad decimal.Decimal) {
	if idx < 0 || idx >= len(lineas) || cantidad.IsNegative() {
		return
	}
	lineas[idx].Cantidad = cantidad
}

// validarLineas aplica las reglas de guardado comunes: al menos una línea,
// cada línea con insumo resuelto y cantidad > 0.
func validarLineas(lineas []entity.LineaUso, errores ErroresCampo) {
	if len(lineas) == 0 {
		errores.Agregar("lineas", "agregue al menos una línea")
		return
	}
	for i, l := range lineas {
		if !l.Resuelta() {
			errores.Agregar(campoLinea(i, "insumo"), "seleccione un insumo")
		}
		if !l.Cantidad.GreaterThan(decimal.Zero) {
			errores.Agregar(campoLinea(i, "cantidad"), "la cantidad debe ser mayor a cero")
		}
	}
}

func campoLinea(idx int, campo string) string {
	return fmt.Sprintf("lineas[%d].%s", idx, campo)
}
