package costeo

import (
	"github.com/shopspring/decimal"

	"github.com/jcastrillo/restopos-api/internal/domain/entity"
)

// ResolverCostoProducto deriva el costo de un producto según su tipo:
//
//	DIRECTO, MATERIA_PRIMA: devuelve el costo digitado sin tocarlo.
//	INVENTARIO: costo promedio actual del insumo vinculado, 0 si no resuelve.
//	RECETA: costo actual de la receta vinculada, 0 si no resuelve.
//
// Es una función pura sobre los lookups; no muta el producto.
func ResolverCostoProducto(p *entity.ProductoVenta, catalogo CatalogoInsumos, recetas Recetario) decimal.Decimal {
	switch p.Tipo {
	case entity.ProductoInventario:
		if p.InsumoID == "" {
			return decimal.Zero
		}
		insumo, err := catalogo.GetInsumo(p.InsumoID)
		if err != nil || insumo == nil {
			return decimal.Zero
		}
		return insumo.CostoPromedio
	case entity.ProductoReceta:
		if p.RecetaID == "" {
			return decimal.Zero
		}
		receta, err := recetas.GetReceta(p.RecetaID)
		if err != nil || receta == nil {
			return decimal.Zero
		}
		return receta.Costo
	default:
		return p.Costo
	}
}

// ValidarProducto aplica las reglas de guardado. Para INVENTARIO y RECETA el
// costo derivado debe ser estrictamente positivo: un registro de catálogo en
// cero se trata como dato mal configurado, no como producto de costo cero.
func ValidarProducto(p *entity.ProductoVenta, catalogo CatalogoInsumos, recetas Recetario) ErroresCampo {
	errores := ErroresCampo{}
	if p.Nombre == "" {
		errores.Agregar("nombre", "el nombre es requerido")
	}
	switch p.Tipo {
	case entity.ProductoDirecto, entity.ProductoMateriaPrima:
		// costo manual, sin regla adicional
	case entity.ProductoInventario:
		if p.InsumoID == "" {
			errores.Agregar("insumo_id", "seleccione un insumo")
			break
		}
		if !ResolverCostoProducto(p, catalogo, recetas).GreaterThan(decimal.Zero) {
			errores.Agregar("costo", "el insumo vinculado no tiene costo configurado")
		}
	case entity.ProductoReceta:
		if p.RecetaID == "" {
			errores.Agregar("receta_id", "seleccione una receta")
			break
		}
		if !ResolverCostoProducto(p, catalogo, recetas).GreaterThan(decimal.Zero) {
			errores.Agregar("costo", "la receta vinculada no tiene costo configurado")
		}
	default:
		errores.Agregar("tipo", "tipo de producto no reconocido")
	}
	return errores
}
