package costeo

import (
	"github.com/shopspring/decimal"

	"github.com/jcastrillo/restopos-api/internal/domain"
	"github.com/jcastrillo/restopos-api/internal/domain/costing"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
)

// RecetaEditor tiene el mismo contrato de líneas que SubRecetaEditor y además
// importa en bloque las líneas de una sub-receta. Las líneas importadas se
// copian por valor y quedan sin InsumoID (la sub-receta no arrastra id de
// catálogo por línea): cambios posteriores en la fuente no afectan la receta.
type RecetaEditor struct {
	catalogo CatalogoInsumos
	r        *entity.Receta
}

// NewRecetaEditor abre un editor sobre la receta dada (nueva o cargada).
func NewRecetaEditor(catalogo CatalogoInsumos, r *entity.Receta) *RecetaEditor {
	if r.Estado == "" {
		r.Estado = entity.EstadoActivo
	}
	e := &RecetaEditor{catalogo: catalogo, r: r}
	e.recalcular()
	return e
}

// Documento devuelve la receta en edición.
func (e *RecetaEditor) Documento() *entity.Receta { return e.r }

// AgregarLinea añade una línea vacía.
func (e *RecetaEditor) AgregarLinea() {
	e.r.Lineas = agregarLinea(e.r.Lineas)
	e.recalcular()
}

// QuitarLinea elimina la línea idx; no-op sobre líneas persistidas.
func (e *RecetaEditor) QuitarLinea(idx int) {
	e.r.Lineas = quitarLinea(e.r.Lineas, idx)
	e.recalcular()
}

// VincularInsumo copia los valores actuales del catálogo a la línea idx.
func (e *RecetaEditor) VincularInsumo(idx int, insumoID string) error {
	insumo, err := e.catalogo.GetInsumo(insumoID)
	if err != nil {
		return err
	}
	if insumo == nil {
		return domain.ErrNotFound
	}
	vincular(e.r.Lineas, idx, insumo)
	e.recalcular()
	return nil
}

// SetCantidad cambia la cantidad de la línea idx.
func (e *RecetaEditor) SetCantidad(idx int, cantidad decimal.Decimal) {
	setCantidad(e.r.Lineas, idx, cantidad)
	e.recalcular()
}

// ImportarDeSubReceta anexa una línea por cada línea de la sub-receta,
// copiando nombre, unidad, cantidad y costo unitario al valor de hoy.
// Falla completo (sin importación parcial) si la fuente no tiene líneas.
func (e *RecetaEditor) ImportarDeSubReceta(sr *entity.SubReceta) error {
	if sr == nil || len(sr.Lineas) == 0 {
		return domain.ErrSinLineas
	}
	for _, l := range sr.Lineas {
		e.r.Lineas = append(e.r.Lineas, entity.LineaUso{
			NombreInsumo:  l.NombreInsumo,
			Unidad:        l.Unidad,
			Cantidad:      l.Cantidad,
			CostoUnitario: l.CostoUnitario,
		})
	}
	e.recalcular()
	return nil
}

// ValidarParaGuardar aplica las mismas reglas de guardado que la sub-receta.
func (e *RecetaEditor) ValidarParaGuardar() ErroresCampo {
	errores := ErroresCampo{}
	if e.r.Nombre == "" {
		errores.Agregar("nombre", "el nombre es requerido")
	}
	validarLineas(e.r.Lineas, errores)
	return errores
}

func (e *RecetaEditor) recalcular() {
	e.r.Costo = costing.CostoLineas(e.r.Lineas)
}
