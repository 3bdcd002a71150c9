package costeo

import (
	"github.com/shopspring/decimal"

	"github.com/jcastrillo/restopos-api/internal/domain"
	"github.com/jcastrillo/restopos-api/internal/domain/costing"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
)

// SubRecetaEditor agrega líneas de insumo a una sub-receta y mantiene su
// costo igual a Σ(cantidad × costo unitario) tras cada mutación. La
// validación corre al guardar, no por tecla.
type SubRecetaEditor struct {
	catalogo CatalogoInsumos
	sr       *entity.SubReceta
}

// NewSubRecetaEditor abre un editor sobre la sub-receta dada (nueva o cargada).
func NewSubRecetaEditor(catalogo CatalogoInsumos, sr *entity.SubReceta) *SubRecetaEditor {
	if sr.Estado == "" {
		sr.Estado = entity.EstadoActivo
	}
	e := &SubRecetaEditor{catalogo: catalogo, sr: sr}
	e.recalcular()
	return e
}

// Documento devuelve la sub-receta en edición.
func (e *SubRecetaEditor) Documento() *entity.SubReceta { return e.sr }

// AgregarLinea añade una línea vacía (cantidad y costo en cero).
func (e *SubRecetaEditor) AgregarLinea() {
	e.sr.Lineas = agregarLinea(e.sr.Lineas)
	e.recalcular()
}

// QuitarLinea elimina la línea idx. No-op si está fuera de rango o si la
// línea ya fue persistida.
func (e *SubRecetaEditor) QuitarLinea(idx int) {
	e.sr.Lineas = quitarLinea(e.sr.Lineas, idx)
	e.recalcular()
}

// VincularInsumo resuelve el insumo en el catálogo y copia nombre, unidad y
// costo unitario actuales a la línea. En líneas bloqueadas es un no-op.
// Devuelve domain.ErrNotFound si el insumo no existe; la línea queda intacta.
func (e *SubRecetaEditor) VincularInsumo(idx int, insumoID string) error {
	insumo, err := e.catalogo.GetInsumo(insumoID)
	if err != nil {
		return err
	}
	if insumo == nil {
		return domain.ErrNotFound
	}
	vincular(e.sr.Lineas, idx, insumo)
	e.recalcular()
	return nil
}

// SetCantidad cambia la cantidad de la línea idx; permitido también en
// líneas persistidas (es el único campo editable de una línea bloqueada).
func (e *SubRecetaEditor) SetCantidad(idx int, cantidad decimal.Decimal) {
	setCantidad(e.sr.Lineas, idx, cantidad)
	e.recalcular()
}

// ValidarParaGuardar aplica las reglas de guardado y devuelve el mapa
// campo→mensaje (vacío si la sub-receta puede persistirse).
func (e *SubRecetaEditor) ValidarParaGuardar() ErroresCampo {
	errores := ErroresCampo{}
	if e.sr.Nombre == "" {
		errores.Agregar("nombre", "el nombre es requerido")
	}
	validarLineas(e.sr.Lineas, errores)
	return errores
}

func (e *SubRecetaEditor) recalcular() {
	e.sr.Costo = costing.CostoLineas(e.sr.Lineas)
}
