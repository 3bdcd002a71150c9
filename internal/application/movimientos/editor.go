package movimientos

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastrillo/restopos-api/internal/application/costeo"
	"github.com/jcastrillo/restopos-api/internal/domain"
	"github.com/jcastrillo/restopos-api/internal/domain/costing"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
)

// SinProveedor es la llave del subtotal de líneas sin proveedor asignado.
const SinProveedor = "SIN_PROVEEDOR"

// Totales son los agregados del documento, recalculados en cada mutación.
type Totales struct {
	GranTotal    decimal.Decimal
	PorProveedor map[string]decimal.Decimal
}

// Editor mantiene un documento de movimiento durante su edición
// (BORRADOR → VALIDADO → ENVIADO).
//
// Cada fila recibe un RowID opaco al crearse y los snapshots de último estado
// se guardan en un mapa indexado por ese RowID, nunca por posición: las filas
// se borran y reordenan con independencia de cuándo respondió la consulta de
// última compra. Una respuesta tardía para una fila ya borrada se descarta.
//
// La consulta de última compra corre en su propia goroutine para no bloquear
// la captura; el mutex protege el documento frente a esa escritura.
type Editor struct {
	mu        sync.Mutex
	wg        sync.WaitGroup
	catalogo  CatalogoInsumos
	compras   UltimaCompraLookup
	doc       *entity.MovimientoDocumento
	snapshots map[string]entity.UltimoEstado
}

// NewEditor abre un editor sobre el documento dado. Un documento nuevo inicia
// en BORRADOR con la dirección derivada de su motivo.
func NewEditor(catalogo CatalogoInsumos, compras UltimaCompraLookup, doc *entity.MovimientoDocumento) *Editor {
	if doc.Estado == "" {
		doc.Estado = entity.MovimientoBorrador
	}
	doc.Direccion = entity.DireccionDeMotivo(doc.Motivo)
	return &Editor{
		catalogo:  catalogo,
		compras:   compras,
		doc:       doc,
		snapshots: make(map[string]entity.UltimoEstado),
	}
}

// Documento devuelve una copia del documento en su estado actual de edición.
func (e *Editor) Documento() entity.MovimientoDocumento {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.copiaDoc()
}

// SetMotivo cambia el motivo y recalcula la dirección derivada. Cualquier
// edición devuelve el documento a BORRADOR.
func (e *Editor) SetMotivo(motivo string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc.Motivo = motivo
	e.doc.Direccion = entity.DireccionDeMotivo(motivo)
	e.doc.Estado = entity.MovimientoBorrador
}

// SetObservaciones actualiza las observaciones del documento.
func (e *Editor) SetObservaciones(obs string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc.Observaciones = obs
}

// AgregarLinea añade una fila vacía con RowID recién generado y lo devuelve.
func (e *Editor) AgregarLinea() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	rowID := uuid.New().String()
	e.doc.Lineas = append(e.doc.Lineas, entity.MovimientoLinea{
		RowID:         rowID,
		Cantidad:      decimal.Zero,
		CostoUnitario: decimal.Zero,
	})
	e.doc.Estado = entity.MovimientoBorrador
	return rowID
}

// SeleccionarInsumo resuelve el insumo en el catálogo, copia nombre, unidad y
// costo promedio a la fila, y dispara en segundo plano la consulta de última
// compra. El usuario puede seguir editando otras filas mientras tanto; el
// resultado se aplica bajo el RowID de esta fila y se descarta si la fila ya
// no existe cuando llega.
func (e *Editor) SeleccionarInsumo(rowID, insumoID string) error {
	insumo, err := e.catalogo.GetInsumo(insumoID)
	if err != nil {
		return err
	}
	if insumo == nil {
		return domain.ErrNotFound
	}

	e.mu.Lock()
	linea := e.buscarLinea(rowID)
	if linea == nil {
		e.mu.Unlock()
		return domain.ErrNotFound
	}
	linea.InsumoID = insumo.ID
	linea.NombreInsumo = insumo.Nombre
	linea.Unidad = insumo.Unidad
	linea.CostoUnitario = insumo.CostoPromedio
	e.doc.Estado = entity.MovimientoBorrador
	e.mu.Unlock()

	base := entity.UltimoEstado{
		StockActual:   insumo.Stock,
		CostoPromedio: insumo.CostoPromedio,
		Unidad:        insumo.Unidad,
	}
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		estado := base
		compra, err := e.compras.UltimaCompra(insumoID)
		if err == nil && compra != nil {
			estado.UltCompraCantidad = compra.Cantidad
			estado.UltCompraProveedor = compra.Proveedor
			estado.UltCompraCosto = compra.CostoUnitario
		}
		// En error o sin datos queda el snapshot con los campos de compra en
		// cero: la consulta es informativa y nunca bloquea la captura.
		e.AplicarUltimoEstado(rowID, estado)
	}()
	return nil
}

// AplicarUltimoEstado registra el snapshot de la fila. Si el RowID ya no
// existe (fila borrada antes de que respondiera la consulta) se descarta.
func (e *Editor) AplicarUltimoEstado(rowID string, estado entity.UltimoEstado) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.buscarLinea(rowID) == nil {
		return
	}
	e.snapshots[rowID] = estado
}

// Snapshot devuelve el último estado congelado de la fila, si ya llegó.
func (e *Editor) Snapshot(rowID string) (entity.UltimoEstado, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	estado, ok := e.snapshots[rowID]
	return estado, ok
}

// Esperar bloquea hasta que terminen las consultas de última compra en vuelo.
func (e *Editor) Esperar() { e.wg.Wait() }

// SetCantidad actualiza la cantidad (positiva durante la edición) de la fila.
// No toca el snapshot congelado.
func (e *Editor) SetCantidad(rowID string, cantidad decimal.Decimal) {
	if cantidad.IsNegative() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if linea := e.buscarLinea(rowID); linea != nil {
		linea.Cantidad = cantidad
		e.doc.Estado = entity.MovimientoBorrador
	}
}

// SetCostoUnitario actualiza el costo unitario de la fila.
func (e *Editor) SetCostoUnitario(rowID string, costo decimal.Decimal) {
	if costo.IsNegative() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if linea := e.buscarLinea(rowID); linea != nil {
		linea.CostoUnitario = costo
		e.doc.Estado = entity.MovimientoBorrador
	}
}

// SetProveedor actualiza el proveedor de la fila.
func (e *Editor) SetProveedor(rowID, nombre string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if linea := e.buscarLinea(rowID); linea != nil {
		linea.Proveedor = nombre
		e.doc.Estado = entity.MovimientoBorrador
	}
}

// QuitarLinea elimina la fila y descarta su snapshot. Los snapshots de las
// demás filas no se mueven ni se reinterpretan.
func (e *Editor) QuitarLinea(rowID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, l := range e.doc.Lineas {
		if l.RowID == rowID {
			e.doc.Lineas = append(e.doc.Lineas[:i], e.doc.Lineas[i+1:]...)
			delete(e.snapshots, rowID)
			e.doc.Estado = entity.MovimientoBorrador
			return
		}
	}
}

// Totales calcula el gran total y los subtotales por proveedor sobre las
// cantidades positivas de edición (el signo solo existe en la frontera).
func (e *Editor) Totales() Totales {
	e.mu.Lock()
	defer e.mu.Unlock()
	t := Totales{
		GranTotal:    costing.TotalMovimiento(e.doc.Lineas),
		PorProveedor: make(map[string]decimal.Decimal),
	}
	for _, l := range e.doc.Lineas {
		llave := l.Proveedor
		if llave == "" {
			llave = SinProveedor
		}
		t.PorProveedor[llave] = t.PorProveedor[llave].Add(l.Costo())
	}
	return t
}

// Validar aplica las reglas de envío: motivo conocido, al menos una línea,
// cada línea con insumo resuelto y cantidad mayor a cero. Si pasa, el
// documento queda en VALIDADO.
func (e *Editor) Validar() costeo.ErroresCampo {
	e.mu.Lock()
	defer e.mu.Unlock()
	errores := costeo.ErroresCampo{}
	if !entity.MotivoValido(e.doc.Motivo) {
		errores.Agregar("motivo", "seleccione un motivo válido")
	}
	if len(e.doc.Lineas) == 0 {
		errores.Agregar("lineas", "agregue al menos una línea")
	}
	for i, l := range e.doc.Lineas {
		if l.InsumoID == "" {
			errores.Agregar(fmt.Sprintf("lineas[%d].insumo", i), "seleccione un insumo")
		}
		if !l.Cantidad.GreaterThan(decimal.Zero) {
			errores.Agregar(fmt.Sprintf("lineas[%d].cantidad", i), "la cantidad debe ser mayor a cero")
		}
	}
	if errores.OK() {
		e.doc.Estado = entity.MovimientoValidado
	}
	return errores
}

// FormaPersistible devuelve la copia del documento lista para el colaborador
// de persistencia: en dirección SALIDA cada cantidad se multiplica por -1.
// La conversión de signo ocurre solo aquí; el documento editable conserva sus
// cantidades positivas (la llamada es idempotente para la UI). Requiere que
// el documento esté VALIDADO.
func (e *Editor) FormaPersistible() (*entity.MovimientoDocumento, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc.Estado != entity.MovimientoValidado {
		return nil, domain.ErrConflict
	}
	firmado := e.copiaDoc()
	if firmado.Direccion == entity.DireccionSalida {
		for i := range firmado.Lineas {
			firmado.Lineas[i].Cantidad = firmado.Lineas[i].Cantidad.Neg()
		}
	}
	firmado.Estado = entity.MovimientoEnviado
	return &firmado, nil
}

// MarcarEnviado registra que el colaborador de persistencia aceptó el documento.
func (e *Editor) MarcarEnviado() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc.Estado = entity.MovimientoEnviado
}

// buscarLinea devuelve el puntero a la fila con ese RowID. Llamar con e.mu tomado.
func (e *Editor) buscarLinea(rowID string) *entity.MovimientoLinea {
	for i := range e.doc.Lineas {
		if e.doc.Lineas[i].RowID == rowID {
			return &e.doc.Lineas[i]
		}
	}
	return nil
}

// copiaDoc copia el documento con sus líneas. Llamar con e.mu tomado.
func (e *Editor) copiaDoc() entity.MovimientoDocumento {
	copia := *e.doc
	copia.Lineas = make([]entity.MovimientoLinea, len(e.doc.Lineas))
	copy(copia.Lineas, e.doc.Lineas)
	return copia
}
