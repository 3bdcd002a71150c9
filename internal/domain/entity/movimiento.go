package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Motivos de movimiento de inventario.
const (
	MotivoCompra        = "COMPRA"
	MotivoAjusteManual  = "AJUSTE_MANUAL"
	MotivoDevolucion    = "DEVOLUCION"
	MotivoInvInicial    = "INV_INICIAL"
	MotivoMerma         = "MERMA"
	MotivoConsumo       = "CONSUMO_INTERNO"
	MotivoVenta         = "VENTA"
	MotivoAjusteSalida  = "AJUSTE_SALIDA"
)

// Direcciones de movimiento.
const (
	DireccionEntrada = "ENTRADA" // aumenta stock
	DireccionSalida  = "SALIDA"  // disminuye stock
)

// motivosEntrada: los demás motivos conocidos son salida.
var motivosEntrada = map[string]bool{
	MotivoCompra:       true,
	MotivoAjusteManual: true,
	MotivoDevolucion:   true,
	MotivoInvInicial:   true,
}

var motivosConocidos = map[string]bool{
	MotivoCompra: true, MotivoAjusteManual: true, MotivoDevolucion: true,
	MotivoInvInicial: true, MotivoMerma: true, MotivoConsumo: true,
	MotivoVenta: true, MotivoAjusteSalida: true,
}

// MotivoValido indica si el motivo pertenece al catálogo de motivos.
func MotivoValido(motivo string) bool { return motivosConocidos[motivo] }

// DireccionDeMotivo deriva la dirección a partir del motivo.
func DireccionDeMotivo(motivo string) string {
	if motivosEntrada[motivo] {
		return DireccionEntrada
	}
	return DireccionSalida
}

// Estados del documento de movimiento dentro del editor. Un estado
// "procesado" posterior pertenece al colaborador de persistencia.
const (
	MovimientoBorrador  = "BORRADOR"
	MovimientoValidado  = "VALIDADO"
	MovimientoEnviado   = "ENVIADO"
)

// UltimoEstado es el snapshot congelado de stock/costo/última compra que se
// muestra junto a una línea de movimiento. Se captura una sola vez al
// seleccionar el insumo y no se recalcula en vivo: el documento refleja lo
// que el usuario vio al decidir. Si la consulta de última compra falla, se
// usa el valor cero de este struct.
type UltimoEstado struct {
	StockActual         decimal.Decimal
	CostoPromedio       decimal.Decimal
	Unidad              string
	UltCompraCantidad   decimal.Decimal
	UltCompraProveedor  string
	UltCompraCosto      decimal.Decimal
}

// MovimientoLinea es una fila del documento. RowID se genera una sola vez al
// crear la fila y nunca se deriva de la posición en el arreglo: todo estado
// auxiliar por fila (el snapshot) se indexa por RowID porque las filas se
// borran y reordenan con independencia de cuándo llegó su snapshot.
type MovimientoLinea struct {
	RowID         string
	InsumoID      string
	NombreInsumo  string
	Unidad        string
	Cantidad      decimal.Decimal // siempre positiva durante la edición
	CostoUnitario decimal.Decimal
	Proveedor     string
}

// Costo devuelve Cantidad × CostoUnitario de la línea.
func (l MovimientoLinea) Costo() decimal.Decimal { return l.Cantidad.Mul(l.CostoUnitario) }

// MovimientoDocumento es el documento de movimiento completo. Direccion se
// deriva de Motivo y se recalcula cada vez que Motivo cambia.
type MovimientoDocumento struct {
	ID            string
	NegocioID     string
	Motivo        string
	Direccion     string
	Observaciones string
	Estado        string
	Lineas        []MovimientoLinea
	CreatedAt     time.Time
	CreatedBy     string
}
