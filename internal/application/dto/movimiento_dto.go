package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovimientoLineaRequest una fila del documento de movimiento. La cantidad
// siempre viaja positiva; el signo lo aplica el servidor en la frontera de
// persistencia según la dirección del motivo.
type MovimientoLineaRequest struct {
	InsumoID      string          `json:"insumo_id" validate:"required"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	Proveedor     string          `json:"proveedor"`
}

// RegistrarMovimientoRequest documento completo a registrar.
type RegistrarMovimientoRequest struct {
	Motivo        string                   `json:"motivo" validate:"required"`
	Observaciones string                   `json:"observaciones"`
	Lineas        []MovimientoLineaRequest `json:"lineas"`
}

// UltimoEstadoResponse snapshot congelado que acompaña a una línea.
type UltimoEstadoResponse struct {
	StockActual        decimal.Decimal `json:"stock_actual"`
	CostoPromedio      decimal.Decimal `json:"costo_promedio"`
	Unidad             string          `json:"unidad"`
	UltCompraCantidad  decimal.Decimal `json:"ult_compra_cantidad"`
	UltCompraProveedor string          `json:"ult_compra_proveedor"`
	UltCompraCosto     decimal.Decimal `json:"ult_compra_costo"`
}

// MovimientoLineaResponse salida de una fila persistida (cantidad ya firmada).
type MovimientoLineaResponse struct {
	RowID         string          `json:"row_id"`
	InsumoID      string          `json:"insumo_id"`
	NombreInsumo  string          `json:"nombre_insumo"`
	Unidad        string          `json:"unidad"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	Proveedor     string          `json:"proveedor,omitempty"`
}

// TotalesResponse agregados del documento: gran total y subtotal por
// proveedor (las líneas sin proveedor van bajo SIN_PROVEEDOR).
type TotalesResponse struct {
	GranTotal    decimal.Decimal            `json:"gran_total"`
	PorProveedor map[string]decimal.Decimal `json:"por_proveedor"`
}

// MovimientoResponse salida del documento registrado.
type MovimientoResponse struct {
	ID            string                    `json:"id"`
	Motivo        string                    `json:"motivo"`
	Direccion     string                    `json:"direccion"`
	Observaciones string                    `json:"observaciones,omitempty"`
	Estado        string                    `json:"estado"`
	Lineas        []MovimientoLineaResponse `json:"lineas"`
	Totales       TotalesResponse           `json:"totales"`
	CreatedAt     time.Time                 `json:"created_at"`
}

// MovimientoListResponse lista paginada de movimientos.
type MovimientoListResponse struct {
	Items []MovimientoResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
