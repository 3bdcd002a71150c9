package movimientos_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastrillo/restopos-api/internal/application/movimientos"
	"github.com/jcastrillo/restopos-api/internal/domain"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type catalogoFijo map[string]*entity.Insumo

func (c catalogoFijo) GetInsumo(id string) (*entity.Insumo, error) { return c[id], nil }

// comprasFijas implementa la consulta de última compra; con fallar=true
// simula el colaborador caído.
type comprasFijas struct {
	porInsumo map[string]*entity.Compra
	fallar    bool
}

func (c *comprasFijas) UltimaCompra(insumoID string) (*entity.Compra, error) {
	if c.fallar {
		return nil, errors.New("timeout consultando compras")
	}
	return c.porInsumo[insumoID], nil
}

func catalogoMov() catalogoFijo {
	return catalogoFijo{
		"tomate": {ID: "tomate", Nombre: "Tomate chonto", Unidad: "kg", CostoPromedio: dec("2"), Stock: dec("40"), Activo: true, Inventariable: true},
		"aceite": {ID: "aceite", Nombre: "Aceite vegetal", Unidad: "l", CostoPromedio: dec("6"), Stock: dec("12"), Activo: true, Inventariable: true},
	}
}

func comprasMov() *comprasFijas {
	return &comprasFijas{porInsumo: map[string]*entity.Compra{
		"tomate": {InsumoID: "tomate", Proveedor: "Agrofresco", Cantidad: dec("25"), CostoUnitario: dec("1.90")},
	}}
}

func nuevoEditor(motivo string, compras *comprasFijas) *movimientos.Editor {
	return movimientos.NewEditor(catalogoMov(), compras, &entity.MovimientoDocumento{Motivo: motivo})
}

// TestDireccionDeMotivo: los cuatro motivos de entrada derivan ENTRADA, el
// resto SALIDA.
func TestDireccionDeMotivo(t *testing.T) {
	entradas := []string{entity.MotivoCompra, entity.MotivoAjusteManual, entity.MotivoDevolucion, entity.MotivoInvInicial}
	for _, m := range entradas {
		assert.Equal(t, entity.DireccionEntrada, entity.DireccionDeMotivo(m), m)
	}
	salidas := []string{entity.MotivoMerma, entity.MotivoConsumo, entity.MotivoVenta, entity.MotivoAjusteSalida}
	for _, m := range salidas {
		assert.Equal(t, entity.DireccionSalida, entity.DireccionDeMotivo(m), m)
	}
}

func TestEditor_SetMotivoRecalculaDireccion(t *testing.T) {
	e := nuevoEditor(entity.MotivoCompra, comprasMov())
	assert.Equal(t, entity.DireccionEntrada, e.Documento().Direccion)

	e.SetMotivo(entity.MotivoMerma)
	assert.Equal(t, entity.DireccionSalida, e.Documento().Direccion)
}

// TestEditor_SeleccionarInsumoCopiaCatalogoYCongelaSnapshot: la selección
// copia nombre/unidad/costo del catálogo a la fila y congela el último
// estado bajo el RowID.
func TestEditor_SeleccionarInsumoCopiaCatalogoYCongelaSnapshot(t *testing.T) {
	e := nuevoEditor(entity.MotivoCompra, comprasMov())
	rowID := e.AgregarLinea()

	require.NoError(t, e.SeleccionarInsumo(rowID, "tomate"))
	e.Esperar()

	doc := e.Documento()
	require.Len(t, doc.Lineas, 1)
	assert.Equal(t, "Tomate chonto", doc.Lineas[0].NombreInsumo)
	assert.Equal(t, "kg", doc.Lineas[0].Unidad)
	assert.True(t, dec("2").Equal(doc.Lineas[0].CostoUnitario))

	estado, ok := e.Snapshot(rowID)
	require.True(t, ok, "el snapshot debe quedar registrado bajo el RowID")
	assert.True(t, dec("40").Equal(estado.StockActual))
	assert.True(t, dec("2").Equal(estado.CostoPromedio))
	assert.Equal(t, "Agrofresco", estado.UltCompraProveedor)
	assert.True(t, dec("1.90").Equal(estado.UltCompraCosto))
}

// TestEditor_ConsultaDeComprasCaidaNoBloquea: el fallo del colaborador se
// sustituye por el snapshot con campos de compra en cero; nunca es error.
func TestEditor_ConsultaDeComprasCaidaNoBloquea(t *testing.T) {
	compras := comprasMov()
	compras.fallar = true
	e := nuevoEditor(entity.MotivoCompra, compras)
	rowID := e.AgregarLinea()

	require.NoError(t, e.SeleccionarInsumo(rowID, "tomate"))
	e.Esperar()

	estado, ok := e.Snapshot(rowID)
	require.True(t, ok)
	assert.True(t, estado.UltCompraCantidad.IsZero())
	assert.Empty(t, estado.UltCompraProveedor)
	// Los campos de catálogo sí quedan poblados.
	assert.True(t, dec("40").Equal(estado.StockActual))
}

func TestEditor_SeleccionarInsumoInexistente(t *testing.T) {
	e := nuevoEditor(entity.MotivoCompra, comprasMov())
	rowID := e.AgregarLinea()
	assert.ErrorIs(t, e.SeleccionarInsumo(rowID, "no-existe"), domain.ErrNotFound)
	assert.Empty(t, e.Documento().Lineas[0].InsumoID)
}

// TestEditor_QuitarLineaNoTocaOtrosSnapshots: borrar una fila descarta solo
// su snapshot; los de las demás filas no se mueven ni se reinterpretan.
func TestEditor_QuitarLineaNoTocaOtrosSnapshots(t *testing.T) {
	e := nuevoEditor(entity.MotivoCompra, comprasMov())
	fila1 := e.AgregarLinea()
	fila2 := e.AgregarLinea()

	require.NoError(t, e.SeleccionarInsumo(fila1, "tomate"))
	require.NoError(t, e.SeleccionarInsumo(fila2, "aceite"))
	e.Esperar()

	e.QuitarLinea(fila1)

	_, ok := e.Snapshot(fila1)
	assert.False(t, ok, "el snapshot de la fila borrada se descarta")

	estado, ok := e.Snapshot(fila2)
	require.True(t, ok, "el snapshot de la otra fila sigue intacto")
	assert.True(t, dec("12").Equal(estado.StockActual))
	require.Len(t, e.Documento().Lineas, 1)
	assert.Equal(t, fila2, e.Documento().Lineas[0].RowID)
}

// TestEditor_RespuestaTardiaParaFilaBorrada: una respuesta que llega después
// de borrar la fila se descarta (su llave ya no existe).
func TestEditor_RespuestaTardiaParaFilaBorrada(t *testing.T) {
	e := nuevoEditor(entity.MotivoCompra, comprasMov())
	rowID := e.AgregarLinea()
	e.QuitarLinea(rowID)

	e.AplicarUltimoEstado(rowID, entity.UltimoEstado{StockActual: dec("99")})

	_, ok := e.Snapshot(rowID)
	assert.False(t, ok, "la escritura tardía sobre una fila borrada se ignora")
}

func TestEditor_Totales(t *testing.T) {
	e := nuevoEditor(entity.MotivoCompra, comprasMov())

	fila1 := e.AgregarLinea()
	require.NoError(t, e.SeleccionarInsumo(fila1, "tomate"))
	e.SetCantidad(fila1, dec("10"))
	e.SetCostoUnitario(fila1, dec("2"))
	e.SetProveedor(fila1, "Agrofresco")

	fila2 := e.AgregarLinea()
	require.NoError(t, e.SeleccionarInsumo(fila2, "aceite"))
	e.SetCantidad(fila2, dec("3"))
	e.SetCostoUnitario(fila2, dec("6"))

	e.Esperar()
	t1 := e.Totales()
	assert.True(t, dec("38").Equal(t1.GranTotal))
	assert.True(t, dec("20").Equal(t1.PorProveedor["Agrofresco"]))
	assert.True(t, dec("18").Equal(t1.PorProveedor[movimientos.SinProveedor]),
		"las líneas sin proveedor van al subtotal centinela")

	// Los totales se recalculan tras cada mutación.
	e.SetCantidad(fila1, dec("5"))
	t2 := e.Totales()
	assert.True(t, dec("28").Equal(t2.GranTotal))
}

// TestEditor_FormaPersistibleFirmaSalida: con motivo MERMA (salida) y una
// línea (cantidad=5, costo=2), la forma persistible lleva cantidad -5 y el
// gran total sigue siendo 10.00 (calculado pre-signo).
func TestEditor_FormaPersistibleFirmaSalida(t *testing.T) {
	e := nuevoEditor(entity.MotivoMerma, comprasMov())
	rowID := e.AgregarLinea()
	require.NoError(t, e.SeleccionarInsumo(rowID, "tomate"))
	e.SetCantidad(rowID, dec("5"))
	e.SetCostoUnitario(rowID, dec("2"))
	e.Esperar()

	require.True(t, e.Validar().OK())

	firmado, err := e.FormaPersistible()
	require.NoError(t, err)
	assert.True(t, dec("-5").Equal(firmado.Lineas[0].Cantidad))
	assert.Equal(t, entity.MovimientoEnviado, firmado.Estado)

	// Idempotencia hacia la UI: la cantidad editable sigue positiva y el
	// total se calcula sobre ella.
	assert.True(t, dec("5").Equal(e.Documento().Lineas[0].Cantidad))
	assert.True(t, dec("10").Equal(e.Totales().GranTotal))

	// Llamar de nuevo produce el mismo resultado.
	firmado2, err := e.FormaPersistible()
	require.NoError(t, err)
	assert.True(t, dec("-5").Equal(firmado2.Lineas[0].Cantidad))
}

func TestEditor_FormaPersistibleEntradaNoFirma(t *testing.T) {
	e := nuevoEditor(entity.MotivoCompra, comprasMov())
	rowID := e.AgregarLinea()
	require.NoError(t, e.SeleccionarInsumo(rowID, "tomate"))
	e.SetCantidad(rowID, dec("8"))
	e.Esperar()

	require.True(t, e.Validar().OK())
	firmado, err := e.FormaPersistible()
	require.NoError(t, err)
	assert.True(t, dec("8").Equal(firmado.Lineas[0].Cantidad))
}

func TestEditor_FormaPersistibleRequiereValidacion(t *testing.T) {
	e := nuevoEditor(entity.MotivoMerma, comprasMov())
	_, err := e.FormaPersistible()
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestEditor_Validar(t *testing.T) {
	e := nuevoEditor("MOTIVO_RARO", comprasMov())
	errores := e.Validar()
	assert.Contains(t, errores, "motivo")
	assert.Contains(t, errores, "lineas")

	e.SetMotivo(entity.MotivoCompra)
	rowID := e.AgregarLinea()
	errores = e.Validar()
	assert.Contains(t, errores, "lineas[0].insumo")
	assert.Contains(t, errores, "lineas[0].cantidad")
	assert.Equal(t, entity.MovimientoBorrador, e.Documento().Estado)

	require.NoError(t, e.SeleccionarInsumo(rowID, "tomate"))
	e.SetCantidad(rowID, dec("1"))
	e.Esperar()
	require.True(t, e.Validar().OK())
	assert.Equal(t, entity.MovimientoValidado, e.Documento().Estado)

	// Editar después de validar devuelve a borrador.
	e.SetCantidad(rowID, dec("2"))
	assert.Equal(t, entity.MovimientoBorrador, e.Documento().Estado)
}

func TestEditor_CantidadNegativaEsNoOp(t *testing.T) {
	e := nuevoEditor(entity.MotivoCompra, comprasMov())
	rowID := e.AgregarLinea()
	e.SetCantidad(rowID, dec("4"))
	e.SetCantidad(rowID, dec("-1"))
	assert.True(t, dec("4").Equal(e.Documento().Lineas[0].Cantidad),
		"la cantidad de edición siempre es positiva; el signo vive en la frontera")
}
