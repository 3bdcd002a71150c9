package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastrillo/restopos-api/internal/application/dto"
	"github.com/jcastrillo/restopos-api/internal/application/usecase"
	"github.com/jcastrillo/restopos-api/internal/domain"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
	"github.com/jcastrillo/restopos-api/internal/domain/repository"
)

// insumoRepoFake implementa repository.InsumoRepository en memoria; registra
// la última actualización de costo/stock que recibió.
type insumoRepoFake struct {
	insumos     map[string]*entity.Insumo
	ultimoCosto decimal.Decimal
	ultimoStock decimal.Decimal
	updates     int
}

func (r *insumoRepoFake) Create(*entity.Insumo) error { return nil }

func (r *insumoRepoFake) GetByID(id string) (*entity.Insumo, error) {
	return r.insumos[id], nil
}

func (r *insumoRepoFake) ListByNegocio(string, int, int) ([]*entity.Insumo, error) {
	return nil, nil
}

func (r *insumoRepoFake) ListCandidatos(string) ([]*entity.Insumo, error) { return nil, nil }

func (r *insumoRepoFake) Update(*entity.Insumo) error { return nil }

func (r *insumoRepoFake) UpdateCostoYStock(insumoID string, costo, stock decimal.Decimal) error {
	r.ultimoCosto = costo
	r.ultimoStock = stock
	r.updates++
	if i, ok := r.insumos[insumoID]; ok {
		i.CostoPromedio = costo
		i.Stock = stock
	}
	return nil
}

func (r *insumoRepoFake) Delete(string) error { return nil }

// compraRepoFake guarda compras en memoria; la más reciente queda en ultima.
type compraRepoFake struct {
	compras []*entity.Compra
}

func (r *compraRepoFake) Create(c *entity.Compra) error {
	r.compras = append(r.compras, c)
	return nil
}

func (r *compraRepoFake) GetByID(string) (*entity.Compra, error) { return nil, nil }

func (r *compraRepoFake) UltimaCompra(insumoID string) (*entity.Compra, error) {
	for i := len(r.compras) - 1; i >= 0; i-- {
		if r.compras[i].InsumoID == insumoID {
			return r.compras[i], nil
		}
	}
	return nil, nil
}

func (r *compraRepoFake) ListByInsumo(string, int, int) ([]*entity.Compra, error) {
	return nil, nil
}

func (r *compraRepoFake) ListByNegocio(string, int, int) ([]*entity.Compra, error) {
	return nil, nil
}

// proveedorRepoFake resuelve proveedores por ID.
type proveedorRepoFake struct {
	proveedores map[string]*entity.Proveedor
}

func (r *proveedorRepoFake) Create(*entity.Proveedor) error { return nil }

func (r *proveedorRepoFake) GetByID(id string) (*entity.Proveedor, error) {
	return r.proveedores[id], nil
}

func (r *proveedorRepoFake) ListByNegocio(string, int, int) ([]*entity.Proveedor, error) {
	return nil, nil
}

func (r *proveedorRepoFake) Update(*entity.Proveedor) error { return nil }
func (r *proveedorRepoFake) Delete(string) error            { return nil }

// txRunnerFake ejecuta el callback directo sobre los fakes, sin transacción.
type txRunnerFake struct {
	compras *compraRepoFake
	insumos *insumoRepoFake
}

func (t *txRunnerFake) Run(_ context.Context, fn func(
	compraRepo repository.CompraRepository,
	insumoRepo repository.InsumoRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	return fn(t.compras, t.insumos, nil)
}

func armarCompraUC() (*usecase.CompraUseCase, *insumoRepoFake, *compraRepoFake) {
	insumos := &insumoRepoFake{insumos: map[string]*entity.Insumo{
		"carne": {ID: "carne", NegocioID: "neg-1", Nombre: "Carne de res", Unidad: "kg",
			Stock: dec("10"), CostoPromedio: dec("8"), Activo: true, Inventariable: true},
	}}
	compras := &compraRepoFake{}
	proveedores := &proveedorRepoFake{proveedores: map[string]*entity.Proveedor{
		"prov-1": {ID: "prov-1", NegocioID: "neg-1", Nombre: "Frigorífico El Norte"},
	}}
	uc := usecase.NewCompraUseCase(&txRunnerFake{compras: compras, insumos: insumos}, insumos, proveedores, compras)
	return uc, insumos, compras
}

// TestCompraUseCase_RegistrarAplicaPromedioPonderado cubre el vector:
// stock 10 a $8 + compra de 5 a $11 → (10×8 + 5×11) / 15 = $9, stock 15.
func TestCompraUseCase_RegistrarAplicaPromedioPonderado(t *testing.T) {
	uc, insumos, compras := armarCompraUC()

	out, err := uc.Registrar(context.Background(), "neg-1", "user-1", dto.RegistrarCompraRequest{
		InsumoID:      "carne",
		ProveedorID:   "prov-1",
		Cantidad:      dec("5"),
		CostoUnitario: dec("11"),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, dec("55").Equal(out.Total))
	assert.Equal(t, "Frigorífico El Norte", out.Proveedor)
	assert.Equal(t, 1, insumos.updates)
	assert.True(t, dec("9").Equal(insumos.ultimoCosto), "esperado 9, obtenido %s", insumos.ultimoCosto)
	assert.True(t, dec("15").Equal(insumos.ultimoStock))
	require.Len(t, compras.compras, 1)
}

func TestCompraUseCase_RegistrarRechazaCantidadNoPositiva(t *testing.T) {
	uc, insumos, _ := armarCompraUC()

	_, err := uc.Registrar(context.Background(), "neg-1", "user-1", dto.RegistrarCompraRequest{
		InsumoID:      "carne",
		Cantidad:      dec("0"),
		CostoUnitario: dec("11"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, insumos.updates)
}

func TestCompraUseCase_RegistrarInsumoDeOtroNegocio(t *testing.T) {
	uc, _, _ := armarCompraUC()

	_, err := uc.Registrar(context.Background(), "neg-2", "user-1", dto.RegistrarCompraRequest{
		InsumoID:      "carne",
		Cantidad:      dec("5"),
		CostoUnitario: dec("11"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompraUseCase_UltimoEstadoSinCompras(t *testing.T) {
	uc, _, _ := armarCompraUC()

	out, err := uc.UltimoEstado("carne")
	require.NoError(t, err)

	// Stock y costo del catálogo; datos de última compra en cero.
	assert.True(t, dec("10").Equal(out.StockActual))
	assert.True(t, dec("8").Equal(out.CostoPromedio))
	assert.True(t, out.UltCompraCantidad.IsZero())
	assert.Empty(t, out.UltCompraProveedor)
}

func TestCompraUseCase_UltimoEstadoConCompra(t *testing.T) {
	uc, _, _ := armarCompraUC()

	_, err := uc.Registrar(context.Background(), "neg-1", "user-1", dto.RegistrarCompraRequest{
		InsumoID:      "carne",
		ProveedorID:   "prov-1",
		Cantidad:      dec("5"),
		CostoUnitario: dec("11"),
	})
	require.NoError(t, err)

	out, err := uc.UltimoEstado("carne")
	require.NoError(t, err)
	assert.True(t, dec("5").Equal(out.UltCompraCantidad))
	assert.Equal(t, "Frigorífico El Norte", out.UltCompraProveedor)
	assert.True(t, dec("11").Equal(out.UltCompraCosto))
	assert.True(t, dec("15").Equal(out.StockActual), "el estado refleja el stock ya actualizado")
}
