package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastrillo/restopos-api/internal/application/dto"
	"github.com/jcastrillo/restopos-api/internal/domain"
	"github.com/jcastrillo/restopos-api/internal/domain/costing"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
	"github.com/jcastrillo/restopos-api/internal/domain/repository"
)

// CompraUseCase registra compras de insumos. Cada compra aplica el promedio
// ponderado al costo del insumo y suma la cantidad al stock, en una sola
// transacción.
type CompraUseCase struct {
	txRunner      TxRunner
	insumoRepo    repository.InsumoRepository
	proveedorRepo repository.ProveedorRepository
	compraRepo    repository.CompraRepository
}

// NewCompraUseCase construye el caso de uso.
func NewCompraUseCase(
	txRunner TxRunner,
	insumoRepo repository.InsumoRepository,
	proveedorRepo repository.ProveedorRepository,
	compraRepo repository.CompraRepository,
) *CompraUseCase {
	return &CompraUseCase{
		txRunner:      txRunner,
		insumoRepo:    insumoRepo,
		proveedorRepo: proveedorRepo,
		compraRepo:    compraRepo,
	}
}

// Registrar valida la compra, calcula el nuevo costo promedio y persiste
// compra + actualización del insumo con Commit o Rollback.
func (uc *CompraUseCase) Registrar(ctx context.Context, negocioID, userID string, in dto.RegistrarCompraRequest) (*dto.CompraResponse, error) {
	if in.InsumoID == "" || !in.Cantidad.GreaterThan(decimal.Zero) || in.CostoUnitario.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	insumo, err := uc.insumoRepo.GetByID(in.InsumoID)
	if err != nil {
		return nil, err
	}
	if insumo == nil || insumo.NegocioID != negocioID {
		return nil, domain.ErrNotFound
	}

	nombreProveedor := ""
	if in.ProveedorID != "" {
		proveedor, err := uc.proveedorRepo.GetByID(in.ProveedorID)
		if err != nil {
			return nil, err
		}
		if proveedor == nil {
			return nil, domain.ErrNotFound
		}
		nombreProveedor = proveedor.Nombre
	}

	now := time.Now()
	fecha := now
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	compra := &entity.Compra{
		ID:            uuid.New().String(),
		NegocioID:     negocioID,
		InsumoID:      in.InsumoID,
		ProveedorID:   in.ProveedorID,
		Proveedor:     nombreProveedor,
		Cantidad:      in.Cantidad,
		CostoUnitario: in.CostoUnitario,
		Total:         in.Cantidad.Mul(in.CostoUnitario),
		Fecha:         fecha,
		CreatedAt:     now,
		CreatedBy:     userID,
	}

	nuevoCosto := costing.PromedioPonderado(insumo.Stock, insumo.CostoPromedio, in.Cantidad, in.CostoUnitario)
	nuevoStock := insumo.Stock.Add(in.Cantidad)

	err = uc.txRunner.Run(ctx, func(
		compraRepo repository.CompraRepository,
		insumoRepo repository.InsumoRepository,
		_ repository.MovimientoRepository,
	) error {
		if err := compraRepo.Create(compra); err != nil {
			return err
		}
		return insumoRepo.UpdateCostoYStock(insumo.ID, nuevoCosto, nuevoStock)
	})
	if err != nil {
		return nil, err
	}
	return toCompraResponse(compra), nil
}

// UltimoEstado arma el snapshot de último estado de un insumo: stock y costo
// del catálogo más los datos de la compra más reciente. La ausencia de
// compras (o una falla de la consulta) produce los campos de compra en cero,
// nunca un error: el snapshot es informativo.
func (uc *CompraUseCase) UltimoEstado(insumoID string) (*dto.UltimoEstadoResponse, error) {
	insumo, err := uc.insumoRepo.GetByID(insumoID)
	if err != nil {
		return nil, err
	}
	if insumo == nil {
		return nil, domain.ErrNotFound
	}
	resp := &dto.UltimoEstadoResponse{
		StockActual:   insumo.Stock,
		CostoPromedio: insumo.CostoPromedio,
		Unidad:        insumo.Unidad,
	}
	if compra, err := uc.compraRepo.UltimaCompra(insumoID); err == nil && compra != nil {
		resp.UltCompraCantidad = compra.Cantidad
		resp.UltCompraProveedor = compra.Proveedor
		resp.UltCompraCosto = compra.CostoUnitario
	}
	return resp, nil
}

// List lista compras por negocio con paginación.
func (uc *CompraUseCase) List(negocioID string, limit, offset int) (*dto.CompraListResponse, error) {
	list, err := uc.compraRepo.ListByNegocio(negocioID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompraResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompraResponse(c))
	}
	return &dto.CompraListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toCompraResponse(c *entity.Compra) *dto.CompraResponse {
	if c == nil {
		return nil
	}
	return &dto.CompraResponse{
		ID:            c.ID,
		InsumoID:      c.InsumoID,
		ProveedorID:   c.ProveedorID,
		Proveedor:     c.Proveedor,
		Cantidad:      c.Cantidad,
		CostoUnitario: c.CostoUnitario,
		Total:         c.Total,
		Fecha:         c.Fecha,
		CreatedAt:     c.CreatedAt,
	}
}
