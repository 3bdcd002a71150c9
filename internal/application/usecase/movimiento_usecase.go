package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastrillo/restopos-api/internal/application/costeo"
	"github.com/jcastrillo/restopos-api/internal/application/dto"
	"github.com/jcastrillo/restopos-api/internal/application/movimientos"
	"github.com/jcastrillo/restopos-api/internal/domain"
	"github.com/jcastrillo/restopos-api/internal/domain/costing"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
	"github.com/jcastrillo/restopos-api/internal/domain/repository"
)

// VoucherPDFGenerator genera el comprobante (remito) de un documento de
// movimiento ya firmado.
type VoucherPDFGenerator interface {
	GenerarVoucher(ctx context.Context, doc *entity.MovimientoDocumento, totales movimientos.Totales) ([]byte, error)
}

// MovimientoUseCase registra documentos de movimiento: arma el documento en
// el editor, lo valida, aplica el signo en la frontera y lo persiste
// completo.
type MovimientoUseCase struct {
	movRepo    repository.MovimientoRepository
	insumoRepo repository.InsumoRepository
	compraRepo repository.CompraRepository
	pdf        VoucherPDFGenerator
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(
	movRepo repository.MovimientoRepository,
	insumoRepo repository.InsumoRepository,
	compraRepo repository.CompraRepository,
	pdf VoucherPDFGenerator,
) *MovimientoUseCase {
	return &MovimientoUseCase{
		movRepo:    movRepo,
		insumoRepo: insumoRepo,
		compraRepo: compraRepo,
		pdf:        pdf,
	}
}

// Registrar arma el documento desde el request, lo valida y lo persiste con
// las cantidades ya firmadas según la dirección del motivo. Si la validación
// falla devuelve el mapa campo→mensaje y no persiste nada.
func (uc *MovimientoUseCase) Registrar(negocioID, userID string, in dto.RegistrarMovimientoRequest) (*dto.MovimientoResponse, costeo.ErroresCampo, error) {
	doc := &entity.MovimientoDocumento{
		ID:            uuid.New().String(),
		NegocioID:     negocioID,
		Motivo:        in.Motivo,
		Observaciones: in.Observaciones,
		CreatedAt:     time.Now(),
		CreatedBy:     userID,
	}
	editor := movimientos.NewEditor(
		CatalogoDeRepositorio{Repo: uc.insumoRepo},
		uc.compraRepo,
		doc,
	)
	for _, lr := range in.Lineas {
		rowID := editor.AgregarLinea()
		if lr.InsumoID != "" {
			if err := editor.SeleccionarInsumo(rowID, lr.InsumoID); err != nil && err != domain.ErrNotFound {
				return nil, nil, err
			}
		}
		editor.SetCantidad(rowID, lr.Cantidad)
		if lr.CostoUnitario.IsPositive() {
			editor.SetCostoUnitario(rowID, lr.CostoUnitario)
		}
		editor.SetProveedor(rowID, lr.Proveedor)
	}
	if errores := editor.Validar(); !errores.OK() {
		return nil, errores, nil
	}
	firmado, err := editor.FormaPersistible()
	if err != nil {
		return nil, nil, err
	}
	if err := uc.movRepo.Save(firmado); err != nil {
		return nil, nil, err
	}
	editor.MarcarEnviado()
	editor.Esperar()
	return toMovimientoResponse(firmado), nil, nil
}

// GetByID obtiene un documento de movimiento por ID.
func (uc *MovimientoUseCase) GetByID(id string) (*dto.MovimientoResponse, error) {
	doc, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return toMovimientoResponse(doc), nil
}

// List lista documentos por negocio y rango de fechas con paginación.
func (uc *MovimientoUseCase) List(negocioID string, from, to *time.Time, limit, offset int) (*dto.MovimientoListResponse, error) {
	list, err := uc.movRepo.ListByNegocio(negocioID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(list))
	for _, doc := range list {
		items = append(items, *toMovimientoResponse(doc))
	}
	return &dto.MovimientoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// VoucherPDF genera el comprobante PDF de un documento registrado.
func (uc *MovimientoUseCase) VoucherPDF(ctx context.Context, id string) ([]byte, error) {
	doc, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerarVoucher(ctx, doc, totalesDeDocumento(doc))
}

// totalesDeDocumento recalcula los agregados sobre cantidades absolutas
// (los documentos guardados de salida llevan cantidades negativas).
func totalesDeDocumento(doc *entity.MovimientoDocumento) movimientos.Totales {
	abs := make([]entity.MovimientoLinea, len(doc.Lineas))
	copy(abs, doc.Lineas)
	for i := range abs {
		abs[i].Cantidad = abs[i].Cantidad.Abs()
	}
	t := movimientos.Totales{
		GranTotal:    costing.TotalMovimiento(abs),
		PorProveedor: make(map[string]decimal.Decimal),
	}
	for _, l := range abs {
		llave := l.Proveedor
		if llave == "" {
			llave = movimientos.SinProveedor
		}
		t.PorProveedor[llave] = t.PorProveedor[llave].Add(l.Costo())
	}
	return t
}

func toMovimientoResponse(doc *entity.MovimientoDocumento) *dto.MovimientoResponse {
	if doc == nil {
		return nil
	}
	lineas := make([]dto.MovimientoLineaResponse, 0, len(doc.Lineas))
	for _, l := range doc.Lineas {
		lineas = append(lineas, dto.MovimientoLineaResponse{
			RowID:         l.RowID,
			InsumoID:      l.InsumoID,
			NombreInsumo:  l.NombreInsumo,
			Unidad:        l.Unidad,
			Cantidad:      l.Cantidad,
			CostoUnitario: l.CostoUnitario,
			Proveedor:     l.Proveedor,
		})
	}
	t := totalesDeDocumento(doc)
	return &dto.MovimientoResponse{
		ID:            doc.ID,
		Motivo:        doc.Motivo,
		Direccion:     doc.Direccion,
		Observaciones: doc.Observaciones,
		Estado:        doc.Estado,
		Lineas:        lineas,
		Totales: dto.TotalesResponse{
			GranTotal:    t.GranTotal,
			PorProveedor: t.PorProveedor,
		},
		CreatedAt: doc.CreatedAt,
	}
}
