// Package pdf implementa la generación del comprobante (remito) de un
// documento de movimiento de inventario usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio + N° Comprobante │ Motivo + Dirección      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OBSERVACIONES (si las hay)                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Insumo | Unidad | C.Unit | Proveedor | Subt  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: subtotal por proveedor / TOTAL DEL MOVIMIENTO      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jcastrillo/restopos-api/internal/application/movimientos"
	"github.com/jcastrillo/restopos-api/internal/application/usecase"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.VoucherPDFGenerator = (*MarotoVoucherGenerator)(nil)

// MarotoVoucherGenerator implementa usecase.VoucherPDFGenerator usando Maroto v2.
type MarotoVoucherGenerator struct{}

// NewMarotoVoucherGenerator construye el generador.
func NewMarotoVoucherGenerator() *MarotoVoucherGenerator { return &MarotoVoucherGenerator{} }

// GenerarVoucher genera el comprobante PDF del documento y devuelve sus bytes.
func (g *MarotoVoucherGenerator) GenerarVoucher(
	_ context.Context,
	doc *entity.MovimientoDocumento,
	totales movimientos.Totales,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de movimiento", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if doc.Observaciones != "" {
		m.AddRows(observacionesRow(doc.Observaciones))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineaRows(doc.Lineas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range totalesRows(totales) {
		m.AddRows(r)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return out.GetBytes(), nil
}

// headerRow: identificación del documento (izq) y motivo/dirección (der).
func headerRow(doc *entity.MovimientoDocumento) core.Row {
	fecha := doc.CreatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("COMPROBANTE DE MOVIMIENTO", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+doc.ID, props.Text{Size: 8, Top: 9, Color: colorGray}),
			text.New("Fecha: "+fecha, props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(doc.Motivo, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Direccion, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 9,
			}),
			text.New("Estado: "+doc.Estado, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func observacionesRow(obs string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("OBSERVACIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(obs, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Right),
		h("Insumo", 4, align.Left),
		h("Unidad", 1, align.Center),
		h("Costo Unit.", 2, align.Right),
		h("Proveedor", 2, align.Left),
		h("Subtotal", 2, align.Right),
	)
}

// tableLineaRows: una fila por línea del documento. Las cantidades se
// muestran en valor absoluto; el signo ya está dicho por la dirección.
func tableLineaRows(lineas []entity.MovimientoLinea) []core.Row {
	result := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		cantidad := l.Cantidad.Abs()
		subtotal := cantidad.Mul(l.CostoUnitario)
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				cantidad.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(4).Add(text.New(
				l.NombreInsumo,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				l.Unidad,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+l.CostoUnitario.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(l.Proveedor, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalesRows: subtotal por proveedor (orden alfabético estable) y gran total.
func totalesRows(totales movimientos.Totales) []core.Row {
	proveedores := make([]string, 0, len(totales.PorProveedor))
	for p := range totales.PorProveedor {
		proveedores = append(proveedores, p)
	}
	sort.Strings(proveedores)

	var rows []core.Row
	for _, p := range proveedores {
		etiqueta := p
		if p == movimientos.SinProveedor {
			etiqueta = "Sin proveedor"
		}
		rows = append(rows, row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(etiqueta+":", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			})),
			col.New(3).Add(text.New("$"+totales.PorProveedor[p].StringFixed(2), props.Text{
				Size: 9, Align: align.Right, Right: 1,
			})),
		))
	}
	rows = append(rows, row.New(8).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL DEL MOVIMIENTO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})),
		col.New(3).Add(text.New("$"+totales.GranTotal.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})),
	))
	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
