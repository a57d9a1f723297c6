// Package pdf genera el recibo de una compra.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────────────┐
//	│  HEADER: Librería Online  │  N° compra + Fecha        │
//	│  Comprador: email                                     │
//	│  ────────────────────────────────────────────────── │
//	│  TABLA: Cant | Título | P.Unit | Subtotal             │
//	│  ────────────────────────────────────────────────── │
//	│  TOTAL                                                │
//	└──────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	appcompras "github.com/tu-usuario/libreria-online/internal/application/compras"
	"github.com/tu-usuario/libreria-online/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appcompras.ReciboGenerator = (*MarotoReciboGenerator)(nil)

// MarotoReciboGenerator implementa compras.ReciboGenerator usando Maroto v2.
type MarotoReciboGenerator struct{}

// NewMarotoReciboGenerator construye el generador.
func NewMarotoReciboGenerator() *MarotoReciboGenerator { return &MarotoReciboGenerator{} }

// GenerarRecibo genera el PDF de la compra y devuelve sus bytes.
func (g *MarotoReciboGenerator) GenerarRecibo(_ context.Context, compra *entity.Compra) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de compra", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(compra))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(compra.Libros) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(compra))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq) y n° de compra + fecha + comprador (der).
func headerRow(compra *entity.Compra) core.Row {
	fecha := compra.Fecha.Format("02/01/2006 15:04")

	return row.New(20).Add(
		col.New(6).Add(
			text.New("Librería Online", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de compra", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("Compra N° "+compra.ID, props.Text{
				Size: 9, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Comprador: "+compra.CompradorEmail, props.Text{
				Size: 9, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	return row.New(8).Add(
		col.New(2).Add(text.New("Cant.", header)),
		col.New(6).Add(text.New("Título", header)),
		col.New(2).Add(text.New("P. Unit", mergeAlign(header, align.Right))),
		col.New(2).Add(text.New("Subtotal", mergeAlign(header, align.Right))),
	)
}

func tableDetailRows(lineas []entity.LineaCompra) []core.Row {
	rows := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", l.Cantidad), props.Text{Size: 9})),
			col.New(6).Add(text.New(l.Titulo, props.Text{Size: 9})),
			col.New(2).Add(text.New("$"+l.Precio.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
			col.New(2).Add(text.New("$"+l.Subtotal().StringFixed(2), props.Text{Size: 9, Align: align.Right})),
		))
	}
	return rows
}

func totalRow(compra *entity.Compra) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
		})),
		col.New(2).Add(text.New("$"+compra.Total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}

func mergeAlign(p props.Text, a align.Type) props.Text {
	p.Align = a
	return p
}
