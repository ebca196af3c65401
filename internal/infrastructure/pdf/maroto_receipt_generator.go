// Package pdf implementa el render PDF del recibo de venta con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  RECIBO DE VENDA        │  N° Pedido+Fecha  │
//	│  ─────────────────────────────────────────  │
//	│  Cliente                                    │
//	│  TABLA: Item | Qtd | Unit. | Subtotal       │
//	│  ─────────────────────────────────────────  │
//	│  TOTAL                                      │
//	│  Obrigado pela preferência!                 │
//	└─────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/tu-usuario/distribuidora-pdv/internal/application/receipts"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa receipts.PDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// Generate genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) Generate(data *receipts.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Recibo #%d", data.OrderID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(data))
	m.AddRows(tableHeaderRow())
	for _, r := range itemRows(data.Items) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(data))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y número de pedido más fecha (der).
func headerRow(data *receipts.ReceiptData) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("RECIBO DE VENDA", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Pedido #%d", data.OrderID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New("Data: "+data.Date, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func customerRow(data *receipts.ReceiptData) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Cliente: "+data.CustomerName, props.Text{
				Size: 10, Top: 2,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Item", 6, align.Left),
		h("Qtd", 1, align.Center),
		h("Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func itemRows(items []receipts.ReceiptItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				it.Label,
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				it.UnitPrice,
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(3).Add(text.New(
				it.Subtotal,
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}

func totalRow(data *receipts.ReceiptData) core.Row {
	return row.New(10).Add(
		col.New(9).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(data.Total, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2,
		})),
	)
}

func footerRow() core.Row {
	return row.New(14).Add(
		col.New(12).Add(text.New("Obrigado pela preferência!", props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 6,
		})),
	)
}
