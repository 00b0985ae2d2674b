// Package pdf genera la cotización imprimible de un pedido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Marca + sede de despacho │ N° Pedido + Fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + email · Vendedor                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + estado                                             │
//	│  FOOTER: QR con el id del pedido + leyenda                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/Inventario-multimarca/internal/application/ports"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
)

var _ ports.QuotePDFGenerator = (*QuoteGenerator)(nil)

// ── Paleta de colores por marca ───────────────────────────────────────────────

var (
	colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

	brandColors = map[entity.Brand]*props.Color{
		entity.BrandFincaDonRafa: {Red: 5, Green: 150, Blue: 105},
		entity.BrandYuteco:       {Red: 217, Green: 119, Blue: 6},
		entity.BrandEcotact:      {Red: 2, Green: 132, Blue: 199},
	}
	colorDefault = &props.Color{Red: 0, Green: 70, Blue: 127}
)

// QuoteGenerator implementa ports.QuotePDFGenerator usando Maroto v2.
type QuoteGenerator struct{}

// NewQuoteGenerator construye el generador.
func NewQuoteGenerator() *QuoteGenerator { return &QuoteGenerator{} }

// GenerateQuotePDF genera el PDF y devuelve sus bytes.
func (g *QuoteGenerator) GenerateQuotePDF(
	_ context.Context,
	order *entity.Order,
	location *entity.Location,
) ([]byte, error) {
	primary := brandColor(order.Brand)
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+order.ID, true).
		WithAuthor(string(order.Brand), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order, location, primary))
	m.AddRows(line.NewRow(1, props.Line{Color: primary, Thickness: 0.5}))
	m.AddRows(clientRow(order, primary))
	m.AddRows(line.NewRow(1, props.Line{Color: primary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(primary))
	for _, r := range itemRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: primary, Thickness: 0.3}))
	m.AddRows(totalRow(order, primary))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(order, primary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(order *entity.Order, location *entity.Location, primary *props.Color) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(string(order.Brand), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: primary, Top: 1,
			}),
			text.New("Despacho: "+location.Name+nonEmpty(prefixed(" · ", location.Address), ""), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: primary, Top: 1,
			}),
			text.New(order.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+order.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func clientRow(order *entity.Order, primary *props.Color) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: primary, Top: 1}),
			text.New(order.ClientName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("Email: "+nonEmpty(order.ClientEmail, "-"), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("VENDEDOR", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: primary, Top: 1}),
			text.New(nonEmpty(order.CreatorName, "-"), props.Text{Size: 9, Align: align.Right, Top: 6}),
		),
	)
}

func tableHeaderRow(primary *props.Color) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: primary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 5, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func itemRows(items []entity.OrderItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(it.ProductName, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New("$"+it.UnitPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New("$"+it.Subtotal().StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalRow(order *entity.Order, primary *props.Color) core.Row {
	return row.New(12).Add(
		col.New(6).Add(text.New("Estado: "+string(order.Status), props.Text{Size: 8, Top: 3, Color: colorGray})),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: primary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New("$"+order.Total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: primary, Top: 2, Right: 1,
		})),
	)
}

func footerRow(order *entity.Order, primary *props.Color) core.Row {
	note := "Cotización sujeta a disponibilidad de inventario en la sede de despacho."
	if order.ManagerNote != "" {
		note = "Nota: " + order.ManagerNote
	}
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(order.ID, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Referencia del pedido: "+order.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 4, Left: 3, Color: primary,
			}),
			text.New(note, props.Text{Size: 8, Top: 12, Left: 3, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func brandColor(b entity.Brand) *props.Color {
	if c, ok := brandColors[b]; ok {
		return c
	}
	return colorDefault
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func prefixed(prefix, s string) string {
	if s == "" {
		return ""
	}
	return prefix + s
}
