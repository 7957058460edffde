// Package pdf renders sale receipts with Maroto v2.
//
// A5 page layout:
//
//	┌───────────────────────────────────────────┐
//	│  HEADER: Store name │ Receipt no. + date  │
//	│  Store address / phone                    │
//	│  ─────────────────────────────────────    │
//	│  Customer (omitted for walk-in sales)     │
//	│  TABLE: Qty | Item | Price | Disc | Amt   │
//	│  ─────────────────────────────────────    │
//	│  Subtotal / Discount / Tax / TOTAL        │
//	│  Payment type footer                      │
//	└───────────────────────────────────────────┘
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
	"github.com/shopspring/decimal"

	"github.com/skumaran/petti-kadai-api/internal/application/sales"
	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
)

var _ sales.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 25, Green: 94, Blue: 66}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implements sales.ReceiptPDFGenerator using Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator builds the generator.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF renders the receipt and returns its bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, data sales.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Receipt "+data.ReceiptNumber, true).
		WithAuthor(data.Settings.StoreName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if data.CustomerName != "" {
		m.AddRows(customerRow(data.CustomerName))
	}

	m.AddRows(tableHeaderRow())
	for _, it := range data.Items {
		m.AddRows(itemRow(it, data.Settings.CurrencySymbol))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data.Sale, data.Settings.CurrencySymbol))
	m.AddRows(footerRow(data.Sale.PaymentType))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate receipt: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: store identity on the left, receipt number and date on the right.
func headerRow(data sales.ReceiptData) core.Row {
	s := data.Settings
	contact := nonEmpty(s.Address, "")
	if s.Phone != "" {
		if contact != "" {
			contact += "   |   "
		}
		contact += "Tel: " + s.Phone
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(s.StoreName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(contact, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("SALE RECEIPT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(data.ReceiptNumber, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+data.Sale.SoldAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func customerRow(name string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Customer: "+name, props.Text{Size: 9, Top: 1}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 2, align.Center),
		h("Item", 4, align.Left),
		h("Price", 2, align.Right),
		h("Disc%", 1, align.Center),
		h("Amount", 3, align.Right),
	)
}

func itemRow(it *entity.SaleItem, currency string) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(
			it.Quantity.String(),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(4).Add(text.New(
			it.ProductName,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			currency+it.UnitPrice.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(1).Add(text.New(
			it.Discount.StringFixed(0),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(3).Add(text.New(
			currency+it.Subtotal.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalsRow: right-aligned totals block. The discount line only appears
// when a discount was applied.
func totalsRow(sale *entity.Sale, currency string) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	labels := []core.Component{label("Subtotal:", 0)}
	values := []core.Component{value(currency+sale.Subtotal.StringFixed(2), 0)}
	top := 5.0
	if sale.DiscountTotal.GreaterThan(decimal.Zero) {
		labels = append(labels, label("Discount:", top))
		values = append(values, value("-"+currency+sale.DiscountTotal.StringFixed(2), top))
		top += 5
	}
	labels = append(labels, label("Tax:", top))
	values = append(values, value(currency+sale.TaxTotal.StringFixed(2), top))
	top += 6

	labels = append(labels, text.New("TOTAL:", props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right,
		Color: colorPrimary, Right: 2, Top: top,
	}))
	values = append(values, text.New(currency+sale.TotalAmount.StringFixed(2), props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right,
		Color: colorPrimary, Right: 1, Top: top,
	}))

	return row.New(28).Add(
		col.New(4),
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
	)
}

func footerRow(paymentType string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Paid by "+paymentType, props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
			text.New("Thank you, visit again!", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 7,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
