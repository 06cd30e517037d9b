// Package pdf implementa la versión PDF de la factura de reserva.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Concesionario + GSTIN │ N° Reserva + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre / Email / Teléfono / Dirección              │
//	│  VEHÍCULO: Modelo + variante / ID / Color                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Concepto | Importe                                   │
//	│  TOTAL ON-ROAD                                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PLAN EMI (solo si hay financiación)                         │
//	│  FOOTER: QR con el N° de reserva + agradecimiento            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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
	"github.com/shopspring/decimal"

	appbooking "github.com/jhoicas/jawa-showroom/internal/application/booking"
	"github.com/jhoicas/jawa-showroom/internal/domain/emi"
	"github.com/jhoicas/jawa-showroom/internal/domain/entity"
	"github.com/jhoicas/jawa-showroom/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 122, Green: 20, Blue: 28} // granate Jawa
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa booking.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

var _ appbooking.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// GenerateBookingPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateBookingPDF(
	_ context.Context,
	bk *entity.Booking,
	showroom appbooking.Showroom,
) ([]byte, error) {
	if bk == nil {
		return nil, fmt.Errorf("pdf: reserva nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Tax Invoice "+bk.BookingID, true).
		WithAuthor(showroom.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(bk, showroom))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(bk))
	m.AddRows(vehicleRow(bk))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range priceRows(bk) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(bk))

	if bk.EMIChosen {
		m.AddRows(line.NewRow(3))
		for _, r := range emiRows(bk) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(bk))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: concesionario (izq) y N° de reserva + fecha (der).
func headerRow(bk *entity.Booking, s appbooking.Showroom) core.Row {
	fecha := ""
	if !bk.BookingDate.IsZero() {
		fecha = format.DateTime(bk.BookingDate)
	}
	return row.New(24).Add(
		col.New(7).Add(
			text.New(s.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(s.Address, props.Text{Size: 8, Top: 9, Color: colorGray}),
			text.New(fmt.Sprintf("Ph: %s   |   GSTIN: %s", s.Phone, s.GSTIN), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TAX INVOICE / BOOKING CONFIRMATION", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(bk.BookingID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
			text.New("Status: "+string(bk.Status), props.Text{
				Size: 8, Align: align.Right, Top: 18, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del comprador.
func customerRow(bk *entity.Booking) core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New("CUSTOMER DETAILS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(bk.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Phone: %s",
				nonEmpty(bk.CustomerEmail, "-"),
				nonEmpty(bk.CustomerPhone, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New("Address: "+nonEmpty(singleLine(bk.CustomerAddress), "-"), props.Text{
				Size: 8, Top: 16, Color: colorGray,
			}),
		),
	)
}

// vehicleRow: modelo reservado.
func vehicleRow(bk *entity.Booking) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("VEHICLE DETAILS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(bk.BikeModelName+" "+bk.BikeVariant, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Bike ID: %s   |   Colour: %s", bk.BikeID, bk.BikeColor), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de precios.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Price breakdown", 8, align.Left),
		h("Amount", 4, align.Right),
	)
}

// priceRows: una fila por concepto del precio on-road.
func priceRows(bk *entity.Booking) []core.Row {
	gst := "GST"
	if rate, ok := appbooking.GSTRate(bk); ok {
		gst = "GST (" + rate.String() + "%)"
	}
	items := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Ex-Showroom Price", bk.ExShowroomPrice},
		{gst, bk.GSTAmount},
		{"RTO Registration Charges", bk.RTOCharges},
		{"Insurance Premium", bk.InsurancePremium},
		{"Handling / Logistics Charges", bk.HandlingCharges},
	}
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, amountRow(it.label, it.amount, false))
	}
	return result
}

// totalRow: total on-road destacado.
func totalRow(bk *entity.Booking) core.Row {
	return amountRow("TOTAL ON-ROAD PRICE", bk.TotalOnRoadPrice, true)
}

// emiRows: bloque de financiación.
func emiRows(bk *entity.Booking) []core.Row {
	totalPay := emi.TotalPayable(bk.EMIAmount, bk.TenureMonths)
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("EMI PAYMENT PLAN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		amountRow("Down Payment", bk.DownPayment, false),
		amountRow("Loan Amount", bk.LoanAmount, false),
		labelRow("Interest Rate", bk.InterestRate.StringFixed(2)+"% p.a."),
		labelRow("Tenure", fmt.Sprintf("%d months", bk.TenureMonths)),
		labelRow("Monthly EMI", rupees(bk.EMIAmount)+" / month"),
		amountRow("Total Payable (incl. interest)", bk.DownPayment.Add(totalPay), false),
		amountRow("Total Interest Cost", emi.TotalInterest(bk.EMIAmount, bk.TenureMonths, bk.LoanAmount), false),
	}
	return rows
}

// footerRow: QR con el N° de reserva + agradecimiento.
func footerRow(bk *entity.Booking) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(bk.BookingID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("Thank you for choosing Jawa!", props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 8, Left: 3, Color: colorPrimary,
			}),
			text.New("Your legendary ride awaits.", props.Text{
				Size: 9, Top: 16, Left: 3, Color: colorGray,
			}),
			text.New("Present this code at the showroom to reference booking "+bk.BookingID+".", props.Text{
				Size: 7, Top: 26, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func amountRow(label string, amount decimal.Decimal, bold bool) core.Row {
	return labelRowStyled(label, rupees(amount), bold)
}

func labelRow(label, value string) core.Row {
	return labelRowStyled(label, value, false)
}

func labelRowStyled(label, value string, bold bool) core.Row {
	left := props.Text{Size: 9, Top: 1, Left: 1}
	if bold {
		left.Style = fontstyle.Bold
		left.Size = 10
		left.Color = colorPrimary
	}
	right := left
	right.Align = align.Right
	right.Left = 0
	right.Right = 1
	return row.New(6).Add(
		col.New(8).Add(text.New(label, left)),
		col.New(4).Add(text.New(value, right)),
	)
}

// rupees usa "Rs." en lugar de "₹": las fuentes estándar del PDF no tienen el glifo.
func rupees(amount decimal.Decimal) string {
	return strings.Replace(format.INR(amount), "₹", "Rs. ", 1)
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
