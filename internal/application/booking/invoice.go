package booking

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/jawa-showroom/internal/domain/emi"
	"github.com/jhoicas/jawa-showroom/internal/domain/entity"
	"github.com/jhoicas/jawa-showroom/pkg/format"
)

// InvoiceWidth ancho en columnas de la factura de texto.
const InvoiceWidth = 64

// Showroom datos del concesionario emisor.
type Showroom struct {
	Name    string
	Address string
	Phone   string
	GSTIN   string
}

// DefaultShowroom concesionario por defecto.
func DefaultShowroom() Showroom {
	return Showroom{
		Name:    "Jawa Bikes - Authorised Dealership",
		Address: "123, Heritage Road, Pune, Maharashtra - 411001",
		Phone:   "+91-20-12345678",
		GSTIN:   "27AABCJ1234A1ZS",
	}
}

var hundred = decimal.NewFromInt(100)

// GenerateInvoice factura de texto de ancho fijo. La sección EMI solo aparece si
// la reserva se financió. Los importes salen de la foto guardada en la reserva.
func (uc *BookingUseCase) GenerateInvoice(b *entity.Booking) string {
	return RenderInvoice(b, uc.showroom)
}

// RenderInvoice igual que GenerateInvoice pero con el showroom explícito.
func RenderInvoice(b *entity.Booking, s Showroom) string {
	wide := format.Divider('=', InvoiceWidth)
	thin := format.Divider('-', InvoiceWidth)

	var sb strings.Builder
	line := func(str string) {
		sb.WriteString(str)
		sb.WriteByte('\n')
	}
	center := func(str string) { line(format.Center(str, InvoiceWidth)) }
	field := func(label, value string) { line(fmt.Sprintf("  %-13s: %s", label, value)) }
	amount := func(label, value string) { line(fmt.Sprintf("  %-35s %s", label, value)) }
	section := func(title string) {
		line("")
		line(thin)
		line("  " + title)
		line(thin)
	}

	line("")
	line(wide)
	center(s.Name)
	center(s.Address)
	center("Ph: " + s.Phone)
	center("GSTIN: " + s.GSTIN)
	line(wide)
	center("TAX INVOICE / BOOKING CONFIRMATION")
	line(wide)
	line("")

	field("Booking ID", b.BookingID)
	field("Booking Date", dateField(b))
	field("Status", string(b.Status))

	section("CUSTOMER DETAILS")
	field("Name", b.CustomerName)
	field("Email", b.CustomerEmail)
	field("Phone", b.CustomerPhone)
	field("Address", b.CustomerAddress)

	section("VEHICLE DETAILS")
	field("Model", b.BikeModelName+" "+b.BikeVariant)
	field("Bike ID", b.BikeID)
	field("Colour", b.BikeColor)

	section("PRICE BREAKDOWN")
	amount("Ex-Showroom Price:", format.INR(b.ExShowroomPrice))
	amount(gstLabel(b), format.INR(b.GSTAmount))
	amount("RTO Registration Charges:", format.INR(b.RTOCharges))
	amount("Insurance Premium:", format.INR(b.InsurancePremium))
	amount("Handling / Logistics Charges:", format.INR(b.HandlingCharges))
	line(thin)
	amount("TOTAL ON-ROAD PRICE:", format.INR(b.TotalOnRoadPrice))
	line(thin)

	if b.EMIChosen {
		totalPay := emi.TotalPayable(b.EMIAmount, b.TenureMonths)
		line("")
		line("  EMI PAYMENT PLAN")
		line(thin)
		amount("Down Payment:", format.INR(b.DownPayment))
		amount("Loan Amount:", format.INR(b.LoanAmount))
		amount("Interest Rate:", b.InterestRate.StringFixed(2)+"% p.a.")
		amount("Tenure:", fmt.Sprintf("%d months", b.TenureMonths))
		amount("Monthly EMI:", format.INR(b.EMIAmount)+" / month")
		amount("Total Payable (incl. interest):", format.INR(b.DownPayment.Add(totalPay)))
		amount("Total Interest Cost:", format.INR(emi.TotalInterest(b.EMIAmount, b.TenureMonths, b.LoanAmount)))
		line(thin)
	}

	line("")
	center("Thank you for choosing Jawa!")
	center("Your legendary ride awaits.")
	line("")
	line(wide)
	return sb.String()
}

// GSTRate porcentaje de GST implícito en la reserva (gst / ex-showroom * 100).
// ok es false si el ex-showroom es cero.
func GSTRate(b *entity.Booking) (rate decimal.Decimal, ok bool) {
	if b.ExShowroomPrice.IsZero() {
		return decimal.Zero, false
	}
	return b.GSTAmount.Mul(hundred).Div(b.ExShowroomPrice).Round(2), true
}

func gstLabel(b *entity.Booking) string {
	rate, ok := GSTRate(b)
	if !ok {
		return "GST:"
	}
	return "GST (" + rate.String() + "%):"
}

func dateField(b *entity.Booking) string {
	if b.BookingDate.IsZero() {
		return ""
	}
	return format.DateTime(b.BookingDate)
}

// InvoiceFileName nombre de archivo para la factura de la reserva, sin extensión.
func InvoiceFileName(b *entity.Booking) string {
	return "Invoice_" + b.BookingID
}

// SaveInvoice escribe la factura de texto en dir/Invoice_<id>.txt y devuelve la ruta.
func (uc *BookingUseCase) SaveInvoice(dir string, b *entity.Booking) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("booking: crear %s: %w", dir, err)
	}
	path := filepath.Join(dir, InvoiceFileName(b)+".txt")
	if err := os.WriteFile(path, []byte(uc.GenerateInvoice(b)), 0o644); err != nil {
		return "", fmt.Errorf("booking: guardar factura: %w", err)
	}
	uc.log.Info().Str("booking_id", b.BookingID).Str("path", path).Msg("factura guardada")
	return path, nil
}
