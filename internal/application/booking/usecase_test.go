package booking_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jawa-showroom/internal/application/booking"
	"github.com/jhoicas/jawa-showroom/internal/application/dto"
	"github.com/jhoicas/jawa-showroom/internal/domain"
	"github.com/jhoicas/jawa-showroom/internal/domain/emi"
	"github.com/jhoicas/jawa-showroom/internal/domain/entity"
	"github.com/jhoicas/jawa-showroom/internal/infrastructure/filestore"
	"github.com/jhoicas/jawa-showroom/pkg/format"
	"github.com/jhoicas/jawa-showroom/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var fixedNow = time.Date(2024, time.March, 5, 14, 30, 0, 0, time.Local)

func newUseCase(t *testing.T) (*booking.BookingUseCase, *filestore.Store) {
	t.Helper()
	store := filestore.New(t.TempDir(), logger.Nop())
	uc := booking.NewBookingUseCase(store, booking.Showroom{}, logger.Nop())
	uc.SetClock(func() time.Time { return fixedNow })
	return uc, store
}

func customer() *entity.User {
	return &entity.User{
		Username: "rider1",
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Address:  "12 MG Road, Pune",
	}
}

// failingBookings guarda en memoria pero reporta error de persistencia.
type failingBookings struct {
	saved []*entity.Booking
}

func (f *failingBookings) SaveBooking(b *entity.Booking) error {
	f.saved = append(f.saved, b)
	return errors.New("disco lleno")
}

func (f *failingBookings) FindBooking(id string) *entity.Booking {
	for _, b := range f.saved {
		if b.BookingID == id {
			return b
		}
	}
	return nil
}

func (f *failingBookings) BookingsByUser(string) []*entity.Booking { return f.saved }
func (f *failingBookings) AllBookings() []*entity.Booking          { return f.saved }

// stubPDF devuelve bytes fijos y registra la reserva recibida.
type stubPDF struct {
	got *entity.Booking
	err error
}

func (s *stubPDF) GenerateBookingPDF(_ context.Context, b *entity.Booking, _ booking.Showroom) ([]byte, error) {
	s.got = b
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-stub"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateBooking
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateBooking_ContadoCongelaPrecios(t *testing.T) {
	uc, store := newUseCase(t)
	bike := store.FindBikeByID("JW001")
	require.NotNil(t, bike)

	bk, err := uc.CreateBooking(customer(), bike, dto.FullPayment())
	require.NoError(t, err)

	assert.Regexp(t, `^BK-[0-9A-F]{8}$`, bk.BookingID)
	assert.Equal(t, "rider1", bk.Username)
	assert.True(t, fixedNow.Equal(bk.BookingDate))
	assert.Equal(t, entity.BookingConfirmed, bk.Status)
	assert.Equal(t, "Jawa 42", bk.BikeModelName)
	assert.Equal(t, "Standard", bk.BikeVariant)
	assert.Equal(t, "Jasper Red", bk.BikeColor)
	assert.True(t, d("199000").Equal(bk.ExShowroomPrice))
	assert.True(t, d("55720").Equal(bk.GSTAmount))
	assert.True(t, d("288720").Equal(bk.TotalOnRoadPrice))
	assert.Equal(t, "Asha Rao", bk.CustomerName)
	assert.Equal(t, "12 MG Road, Pune", bk.CustomerAddress)

	assert.False(t, bk.EMIChosen)
	assert.True(t, bk.LoanAmount.IsZero())
	assert.True(t, bk.EMIAmount.IsZero())
	assert.Zero(t, bk.TenureMonths)

	// La foto no cambia aunque cambie la moto.
	bike.ExShowroomPrice = d("1")
	persisted := store.FindBooking(bk.BookingID)
	require.NotNil(t, persisted)
	assert.True(t, d("288720").Equal(persisted.TotalOnRoadPrice))
}

func TestCreateBooking_ConEMI(t *testing.T) {
	uc, store := newUseCase(t)
	bike := store.FindBikeByID("JW001")

	bk, err := uc.CreateBooking(customer(), bike, dto.EMIPlan(d("57744"), d("9"), 36))
	require.NoError(t, err)

	assert.True(t, bk.EMIChosen)
	assert.True(t, d("57744").Equal(bk.DownPayment))
	assert.True(t, d("230976").Equal(bk.LoanAmount), "loan = on-road - entrada")
	assert.True(t, d("9").Equal(bk.InterestRate))
	assert.Equal(t, 36, bk.TenureMonths)
	assert.True(t, emi.CalculateEMI(d("230976"), d("9"), 36).Equal(bk.EMIAmount))
	assert.InDelta(t, 7344.98, bk.EMIAmount.InexactFloat64(), 0.01)
}

func TestCreateBooking_EntradaMayorQuePrecio(t *testing.T) {
	uc, store := newUseCase(t)

	bk, err := uc.CreateBooking(customer(), store.FindBikeByID("JW006"), dto.EMIPlan(d("300000"), d("9"), 12))
	require.NoError(t, err)

	assert.True(t, bk.LoanAmount.IsNegative(), "no se valida la entrada")
	assert.True(t, bk.EMIAmount.IsZero())
}

func TestCreateBooking_EntradasNil(t *testing.T) {
	uc, store := newUseCase(t)

	_, err := uc.CreateBooking(nil, store.FindBikeByID("JW001"), dto.FullPayment())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateBooking(customer(), nil, dto.FullPayment())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, store.AllBookings())
}

func TestCreateBooking_RegeneraIDEnColision(t *testing.T) {
	uc, store := newUseCase(t)
	ids := []string{"BK-00000001", "BK-00000001", "BK-00000002"}
	i := 0
	uc.SetIDGenerator(func() string {
		id := ids[i]
		i++
		return id
	})
	bike := store.FindBikeByID("JW003")

	first, err := uc.CreateBooking(customer(), bike, dto.FullPayment())
	require.NoError(t, err)
	second, err := uc.CreateBooking(customer(), bike, dto.FullPayment())
	require.NoError(t, err)

	assert.Equal(t, "BK-00000001", first.BookingID)
	assert.Equal(t, "BK-00000002", second.BookingID)
	assert.Len(t, uc.BookingsByUser("RIDER1"), 2)
}

func TestCreateBooking_IDsAgotados(t *testing.T) {
	uc, store := newUseCase(t)
	uc.SetIDGenerator(func() string { return "BK-FFFFFFFF" })
	bike := store.FindBikeByID("JW003")

	_, err := uc.CreateBooking(customer(), bike, dto.FullPayment())
	require.NoError(t, err)
	_, err = uc.CreateBooking(customer(), bike, dto.FullPayment())
	assert.ErrorIs(t, err, booking.ErrIDExhausted)
}

func TestCreateBooking_FalloDePersistenciaDevuelveReserva(t *testing.T) {
	repo := &failingBookings{}
	uc := booking.NewBookingUseCase(repo, booking.Showroom{}, logger.Nop())
	bike := filestore.New(t.TempDir(), logger.Nop()).FindBikeByID("JW002")

	bk, err := uc.CreateBooking(customer(), bike, dto.FullPayment())

	require.NoError(t, err)
	require.NotNil(t, bk)
	assert.Len(t, repo.saved, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Factura
// ──────────────────────────────────────────────────────────────────────────────

func invoiceLines(s string) []string {
	return strings.Split(s, "\n")
}

func TestGenerateInvoice_Contado(t *testing.T) {
	uc, store := newUseCase(t)
	uc.SetIDGenerator(func() string { return "BK-1A2B3C4D" })
	bk, err := uc.CreateBooking(customer(), store.FindBikeByID("JW001"), dto.FullPayment())
	require.NoError(t, err)

	inv := uc.GenerateInvoice(bk)
	lines := invoiceLines(inv)

	assert.Equal(t, "", lines[0])
	assert.Equal(t, strings.Repeat("=", 64), lines[1])
	assert.Equal(t, "Jawa Bikes - Authorised Dealership", strings.TrimSpace(lines[2]))
	assert.Contains(t, inv, "Ph: +91-20-12345678")
	assert.Contains(t, inv, "GSTIN: 27AABCJ1234A1ZS")
	assert.Contains(t, inv, "TAX INVOICE / BOOKING CONFIRMATION")

	assert.Contains(t, lines, "  Booking ID   : BK-1A2B3C4D")
	assert.Contains(t, lines, "  Booking Date : 05-03-2024 14:30:00")
	assert.Contains(t, lines, "  Status       : CONFIRMED")
	assert.Contains(t, lines, "  Name         : Asha Rao")
	assert.Contains(t, lines, "  Model        : Jawa 42 Standard")
	assert.Contains(t, lines, "  Colour       : Jasper Red")

	assert.Contains(t, lines, fmt.Sprintf("  %-35s %s", "Ex-Showroom Price:", "₹1,99,000.00"))
	assert.Contains(t, lines, fmt.Sprintf("  %-35s %s", "GST (28%):", "₹55,720.00"))
	assert.Contains(t, lines, fmt.Sprintf("  %-35s %s", "RTO Registration Charges:", "₹12,000.00"))
	assert.Contains(t, lines, fmt.Sprintf("  %-35s %s", "TOTAL ON-ROAD PRICE:", "₹2,88,720.00"))
	assert.Equal(t, 1, strings.Count(inv, "TOTAL ON-ROAD PRICE"))

	assert.NotContains(t, inv, "EMI PAYMENT PLAN")
	assert.Contains(t, inv, "Thank you for choosing Jawa!")
	assert.Equal(t, strings.Repeat("=", 64), lines[len(lines)-2])

	for _, l := range lines {
		assert.LessOrEqual(t, len([]rune(l)), 64, "línea demasiado ancha: %q", l)
	}
}

func TestGenerateInvoice_ConEMI(t *testing.T) {
	uc, store := newUseCase(t)
	bk, err := uc.CreateBooking(customer(), store.FindBikeByID("JW001"), dto.EMIPlan(d("57744"), d("9.5"), 36))
	require.NoError(t, err)

	inv := uc.GenerateInvoice(bk)
	lines := invoiceLines(inv)

	assert.Contains(t, inv, "\n  EMI PAYMENT PLAN\n")
	assert.Contains(t, lines, fmt.Sprintf("  %-35s %s", "Down Payment:", "₹57,744.00"))
	assert.Contains(t, lines, fmt.Sprintf("  %-35s %s", "Loan Amount:", "₹2,30,976.00"))
	assert.Contains(t, lines, fmt.Sprintf("  %-35s %s", "Interest Rate:", "9.50% p.a."))
	assert.Contains(t, lines, fmt.Sprintf("  %-35s %s", "Tenure:", "36 months"))

	total := d("57744").Add(emi.TotalPayable(bk.EMIAmount, 36))
	assert.Contains(t, lines, fmt.Sprintf("  %-35s %s", "Total Payable (incl. interest):", format.INR(total)))
	assert.Contains(t, inv, " / month")
	assert.Contains(t, inv, "Total Interest Cost:")
}

func TestGenerateInvoice_ShowroomConfigurable(t *testing.T) {
	store := filestore.New(t.TempDir(), logger.Nop())
	uc := booking.NewBookingUseCase(store, booking.Showroom{
		Name: "Jawa Koregaon Park", Address: "Pune", Phone: "020-1", GSTIN: "27XYZ",
	}, logger.Nop())
	bk, err := uc.CreateBooking(customer(), store.FindBikeByID("JW005"), dto.FullPayment())
	require.NoError(t, err)

	inv := uc.GenerateInvoice(bk)
	assert.Contains(t, inv, "Jawa Koregaon Park")
	assert.Contains(t, inv, "GSTIN: 27XYZ")
	assert.NotContains(t, inv, "Authorised Dealership")
}

func TestGenerateInvoice_ExShowroomCero(t *testing.T) {
	bk := &entity.Booking{BookingID: "BK-ZERO0000", Status: entity.BookingConfirmed}

	inv := booking.RenderInvoice(bk, booking.DefaultShowroom())

	assert.Contains(t, inv, fmt.Sprintf("  %-35s %s", "GST:", "₹0.00"))
	assert.Contains(t, inv, "  Booking Date : \n")
}

func TestSaveInvoice(t *testing.T) {
	uc, store := newUseCase(t)
	uc.SetIDGenerator(func() string { return "BK-SAVE0001" })
	bk, err := uc.CreateBooking(customer(), store.FindBikeByID("JW004"), dto.FullPayment())
	require.NoError(t, err)
	dir := filepath.Join(t.TempDir(), "invoices")

	path, err := uc.SaveInvoice(dir, bk)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Invoice_BK-SAVE0001.txt"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, uc.GenerateInvoice(bk), string(content))
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestPDFUseCase(t *testing.T) {
	uc, store := newUseCase(t)
	uc.SetIDGenerator(func() string { return "BK-PDF00001" })
	_, err := uc.CreateBooking(customer(), store.FindBikeByID("JW001"), dto.FullPayment())
	require.NoError(t, err)

	gen := &stubPDF{}
	pdfUC := booking.NewPDFUseCase(store, gen, booking.Showroom{})
	ctx := context.Background()

	data, name, err := pdfUC.DownloadInvoicePDF(ctx, "RIDER1", "bk-pdf00001")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-stub", string(data))
	assert.Equal(t, "Invoice_BK-PDF00001.pdf", name)
	require.NotNil(t, gen.got)
	assert.Equal(t, "BK-PDF00001", gen.got.BookingID)

	_, _, err = pdfUC.DownloadInvoicePDF(ctx, "rider1", "BK-NOPE")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = pdfUC.DownloadInvoicePDF(ctx, "otro", "BK-PDF00001")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	dir := t.TempDir()
	path, err := pdfUC.SaveInvoicePDF(ctx, dir, "rider1", "BK-PDF00001")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Invoice_BK-PDF00001.pdf"), path)
	assert.FileExists(t, path)

	failing := booking.NewPDFUseCase(store, &stubPDF{err: errors.New("boom")}, booking.Showroom{})
	_, _, err = failing.DownloadInvoicePDF(ctx, "rider1", "BK-PDF00001")
	assert.ErrorContains(t, err, "boom")
}
