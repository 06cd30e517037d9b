package booking

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/jawa-showroom/internal/domain"
	"github.com/jhoicas/jawa-showroom/internal/domain/entity"
	"github.com/jhoicas/jawa-showroom/internal/domain/repository"
)

// PDFUseCase genera la factura en PDF de una reserva existente.
type PDFUseCase struct {
	bookings  repository.BookingRepository
	generator InvoicePDFGenerator
	showroom  Showroom
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(bookings repository.BookingRepository, generator InvoicePDFGenerator, showroom Showroom) *PDFUseCase {
	if showroom == (Showroom{}) {
		showroom = DefaultShowroom()
	}
	return &PDFUseCase{bookings: bookings, generator: generator, showroom: showroom}
}

// DownloadInvoicePDF recupera la reserva, comprueba que pertenece a username y
// genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la reserva no existe.
//   - domain.ErrUnauthorized     si la reserva es de otro usuario.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, username, bookingID string) (pdfBytes []byte, filename string, err error) {
	bk := uc.bookings.FindBooking(bookingID)
	if bk == nil {
		return nil, "", domain.ErrNotFound
	}
	if entity.NormalizeUsername(bk.Username) != entity.NormalizeUsername(username) {
		return nil, "", domain.ErrUnauthorized
	}

	pdfBytes, err = uc.generator.GenerateBookingPDF(ctx, bk, uc.showroom)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, InvoiceFileName(bk) + ".pdf", nil
}

// SaveInvoicePDF genera el PDF y lo escribe en dir. Devuelve la ruta.
func (uc *PDFUseCase) SaveInvoicePDF(ctx context.Context, dir, username, bookingID string) (string, error) {
	data, name, err := uc.DownloadInvoicePDF(ctx, username, bookingID)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("pdf: crear %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("pdf: guardar %s: %w", name, err)
	}
	return path, nil
}
