package booking

import (
	"context"

	"github.com/jhoicas/jawa-showroom/internal/domain/entity"
)

// InvoicePDFGenerator puerto de salida: representación PDF de la factura de una reserva.
type InvoicePDFGenerator interface {
	GenerateBookingPDF(ctx context.Context, booking *entity.Booking, showroom Showroom) ([]byte, error)
}
