package repository

import "github.com/jhoicas/jawa-showroom/internal/domain/entity"

// BookingRepository define el puerto de persistencia para Booking.
type BookingRepository interface {
	// SaveBooking agrega la reserva. Un error indica que quedó en memoria pero no en disco.
	SaveBooking(booking *entity.Booking) error
	FindBooking(bookingID string) *entity.Booking
	BookingsByUser(username string) []*entity.Booking
	AllBookings() []*entity.Booking
}
