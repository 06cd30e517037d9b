package filestore

import (
	"fmt"
	"strings"

	"github.com/jhoicas/jawa-showroom/internal/domain"
	"github.com/jhoicas/jawa-showroom/internal/domain/entity"
)

func (s *Store) loadBookings() {
	skipped := 0
	s.readLines(BookingsFile, func(line string) {
		b, ok := decodeBooking(line)
		if !ok {
			skipped++
			return
		}
		if err := b.Validate(); err != nil {
			s.log.Warn().Err(err).Str("booking_id", b.BookingID).Msg("reserva con importes incoherentes")
		}
		s.bookings = append(s.bookings, b)
	})
	if skipped > 0 {
		s.log.Warn().Int("skipped", skipped).Str("file", BookingsFile).Msg("líneas incompletas ignoradas")
	}
}

// SaveBooking agrega la reserva y reescribe bookings.dat. Si la escritura falla
// la reserva queda en memoria igualmente y se devuelve el error.
func (s *Store) SaveBooking(booking *entity.Booking) error {
	if booking == nil {
		return fmt.Errorf("filestore: reserva nil: %w", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b := *booking
	s.bookings = append(s.bookings, &b)

	lines := make([]string, 0, len(s.bookings))
	for _, bk := range s.bookings {
		lines = append(lines, encodeBooking(bk))
	}
	if err := s.writeLines(BookingsFile, lines); err != nil {
		s.log.Error().Err(err).Str("booking_id", b.BookingID).Msg("reserva guardada solo en memoria")
		return err
	}
	return nil
}

// FindBooking busca por ID sin distinguir mayúsculas. nil si no existe.
func (s *Store) FindBooking(bookingID string) *entity.Booking {
	id := strings.TrimSpace(bookingID)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if strings.EqualFold(b.BookingID, id) {
			cp := *b
			return &cp
		}
	}
	return nil
}

// BookingsByUser reservas del usuario en orden de inserción.
func (s *Store) BookingsByUser(username string) []*entity.Booking {
	key := entity.NormalizeUsername(username)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Booking, 0)
	for _, b := range s.bookings {
		if entity.NormalizeUsername(b.Username) == key {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out
}

// AllBookings todas las reservas en orden de inserción.
func (s *Store) AllBookings() []*entity.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		cp := *b
		out = append(out, &cp)
	}
	return out
}
