package booking

import "time"

// SetClock fija el reloj del caso de uso.
func (uc *BookingUseCase) SetClock(now func() time.Time) { uc.now = now }

// SetIDGenerator reemplaza el generador de IDs de reserva.
func (uc *BookingUseCase) SetIDGenerator(gen func() string) { uc.newID = gen }
