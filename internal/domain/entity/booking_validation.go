package entity

import (
	"errors"
	"fmt"
)

// ErrInconsistentBooking agrupa los errores de coherencia de una reserva.
var ErrInconsistentBooking = errors.New("reserva incoherente")

// Validate comprueba que el snapshot de precios cuadre: el precio on-road es la
// suma de sus componentes y, con EMI, el préstamo es on-road menos la entrada.
// Devuelve todos los fallos unidos con ErrInconsistentBooking.
func (b *Booking) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: reserva nil", ErrInconsistentBooking)
	}
	var errs []error

	if b.BookingID == "" {
		errs = append(errs, errors.New("booking id vacío"))
	}
	if NormalizeUsername(b.Username) == "" {
		errs = append(errs, errors.New("username vacío"))
	}

	sum := b.ExShowroomPrice.Add(b.GSTAmount).Add(b.RTOCharges).Add(b.InsurancePremium).Add(b.HandlingCharges)
	if !b.TotalOnRoadPrice.Round(2).Equal(sum.Round(2)) {
		errs = append(errs, fmt.Errorf("total on-road (%s) no coincide con la suma de componentes (%s)",
			b.TotalOnRoadPrice.StringFixed(2), sum.StringFixed(2)))
	}

	if b.EMIChosen {
		loan := b.TotalOnRoadPrice.Sub(b.DownPayment)
		if !b.LoanAmount.Round(2).Equal(loan.Round(2)) {
			errs = append(errs, fmt.Errorf("préstamo (%s) no coincide con on-road menos entrada (%s)",
				b.LoanAmount.StringFixed(2), loan.StringFixed(2)))
		}
		if b.LoanAmount.IsPositive() && b.TenureMonths <= 0 {
			errs = append(errs, fmt.Errorf("plazo %d inválido para un préstamo", b.TenureMonths))
		}
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInconsistentBooking}, errs...)...)
	}
	return nil
}
