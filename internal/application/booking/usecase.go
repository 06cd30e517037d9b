package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/jawa-showroom/internal/application/dto"
	"github.com/jhoicas/jawa-showroom/internal/domain"
	"github.com/jhoicas/jawa-showroom/internal/domain/emi"
	"github.com/jhoicas/jawa-showroom/internal/domain/entity"
	"github.com/jhoicas/jawa-showroom/internal/domain/repository"
	"github.com/jhoicas/jawa-showroom/pkg/format"
	"github.com/jhoicas/jawa-showroom/pkg/logger"
)

// maxIDAttempts intentos de generar un ID libre antes de rendirse.
const maxIDAttempts = 16

// ErrIDExhausted no se encontró un ID de reserva libre.
var ErrIDExhausted = errors.New("booking: no se pudo generar un ID único")

// BookingUseCase crea reservas y genera sus facturas.
type BookingUseCase struct {
	bookings repository.BookingRepository
	showroom Showroom
	log      *logger.Logger
	now      func() time.Time
	newID    func() string
}

// NewBookingUseCase construye el caso de uso. Un showroom vacío usa DefaultShowroom.
func NewBookingUseCase(bookings repository.BookingRepository, showroom Showroom, log *logger.Logger) *BookingUseCase {
	if showroom == (Showroom{}) {
		showroom = DefaultShowroom()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &BookingUseCase{
		bookings: bookings,
		showroom: showroom,
		log:      log.Named("booking"),
		now:      format.Now,
		newID:    format.NewBookingID,
	}
}

// Showroom datos del concesionario usados en la cabecera de factura.
func (uc *BookingUseCase) Showroom() Showroom { return uc.showroom }

// CreateBooking toma una foto de precios de la moto y de datos del cliente, calcula
// el EMI si se eligió financiación y persiste la reserva con estado CONFIRMED.
// Si la persistencia falla se registra y la reserva se devuelve igual.
func (uc *BookingUseCase) CreateBooking(user *entity.User, bike *entity.Bike, plan dto.PaymentPlan) (*entity.Booking, error) {
	if user == nil || bike == nil {
		return nil, fmt.Errorf("booking: usuario y moto son obligatorios: %w", domain.ErrInvalidInput)
	}
	id, err := uc.uniqueID()
	if err != nil {
		return nil, err
	}

	onRoad := bike.OnRoadPrice()
	bk := &entity.Booking{
		BookingID:   id,
		Username:    user.Username,
		BookingDate: uc.now(),
		Status:      entity.BookingConfirmed,

		BikeID:        bike.BikeID,
		BikeModelName: bike.ModelName,
		BikeVariant:   bike.Variant,
		BikeColor:     bike.Color,

		ExShowroomPrice:  bike.ExShowroomPrice,
		GSTAmount:        bike.GSTAmount(),
		RTOCharges:       bike.RTOCharges,
		InsurancePremium: bike.InsurancePremium,
		HandlingCharges:  bike.HandlingCharges,
		TotalOnRoadPrice: onRoad,

		CustomerName:    user.FullName,
		CustomerEmail:   user.Email,
		CustomerPhone:   user.Phone,
		CustomerAddress: user.Address,

		EMIChosen: plan.EMI,
	}
	if plan.EMI {
		loan := onRoad.Sub(plan.DownPayment)
		bk.DownPayment = plan.DownPayment
		bk.LoanAmount = loan
		bk.InterestRate = plan.AnnualRate
		bk.TenureMonths = plan.TenureMonths
		bk.EMIAmount = emi.CalculateEMI(loan, plan.AnnualRate, plan.TenureMonths)
	}

	if err := uc.bookings.SaveBooking(bk); err != nil {
		uc.log.Warn().Err(err).Str("booking_id", bk.BookingID).Msg("reserva no persistida")
	}
	uc.log.Info().
		Str("booking_id", bk.BookingID).
		Str("username", bk.Username).
		Str("bike_id", bk.BikeID).
		Bool("emi", bk.EMIChosen).
		Msg("reserva creada")
	return bk, nil
}

// FindBooking reserva por ID o nil.
func (uc *BookingUseCase) FindBooking(bookingID string) *entity.Booking {
	return uc.bookings.FindBooking(bookingID)
}

// BookingsByUser reservas del usuario en orden de creación.
func (uc *BookingUseCase) BookingsByUser(username string) []*entity.Booking {
	return uc.bookings.BookingsByUser(username)
}

func (uc *BookingUseCase) uniqueID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := uc.newID()
		if uc.bookings.FindBooking(id) == nil {
			return id, nil
		}
		uc.log.Debug().Str("booking_id", id).Msg("colisión de ID, regenerando")
	}
	return "", ErrIDExhausted
}
