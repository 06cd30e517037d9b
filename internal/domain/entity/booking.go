package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus estado de una reserva.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingDelivered BookingStatus = "DELIVERED"
)

// Booking reserva de una moto. Los campos de moto, precio y cliente son una
// copia tomada al crearla; nunca se recalculan desde Bike o User.
type Booking struct {
	BookingID   string
	Username    string
	BookingDate time.Time
	Status      BookingStatus

	// Moto (snapshot)
	BikeID        string
	BikeModelName string
	BikeVariant   string
	BikeColor     string

	// Precios (snapshot)
	ExShowroomPrice  decimal.Decimal
	GSTAmount        decimal.Decimal
	RTOCharges       decimal.Decimal
	InsurancePremium decimal.Decimal
	HandlingCharges  decimal.Decimal
	TotalOnRoadPrice decimal.Decimal

	// EMI: en cero si EMIChosen es false
	EMIChosen    bool
	DownPayment  decimal.Decimal
	LoanAmount   decimal.Decimal
	InterestRate decimal.Decimal // % anual
	TenureMonths int
	EMIAmount    decimal.Decimal

	// Cliente (snapshot)
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
}

func (b *Booking) String() string {
	return fmt.Sprintf("Booking[%s] %s %s | ₹%s | %s",
		b.BookingID, b.BikeModelName, b.BikeVariant, b.TotalOnRoadPrice.StringFixed(0), b.Status)
}
