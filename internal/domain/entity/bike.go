package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Bike modelo del catálogo con ficha técnica y precios (INR).
// Se siembra al arrancar el store y no cambia después.
type Bike struct {
	BikeID    string
	ModelName string
	Variant   string // ej. "Standard", "Dual-Channel ABS"
	Color     string
	Available bool // flag estático; las reservas no lo modifican

	// Motor y prestaciones
	EngineCC         string
	EngineType       string
	MaxPower         string
	MaxTorque        string
	Transmission     string
	FuelType         string
	FuelTankCapacity string
	Mileage          string

	// Dimensiones
	KerbWeight      string
	SeatHeight      string
	Wheelbase       string
	GroundClearance string

	// Frenos y suspensión
	FrontBrake      string
	RearBrake       string
	FrontSuspension string
	RearSuspension  string

	// Precios
	ExShowroomPrice  decimal.Decimal
	RTOCharges       decimal.Decimal
	InsurancePremium decimal.Decimal
	HandlingCharges  decimal.Decimal
	GSTRate          decimal.Decimal // porcentaje, ej. 28

	Description string
}

// GSTAmount = ExShowroomPrice * GSTRate / 100.
func (b *Bike) GSTAmount() decimal.Decimal {
	return b.ExShowroomPrice.Mul(b.GSTRate).Div(hundred)
}

// OnRoadPrice suma ex-showroom, GST, RTO, seguro y gastos de gestión.
func (b *Bike) OnRoadPrice() decimal.Decimal {
	return b.ExShowroomPrice.
		Add(b.GSTAmount()).
		Add(b.RTOCharges).
		Add(b.InsurancePremium).
		Add(b.HandlingCharges)
}

func (b *Bike) String() string {
	return fmt.Sprintf("[%s] %s %s - On-Road: ₹%s", b.BikeID, b.ModelName, b.Variant, b.OnRoadPrice().StringFixed(0))
}
