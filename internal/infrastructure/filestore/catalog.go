package filestore

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/jawa-showroom/internal/domain/entity"
)

// bikeSeed fila de la tabla constante del catálogo.
type bikeSeed struct {
	id, model, variant, color            string
	exShowroom, gst, rto, insurance, fee int64
	cc, engineType, power, torque        string
	transmission, fuel, tank, mileage    string
	weight, seatHeight, wheelbase, gc    string
	frontBrake, rearBrake                string
	frontSuspension, rearSuspension      string
	description                          string
}

var catalog = []bikeSeed{
	{
		"JW001", "Jawa 42", "Standard", "Jasper Red",
		199000, 28, 12000, 18000, 4000,
		"334 cc", "Single Cyl, Liquid Cooled", "30.64 PS @ 8000 rpm", "32.74 Nm @ 6500 rpm",
		"6-Speed", "Petrol", "14.7 Litres", "~38 kmpl",
		"170 kg", "765 mm", "1369 mm", "170 mm",
		"300 mm Disc", "240 mm Disc",
		"43 mm USD Forks", "Mono Shock",
		"A retro-modern roadster with classic round headlamp & modern mechanics.",
	},
	{
		"JW002", "Jawa 42", "Dual-Channel ABS", "Comet Blue",
		211000, 28, 12500, 18500, 4000,
		"334 cc", "Single Cyl, Liquid Cooled", "30.64 PS @ 8000 rpm", "32.74 Nm @ 6500 rpm",
		"6-Speed", "Petrol", "14.7 Litres", "~38 kmpl",
		"170 kg", "765 mm", "1369 mm", "170 mm",
		"300 mm Disc (ABS)", "240 mm Disc (ABS)",
		"43 mm USD Forks", "Mono Shock",
		"Same retro soul, added safety with dual-channel ABS.",
	},
	{
		"JW003", "Jawa Perak", "Bobber", "Mystic Copper",
		204000, 28, 13000, 19000, 4500,
		"334 cc", "Single Cyl, Liquid Cooled", "30.2 PS @ 7800 rpm", "31.5 Nm @ 6500 rpm",
		"6-Speed", "Petrol", "13 Litres", "~35 kmpl",
		"178 kg", "730 mm", "1365 mm", "145 mm",
		"280 mm Disc", "220 mm Disc",
		"41 mm Telescopic Forks", "Hidden Mono Shock",
		"Bold bobber silhouette with low-slung stance & fender-less tail.",
	},
	{
		"JW004", "Jawa 300 Scrambler", "Standard", "Dune Beige",
		218000, 28, 13500, 19500, 4500,
		"334 cc", "Single Cyl, Liquid Cooled", "30.64 PS @ 8000 rpm", "32.74 Nm @ 6500 rpm",
		"6-Speed", "Petrol", "14.7 Litres", "~35 kmpl",
		"172 kg", "800 mm", "1380 mm", "200 mm",
		"300 mm Disc", "240 mm Disc",
		"43 mm USD Forks (Long Travel)", "Mono Shock (Long Travel)",
		"Adventure-ready scrambler with high ground clearance & knobby tires.",
	},
	{
		"JW005", "Jawa 42 FJ", "Standard", "Gloss Black",
		239000, 28, 14000, 20000, 5000,
		"334 cc", "Single Cyl, Liquid Cooled", "31.1 PS @ 8500 rpm", "33.0 Nm @ 6500 rpm",
		"6-Speed", "Petrol", "14.7 Litres", "~37 kmpl",
		"175 kg", "770 mm", "1369 mm", "170 mm",
		"300 mm Disc (ABS)", "240 mm Disc (ABS)",
		"43 mm USD Forks", "Mono Shock",
		"The all-new FJ edition – sportier tune with modern digital console.",
	},
	{
		"JW006", "Jawa 350", "Standard", "Vintage Maroon",
		196000, 28, 11500, 17500, 3500,
		"294 cc", "Single Cyl, Air Cooled", "27.33 PS @ 7300 rpm", "28 Nm @ 5000 rpm",
		"5-Speed", "Petrol", "14 Litres", "~40 kmpl",
		"165 kg", "758 mm", "1355 mm", "165 mm",
		"280 mm Disc", "220 mm Drum",
		"41 mm Telescopic Forks", "Twin Shock",
		"Entry-level retro commuter – lightweight, fuel-efficient, timeless style.",
	},
}

// seedBikes construye el catálogo fijo de seis modelos, todos disponibles.
func seedBikes() []*entity.Bike {
	bikes := make([]*entity.Bike, 0, len(catalog))
	for _, s := range catalog {
		bikes = append(bikes, &entity.Bike{
			BikeID:           s.id,
			ModelName:        s.model,
			Variant:          s.variant,
			Color:            s.color,
			Available:        true,
			EngineCC:         s.cc,
			EngineType:       s.engineType,
			MaxPower:         s.power,
			MaxTorque:        s.torque,
			Transmission:     s.transmission,
			FuelType:         s.fuel,
			FuelTankCapacity: s.tank,
			Mileage:          s.mileage,
			KerbWeight:       s.weight,
			SeatHeight:       s.seatHeight,
			Wheelbase:        s.wheelbase,
			GroundClearance:  s.gc,
			FrontBrake:       s.frontBrake,
			RearBrake:        s.rearBrake,
			FrontSuspension:  s.frontSuspension,
			RearSuspension:   s.rearSuspension,
			ExShowroomPrice:  decimal.NewFromInt(s.exShowroom),
			GSTRate:          decimal.NewFromInt(s.gst),
			RTOCharges:       decimal.NewFromInt(s.rto),
			InsurancePremium: decimal.NewFromInt(s.insurance),
			HandlingCharges:  decimal.NewFromInt(s.fee),
			Description:      s.description,
		})
	}
	return bikes
}
