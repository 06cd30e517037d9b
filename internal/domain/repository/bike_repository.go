package repository

import "github.com/jhoicas/jawa-showroom/internal/domain/entity"

// BikeRepository acceso de solo lectura al catálogo sembrado.
type BikeRepository interface {
	AllBikes() []*entity.Bike
	AvailableBikes() []*entity.Bike
	FindBikeByID(bikeID string) *entity.Bike
}
