package filestore

import (
	"strings"

	"github.com/jhoicas/jawa-showroom/internal/domain/entity"
)

// AllBikes catálogo completo en orden JW001..JW006.
func (s *Store) AllBikes() []*entity.Bike {
	return s.filterBikes(func(*entity.Bike) bool { return true })
}

// AvailableBikes solo los modelos marcados como disponibles.
func (s *Store) AvailableBikes() []*entity.Bike {
	return s.filterBikes(func(b *entity.Bike) bool { return b.Available })
}

// FindBikeByID busca por ID sin distinguir mayúsculas ("jw001" == "JW001"). nil si no existe.
func (s *Store) FindBikeByID(bikeID string) *entity.Bike {
	for _, b := range s.bikes {
		if strings.EqualFold(b.BikeID, strings.TrimSpace(bikeID)) {
			cp := *b
			return &cp
		}
	}
	return nil
}

func (s *Store) filterBikes(keep func(*entity.Bike) bool) []*entity.Bike {
	out := make([]*entity.Bike, 0, len(s.bikes))
	for _, b := range s.bikes {
		if keep(b) {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out
}
