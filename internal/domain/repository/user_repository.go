package repository

import "github.com/jhoicas/jawa-showroom/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas no distinguen mayúsculas; un usuario ausente se devuelve como nil.
type UserRepository interface {
	// SaveUser hace upsert por username. No comprueba unicidad: el caller usa UserExists.
	// Un error indica que el cambio quedó en memoria pero no se pudo persistir.
	SaveUser(user *entity.User) error
	FindUser(username string) *entity.User
	UserExists(username string) bool
}
