package filestore

import (
	"fmt"

	"github.com/jhoicas/jawa-showroom/internal/domain"
	"github.com/jhoicas/jawa-showroom/internal/domain/entity"
)

func (s *Store) loadUsers() {
	skipped := 0
	s.readLines(UsersFile, func(line string) {
		u, ok := decodeUser(line)
		if !ok {
			skipped++
			return
		}
		s.putUserLocked(u)
	})
	if skipped > 0 {
		s.log.Warn().Int("skipped", skipped).Str("file", UsersFile).Msg("líneas incompletas ignoradas")
	}
}

// putUserLocked inserta o reemplaza; un username repetido conserva su posición original.
func (s *Store) putUserLocked(u *entity.User) {
	key := entity.NormalizeUsername(u.Username)
	if _, exists := s.users[key]; !exists {
		s.userOrder = append(s.userOrder, key)
	}
	s.users[key] = u
}

// SaveUser hace upsert y reescribe users.dat. Si la escritura falla el usuario
// queda en memoria igualmente y se devuelve el error.
func (s *Store) SaveUser(user *entity.User) error {
	if user == nil {
		return fmt.Errorf("filestore: usuario nil: %w", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	u := *user
	s.putUserLocked(&u)

	lines := make([]string, 0, len(s.userOrder))
	for _, key := range s.userOrder {
		lines = append(lines, encodeUser(s.users[key]))
	}
	if err := s.writeLines(UsersFile, lines); err != nil {
		s.log.Error().Err(err).Str("username", u.Username).Msg("usuario guardado solo en memoria")
		return err
	}
	return nil
}

// FindUser busca sin distinguir mayúsculas. nil si no existe.
func (s *Store) FindUser(username string) *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[entity.NormalizeUsername(username)]
	if !ok {
		return nil
	}
	cp := *u
	return &cp
}

// UserExists indica si hay un usuario con ese username (sin distinguir mayúsculas).
func (s *Store) UserExists(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[entity.NormalizeUsername(username)]
	return ok
}
