// Package filestore implementa los repositorios de usuarios, reservas y catálogo
// sobre archivos planos delimitados por "|" (users.dat, bookings.dat).
// Toda la data se carga en memoria al crear el Store; cada guardado reescribe el
// archivo completo de forma atómica (temporal + rename).
package filestore

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jhoicas/jawa-showroom/internal/domain/entity"
	"github.com/jhoicas/jawa-showroom/pkg/logger"
)

const (
	UsersFile    = "users.dat"
	BookingsFile = "bookings.dat"

	maxLineSize = 1 << 20
)

// Store repositorio en memoria respaldado por archivos. Seguro para uso concurrente.
type Store struct {
	dir string
	log *logger.Logger

	mu        sync.RWMutex
	users     map[string]*entity.User // clave: username normalizado
	userOrder []string                // orden de inserción, para reescribir estable
	bookings  []*entity.Booking
	bikes     []*entity.Bike
}

// New crea el directorio si falta, siembra el catálogo y carga ambos archivos.
// Los fallos de E/S se registran y el Store arranca con lo que pudo leer.
func New(dir string, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{
		dir:   dir,
		log:   log.Named("filestore"),
		users: make(map[string]*entity.User),
		bikes: seedBikes(),
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.log.Error().Err(err).Str("dir", dir).Msg("no se pudo crear el directorio de datos")
	}
	s.loadUsers()
	s.loadBookings()
	s.log.Debug().
		Int("users", len(s.users)).
		Int("bookings", len(s.bookings)).
		Int("bikes", len(s.bikes)).
		Msg("store cargado")
	return s
}

// Dir directorio de datos.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// readLines invoca fn por cada línea no vacía. Un archivo inexistente no es error.
func (s *Store) readLines(name string, fn func(line string)) {
	f, err := os.Open(s.path(name))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Error().Err(err).Str("file", name).Msg("no se pudo abrir")
		}
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fn(decodeLine(line))
	}
	if err := sc.Err(); err != nil {
		s.log.Error().Err(err).Str("file", name).Msg("lectura interrumpida; se conserva lo leído")
	}
}

// writeLines reescribe name completo vía archivo temporal + rename.
func (s *Store) writeLines(name string, lines []string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("filestore: crear %s: %w", s.dir, err)
	}

	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}

	target := s.path(name)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, []byte(sb.String()), 0o600); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("filestore: escribir %s: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("filestore: reemplazar %s: %w", name, err)
	}
	return nil
}
