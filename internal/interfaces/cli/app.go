// Package cli expone el showroom como comandos de terminal (cobra).
// Cada invocación es un proceso nuevo: la sesión se conserva entre comandos
// mediante un token firmado guardado en SessionFile.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jhoicas/jawa-showroom/internal/application/auth"
	"github.com/jhoicas/jawa-showroom/internal/application/booking"
	"github.com/jhoicas/jawa-showroom/internal/domain/entity"
	"github.com/jhoicas/jawa-showroom/internal/domain/repository"
	"github.com/jhoicas/jawa-showroom/pkg/logger"
)

// ErrLoginRequired el comando necesita una sesión abierta.
var ErrLoginRequired = errors.New("please log in first (showroom login)")

// App dependencias de los comandos.
type App struct {
	Auth     *auth.AuthUseCase
	Bookings *booking.BookingUseCase
	PDF      *booking.PDFUseCase
	Bikes    repository.BikeRepository
	Log      *logger.Logger

	SessionFile string // ruta del token de sesión; vacío desactiva la persistencia
	InvoiceDir  string // destino por defecto de facturas guardadas

	In  io.Reader
	Out io.Writer

	// ReadPassword lee un secreto sin eco. Nil: terminal si In es una TTY, si no una línea de In.
	ReadPassword func(prompt string) (string, error)

	lines *bufio.Reader
}

func (a *App) out() io.Writer {
	if a.Out == nil {
		return os.Stdout
	}
	return a.Out
}

func (a *App) reader() *bufio.Reader {
	if a.lines == nil {
		in := a.In
		if in == nil {
			in = os.Stdin
		}
		a.lines = bufio.NewReader(in)
	}
	return a.lines
}

// readLine lee una línea de In sin el salto final.
func (a *App) readLine() (string, error) {
	s, err := a.reader().ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// prompt muestra label y lee una línea.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out(), label)
	return a.readLine()
}

// secret lee una contraseña sin eco cuando hay terminal.
func (a *App) secret(label string) (string, error) {
	if a.ReadPassword != nil {
		return a.ReadPassword(label)
	}
	if f, ok := a.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(a.out(), label)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.out())
		if err != nil {
			return "", fmt.Errorf("leer contraseña: %w", err)
		}
		return string(b), nil
	}
	return a.prompt(label)
}

// resumeSession reabre la sesión guardada, si la hay. Un token inválido o vencido
// se descarta sin error.
func (a *App) resumeSession() {
	if a.SessionFile == "" || a.Auth.IsLoggedIn() {
		return
	}
	data, err := os.ReadFile(a.SessionFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			a.Log.Warn().Err(err).Str("file", a.SessionFile).Msg("no se pudo leer la sesión")
		}
		return
	}
	if err := a.Auth.ResumeSession(string(data)); err != nil {
		a.Log.Debug().Err(err).Msg("sesión guardada descartada")
		_ = os.Remove(a.SessionFile)
	}
}

// persistSession guarda el token de la sesión actual.
func (a *App) persistSession() error {
	if a.SessionFile == "" {
		return nil
	}
	token, err := a.Auth.IssueSessionToken()
	if err != nil {
		return err
	}
	if err := os.WriteFile(a.SessionFile, []byte(token), 0o600); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// clearSession borra el token guardado.
func (a *App) clearSession() {
	if a.SessionFile == "" {
		return
	}
	if err := os.Remove(a.SessionFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		a.Log.Warn().Err(err).Str("file", a.SessionFile).Msg("no se pudo borrar la sesión")
	}
}

// requireUser usuario en sesión o ErrLoginRequired.
func (a *App) requireUser() (*entity.User, error) {
	u := a.Auth.CurrentUser()
	if u == nil {
		return nil, ErrLoginRequired
	}
	return u, nil
}
