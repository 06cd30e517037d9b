package auth

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/jawa-showroom/internal/application/dto"
	"github.com/jhoicas/jawa-showroom/internal/domain"
	"github.com/jhoicas/jawa-showroom/internal/domain/entity"
	"github.com/jhoicas/jawa-showroom/internal/domain/repository"
	"github.com/jhoicas/jawa-showroom/pkg/format"
	"github.com/jhoicas/jawa-showroom/pkg/jwt"
	"github.com/jhoicas/jawa-showroom/pkg/logger"
	"github.com/jhoicas/jawa-showroom/pkg/security"
)

const minUsernameLen = 4

// SessionConfig configuración de los tokens de sesión.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y sesión actual.
// Mantiene como mucho un usuario logueado.
type AuthUseCase struct {
	users   repository.UserRepository
	hasher  security.PasswordHasher
	session SessionConfig
	log     *logger.Logger
	now     func() time.Time

	mu      sync.RWMutex
	current *entity.User
}

// NewAuthUseCase construye el caso de uso de auth. Con hasher nil usa SHA-256 con salt.
func NewAuthUseCase(users repository.UserRepository, hasher security.PasswordHasher, session SessionConfig, log *logger.Logger) *AuthUseCase {
	if hasher == nil {
		hasher = security.SaltedSHA256{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		users:   users,
		hasher:  hasher,
		session: session,
		log:     log.Named("auth"),
		now:     format.Now,
	}
}

// Register valida el formulario y persiste el usuario. Devuelve nil si tuvo éxito;
// si no, un *domain.ValidationError con el mensaje para mostrar (primer fallo).
// Un fallo al escribir el archivo se registra pero no impide el registro.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) error {
	username := strings.TrimSpace(in.Username)
	if utf8.RuneCountInString(username) < minUsernameLen {
		return domain.Invalid(domain.ErrUsernameTooShort, "Username must be at least 4 characters.")
	}
	if !security.IsValidUsername(username) {
		return domain.Invalid(domain.ErrUsernameCharset, "Username can only contain letters, digits, and underscores.")
	}
	if uc.users.UserExists(username) {
		return domain.Invalid(domain.ErrUsernameTaken, fmt.Sprintf("Username '%s' is already taken.", username))
	}
	if !security.IsStrongPassword(in.Password) {
		return domain.Invalid(domain.ErrWeakPassword, "Password must be at least 8 characters and contain both letters and digits.")
	}
	if in.Password != in.ConfirmPassword {
		return domain.Invalid(domain.ErrPasswordMismatch, "Passwords do not match.")
	}
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return domain.Invalid(domain.ErrFullNameRequired, "Full name cannot be empty.")
	}
	email := strings.TrimSpace(in.Email)
	if !security.IsValidEmail(email) {
		return domain.Invalid(domain.ErrInvalidEmail, "Please enter a valid email address.")
	}
	phone := strings.TrimSpace(in.Phone)
	if !security.IsValidPhone(phone) {
		return domain.Invalid(domain.ErrInvalidPhone, "Please enter a valid 10-digit Indian mobile number.")
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return fmt.Errorf("auth: hash de contraseña: %w", err)
	}
	user := &entity.User{
		Username:     entity.NormalizeUsername(username),
		PasswordHash: hash,
		FullName:     fullName,
		Email:        strings.ToLower(email),
		Phone:        phone,
		Address:      strings.TrimSpace(in.Address),
		CreatedAt:    uc.now(),
	}
	if err := uc.users.SaveUser(user); err != nil {
		uc.log.Warn().Err(err).Str("username", user.Username).Msg("registro no persistido")
	}
	uc.log.Info().Str("username", user.Username).Msg("usuario registrado")
	return nil
}

// Login verifica credenciales y abre la sesión. Devuelve un *domain.ValidationError
// si el usuario no existe o la contraseña no coincide.
func (uc *AuthUseCase) Login(username, password string) error {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" || password == "" {
		return domain.Invalid(domain.ErrCredentialsRequired, "Username and password are required.")
	}
	user := uc.users.FindUser(trimmed)
	if user == nil {
		return domain.Invalid(domain.ErrUserNotFound, fmt.Sprintf("No account found with username '%s'.", trimmed))
	}
	if !uc.hasher.Verify(password, user.PasswordHash) {
		uc.log.Debug().Str("username", user.Username).Msg("contraseña incorrecta")
		return domain.Invalid(domain.ErrIncorrectPassword, "Incorrect password. Please try again.")
	}

	uc.setCurrent(user)
	uc.log.Info().Str("username", user.Username).Msg("sesión iniciada")
	return nil
}

// Logout cierra la sesión actual (no-op si no hay).
func (uc *AuthUseCase) Logout() {
	uc.setCurrent(nil)
}

// IsLoggedIn indica si hay un usuario en sesión.
func (uc *AuthUseCase) IsLoggedIn() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current != nil
}

// CurrentUser usuario en sesión o nil.
func (uc *AuthUseCase) CurrentUser() *entity.User {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.current == nil {
		return nil
	}
	cp := *uc.current
	return &cp
}

// IssueSessionToken firma un JWT para el usuario en sesión, de modo que otro
// proceso pueda retomarla con ResumeSession.
func (uc *AuthUseCase) IssueSessionToken() (string, error) {
	user := uc.CurrentUser()
	if user == nil {
		return "", domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.session.Secret, user.Username, uc.session.Issuer, uc.session.ExpMinutes)
	if err != nil {
		return "", fmt.Errorf("auth: firmar sesión: %w", err)
	}
	return token, nil
}

// ResumeSession valida el token y abre la sesión de su usuario. Un token inválido,
// vencido o de un usuario que ya no existe devuelve ErrUnauthorized.
func (uc *AuthUseCase) ResumeSession(token string) error {
	username, err := jwt.Parse(uc.session.Secret, strings.TrimSpace(token))
	if err != nil {
		uc.log.Debug().Err(err).Msg("token de sesión rechazado")
		return fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	user := uc.users.FindUser(username)
	if user == nil {
		return fmt.Errorf("%w: usuario %q no existe", domain.ErrUnauthorized, username)
	}
	uc.setCurrent(user)
	return nil
}

func (uc *AuthUseCase) setCurrent(u *entity.User) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.current = u
}
