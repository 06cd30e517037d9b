package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jawa-showroom/internal/application/auth"
	"github.com/jhoicas/jawa-showroom/internal/application/dto"
	"github.com/jhoicas/jawa-showroom/internal/domain"
	"github.com/jhoicas/jawa-showroom/internal/domain/entity"
	"github.com/jhoicas/jawa-showroom/internal/infrastructure/filestore"
	"github.com/jhoicas/jawa-showroom/pkg/logger"
	"github.com/jhoicas/jawa-showroom/pkg/security"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "test-secret-key-for-unit-tests"

var testSession = auth.SessionConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "jawa-showroom-test"}

func newAuth(t *testing.T) (*auth.AuthUseCase, *filestore.Store) {
	t.Helper()
	store := filestore.New(t.TempDir(), logger.Nop())
	return auth.NewAuthUseCase(store, security.SaltedSHA256{}, testSession, logger.Nop()), store
}

func validRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:        "rider1",
		Password:        "legend2024",
		ConfirmPassword: "legend2024",
		FullName:        "  Asha Rao ",
		Email:           " Asha.Rao@Example.com ",
		Phone:           "9876543210",
		Address:         " 12 MG Road, Pune ",
	}
}

// failingUsers guarda en memoria pero reporta error de persistencia.
type failingUsers struct {
	users map[string]*entity.User
}

func (f *failingUsers) SaveUser(u *entity.User) error {
	f.users[entity.NormalizeUsername(u.Username)] = u
	return errors.New("disco lleno")
}

func (f *failingUsers) FindUser(username string) *entity.User {
	return f.users[entity.NormalizeUsername(username)]
}

func (f *failingUsers) UserExists(username string) bool {
	return f.FindUser(username) != nil
}

func assertValidation(t *testing.T, err error, kind error, msg string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, kind), "esperado %v, obtenido %v", kind, err)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, msg, ve.Message)
	assert.Equal(t, msg, err.Error())
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_Validaciones(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
		kind   error
		msg    string
	}{
		{"username corto", func(r *dto.RegisterRequest) { r.Username = "abc" }, domain.ErrUsernameTooShort, "Username must be at least 4 characters."},
		{"username corto tras recortar", func(r *dto.RegisterRequest) { r.Username = "  ab  " }, domain.ErrUsernameTooShort, "Username must be at least 4 characters."},
		{"username con espacio", func(r *dto.RegisterRequest) { r.Username = "ab cd" }, domain.ErrUsernameCharset, "Username can only contain letters, digits, and underscores."},
		{"username con guion", func(r *dto.RegisterRequest) { r.Username = "rider-1" }, domain.ErrUsernameCharset, "Username can only contain letters, digits, and underscores."},
		{"password débil", func(r *dto.RegisterRequest) { r.Password, r.ConfirmPassword = "password", "password" }, domain.ErrWeakPassword, "Password must be at least 8 characters and contain both letters and digits."},
		{"password corta", func(r *dto.RegisterRequest) { r.Password, r.ConfirmPassword = "abc123", "abc123" }, domain.ErrWeakPassword, "Password must be at least 8 characters and contain both letters and digits."},
		{"confirmación distinta", func(r *dto.RegisterRequest) { r.ConfirmPassword = "legend2025" }, domain.ErrPasswordMismatch, "Passwords do not match."},
		{"nombre vacío", func(r *dto.RegisterRequest) { r.FullName = "   " }, domain.ErrFullNameRequired, "Full name cannot be empty."},
		{"email inválido", func(r *dto.RegisterRequest) { r.Email = "asha@example" }, domain.ErrInvalidEmail, "Please enter a valid email address."},
		{"teléfono inválido", func(r *dto.RegisterRequest) { r.Phone = "5876543210" }, domain.ErrInvalidPhone, "Please enter a valid 10-digit Indian mobile number."},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			uc, store := newAuth(t)
			in := validRequest()
			c.mutate(&in)

			err := uc.Register(in)

			assertValidation(t, err, c.kind, c.msg)
			assert.False(t, store.UserExists("rider1"), "no se persiste nada")
		})
	}
}

func TestRegister_PrimerFalloGana(t *testing.T) {
	uc, _ := newAuth(t)
	in := validRequest()
	in.Username = "ab"
	in.Password = "x"
	in.Email = "nope"

	assertValidation(t, uc.Register(in), domain.ErrUsernameTooShort, "Username must be at least 4 characters.")
}

func TestRegister_ExitoNormalizaYPersiste(t *testing.T) {
	uc, store := newAuth(t)
	in := validRequest()
	in.Username = "  Rider1 "

	require.NoError(t, uc.Register(in))

	u := store.FindUser("rider1")
	require.NotNil(t, u)
	assert.Equal(t, "rider1", u.Username)
	assert.Equal(t, "Asha Rao", u.FullName)
	assert.Equal(t, "asha.rao@example.com", u.Email)
	assert.Equal(t, "9876543210", u.Phone)
	assert.Equal(t, "12 MG Road, Pune", u.Address)
	assert.False(t, u.CreatedAt.IsZero())
	assert.NotEqual(t, in.Password, u.PasswordHash)
	assert.True(t, security.VerifyPassword(in.Password, u.PasswordHash))
	assert.False(t, uc.IsLoggedIn(), "registrar no inicia sesión")
}

func TestRegister_UsernameDuplicadoSinMayusculas(t *testing.T) {
	uc, _ := newAuth(t)
	require.NoError(t, uc.Register(validRequest()))

	in := validRequest()
	in.Username = "RIDER1"

	assertValidation(t, uc.Register(in), domain.ErrUsernameTaken, "Username 'RIDER1' is already taken.")
}

func TestRegister_FalloDePersistenciaNoEsFatal(t *testing.T) {
	repo := &failingUsers{users: map[string]*entity.User{}}
	uc := auth.NewAuthUseCase(repo, nil, testSession, logger.Nop())

	require.NoError(t, uc.Register(validRequest()))
	assert.True(t, repo.UserExists("rider1"))
	require.NoError(t, uc.Login("rider1", "legend2024"))
}

func TestRegister_ConBcrypt(t *testing.T) {
	store := filestore.New(t.TempDir(), logger.Nop())
	uc := auth.NewAuthUseCase(store, security.Bcrypt{Cost: 4}, testSession, logger.Nop())

	require.NoError(t, uc.Register(validRequest()))

	u := store.FindUser("rider1")
	require.NotNil(t, u)
	assert.Contains(t, u.PasswordHash, "$2")
	require.NoError(t, uc.Login("rider1", "legend2024"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuth(t)

	assertValidation(t, uc.Login(" Ghost ", "whatever1"), domain.ErrUserNotFound, "No account found with username 'Ghost'.")
	assert.False(t, uc.IsLoggedIn())
}

func TestLogin_CredencialesVacias(t *testing.T) {
	uc, _ := newAuth(t)

	assertValidation(t, uc.Login("", "legend2024"), domain.ErrCredentialsRequired, "Username and password are required.")
	assertValidation(t, uc.Login("rider1", ""), domain.ErrCredentialsRequired, "Username and password are required.")
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuth(t)
	require.NoError(t, uc.Register(validRequest()))

	assertValidation(t, uc.Login("rider1", "legend2025"), domain.ErrIncorrectPassword, "Incorrect password. Please try again.")
	assert.False(t, uc.IsLoggedIn())
	assert.Nil(t, uc.CurrentUser())
}

func TestLogin_ExitoYLogout(t *testing.T) {
	uc, _ := newAuth(t)
	require.NoError(t, uc.Register(validRequest()))

	require.NoError(t, uc.Login("RIDER1", "legend2024"))
	assert.True(t, uc.IsLoggedIn())
	cur := uc.CurrentUser()
	require.NotNil(t, cur)
	assert.Equal(t, "rider1", cur.Username)

	uc.Logout()
	assert.False(t, uc.IsLoggedIn())
	assert.Nil(t, uc.CurrentUser())

	uc.Logout() // idempotente
	assert.False(t, uc.IsLoggedIn())
}

func TestSessionToken_RetomarEnOtraInstancia(t *testing.T) {
	dir := t.TempDir()
	store := filestore.New(dir, logger.Nop())
	first := auth.NewAuthUseCase(store, nil, testSession, logger.Nop())
	require.NoError(t, first.Register(validRequest()))
	require.NoError(t, first.Login("rider1", "legend2024"))

	token, err := first.IssueSessionToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Otro proceso: store recargado desde disco.
	second := auth.NewAuthUseCase(filestore.New(dir, logger.Nop()), nil, testSession, logger.Nop())
	require.NoError(t, second.ResumeSession(token))
	require.True(t, second.IsLoggedIn())
	assert.Equal(t, "rider1", second.CurrentUser().Username)
}

func TestSessionToken_SinSesion(t *testing.T) {
	uc, _ := newAuth(t)

	_, err := uc.IssueSessionToken()
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionToken_Rechazos(t *testing.T) {
	uc, _ := newAuth(t)
	require.NoError(t, uc.Register(validRequest()))
	require.NoError(t, uc.Login("rider1", "legend2024"))
	token, err := uc.IssueSessionToken()
	require.NoError(t, err)

	other := auth.NewAuthUseCase(filestore.New(t.TempDir(), logger.Nop()), nil,
		auth.SessionConfig{Secret: "otro-secreto", ExpMinutes: 60}, logger.Nop())
	assert.ErrorIs(t, other.ResumeSession(token), domain.ErrUnauthorized, "firma distinta")

	sameSecretEmptyStore := auth.NewAuthUseCase(filestore.New(t.TempDir(), logger.Nop()), nil, testSession, logger.Nop())
	assert.ErrorIs(t, sameSecretEmptyStore.ResumeSession(token), domain.ErrUnauthorized, "usuario inexistente")
	assert.False(t, sameSecretEmptyStore.IsLoggedIn())

	assert.ErrorIs(t, uc.ResumeSession("no-es-un-jwt"), domain.ErrUnauthorized)
}
