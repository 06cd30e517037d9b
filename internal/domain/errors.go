package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
)

// Errores de validación de registro y login. El texto de cada ValidationError es
// el mensaje que se muestra tal cual al usuario.
var (
	ErrUsernameTooShort    = errors.New("username too short")
	ErrUsernameCharset     = errors.New("username has invalid characters")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrWeakPassword        = errors.New("weak password")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrFullNameRequired    = errors.New("full name required")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrInvalidPhone        = errors.New("invalid phone")
	ErrCredentialsRequired = errors.New("credentials required")
	ErrUserNotFound        = errors.New("user not found")
	ErrIncorrectPassword   = errors.New("incorrect password")
)

// ValidationError lleva el mensaje visible y el sentinel para errors.Is.
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Kind }

// Invalid construye un ValidationError.
func Invalid(kind error, message string) error {
	return &ValidationError{Kind: kind, Message: message}
}
