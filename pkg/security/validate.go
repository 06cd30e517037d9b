package security

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

var (
	emailRe    = regexp.MustCompile(`^[\w.+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRe    = regexp.MustCompile(`^[6-9]\d{9}$`)
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// IsValidEmail formato básico usuario@dominio.tld.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidPhone móvil indio de 10 dígitos que empieza por 6-9.
func IsValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// IsValidUsername solo letras, dígitos y guion bajo.
func IsValidUsername(username string) bool {
	return usernameRe.MatchString(username)
}

// IsStrongPassword mínimo 8 caracteres con al menos una letra y un dígito.
func IsStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
